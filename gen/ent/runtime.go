// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/tablelift/tablelift/db/ent/schema"
	"github.com/tablelift/tablelift/gen/ent/export"
	"github.com/tablelift/tablelift/gen/ent/extractiontask"
	"github.com/tablelift/tablelift/gen/ent/job"
	"github.com/tablelift/tablelift/gen/ent/jobrun"
	"github.com/tablelift/tablelift/gen/ent/operation"
	"github.com/tablelift/tablelift/gen/ent/sourcefile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	exportFields := schema.Export{}.Fields()
	_ = exportFields
	// exportDescDestination is the schema descriptor for destination field.
	exportDescDestination := exportFields[3].Descriptor()
	// export.DestinationValidator is a validator for the "destination" field. It is called by the builders before save.
	export.DestinationValidator = exportDescDestination.Validators[0].(func(string) error)
	// exportDescFileKind is the schema descriptor for file_kind field.
	exportDescFileKind := exportFields[4].Descriptor()
	// export.FileKindValidator is a validator for the "file_kind" field. It is called by the builders before save.
	export.FileKindValidator = exportDescFileKind.Validators[0].(func(string) error)
	// exportDescState is the schema descriptor for state field.
	exportDescState := exportFields[5].Descriptor()
	// export.DefaultState holds the default value on creation for the state field.
	export.DefaultState = exportDescState.Default.(string)
	// export.StateValidator is a validator for the "state" field. It is called by the builders before save.
	export.StateValidator = exportDescState.Validators[0].(func(string) error)
	// exportDescCreatedAt is the schema descriptor for created_at field.
	exportDescCreatedAt := exportFields[9].Descriptor()
	// export.DefaultCreatedAt holds the default value on creation for the created_at field.
	export.DefaultCreatedAt = exportDescCreatedAt.Default.(func() time.Time)
	// exportDescID is the schema descriptor for id field.
	exportDescID := exportFields[0].Descriptor()
	// export.DefaultID holds the default value on creation for the id field.
	export.DefaultID = exportDescID.Default.(func() uuid.UUID)
	extractiontaskFields := schema.ExtractionTask{}.Fields()
	_ = extractiontaskFields
	// extractiontaskDescFolder is the schema descriptor for folder field.
	extractiontaskDescFolder := extractiontaskFields[2].Descriptor()
	// extractiontask.DefaultFolder holds the default value on creation for the folder field.
	extractiontask.DefaultFolder = extractiontaskDescFolder.Default.(string)
	// extractiontaskDescMode is the schema descriptor for mode field.
	extractiontaskDescMode := extractiontaskFields[3].Descriptor()
	// extractiontask.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	extractiontask.ModeValidator = extractiontaskDescMode.Validators[0].(func(string) error)
	// extractiontaskDescStatus is the schema descriptor for status field.
	extractiontaskDescStatus := extractiontaskFields[5].Descriptor()
	// extractiontask.DefaultStatus holds the default value on creation for the status field.
	extractiontask.DefaultStatus = extractiontaskDescStatus.Default.(string)
	// extractiontask.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractiontask.StatusValidator = extractiontaskDescStatus.Validators[0].(func(string) error)
	// extractiontaskDescCarriedOver is the schema descriptor for carried_over field.
	extractiontaskDescCarriedOver := extractiontaskFields[9].Descriptor()
	// extractiontask.DefaultCarriedOver holds the default value on creation for the carried_over field.
	extractiontask.DefaultCarriedOver = extractiontaskDescCarriedOver.Default.(bool)
	// extractiontaskDescCreatedAt is the schema descriptor for created_at field.
	extractiontaskDescCreatedAt := extractiontaskFields[10].Descriptor()
	// extractiontask.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractiontask.DefaultCreatedAt = extractiontaskDescCreatedAt.Default.(func() time.Time)
	// extractiontaskDescID is the schema descriptor for id field.
	extractiontaskDescID := extractiontaskFields[0].Descriptor()
	// extractiontask.DefaultID holds the default value on creation for the id field.
	extractiontask.DefaultID = extractiontaskDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescName is the schema descriptor for name field.
	jobDescName := jobFields[1].Descriptor()
	// job.NameValidator is a validator for the "name" field. It is called by the builders before save.
	job.NameValidator = jobDescName.Validators[0].(func(string) error)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[3].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	jobrunFields := schema.JobRun{}.Fields()
	_ = jobrunFields
	// jobrunDescStatus is the schema descriptor for status field.
	jobrunDescStatus := jobrunFields[2].Descriptor()
	// jobrun.DefaultStatus holds the default value on creation for the status field.
	jobrun.DefaultStatus = jobrunDescStatus.Default.(string)
	// jobrun.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	jobrun.StatusValidator = jobrunDescStatus.Validators[0].(func(string) error)
	// jobrunDescConfigStep is the schema descriptor for config_step field.
	jobrunDescConfigStep := jobrunFields[3].Descriptor()
	// jobrun.DefaultConfigStep holds the default value on creation for the config_step field.
	jobrun.DefaultConfigStep = jobrunDescConfigStep.Default.(string)
	// jobrun.ConfigStepValidator is a validator for the "config_step" field. It is called by the builders before save.
	jobrun.ConfigStepValidator = jobrunDescConfigStep.Validators[0].(func(string) error)
	// jobrunDescVersion is the schema descriptor for version field.
	jobrunDescVersion := jobrunFields[4].Descriptor()
	// jobrun.DefaultVersion holds the default value on creation for the version field.
	jobrun.DefaultVersion = jobrunDescVersion.Default.(int32)
	// jobrunDescTasksTotal is the schema descriptor for tasks_total field.
	jobrunDescTasksTotal := jobrunFields[9].Descriptor()
	// jobrun.DefaultTasksTotal holds the default value on creation for the tasks_total field.
	jobrun.DefaultTasksTotal = jobrunDescTasksTotal.Default.(int32)
	// jobrun.TasksTotalValidator is a validator for the "tasks_total" field. It is called by the builders before save.
	jobrun.TasksTotalValidator = jobrunDescTasksTotal.Validators[0].(func(int32) error)
	// jobrunDescTasksCompleted is the schema descriptor for tasks_completed field.
	jobrunDescTasksCompleted := jobrunFields[10].Descriptor()
	// jobrun.DefaultTasksCompleted holds the default value on creation for the tasks_completed field.
	jobrun.DefaultTasksCompleted = jobrunDescTasksCompleted.Default.(int32)
	// jobrun.TasksCompletedValidator is a validator for the "tasks_completed" field. It is called by the builders before save.
	jobrun.TasksCompletedValidator = jobrunDescTasksCompleted.Validators[0].(func(int32) error)
	// jobrunDescTasksFailed is the schema descriptor for tasks_failed field.
	jobrunDescTasksFailed := jobrunFields[11].Descriptor()
	// jobrun.DefaultTasksFailed holds the default value on creation for the tasks_failed field.
	jobrun.DefaultTasksFailed = jobrunDescTasksFailed.Default.(int32)
	// jobrun.TasksFailedValidator is a validator for the "tasks_failed" field. It is called by the builders before save.
	jobrun.TasksFailedValidator = jobrunDescTasksFailed.Validators[0].(func(int32) error)
	// jobrunDescCreatedAt is the schema descriptor for created_at field.
	jobrunDescCreatedAt := jobrunFields[12].Descriptor()
	// jobrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	jobrun.DefaultCreatedAt = jobrunDescCreatedAt.Default.(func() time.Time)
	// jobrunDescID is the schema descriptor for id field.
	jobrunDescID := jobrunFields[0].Descriptor()
	// jobrun.DefaultID holds the default value on creation for the id field.
	jobrun.DefaultID = jobrunDescID.Default.(func() uuid.UUID)
	operationFields := schema.Operation{}.Fields()
	_ = operationFields
	// operationDescKind is the schema descriptor for kind field.
	operationDescKind := operationFields[1].Descriptor()
	// operation.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	operation.KindValidator = operationDescKind.Validators[0].(func(string) error)
	// operationDescState is the schema descriptor for state field.
	operationDescState := operationFields[3].Descriptor()
	// operation.DefaultState holds the default value on creation for the state field.
	operation.DefaultState = operationDescState.Default.(string)
	// operation.StateValidator is a validator for the "state" field. It is called by the builders before save.
	operation.StateValidator = operationDescState.Validators[0].(func(string) error)
	// operationDescTotal is the schema descriptor for total field.
	operationDescTotal := operationFields[4].Descriptor()
	// operation.DefaultTotal holds the default value on creation for the total field.
	operation.DefaultTotal = operationDescTotal.Default.(int)
	// operation.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	operation.TotalValidator = operationDescTotal.Validators[0].(func(int) error)
	// operationDescCompleted is the schema descriptor for completed field.
	operationDescCompleted := operationFields[5].Descriptor()
	// operation.DefaultCompleted holds the default value on creation for the completed field.
	operation.DefaultCompleted = operationDescCompleted.Default.(int)
	// operation.CompletedValidator is a validator for the "completed" field. It is called by the builders before save.
	operation.CompletedValidator = operationDescCompleted.Validators[0].(func(int) error)
	// operationDescFailed is the schema descriptor for failed field.
	operationDescFailed := operationFields[6].Descriptor()
	// operation.DefaultFailed holds the default value on creation for the failed field.
	operation.DefaultFailed = operationDescFailed.Default.(int)
	// operation.FailedValidator is a validator for the "failed" field. It is called by the builders before save.
	operation.FailedValidator = operationDescFailed.Validators[0].(func(int) error)
	// operationDescCreatedAt is the schema descriptor for created_at field.
	operationDescCreatedAt := operationFields[9].Descriptor()
	// operation.DefaultCreatedAt holds the default value on creation for the created_at field.
	operation.DefaultCreatedAt = operationDescCreatedAt.Default.(func() time.Time)
	// operationDescUpdatedAt is the schema descriptor for updated_at field.
	operationDescUpdatedAt := operationFields[10].Descriptor()
	// operation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	operation.DefaultUpdatedAt = operationDescUpdatedAt.Default.(func() time.Time)
	// operation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	operation.UpdateDefaultUpdatedAt = operationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// operationDescID is the schema descriptor for id field.
	operationDescID := operationFields[0].Descriptor()
	// operation.DefaultID holds the default value on creation for the id field.
	operation.DefaultID = operationDescID.Default.(func() uuid.UUID)
	sourcefileFields := schema.SourceFile{}.Fields()
	_ = sourcefileFields
	// sourcefileDescSourcePath is the schema descriptor for source_path field.
	sourcefileDescSourcePath := sourcefileFields[2].Descriptor()
	// sourcefile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	sourcefile.SourcePathValidator = sourcefileDescSourcePath.Validators[0].(func(string) error)
	// sourcefileDescFilename is the schema descriptor for filename field.
	sourcefileDescFilename := sourcefileFields[3].Descriptor()
	// sourcefile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	sourcefile.FilenameValidator = sourcefileDescFilename.Validators[0].(func(string) error)
	// sourcefileDescFileSize is the schema descriptor for file_size field.
	sourcefileDescFileSize := sourcefileFields[5].Descriptor()
	// sourcefile.DefaultFileSize holds the default value on creation for the file_size field.
	sourcefile.DefaultFileSize = sourcefileDescFileSize.Default.(int64)
	// sourcefile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	sourcefile.FileSizeValidator = sourcefileDescFileSize.Validators[0].(func(int64) error)
	// sourcefileDescStatus is the schema descriptor for status field.
	sourcefileDescStatus := sourcefileFields[7].Descriptor()
	// sourcefile.DefaultStatus holds the default value on creation for the status field.
	sourcefile.DefaultStatus = sourcefileDescStatus.Default.(string)
	// sourcefile.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	sourcefile.StatusValidator = sourcefileDescStatus.Validators[0].(func(string) error)
	// sourcefileDescOrigin is the schema descriptor for origin field.
	sourcefileDescOrigin := sourcefileFields[8].Descriptor()
	// sourcefile.OriginValidator is a validator for the "origin" field. It is called by the builders before save.
	sourcefile.OriginValidator = sourcefileDescOrigin.Validators[0].(func(string) error)
	// sourcefileDescUploadedAt is the schema descriptor for uploaded_at field.
	sourcefileDescUploadedAt := sourcefileFields[11].Descriptor()
	// sourcefile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	sourcefile.DefaultUploadedAt = sourcefileDescUploadedAt.Default.(func() time.Time)
	// sourcefileDescID is the schema descriptor for id field.
	sourcefileDescID := sourcefileFields[0].Descriptor()
	// sourcefile.DefaultID holds the default value on creation for the id field.
	sourcefile.DefaultID = sourcefileDescID.Default.(func() uuid.UUID)
}
