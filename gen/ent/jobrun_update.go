// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tablelift/tablelift/gen/ent/extractiontask"
	"github.com/tablelift/tablelift/gen/ent/job"
	"github.com/tablelift/tablelift/gen/ent/jobrun"
	"github.com/tablelift/tablelift/gen/ent/predicate"
	"github.com/tablelift/tablelift/gen/ent/sourcefile"
)

// JobRunUpdate is the builder for updating JobRun entities.
type JobRunUpdate struct {
	config
	hooks    []Hook
	mutation *JobRunMutation
}

// Where appends a list predicates to the JobRunUpdate builder.
func (_u *JobRunUpdate) Where(ps ...predicate.JobRun) *JobRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *JobRunUpdate) SetJobID(v uuid.UUID) *JobRunUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobRunUpdate) SetNillableJobID(v *uuid.UUID) *JobRunUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobRunUpdate) SetStatus(v string) *JobRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobRunUpdate) SetNillableStatus(v *string) *JobRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfigStep sets the "config_step" field.
func (_u *JobRunUpdate) SetConfigStep(v string) *JobRunUpdate {
	_u.mutation.SetConfigStep(v)
	return _u
}

// SetNillableConfigStep sets the "config_step" field if the given value is not nil.
func (_u *JobRunUpdate) SetNillableConfigStep(v *string) *JobRunUpdate {
	if v != nil {
		_u.SetConfigStep(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *JobRunUpdate) SetVersion(v int32) *JobRunUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *JobRunUpdate) SetNillableVersion(v *int32) *JobRunUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *JobRunUpdate) AddVersion(v int32) *JobRunUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetFields sets the "fields" field.
func (_u *JobRunUpdate) SetFields(v json.RawMessage) *JobRunUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *JobRunUpdate) AppendFields(v json.RawMessage) *JobRunUpdate {
	_u.mutation.AppendFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *JobRunUpdate) ClearFields() *JobRunUpdate {
	_u.mutation.ClearFields()
	return _u
}

// SetTaskDefs sets the "task_defs" field.
func (_u *JobRunUpdate) SetTaskDefs(v json.RawMessage) *JobRunUpdate {
	_u.mutation.SetTaskDefs(v)
	return _u
}

// AppendTaskDefs appends value to the "task_defs" field.
func (_u *JobRunUpdate) AppendTaskDefs(v json.RawMessage) *JobRunUpdate {
	_u.mutation.AppendTaskDefs(v)
	return _u
}

// ClearTaskDefs clears the value of the "task_defs" field.
func (_u *JobRunUpdate) ClearTaskDefs() *JobRunUpdate {
	_u.mutation.ClearTaskDefs()
	return _u
}

// SetFieldsChecksum sets the "fields_checksum" field.
func (_u *JobRunUpdate) SetFieldsChecksum(v string) *JobRunUpdate {
	_u.mutation.SetFieldsChecksum(v)
	return _u
}

// SetNillableFieldsChecksum sets the "fields_checksum" field if the given value is not nil.
func (_u *JobRunUpdate) SetNillableFieldsChecksum(v *string) *JobRunUpdate {
	if v != nil {
		_u.SetFieldsChecksum(*v)
	}
	return _u
}

// ClearFieldsChecksum clears the value of the "fields_checksum" field.
func (_u *JobRunUpdate) ClearFieldsChecksum() *JobRunUpdate {
	_u.mutation.ClearFieldsChecksum()
	return _u
}

// SetClonedFromID sets the "cloned_from_id" field.
func (_u *JobRunUpdate) SetClonedFromID(v uuid.UUID) *JobRunUpdate {
	_u.mutation.SetClonedFromID(v)
	return _u
}

// SetNillableClonedFromID sets the "cloned_from_id" field if the given value is not nil.
func (_u *JobRunUpdate) SetNillableClonedFromID(v *uuid.UUID) *JobRunUpdate {
	if v != nil {
		_u.SetClonedFromID(*v)
	}
	return _u
}

// ClearClonedFromID clears the value of the "cloned_from_id" field.
func (_u *JobRunUpdate) ClearClonedFromID() *JobRunUpdate {
	_u.mutation.ClearClonedFromID()
	return _u
}

// SetTasksTotal sets the "tasks_total" field.
func (_u *JobRunUpdate) SetTasksTotal(v int32) *JobRunUpdate {
	_u.mutation.ResetTasksTotal()
	_u.mutation.SetTasksTotal(v)
	return _u
}

// SetNillableTasksTotal sets the "tasks_total" field if the given value is not nil.
func (_u *JobRunUpdate) SetNillableTasksTotal(v *int32) *JobRunUpdate {
	if v != nil {
		_u.SetTasksTotal(*v)
	}
	return _u
}

// AddTasksTotal adds value to the "tasks_total" field.
func (_u *JobRunUpdate) AddTasksTotal(v int32) *JobRunUpdate {
	_u.mutation.AddTasksTotal(v)
	return _u
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_u *JobRunUpdate) SetTasksCompleted(v int32) *JobRunUpdate {
	_u.mutation.ResetTasksCompleted()
	_u.mutation.SetTasksCompleted(v)
	return _u
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_u *JobRunUpdate) SetNillableTasksCompleted(v *int32) *JobRunUpdate {
	if v != nil {
		_u.SetTasksCompleted(*v)
	}
	return _u
}

// AddTasksCompleted adds value to the "tasks_completed" field.
func (_u *JobRunUpdate) AddTasksCompleted(v int32) *JobRunUpdate {
	_u.mutation.AddTasksCompleted(v)
	return _u
}

// SetTasksFailed sets the "tasks_failed" field.
func (_u *JobRunUpdate) SetTasksFailed(v int32) *JobRunUpdate {
	_u.mutation.ResetTasksFailed()
	_u.mutation.SetTasksFailed(v)
	return _u
}

// SetNillableTasksFailed sets the "tasks_failed" field if the given value is not nil.
func (_u *JobRunUpdate) SetNillableTasksFailed(v *int32) *JobRunUpdate {
	if v != nil {
		_u.SetTasksFailed(*v)
	}
	return _u
}

// AddTasksFailed adds value to the "tasks_failed" field.
func (_u *JobRunUpdate) AddTasksFailed(v int32) *JobRunUpdate {
	_u.mutation.AddTasksFailed(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobRunUpdate) SetCompletedAt(v time.Time) *JobRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobRunUpdate) SetNillableCompletedAt(v *time.Time) *JobRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobRunUpdate) ClearCompletedAt() *JobRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *JobRunUpdate) SetJob(v *Job) *JobRunUpdate {
	return _u.SetJobID(v.ID)
}

// AddFileIDs adds the "files" edge to the SourceFile entity by IDs.
func (_u *JobRunUpdate) AddFileIDs(ids ...uuid.UUID) *JobRunUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the SourceFile entity.
func (_u *JobRunUpdate) AddFiles(v ...*SourceFile) *JobRunUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the ExtractionTask entity by IDs.
func (_u *JobRunUpdate) AddTaskIDs(ids ...uuid.UUID) *JobRunUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the ExtractionTask entity.
func (_u *JobRunUpdate) AddTasks(v ...*ExtractionTask) *JobRunUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the JobRunMutation object of the builder.
func (_u *JobRunUpdate) Mutation() *JobRunMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *JobRunUpdate) ClearJob() *JobRunUpdate {
	_u.mutation.ClearJob()
	return _u
}

// ClearFiles clears all "files" edges to the SourceFile entity.
func (_u *JobRunUpdate) ClearFiles() *JobRunUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to SourceFile entities by IDs.
func (_u *JobRunUpdate) RemoveFileIDs(ids ...uuid.UUID) *JobRunUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to SourceFile entities.
func (_u *JobRunUpdate) RemoveFiles(v ...*SourceFile) *JobRunUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the ExtractionTask entity.
func (_u *JobRunUpdate) ClearTasks() *JobRunUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to ExtractionTask entities by IDs.
func (_u *JobRunUpdate) RemoveTaskIDs(ids ...uuid.UUID) *JobRunUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to ExtractionTask entities.
func (_u *JobRunUpdate) RemoveTasks(v ...*ExtractionTask) *JobRunUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := jobrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobRun.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfigStep(); ok {
		if err := jobrun.ConfigStepValidator(v); err != nil {
			return &ValidationError{Name: "config_step", err: fmt.Errorf(`ent: validator failed for field "JobRun.config_step": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TasksTotal(); ok {
		if err := jobrun.TasksTotalValidator(v); err != nil {
			return &ValidationError{Name: "tasks_total", err: fmt.Errorf(`ent: validator failed for field "JobRun.tasks_total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TasksCompleted(); ok {
		if err := jobrun.TasksCompletedValidator(v); err != nil {
			return &ValidationError{Name: "tasks_completed", err: fmt.Errorf(`ent: validator failed for field "JobRun.tasks_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TasksFailed(); ok {
		if err := jobrun.TasksFailedValidator(v); err != nil {
			return &ValidationError{Name: "tasks_failed", err: fmt.Errorf(`ent: validator failed for field "JobRun.tasks_failed": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobRun.job"`)
	}
	return nil
}

func (_u *JobRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobrun.Table, jobrun.Columns, sqlgraph.NewFieldSpec(jobrun.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(jobrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfigStep(); ok {
		_spec.SetField(jobrun.FieldConfigStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(jobrun.FieldVersion, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(jobrun.FieldVersion, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(jobrun.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobrun.FieldFields, value)
		})
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(jobrun.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.TaskDefs(); ok {
		_spec.SetField(jobrun.FieldTaskDefs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTaskDefs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobrun.FieldTaskDefs, value)
		})
	}
	if _u.mutation.TaskDefsCleared() {
		_spec.ClearField(jobrun.FieldTaskDefs, field.TypeJSON)
	}
	if value, ok := _u.mutation.FieldsChecksum(); ok {
		_spec.SetField(jobrun.FieldFieldsChecksum, field.TypeString, value)
	}
	if _u.mutation.FieldsChecksumCleared() {
		_spec.ClearField(jobrun.FieldFieldsChecksum, field.TypeString)
	}
	if value, ok := _u.mutation.ClonedFromID(); ok {
		_spec.SetField(jobrun.FieldClonedFromID, field.TypeUUID, value)
	}
	if _u.mutation.ClonedFromIDCleared() {
		_spec.ClearField(jobrun.FieldClonedFromID, field.TypeUUID)
	}
	if value, ok := _u.mutation.TasksTotal(); ok {
		_spec.SetField(jobrun.FieldTasksTotal, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.AddedTasksTotal(); ok {
		_spec.AddField(jobrun.FieldTasksTotal, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.TasksCompleted(); ok {
		_spec.SetField(jobrun.FieldTasksCompleted, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.AddedTasksCompleted(); ok {
		_spec.AddField(jobrun.FieldTasksCompleted, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.TasksFailed(); ok {
		_spec.SetField(jobrun.FieldTasksFailed, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.AddedTasksFailed(); ok {
		_spec.AddField(jobrun.FieldTasksFailed, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(jobrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(jobrun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobrun.JobTable,
			Columns: []string{jobrun.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobrun.JobTable,
			Columns: []string{jobrun.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobrun.FilesTable,
			Columns: []string{jobrun.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcefile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobrun.FilesTable,
			Columns: []string{jobrun.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobrun.FilesTable,
			Columns: []string{jobrun.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobrun.TasksTable,
			Columns: []string{jobrun.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractiontask.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobrun.TasksTable,
			Columns: []string{jobrun.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractiontask.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobrun.TasksTable,
			Columns: []string{jobrun.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractiontask.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobRunUpdateOne is the builder for updating a single JobRun entity.
type JobRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobRunMutation
}

// SetJobID sets the "job_id" field.
func (_u *JobRunUpdateOne) SetJobID(v uuid.UUID) *JobRunUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobRunUpdateOne) SetNillableJobID(v *uuid.UUID) *JobRunUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobRunUpdateOne) SetStatus(v string) *JobRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobRunUpdateOne) SetNillableStatus(v *string) *JobRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfigStep sets the "config_step" field.
func (_u *JobRunUpdateOne) SetConfigStep(v string) *JobRunUpdateOne {
	_u.mutation.SetConfigStep(v)
	return _u
}

// SetNillableConfigStep sets the "config_step" field if the given value is not nil.
func (_u *JobRunUpdateOne) SetNillableConfigStep(v *string) *JobRunUpdateOne {
	if v != nil {
		_u.SetConfigStep(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *JobRunUpdateOne) SetVersion(v int32) *JobRunUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *JobRunUpdateOne) SetNillableVersion(v *int32) *JobRunUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *JobRunUpdateOne) AddVersion(v int32) *JobRunUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetFields sets the "fields" field.
func (_u *JobRunUpdateOne) SetFields(v json.RawMessage) *JobRunUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *JobRunUpdateOne) AppendFields(v json.RawMessage) *JobRunUpdateOne {
	_u.mutation.AppendFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *JobRunUpdateOne) ClearFields() *JobRunUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// SetTaskDefs sets the "task_defs" field.
func (_u *JobRunUpdateOne) SetTaskDefs(v json.RawMessage) *JobRunUpdateOne {
	_u.mutation.SetTaskDefs(v)
	return _u
}

// AppendTaskDefs appends value to the "task_defs" field.
func (_u *JobRunUpdateOne) AppendTaskDefs(v json.RawMessage) *JobRunUpdateOne {
	_u.mutation.AppendTaskDefs(v)
	return _u
}

// ClearTaskDefs clears the value of the "task_defs" field.
func (_u *JobRunUpdateOne) ClearTaskDefs() *JobRunUpdateOne {
	_u.mutation.ClearTaskDefs()
	return _u
}

// SetFieldsChecksum sets the "fields_checksum" field.
func (_u *JobRunUpdateOne) SetFieldsChecksum(v string) *JobRunUpdateOne {
	_u.mutation.SetFieldsChecksum(v)
	return _u
}

// SetNillableFieldsChecksum sets the "fields_checksum" field if the given value is not nil.
func (_u *JobRunUpdateOne) SetNillableFieldsChecksum(v *string) *JobRunUpdateOne {
	if v != nil {
		_u.SetFieldsChecksum(*v)
	}
	return _u
}

// ClearFieldsChecksum clears the value of the "fields_checksum" field.
func (_u *JobRunUpdateOne) ClearFieldsChecksum() *JobRunUpdateOne {
	_u.mutation.ClearFieldsChecksum()
	return _u
}

// SetClonedFromID sets the "cloned_from_id" field.
func (_u *JobRunUpdateOne) SetClonedFromID(v uuid.UUID) *JobRunUpdateOne {
	_u.mutation.SetClonedFromID(v)
	return _u
}

// SetNillableClonedFromID sets the "cloned_from_id" field if the given value is not nil.
func (_u *JobRunUpdateOne) SetNillableClonedFromID(v *uuid.UUID) *JobRunUpdateOne {
	if v != nil {
		_u.SetClonedFromID(*v)
	}
	return _u
}

// ClearClonedFromID clears the value of the "cloned_from_id" field.
func (_u *JobRunUpdateOne) ClearClonedFromID() *JobRunUpdateOne {
	_u.mutation.ClearClonedFromID()
	return _u
}

// SetTasksTotal sets the "tasks_total" field.
func (_u *JobRunUpdateOne) SetTasksTotal(v int32) *JobRunUpdateOne {
	_u.mutation.ResetTasksTotal()
	_u.mutation.SetTasksTotal(v)
	return _u
}

// SetNillableTasksTotal sets the "tasks_total" field if the given value is not nil.
func (_u *JobRunUpdateOne) SetNillableTasksTotal(v *int32) *JobRunUpdateOne {
	if v != nil {
		_u.SetTasksTotal(*v)
	}
	return _u
}

// AddTasksTotal adds value to the "tasks_total" field.
func (_u *JobRunUpdateOne) AddTasksTotal(v int32) *JobRunUpdateOne {
	_u.mutation.AddTasksTotal(v)
	return _u
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_u *JobRunUpdateOne) SetTasksCompleted(v int32) *JobRunUpdateOne {
	_u.mutation.ResetTasksCompleted()
	_u.mutation.SetTasksCompleted(v)
	return _u
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_u *JobRunUpdateOne) SetNillableTasksCompleted(v *int32) *JobRunUpdateOne {
	if v != nil {
		_u.SetTasksCompleted(*v)
	}
	return _u
}

// AddTasksCompleted adds value to the "tasks_completed" field.
func (_u *JobRunUpdateOne) AddTasksCompleted(v int32) *JobRunUpdateOne {
	_u.mutation.AddTasksCompleted(v)
	return _u
}

// SetTasksFailed sets the "tasks_failed" field.
func (_u *JobRunUpdateOne) SetTasksFailed(v int32) *JobRunUpdateOne {
	_u.mutation.ResetTasksFailed()
	_u.mutation.SetTasksFailed(v)
	return _u
}

// SetNillableTasksFailed sets the "tasks_failed" field if the given value is not nil.
func (_u *JobRunUpdateOne) SetNillableTasksFailed(v *int32) *JobRunUpdateOne {
	if v != nil {
		_u.SetTasksFailed(*v)
	}
	return _u
}

// AddTasksFailed adds value to the "tasks_failed" field.
func (_u *JobRunUpdateOne) AddTasksFailed(v int32) *JobRunUpdateOne {
	_u.mutation.AddTasksFailed(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobRunUpdateOne) SetCompletedAt(v time.Time) *JobRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobRunUpdateOne) SetNillableCompletedAt(v *time.Time) *JobRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobRunUpdateOne) ClearCompletedAt() *JobRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *JobRunUpdateOne) SetJob(v *Job) *JobRunUpdateOne {
	return _u.SetJobID(v.ID)
}

// AddFileIDs adds the "files" edge to the SourceFile entity by IDs.
func (_u *JobRunUpdateOne) AddFileIDs(ids ...uuid.UUID) *JobRunUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the SourceFile entity.
func (_u *JobRunUpdateOne) AddFiles(v ...*SourceFile) *JobRunUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the ExtractionTask entity by IDs.
func (_u *JobRunUpdateOne) AddTaskIDs(ids ...uuid.UUID) *JobRunUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the ExtractionTask entity.
func (_u *JobRunUpdateOne) AddTasks(v ...*ExtractionTask) *JobRunUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the JobRunMutation object of the builder.
func (_u *JobRunUpdateOne) Mutation() *JobRunMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *JobRunUpdateOne) ClearJob() *JobRunUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// ClearFiles clears all "files" edges to the SourceFile entity.
func (_u *JobRunUpdateOne) ClearFiles() *JobRunUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to SourceFile entities by IDs.
func (_u *JobRunUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *JobRunUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to SourceFile entities.
func (_u *JobRunUpdateOne) RemoveFiles(v ...*SourceFile) *JobRunUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the ExtractionTask entity.
func (_u *JobRunUpdateOne) ClearTasks() *JobRunUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to ExtractionTask entities by IDs.
func (_u *JobRunUpdateOne) RemoveTaskIDs(ids ...uuid.UUID) *JobRunUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to ExtractionTask entities.
func (_u *JobRunUpdateOne) RemoveTasks(v ...*ExtractionTask) *JobRunUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Where appends a list predicates to the JobRunUpdate builder.
func (_u *JobRunUpdateOne) Where(ps ...predicate.JobRun) *JobRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobRunUpdateOne) Select(field string, fields ...string) *JobRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobRun entity.
func (_u *JobRunUpdateOne) Save(ctx context.Context) (*JobRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobRunUpdateOne) SaveX(ctx context.Context) *JobRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := jobrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobRun.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfigStep(); ok {
		if err := jobrun.ConfigStepValidator(v); err != nil {
			return &ValidationError{Name: "config_step", err: fmt.Errorf(`ent: validator failed for field "JobRun.config_step": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TasksTotal(); ok {
		if err := jobrun.TasksTotalValidator(v); err != nil {
			return &ValidationError{Name: "tasks_total", err: fmt.Errorf(`ent: validator failed for field "JobRun.tasks_total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TasksCompleted(); ok {
		if err := jobrun.TasksCompletedValidator(v); err != nil {
			return &ValidationError{Name: "tasks_completed", err: fmt.Errorf(`ent: validator failed for field "JobRun.tasks_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TasksFailed(); ok {
		if err := jobrun.TasksFailedValidator(v); err != nil {
			return &ValidationError{Name: "tasks_failed", err: fmt.Errorf(`ent: validator failed for field "JobRun.tasks_failed": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobRun.job"`)
	}
	return nil
}

func (_u *JobRunUpdateOne) sqlSave(ctx context.Context) (_node *JobRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobrun.Table, jobrun.Columns, sqlgraph.NewFieldSpec(jobrun.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobrun.FieldID)
		for _, f := range fields {
			if !jobrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(jobrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfigStep(); ok {
		_spec.SetField(jobrun.FieldConfigStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(jobrun.FieldVersion, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(jobrun.FieldVersion, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(jobrun.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobrun.FieldFields, value)
		})
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(jobrun.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.TaskDefs(); ok {
		_spec.SetField(jobrun.FieldTaskDefs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTaskDefs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobrun.FieldTaskDefs, value)
		})
	}
	if _u.mutation.TaskDefsCleared() {
		_spec.ClearField(jobrun.FieldTaskDefs, field.TypeJSON)
	}
	if value, ok := _u.mutation.FieldsChecksum(); ok {
		_spec.SetField(jobrun.FieldFieldsChecksum, field.TypeString, value)
	}
	if _u.mutation.FieldsChecksumCleared() {
		_spec.ClearField(jobrun.FieldFieldsChecksum, field.TypeString)
	}
	if value, ok := _u.mutation.ClonedFromID(); ok {
		_spec.SetField(jobrun.FieldClonedFromID, field.TypeUUID, value)
	}
	if _u.mutation.ClonedFromIDCleared() {
		_spec.ClearField(jobrun.FieldClonedFromID, field.TypeUUID)
	}
	if value, ok := _u.mutation.TasksTotal(); ok {
		_spec.SetField(jobrun.FieldTasksTotal, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.AddedTasksTotal(); ok {
		_spec.AddField(jobrun.FieldTasksTotal, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.TasksCompleted(); ok {
		_spec.SetField(jobrun.FieldTasksCompleted, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.AddedTasksCompleted(); ok {
		_spec.AddField(jobrun.FieldTasksCompleted, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.TasksFailed(); ok {
		_spec.SetField(jobrun.FieldTasksFailed, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.AddedTasksFailed(); ok {
		_spec.AddField(jobrun.FieldTasksFailed, field.TypeInt32, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(jobrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(jobrun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobrun.JobTable,
			Columns: []string{jobrun.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobrun.JobTable,
			Columns: []string{jobrun.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobrun.FilesTable,
			Columns: []string{jobrun.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcefile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobrun.FilesTable,
			Columns: []string{jobrun.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobrun.FilesTable,
			Columns: []string{jobrun.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobrun.TasksTable,
			Columns: []string{jobrun.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractiontask.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobrun.TasksTable,
			Columns: []string{jobrun.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractiontask.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobrun.TasksTable,
			Columns: []string{jobrun.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractiontask.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &JobRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
