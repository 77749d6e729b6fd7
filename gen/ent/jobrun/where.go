// Code generated by ent, DO NOT EDIT.

package jobrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/tablelift/tablelift/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldJobID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldStatus, v))
}

// ConfigStep applies equality check predicate on the "config_step" field. It's identical to ConfigStepEQ.
func ConfigStep(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldConfigStep, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldVersion, v))
}

// FieldsChecksum applies equality check predicate on the "fields_checksum" field. It's identical to FieldsChecksumEQ.
func FieldsChecksum(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldFieldsChecksum, v))
}

// ClonedFromID applies equality check predicate on the "cloned_from_id" field. It's identical to ClonedFromIDEQ.
func ClonedFromID(v uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldClonedFromID, v))
}

// TasksTotal applies equality check predicate on the "tasks_total" field. It's identical to TasksTotalEQ.
func TasksTotal(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldTasksTotal, v))
}

// TasksCompleted applies equality check predicate on the "tasks_completed" field. It's identical to TasksCompletedEQ.
func TasksCompleted(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldTasksCompleted, v))
}

// TasksFailed applies equality check predicate on the "tasks_failed" field. It's identical to TasksFailedEQ.
func TasksFailed(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldTasksFailed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldCompletedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldNotIn(FieldJobID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.JobRun {
	return predicate.JobRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.JobRun {
	return predicate.JobRun(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldContainsFold(FieldStatus, v))
}

// ConfigStepEQ applies the EQ predicate on the "config_step" field.
func ConfigStepEQ(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldConfigStep, v))
}

// ConfigStepNEQ applies the NEQ predicate on the "config_step" field.
func ConfigStepNEQ(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldNEQ(FieldConfigStep, v))
}

// ConfigStepIn applies the In predicate on the "config_step" field.
func ConfigStepIn(vs ...string) predicate.JobRun {
	return predicate.JobRun(sql.FieldIn(FieldConfigStep, vs...))
}

// ConfigStepNotIn applies the NotIn predicate on the "config_step" field.
func ConfigStepNotIn(vs ...string) predicate.JobRun {
	return predicate.JobRun(sql.FieldNotIn(FieldConfigStep, vs...))
}

// ConfigStepGT applies the GT predicate on the "config_step" field.
func ConfigStepGT(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldGT(FieldConfigStep, v))
}

// ConfigStepGTE applies the GTE predicate on the "config_step" field.
func ConfigStepGTE(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldGTE(FieldConfigStep, v))
}

// ConfigStepLT applies the LT predicate on the "config_step" field.
func ConfigStepLT(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldLT(FieldConfigStep, v))
}

// ConfigStepLTE applies the LTE predicate on the "config_step" field.
func ConfigStepLTE(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldLTE(FieldConfigStep, v))
}

// ConfigStepContains applies the Contains predicate on the "config_step" field.
func ConfigStepContains(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldContains(FieldConfigStep, v))
}

// ConfigStepHasPrefix applies the HasPrefix predicate on the "config_step" field.
func ConfigStepHasPrefix(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldHasPrefix(FieldConfigStep, v))
}

// ConfigStepHasSuffix applies the HasSuffix predicate on the "config_step" field.
func ConfigStepHasSuffix(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldHasSuffix(FieldConfigStep, v))
}

// ConfigStepEqualFold applies the EqualFold predicate on the "config_step" field.
func ConfigStepEqualFold(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldEqualFold(FieldConfigStep, v))
}

// ConfigStepContainsFold applies the ContainsFold predicate on the "config_step" field.
func ConfigStepContainsFold(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldContainsFold(FieldConfigStep, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldLTE(FieldVersion, v))
}

// FieldsIsNil applies the IsNil predicate on the "fields" field.
func FieldsIsNil() predicate.JobRun {
	return predicate.JobRun(sql.FieldIsNull(FieldFields))
}

// FieldsNotNil applies the NotNil predicate on the "fields" field.
func FieldsNotNil() predicate.JobRun {
	return predicate.JobRun(sql.FieldNotNull(FieldFields))
}

// TaskDefsIsNil applies the IsNil predicate on the "task_defs" field.
func TaskDefsIsNil() predicate.JobRun {
	return predicate.JobRun(sql.FieldIsNull(FieldTaskDefs))
}

// TaskDefsNotNil applies the NotNil predicate on the "task_defs" field.
func TaskDefsNotNil() predicate.JobRun {
	return predicate.JobRun(sql.FieldNotNull(FieldTaskDefs))
}

// FieldsChecksumEQ applies the EQ predicate on the "fields_checksum" field.
func FieldsChecksumEQ(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldFieldsChecksum, v))
}

// FieldsChecksumNEQ applies the NEQ predicate on the "fields_checksum" field.
func FieldsChecksumNEQ(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldNEQ(FieldFieldsChecksum, v))
}

// FieldsChecksumIn applies the In predicate on the "fields_checksum" field.
func FieldsChecksumIn(vs ...string) predicate.JobRun {
	return predicate.JobRun(sql.FieldIn(FieldFieldsChecksum, vs...))
}

// FieldsChecksumNotIn applies the NotIn predicate on the "fields_checksum" field.
func FieldsChecksumNotIn(vs ...string) predicate.JobRun {
	return predicate.JobRun(sql.FieldNotIn(FieldFieldsChecksum, vs...))
}

// FieldsChecksumGT applies the GT predicate on the "fields_checksum" field.
func FieldsChecksumGT(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldGT(FieldFieldsChecksum, v))
}

// FieldsChecksumGTE applies the GTE predicate on the "fields_checksum" field.
func FieldsChecksumGTE(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldGTE(FieldFieldsChecksum, v))
}

// FieldsChecksumLT applies the LT predicate on the "fields_checksum" field.
func FieldsChecksumLT(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldLT(FieldFieldsChecksum, v))
}

// FieldsChecksumLTE applies the LTE predicate on the "fields_checksum" field.
func FieldsChecksumLTE(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldLTE(FieldFieldsChecksum, v))
}

// FieldsChecksumContains applies the Contains predicate on the "fields_checksum" field.
func FieldsChecksumContains(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldContains(FieldFieldsChecksum, v))
}

// FieldsChecksumHasPrefix applies the HasPrefix predicate on the "fields_checksum" field.
func FieldsChecksumHasPrefix(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldHasPrefix(FieldFieldsChecksum, v))
}

// FieldsChecksumHasSuffix applies the HasSuffix predicate on the "fields_checksum" field.
func FieldsChecksumHasSuffix(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldHasSuffix(FieldFieldsChecksum, v))
}

// FieldsChecksumIsNil applies the IsNil predicate on the "fields_checksum" field.
func FieldsChecksumIsNil() predicate.JobRun {
	return predicate.JobRun(sql.FieldIsNull(FieldFieldsChecksum))
}

// FieldsChecksumNotNil applies the NotNil predicate on the "fields_checksum" field.
func FieldsChecksumNotNil() predicate.JobRun {
	return predicate.JobRun(sql.FieldNotNull(FieldFieldsChecksum))
}

// FieldsChecksumEqualFold applies the EqualFold predicate on the "fields_checksum" field.
func FieldsChecksumEqualFold(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldEqualFold(FieldFieldsChecksum, v))
}

// FieldsChecksumContainsFold applies the ContainsFold predicate on the "fields_checksum" field.
func FieldsChecksumContainsFold(v string) predicate.JobRun {
	return predicate.JobRun(sql.FieldContainsFold(FieldFieldsChecksum, v))
}

// ClonedFromIDEQ applies the EQ predicate on the "cloned_from_id" field.
func ClonedFromIDEQ(v uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldClonedFromID, v))
}

// ClonedFromIDNEQ applies the NEQ predicate on the "cloned_from_id" field.
func ClonedFromIDNEQ(v uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldNEQ(FieldClonedFromID, v))
}

// ClonedFromIDIn applies the In predicate on the "cloned_from_id" field.
func ClonedFromIDIn(vs ...uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldIn(FieldClonedFromID, vs...))
}

// ClonedFromIDNotIn applies the NotIn predicate on the "cloned_from_id" field.
func ClonedFromIDNotIn(vs ...uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldNotIn(FieldClonedFromID, vs...))
}

// ClonedFromIDGT applies the GT predicate on the "cloned_from_id" field.
func ClonedFromIDGT(v uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldGT(FieldClonedFromID, v))
}

// ClonedFromIDGTE applies the GTE predicate on the "cloned_from_id" field.
func ClonedFromIDGTE(v uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldGTE(FieldClonedFromID, v))
}

// ClonedFromIDLT applies the LT predicate on the "cloned_from_id" field.
func ClonedFromIDLT(v uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldLT(FieldClonedFromID, v))
}

// ClonedFromIDLTE applies the LTE predicate on the "cloned_from_id" field.
func ClonedFromIDLTE(v uuid.UUID) predicate.JobRun {
	return predicate.JobRun(sql.FieldLTE(FieldClonedFromID, v))
}

// ClonedFromIDIsNil applies the IsNil predicate on the "cloned_from_id" field.
func ClonedFromIDIsNil() predicate.JobRun {
	return predicate.JobRun(sql.FieldIsNull(FieldClonedFromID))
}

// ClonedFromIDNotNil applies the NotNil predicate on the "cloned_from_id" field.
func ClonedFromIDNotNil() predicate.JobRun {
	return predicate.JobRun(sql.FieldNotNull(FieldClonedFromID))
}

// TasksTotalEQ applies the EQ predicate on the "tasks_total" field.
func TasksTotalEQ(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldTasksTotal, v))
}

// TasksTotalNEQ applies the NEQ predicate on the "tasks_total" field.
func TasksTotalNEQ(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldNEQ(FieldTasksTotal, v))
}

// TasksTotalIn applies the In predicate on the "tasks_total" field.
func TasksTotalIn(vs ...int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldIn(FieldTasksTotal, vs...))
}

// TasksTotalNotIn applies the NotIn predicate on the "tasks_total" field.
func TasksTotalNotIn(vs ...int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldNotIn(FieldTasksTotal, vs...))
}

// TasksTotalGT applies the GT predicate on the "tasks_total" field.
func TasksTotalGT(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldGT(FieldTasksTotal, v))
}

// TasksTotalGTE applies the GTE predicate on the "tasks_total" field.
func TasksTotalGTE(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldGTE(FieldTasksTotal, v))
}

// TasksTotalLT applies the LT predicate on the "tasks_total" field.
func TasksTotalLT(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldLT(FieldTasksTotal, v))
}

// TasksTotalLTE applies the LTE predicate on the "tasks_total" field.
func TasksTotalLTE(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldLTE(FieldTasksTotal, v))
}

// TasksCompletedEQ applies the EQ predicate on the "tasks_completed" field.
func TasksCompletedEQ(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldTasksCompleted, v))
}

// TasksCompletedNEQ applies the NEQ predicate on the "tasks_completed" field.
func TasksCompletedNEQ(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldNEQ(FieldTasksCompleted, v))
}

// TasksCompletedIn applies the In predicate on the "tasks_completed" field.
func TasksCompletedIn(vs ...int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldIn(FieldTasksCompleted, vs...))
}

// TasksCompletedNotIn applies the NotIn predicate on the "tasks_completed" field.
func TasksCompletedNotIn(vs ...int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldNotIn(FieldTasksCompleted, vs...))
}

// TasksCompletedGT applies the GT predicate on the "tasks_completed" field.
func TasksCompletedGT(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldGT(FieldTasksCompleted, v))
}

// TasksCompletedGTE applies the GTE predicate on the "tasks_completed" field.
func TasksCompletedGTE(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldGTE(FieldTasksCompleted, v))
}

// TasksCompletedLT applies the LT predicate on the "tasks_completed" field.
func TasksCompletedLT(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldLT(FieldTasksCompleted, v))
}

// TasksCompletedLTE applies the LTE predicate on the "tasks_completed" field.
func TasksCompletedLTE(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldLTE(FieldTasksCompleted, v))
}

// TasksFailedEQ applies the EQ predicate on the "tasks_failed" field.
func TasksFailedEQ(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldTasksFailed, v))
}

// TasksFailedNEQ applies the NEQ predicate on the "tasks_failed" field.
func TasksFailedNEQ(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldNEQ(FieldTasksFailed, v))
}

// TasksFailedIn applies the In predicate on the "tasks_failed" field.
func TasksFailedIn(vs ...int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldIn(FieldTasksFailed, vs...))
}

// TasksFailedNotIn applies the NotIn predicate on the "tasks_failed" field.
func TasksFailedNotIn(vs ...int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldNotIn(FieldTasksFailed, vs...))
}

// TasksFailedGT applies the GT predicate on the "tasks_failed" field.
func TasksFailedGT(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldGT(FieldTasksFailed, v))
}

// TasksFailedGTE applies the GTE predicate on the "tasks_failed" field.
func TasksFailedGTE(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldGTE(FieldTasksFailed, v))
}

// TasksFailedLT applies the LT predicate on the "tasks_failed" field.
func TasksFailedLT(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldLT(FieldTasksFailed, v))
}

// TasksFailedLTE applies the LTE predicate on the "tasks_failed" field.
func TasksFailedLTE(v int32) predicate.JobRun {
	return predicate.JobRun(sql.FieldLTE(FieldTasksFailed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.JobRun {
	return predicate.JobRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.JobRun {
	return predicate.JobRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.JobRun {
	return predicate.JobRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.JobRun {
	return predicate.JobRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.JobRun {
	return predicate.JobRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.JobRun {
	return predicate.JobRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.JobRun {
	return predicate.JobRun(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.JobRun {
	return predicate.JobRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.JobRun {
	return predicate.JobRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.JobRun {
	return predicate.JobRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.JobRun {
	return predicate.JobRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.JobRun {
	return predicate.JobRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.JobRun {
	return predicate.JobRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.JobRun {
	return predicate.JobRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.JobRun {
	return predicate.JobRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.JobRun {
	return predicate.JobRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.JobRun {
	return predicate.JobRun(sql.FieldNotNull(FieldCompletedAt))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.JobRun {
	return predicate.JobRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.JobRun {
	return predicate.JobRun(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFiles applies the HasEdge predicate on the "files" edge.
func HasFiles() predicate.JobRun {
	return predicate.JobRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFilesWith applies the HasEdge predicate on the "files" edge with a given conditions (other predicates).
func HasFilesWith(preds ...predicate.SourceFile) predicate.JobRun {
	return predicate.JobRun(func(s *sql.Selector) {
		step := newFilesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.JobRun {
	return predicate.JobRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.ExtractionTask) predicate.JobRun {
	return predicate.JobRun(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobRun) predicate.JobRun {
	return predicate.JobRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobRun) predicate.JobRun {
	return predicate.JobRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobRun) predicate.JobRun {
	return predicate.JobRun(sql.NotPredicates(p))
}
