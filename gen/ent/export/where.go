// Code generated by ent, DO NOT EDIT.

package export

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tablelift/tablelift/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldRunID, v))
}

// OperationID applies equality check predicate on the "operation_id" field. It's identical to OperationIDEQ.
func OperationID(v uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldOperationID, v))
}

// Destination applies equality check predicate on the "destination" field. It's identical to DestinationEQ.
func Destination(v string) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldDestination, v))
}

// FileKind applies equality check predicate on the "file_kind" field. It's identical to FileKindEQ.
func FileKind(v string) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldFileKind, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldState, v))
}

// ArtifactPath applies equality check predicate on the "artifact_path" field. It's identical to ArtifactPathEQ.
func ArtifactPath(v string) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldArtifactPath, v))
}

// ExternalRef applies equality check predicate on the "external_ref" field. It's identical to ExternalRefEQ.
func ExternalRef(v string) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldExternalRef, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldLTE(FieldRunID, v))
}

// OperationIDEQ applies the EQ predicate on the "operation_id" field.
func OperationIDEQ(v uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldOperationID, v))
}

// OperationIDNEQ applies the NEQ predicate on the "operation_id" field.
func OperationIDNEQ(v uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldNEQ(FieldOperationID, v))
}

// OperationIDIn applies the In predicate on the "operation_id" field.
func OperationIDIn(vs ...uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldIn(FieldOperationID, vs...))
}

// OperationIDNotIn applies the NotIn predicate on the "operation_id" field.
func OperationIDNotIn(vs ...uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldNotIn(FieldOperationID, vs...))
}

// OperationIDGT applies the GT predicate on the "operation_id" field.
func OperationIDGT(v uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldGT(FieldOperationID, v))
}

// OperationIDGTE applies the GTE predicate on the "operation_id" field.
func OperationIDGTE(v uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldGTE(FieldOperationID, v))
}

// OperationIDLT applies the LT predicate on the "operation_id" field.
func OperationIDLT(v uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldLT(FieldOperationID, v))
}

// OperationIDLTE applies the LTE predicate on the "operation_id" field.
func OperationIDLTE(v uuid.UUID) predicate.Export {
	return predicate.Export(sql.FieldLTE(FieldOperationID, v))
}

// DestinationEQ applies the EQ predicate on the "destination" field.
func DestinationEQ(v string) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldDestination, v))
}

// DestinationNEQ applies the NEQ predicate on the "destination" field.
func DestinationNEQ(v string) predicate.Export {
	return predicate.Export(sql.FieldNEQ(FieldDestination, v))
}

// DestinationIn applies the In predicate on the "destination" field.
func DestinationIn(vs ...string) predicate.Export {
	return predicate.Export(sql.FieldIn(FieldDestination, vs...))
}

// DestinationNotIn applies the NotIn predicate on the "destination" field.
func DestinationNotIn(vs ...string) predicate.Export {
	return predicate.Export(sql.FieldNotIn(FieldDestination, vs...))
}

// DestinationGT applies the GT predicate on the "destination" field.
func DestinationGT(v string) predicate.Export {
	return predicate.Export(sql.FieldGT(FieldDestination, v))
}

// DestinationGTE applies the GTE predicate on the "destination" field.
func DestinationGTE(v string) predicate.Export {
	return predicate.Export(sql.FieldGTE(FieldDestination, v))
}

// DestinationLT applies the LT predicate on the "destination" field.
func DestinationLT(v string) predicate.Export {
	return predicate.Export(sql.FieldLT(FieldDestination, v))
}

// DestinationLTE applies the LTE predicate on the "destination" field.
func DestinationLTE(v string) predicate.Export {
	return predicate.Export(sql.FieldLTE(FieldDestination, v))
}

// DestinationContains applies the Contains predicate on the "destination" field.
func DestinationContains(v string) predicate.Export {
	return predicate.Export(sql.FieldContains(FieldDestination, v))
}

// DestinationHasPrefix applies the HasPrefix predicate on the "destination" field.
func DestinationHasPrefix(v string) predicate.Export {
	return predicate.Export(sql.FieldHasPrefix(FieldDestination, v))
}

// DestinationHasSuffix applies the HasSuffix predicate on the "destination" field.
func DestinationHasSuffix(v string) predicate.Export {
	return predicate.Export(sql.FieldHasSuffix(FieldDestination, v))
}

// DestinationEqualFold applies the EqualFold predicate on the "destination" field.
func DestinationEqualFold(v string) predicate.Export {
	return predicate.Export(sql.FieldEqualFold(FieldDestination, v))
}

// DestinationContainsFold applies the ContainsFold predicate on the "destination" field.
func DestinationContainsFold(v string) predicate.Export {
	return predicate.Export(sql.FieldContainsFold(FieldDestination, v))
}

// FileKindEQ applies the EQ predicate on the "file_kind" field.
func FileKindEQ(v string) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldFileKind, v))
}

// FileKindNEQ applies the NEQ predicate on the "file_kind" field.
func FileKindNEQ(v string) predicate.Export {
	return predicate.Export(sql.FieldNEQ(FieldFileKind, v))
}

// FileKindIn applies the In predicate on the "file_kind" field.
func FileKindIn(vs ...string) predicate.Export {
	return predicate.Export(sql.FieldIn(FieldFileKind, vs...))
}

// FileKindNotIn applies the NotIn predicate on the "file_kind" field.
func FileKindNotIn(vs ...string) predicate.Export {
	return predicate.Export(sql.FieldNotIn(FieldFileKind, vs...))
}

// FileKindGT applies the GT predicate on the "file_kind" field.
func FileKindGT(v string) predicate.Export {
	return predicate.Export(sql.FieldGT(FieldFileKind, v))
}

// FileKindGTE applies the GTE predicate on the "file_kind" field.
func FileKindGTE(v string) predicate.Export {
	return predicate.Export(sql.FieldGTE(FieldFileKind, v))
}

// FileKindLT applies the LT predicate on the "file_kind" field.
func FileKindLT(v string) predicate.Export {
	return predicate.Export(sql.FieldLT(FieldFileKind, v))
}

// FileKindLTE applies the LTE predicate on the "file_kind" field.
func FileKindLTE(v string) predicate.Export {
	return predicate.Export(sql.FieldLTE(FieldFileKind, v))
}

// FileKindContains applies the Contains predicate on the "file_kind" field.
func FileKindContains(v string) predicate.Export {
	return predicate.Export(sql.FieldContains(FieldFileKind, v))
}

// FileKindHasPrefix applies the HasPrefix predicate on the "file_kind" field.
func FileKindHasPrefix(v string) predicate.Export {
	return predicate.Export(sql.FieldHasPrefix(FieldFileKind, v))
}

// FileKindHasSuffix applies the HasSuffix predicate on the "file_kind" field.
func FileKindHasSuffix(v string) predicate.Export {
	return predicate.Export(sql.FieldHasSuffix(FieldFileKind, v))
}

// FileKindEqualFold applies the EqualFold predicate on the "file_kind" field.
func FileKindEqualFold(v string) predicate.Export {
	return predicate.Export(sql.FieldEqualFold(FieldFileKind, v))
}

// FileKindContainsFold applies the ContainsFold predicate on the "file_kind" field.
func FileKindContainsFold(v string) predicate.Export {
	return predicate.Export(sql.FieldContainsFold(FieldFileKind, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.Export {
	return predicate.Export(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.Export {
	return predicate.Export(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.Export {
	return predicate.Export(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.Export {
	return predicate.Export(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.Export {
	return predicate.Export(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.Export {
	return predicate.Export(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.Export {
	return predicate.Export(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.Export {
	return predicate.Export(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.Export {
	return predicate.Export(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.Export {
	return predicate.Export(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.Export {
	return predicate.Export(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.Export {
	return predicate.Export(sql.FieldContainsFold(FieldState, v))
}

// ArtifactPathEQ applies the EQ predicate on the "artifact_path" field.
func ArtifactPathEQ(v string) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldArtifactPath, v))
}

// ArtifactPathNEQ applies the NEQ predicate on the "artifact_path" field.
func ArtifactPathNEQ(v string) predicate.Export {
	return predicate.Export(sql.FieldNEQ(FieldArtifactPath, v))
}

// ArtifactPathIn applies the In predicate on the "artifact_path" field.
func ArtifactPathIn(vs ...string) predicate.Export {
	return predicate.Export(sql.FieldIn(FieldArtifactPath, vs...))
}

// ArtifactPathNotIn applies the NotIn predicate on the "artifact_path" field.
func ArtifactPathNotIn(vs ...string) predicate.Export {
	return predicate.Export(sql.FieldNotIn(FieldArtifactPath, vs...))
}

// ArtifactPathGT applies the GT predicate on the "artifact_path" field.
func ArtifactPathGT(v string) predicate.Export {
	return predicate.Export(sql.FieldGT(FieldArtifactPath, v))
}

// ArtifactPathGTE applies the GTE predicate on the "artifact_path" field.
func ArtifactPathGTE(v string) predicate.Export {
	return predicate.Export(sql.FieldGTE(FieldArtifactPath, v))
}

// ArtifactPathLT applies the LT predicate on the "artifact_path" field.
func ArtifactPathLT(v string) predicate.Export {
	return predicate.Export(sql.FieldLT(FieldArtifactPath, v))
}

// ArtifactPathLTE applies the LTE predicate on the "artifact_path" field.
func ArtifactPathLTE(v string) predicate.Export {
	return predicate.Export(sql.FieldLTE(FieldArtifactPath, v))
}

// ArtifactPathContains applies the Contains predicate on the "artifact_path" field.
func ArtifactPathContains(v string) predicate.Export {
	return predicate.Export(sql.FieldContains(FieldArtifactPath, v))
}

// ArtifactPathHasPrefix applies the HasPrefix predicate on the "artifact_path" field.
func ArtifactPathHasPrefix(v string) predicate.Export {
	return predicate.Export(sql.FieldHasPrefix(FieldArtifactPath, v))
}

// ArtifactPathHasSuffix applies the HasSuffix predicate on the "artifact_path" field.
func ArtifactPathHasSuffix(v string) predicate.Export {
	return predicate.Export(sql.FieldHasSuffix(FieldArtifactPath, v))
}

// ArtifactPathIsNil applies the IsNil predicate on the "artifact_path" field.
func ArtifactPathIsNil() predicate.Export {
	return predicate.Export(sql.FieldIsNull(FieldArtifactPath))
}

// ArtifactPathNotNil applies the NotNil predicate on the "artifact_path" field.
func ArtifactPathNotNil() predicate.Export {
	return predicate.Export(sql.FieldNotNull(FieldArtifactPath))
}

// ArtifactPathEqualFold applies the EqualFold predicate on the "artifact_path" field.
func ArtifactPathEqualFold(v string) predicate.Export {
	return predicate.Export(sql.FieldEqualFold(FieldArtifactPath, v))
}

// ArtifactPathContainsFold applies the ContainsFold predicate on the "artifact_path" field.
func ArtifactPathContainsFold(v string) predicate.Export {
	return predicate.Export(sql.FieldContainsFold(FieldArtifactPath, v))
}

// ExternalRefEQ applies the EQ predicate on the "external_ref" field.
func ExternalRefEQ(v string) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldExternalRef, v))
}

// ExternalRefNEQ applies the NEQ predicate on the "external_ref" field.
func ExternalRefNEQ(v string) predicate.Export {
	return predicate.Export(sql.FieldNEQ(FieldExternalRef, v))
}

// ExternalRefIn applies the In predicate on the "external_ref" field.
func ExternalRefIn(vs ...string) predicate.Export {
	return predicate.Export(sql.FieldIn(FieldExternalRef, vs...))
}

// ExternalRefNotIn applies the NotIn predicate on the "external_ref" field.
func ExternalRefNotIn(vs ...string) predicate.Export {
	return predicate.Export(sql.FieldNotIn(FieldExternalRef, vs...))
}

// ExternalRefGT applies the GT predicate on the "external_ref" field.
func ExternalRefGT(v string) predicate.Export {
	return predicate.Export(sql.FieldGT(FieldExternalRef, v))
}

// ExternalRefGTE applies the GTE predicate on the "external_ref" field.
func ExternalRefGTE(v string) predicate.Export {
	return predicate.Export(sql.FieldGTE(FieldExternalRef, v))
}

// ExternalRefLT applies the LT predicate on the "external_ref" field.
func ExternalRefLT(v string) predicate.Export {
	return predicate.Export(sql.FieldLT(FieldExternalRef, v))
}

// ExternalRefLTE applies the LTE predicate on the "external_ref" field.
func ExternalRefLTE(v string) predicate.Export {
	return predicate.Export(sql.FieldLTE(FieldExternalRef, v))
}

// ExternalRefContains applies the Contains predicate on the "external_ref" field.
func ExternalRefContains(v string) predicate.Export {
	return predicate.Export(sql.FieldContains(FieldExternalRef, v))
}

// ExternalRefHasPrefix applies the HasPrefix predicate on the "external_ref" field.
func ExternalRefHasPrefix(v string) predicate.Export {
	return predicate.Export(sql.FieldHasPrefix(FieldExternalRef, v))
}

// ExternalRefHasSuffix applies the HasSuffix predicate on the "external_ref" field.
func ExternalRefHasSuffix(v string) predicate.Export {
	return predicate.Export(sql.FieldHasSuffix(FieldExternalRef, v))
}

// ExternalRefIsNil applies the IsNil predicate on the "external_ref" field.
func ExternalRefIsNil() predicate.Export {
	return predicate.Export(sql.FieldIsNull(FieldExternalRef))
}

// ExternalRefNotNil applies the NotNil predicate on the "external_ref" field.
func ExternalRefNotNil() predicate.Export {
	return predicate.Export(sql.FieldNotNull(FieldExternalRef))
}

// ExternalRefEqualFold applies the EqualFold predicate on the "external_ref" field.
func ExternalRefEqualFold(v string) predicate.Export {
	return predicate.Export(sql.FieldEqualFold(FieldExternalRef, v))
}

// ExternalRefContainsFold applies the ContainsFold predicate on the "external_ref" field.
func ExternalRefContainsFold(v string) predicate.Export {
	return predicate.Export(sql.FieldContainsFold(FieldExternalRef, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Export {
	return predicate.Export(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Export {
	return predicate.Export(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Export {
	return predicate.Export(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Export {
	return predicate.Export(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Export {
	return predicate.Export(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Export {
	return predicate.Export(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Export {
	return predicate.Export(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Export {
	return predicate.Export(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Export {
	return predicate.Export(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Export {
	return predicate.Export(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Export {
	return predicate.Export(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Export {
	return predicate.Export(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Export {
	return predicate.Export(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Export {
	return predicate.Export(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Export {
	return predicate.Export(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Export {
	return predicate.Export(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Export {
	return predicate.Export(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Export {
	return predicate.Export(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Export {
	return predicate.Export(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Export {
	return predicate.Export(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Export {
	return predicate.Export(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Export {
	return predicate.Export(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Export) predicate.Export {
	return predicate.Export(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Export) predicate.Export {
	return predicate.Export(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Export) predicate.Export {
	return predicate.Export(sql.NotPredicates(p))
}
