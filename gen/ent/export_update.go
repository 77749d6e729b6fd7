// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tablelift/tablelift/gen/ent/export"
	"github.com/tablelift/tablelift/gen/ent/predicate"
)

// ExportUpdate is the builder for updating Export entities.
type ExportUpdate struct {
	config
	hooks    []Hook
	mutation *ExportMutation
}

// Where appends a list predicates to the ExportUpdate builder.
func (_u *ExportUpdate) Where(ps ...predicate.Export) *ExportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ExportUpdate) SetRunID(v uuid.UUID) *ExportUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ExportUpdate) SetNillableRunID(v *uuid.UUID) *ExportUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetOperationID sets the "operation_id" field.
func (_u *ExportUpdate) SetOperationID(v uuid.UUID) *ExportUpdate {
	_u.mutation.SetOperationID(v)
	return _u
}

// SetNillableOperationID sets the "operation_id" field if the given value is not nil.
func (_u *ExportUpdate) SetNillableOperationID(v *uuid.UUID) *ExportUpdate {
	if v != nil {
		_u.SetOperationID(*v)
	}
	return _u
}

// SetDestination sets the "destination" field.
func (_u *ExportUpdate) SetDestination(v string) *ExportUpdate {
	_u.mutation.SetDestination(v)
	return _u
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (_u *ExportUpdate) SetNillableDestination(v *string) *ExportUpdate {
	if v != nil {
		_u.SetDestination(*v)
	}
	return _u
}

// SetFileKind sets the "file_kind" field.
func (_u *ExportUpdate) SetFileKind(v string) *ExportUpdate {
	_u.mutation.SetFileKind(v)
	return _u
}

// SetNillableFileKind sets the "file_kind" field if the given value is not nil.
func (_u *ExportUpdate) SetNillableFileKind(v *string) *ExportUpdate {
	if v != nil {
		_u.SetFileKind(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *ExportUpdate) SetState(v string) *ExportUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ExportUpdate) SetNillableState(v *string) *ExportUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetArtifactPath sets the "artifact_path" field.
func (_u *ExportUpdate) SetArtifactPath(v string) *ExportUpdate {
	_u.mutation.SetArtifactPath(v)
	return _u
}

// SetNillableArtifactPath sets the "artifact_path" field if the given value is not nil.
func (_u *ExportUpdate) SetNillableArtifactPath(v *string) *ExportUpdate {
	if v != nil {
		_u.SetArtifactPath(*v)
	}
	return _u
}

// ClearArtifactPath clears the value of the "artifact_path" field.
func (_u *ExportUpdate) ClearArtifactPath() *ExportUpdate {
	_u.mutation.ClearArtifactPath()
	return _u
}

// SetExternalRef sets the "external_ref" field.
func (_u *ExportUpdate) SetExternalRef(v string) *ExportUpdate {
	_u.mutation.SetExternalRef(v)
	return _u
}

// SetNillableExternalRef sets the "external_ref" field if the given value is not nil.
func (_u *ExportUpdate) SetNillableExternalRef(v *string) *ExportUpdate {
	if v != nil {
		_u.SetExternalRef(*v)
	}
	return _u
}

// ClearExternalRef clears the value of the "external_ref" field.
func (_u *ExportUpdate) ClearExternalRef() *ExportUpdate {
	_u.mutation.ClearExternalRef()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExportUpdate) SetErrorMessage(v string) *ExportUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExportUpdate) SetNillableErrorMessage(v *string) *ExportUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExportUpdate) ClearErrorMessage() *ExportUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the ExportMutation object of the builder.
func (_u *ExportUpdate) Mutation() *ExportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExportUpdate) check() error {
	if v, ok := _u.mutation.Destination(); ok {
		if err := export.DestinationValidator(v); err != nil {
			return &ValidationError{Name: "destination", err: fmt.Errorf(`ent: validator failed for field "Export.destination": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileKind(); ok {
		if err := export.FileKindValidator(v); err != nil {
			return &ValidationError{Name: "file_kind", err: fmt.Errorf(`ent: validator failed for field "Export.file_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := export.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Export.state": %w`, err)}
		}
	}
	return nil
}

func (_u *ExportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(export.Table, export.Columns, sqlgraph.NewFieldSpec(export.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(export.FieldRunID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OperationID(); ok {
		_spec.SetField(export.FieldOperationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Destination(); ok {
		_spec.SetField(export.FieldDestination, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileKind(); ok {
		_spec.SetField(export.FieldFileKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(export.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactPath(); ok {
		_spec.SetField(export.FieldArtifactPath, field.TypeString, value)
	}
	if _u.mutation.ArtifactPathCleared() {
		_spec.ClearField(export.FieldArtifactPath, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalRef(); ok {
		_spec.SetField(export.FieldExternalRef, field.TypeString, value)
	}
	if _u.mutation.ExternalRefCleared() {
		_spec.ClearField(export.FieldExternalRef, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(export.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(export.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{export.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExportUpdateOne is the builder for updating a single Export entity.
type ExportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExportMutation
}

// SetRunID sets the "run_id" field.
func (_u *ExportUpdateOne) SetRunID(v uuid.UUID) *ExportUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ExportUpdateOne) SetNillableRunID(v *uuid.UUID) *ExportUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetOperationID sets the "operation_id" field.
func (_u *ExportUpdateOne) SetOperationID(v uuid.UUID) *ExportUpdateOne {
	_u.mutation.SetOperationID(v)
	return _u
}

// SetNillableOperationID sets the "operation_id" field if the given value is not nil.
func (_u *ExportUpdateOne) SetNillableOperationID(v *uuid.UUID) *ExportUpdateOne {
	if v != nil {
		_u.SetOperationID(*v)
	}
	return _u
}

// SetDestination sets the "destination" field.
func (_u *ExportUpdateOne) SetDestination(v string) *ExportUpdateOne {
	_u.mutation.SetDestination(v)
	return _u
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (_u *ExportUpdateOne) SetNillableDestination(v *string) *ExportUpdateOne {
	if v != nil {
		_u.SetDestination(*v)
	}
	return _u
}

// SetFileKind sets the "file_kind" field.
func (_u *ExportUpdateOne) SetFileKind(v string) *ExportUpdateOne {
	_u.mutation.SetFileKind(v)
	return _u
}

// SetNillableFileKind sets the "file_kind" field if the given value is not nil.
func (_u *ExportUpdateOne) SetNillableFileKind(v *string) *ExportUpdateOne {
	if v != nil {
		_u.SetFileKind(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *ExportUpdateOne) SetState(v string) *ExportUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ExportUpdateOne) SetNillableState(v *string) *ExportUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetArtifactPath sets the "artifact_path" field.
func (_u *ExportUpdateOne) SetArtifactPath(v string) *ExportUpdateOne {
	_u.mutation.SetArtifactPath(v)
	return _u
}

// SetNillableArtifactPath sets the "artifact_path" field if the given value is not nil.
func (_u *ExportUpdateOne) SetNillableArtifactPath(v *string) *ExportUpdateOne {
	if v != nil {
		_u.SetArtifactPath(*v)
	}
	return _u
}

// ClearArtifactPath clears the value of the "artifact_path" field.
func (_u *ExportUpdateOne) ClearArtifactPath() *ExportUpdateOne {
	_u.mutation.ClearArtifactPath()
	return _u
}

// SetExternalRef sets the "external_ref" field.
func (_u *ExportUpdateOne) SetExternalRef(v string) *ExportUpdateOne {
	_u.mutation.SetExternalRef(v)
	return _u
}

// SetNillableExternalRef sets the "external_ref" field if the given value is not nil.
func (_u *ExportUpdateOne) SetNillableExternalRef(v *string) *ExportUpdateOne {
	if v != nil {
		_u.SetExternalRef(*v)
	}
	return _u
}

// ClearExternalRef clears the value of the "external_ref" field.
func (_u *ExportUpdateOne) ClearExternalRef() *ExportUpdateOne {
	_u.mutation.ClearExternalRef()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExportUpdateOne) SetErrorMessage(v string) *ExportUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExportUpdateOne) SetNillableErrorMessage(v *string) *ExportUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExportUpdateOne) ClearErrorMessage() *ExportUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the ExportMutation object of the builder.
func (_u *ExportUpdateOne) Mutation() *ExportMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExportUpdate builder.
func (_u *ExportUpdateOne) Where(ps ...predicate.Export) *ExportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExportUpdateOne) Select(field string, fields ...string) *ExportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Export entity.
func (_u *ExportUpdateOne) Save(ctx context.Context) (*Export, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExportUpdateOne) SaveX(ctx context.Context) *Export {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExportUpdateOne) check() error {
	if v, ok := _u.mutation.Destination(); ok {
		if err := export.DestinationValidator(v); err != nil {
			return &ValidationError{Name: "destination", err: fmt.Errorf(`ent: validator failed for field "Export.destination": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileKind(); ok {
		if err := export.FileKindValidator(v); err != nil {
			return &ValidationError{Name: "file_kind", err: fmt.Errorf(`ent: validator failed for field "Export.file_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := export.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Export.state": %w`, err)}
		}
	}
	return nil
}

func (_u *ExportUpdateOne) sqlSave(ctx context.Context) (_node *Export, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(export.Table, export.Columns, sqlgraph.NewFieldSpec(export.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Export.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, export.FieldID)
		for _, f := range fields {
			if !export.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != export.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(export.FieldRunID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OperationID(); ok {
		_spec.SetField(export.FieldOperationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Destination(); ok {
		_spec.SetField(export.FieldDestination, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileKind(); ok {
		_spec.SetField(export.FieldFileKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(export.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactPath(); ok {
		_spec.SetField(export.FieldArtifactPath, field.TypeString, value)
	}
	if _u.mutation.ArtifactPathCleared() {
		_spec.ClearField(export.FieldArtifactPath, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalRef(); ok {
		_spec.SetField(export.FieldExternalRef, field.TypeString, value)
	}
	if _u.mutation.ExternalRefCleared() {
		_spec.ClearField(export.FieldExternalRef, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(export.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(export.FieldErrorMessage, field.TypeString)
	}
	_node = &Export{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{export.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
