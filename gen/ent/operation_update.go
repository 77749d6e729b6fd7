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
	"github.com/tablelift/tablelift/gen/ent/operation"
	"github.com/tablelift/tablelift/gen/ent/predicate"
)

// OperationUpdate is the builder for updating Operation entities.
type OperationUpdate struct {
	config
	hooks    []Hook
	mutation *OperationMutation
}

// Where appends a list predicates to the OperationUpdate builder.
func (_u *OperationUpdate) Where(ps ...predicate.Operation) *OperationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *OperationUpdate) SetKind(v string) *OperationUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableKind(v *string) *OperationUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *OperationUpdate) SetRunID(v uuid.UUID) *OperationUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableRunID(v *uuid.UUID) *OperationUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *OperationUpdate) SetState(v string) *OperationUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableState(v *string) *OperationUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *OperationUpdate) SetTotal(v int) *OperationUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableTotal(v *int) *OperationUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *OperationUpdate) AddTotal(v int) *OperationUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *OperationUpdate) SetCompleted(v int) *OperationUpdate {
	_u.mutation.ResetCompleted()
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableCompleted(v *int) *OperationUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// AddCompleted adds value to the "completed" field.
func (_u *OperationUpdate) AddCompleted(v int) *OperationUpdate {
	_u.mutation.AddCompleted(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *OperationUpdate) SetFailed(v int) *OperationUpdate {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableFailed(v *int) *OperationUpdate {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *OperationUpdate) AddFailed(v int) *OperationUpdate {
	_u.mutation.AddFailed(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *OperationUpdate) SetResult(v json.RawMessage) *OperationUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *OperationUpdate) AppendResult(v json.RawMessage) *OperationUpdate {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *OperationUpdate) ClearResult() *OperationUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *OperationUpdate) SetErrorMessage(v string) *OperationUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableErrorMessage(v *string) *OperationUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *OperationUpdate) ClearErrorMessage() *OperationUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OperationUpdate) SetUpdatedAt(v time.Time) *OperationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OperationMutation object of the builder.
func (_u *OperationUpdate) Mutation() *OperationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OperationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OperationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OperationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OperationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OperationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := operation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OperationUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := operation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Operation.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := operation.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Operation.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Total(); ok {
		if err := operation.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "Operation.total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Completed(); ok {
		if err := operation.CompletedValidator(v); err != nil {
			return &ValidationError{Name: "completed", err: fmt.Errorf(`ent: validator failed for field "Operation.completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Failed(); ok {
		if err := operation.FailedValidator(v); err != nil {
			return &ValidationError{Name: "failed", err: fmt.Errorf(`ent: validator failed for field "Operation.failed": %w`, err)}
		}
	}
	return nil
}

func (_u *OperationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(operation.Table, operation.Columns, sqlgraph.NewFieldSpec(operation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(operation.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(operation.FieldRunID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(operation.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(operation.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(operation.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(operation.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompleted(); ok {
		_spec.AddField(operation.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(operation.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(operation.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(operation.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, operation.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(operation.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(operation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(operation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(operation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{operation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OperationUpdateOne is the builder for updating a single Operation entity.
type OperationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OperationMutation
}

// SetKind sets the "kind" field.
func (_u *OperationUpdateOne) SetKind(v string) *OperationUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableKind(v *string) *OperationUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *OperationUpdateOne) SetRunID(v uuid.UUID) *OperationUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableRunID(v *uuid.UUID) *OperationUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *OperationUpdateOne) SetState(v string) *OperationUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableState(v *string) *OperationUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *OperationUpdateOne) SetTotal(v int) *OperationUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableTotal(v *int) *OperationUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *OperationUpdateOne) AddTotal(v int) *OperationUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *OperationUpdateOne) SetCompleted(v int) *OperationUpdateOne {
	_u.mutation.ResetCompleted()
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableCompleted(v *int) *OperationUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// AddCompleted adds value to the "completed" field.
func (_u *OperationUpdateOne) AddCompleted(v int) *OperationUpdateOne {
	_u.mutation.AddCompleted(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *OperationUpdateOne) SetFailed(v int) *OperationUpdateOne {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableFailed(v *int) *OperationUpdateOne {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *OperationUpdateOne) AddFailed(v int) *OperationUpdateOne {
	_u.mutation.AddFailed(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *OperationUpdateOne) SetResult(v json.RawMessage) *OperationUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *OperationUpdateOne) AppendResult(v json.RawMessage) *OperationUpdateOne {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *OperationUpdateOne) ClearResult() *OperationUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *OperationUpdateOne) SetErrorMessage(v string) *OperationUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableErrorMessage(v *string) *OperationUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *OperationUpdateOne) ClearErrorMessage() *OperationUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OperationUpdateOne) SetUpdatedAt(v time.Time) *OperationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OperationMutation object of the builder.
func (_u *OperationUpdateOne) Mutation() *OperationMutation {
	return _u.mutation
}

// Where appends a list predicates to the OperationUpdate builder.
func (_u *OperationUpdateOne) Where(ps ...predicate.Operation) *OperationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OperationUpdateOne) Select(field string, fields ...string) *OperationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Operation entity.
func (_u *OperationUpdateOne) Save(ctx context.Context) (*Operation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OperationUpdateOne) SaveX(ctx context.Context) *Operation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OperationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OperationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OperationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := operation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OperationUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := operation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Operation.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := operation.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Operation.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Total(); ok {
		if err := operation.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "Operation.total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Completed(); ok {
		if err := operation.CompletedValidator(v); err != nil {
			return &ValidationError{Name: "completed", err: fmt.Errorf(`ent: validator failed for field "Operation.completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Failed(); ok {
		if err := operation.FailedValidator(v); err != nil {
			return &ValidationError{Name: "failed", err: fmt.Errorf(`ent: validator failed for field "Operation.failed": %w`, err)}
		}
	}
	return nil
}

func (_u *OperationUpdateOne) sqlSave(ctx context.Context) (_node *Operation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(operation.Table, operation.Columns, sqlgraph.NewFieldSpec(operation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Operation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, operation.FieldID)
		for _, f := range fields {
			if !operation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != operation.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(operation.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(operation.FieldRunID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(operation.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(operation.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(operation.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(operation.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompleted(); ok {
		_spec.AddField(operation.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(operation.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(operation.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(operation.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, operation.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(operation.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(operation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(operation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(operation.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Operation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{operation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
