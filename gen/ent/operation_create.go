// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tablelift/tablelift/gen/ent/operation"
)

// OperationCreate is the builder for creating a Operation entity.
type OperationCreate struct {
	config
	mutation *OperationMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *OperationCreate) SetKind(v string) *OperationCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *OperationCreate) SetRunID(v uuid.UUID) *OperationCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *OperationCreate) SetState(v string) *OperationCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *OperationCreate) SetNillableState(v *string) *OperationCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *OperationCreate) SetTotal(v int) *OperationCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *OperationCreate) SetNillableTotal(v *int) *OperationCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *OperationCreate) SetCompleted(v int) *OperationCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *OperationCreate) SetNillableCompleted(v *int) *OperationCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetFailed sets the "failed" field.
func (_c *OperationCreate) SetFailed(v int) *OperationCreate {
	_c.mutation.SetFailed(v)
	return _c
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_c *OperationCreate) SetNillableFailed(v *int) *OperationCreate {
	if v != nil {
		_c.SetFailed(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *OperationCreate) SetResult(v json.RawMessage) *OperationCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *OperationCreate) SetErrorMessage(v string) *OperationCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *OperationCreate) SetNillableErrorMessage(v *string) *OperationCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OperationCreate) SetCreatedAt(v time.Time) *OperationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OperationCreate) SetNillableCreatedAt(v *time.Time) *OperationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OperationCreate) SetUpdatedAt(v time.Time) *OperationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OperationCreate) SetNillableUpdatedAt(v *time.Time) *OperationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OperationCreate) SetID(v uuid.UUID) *OperationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OperationCreate) SetNillableID(v *uuid.UUID) *OperationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the OperationMutation object of the builder.
func (_c *OperationCreate) Mutation() *OperationMutation {
	return _c.mutation
}

// Save creates the Operation in the database.
func (_c *OperationCreate) Save(ctx context.Context) (*Operation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OperationCreate) SaveX(ctx context.Context) *Operation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OperationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OperationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OperationCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := operation.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Total(); !ok {
		v := operation.DefaultTotal
		_c.mutation.SetTotal(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := operation.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.Failed(); !ok {
		v := operation.DefaultFailed
		_c.mutation.SetFailed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := operation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := operation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := operation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OperationCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Operation.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := operation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Operation.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "Operation.run_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Operation.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := operation.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Operation.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "Operation.total"`)}
	}
	if v, ok := _c.mutation.Total(); ok {
		if err := operation.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "Operation.total": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "Operation.completed"`)}
	}
	if v, ok := _c.mutation.Completed(); ok {
		if err := operation.CompletedValidator(v); err != nil {
			return &ValidationError{Name: "completed", err: fmt.Errorf(`ent: validator failed for field "Operation.completed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Failed(); !ok {
		return &ValidationError{Name: "failed", err: errors.New(`ent: missing required field "Operation.failed"`)}
	}
	if v, ok := _c.mutation.Failed(); ok {
		if err := operation.FailedValidator(v); err != nil {
			return &ValidationError{Name: "failed", err: fmt.Errorf(`ent: validator failed for field "Operation.failed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Operation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Operation.updated_at"`)}
	}
	return nil
}

func (_c *OperationCreate) sqlSave(ctx context.Context) (*Operation, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OperationCreate) createSpec() (*Operation, *sqlgraph.CreateSpec) {
	var (
		_node = &Operation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(operation.Table, sqlgraph.NewFieldSpec(operation.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(operation.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(operation.FieldRunID, field.TypeUUID, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(operation.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(operation.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(operation.FieldCompleted, field.TypeInt, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.Failed(); ok {
		_spec.SetField(operation.FieldFailed, field.TypeInt, value)
		_node.Failed = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(operation.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(operation.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(operation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(operation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OperationCreateBulk is the builder for creating many Operation entities in bulk.
type OperationCreateBulk struct {
	config
	err      error
	builders []*OperationCreate
}

// Save creates the Operation entities in the database.
func (_c *OperationCreateBulk) Save(ctx context.Context) ([]*Operation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Operation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OperationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OperationCreateBulk) SaveX(ctx context.Context) []*Operation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OperationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OperationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
