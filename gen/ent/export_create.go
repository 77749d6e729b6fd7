// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tablelift/tablelift/gen/ent/export"
)

// ExportCreate is the builder for creating a Export entity.
type ExportCreate struct {
	config
	mutation *ExportMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *ExportCreate) SetRunID(v uuid.UUID) *ExportCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetOperationID sets the "operation_id" field.
func (_c *ExportCreate) SetOperationID(v uuid.UUID) *ExportCreate {
	_c.mutation.SetOperationID(v)
	return _c
}

// SetDestination sets the "destination" field.
func (_c *ExportCreate) SetDestination(v string) *ExportCreate {
	_c.mutation.SetDestination(v)
	return _c
}

// SetFileKind sets the "file_kind" field.
func (_c *ExportCreate) SetFileKind(v string) *ExportCreate {
	_c.mutation.SetFileKind(v)
	return _c
}

// SetState sets the "state" field.
func (_c *ExportCreate) SetState(v string) *ExportCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ExportCreate) SetNillableState(v *string) *ExportCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetArtifactPath sets the "artifact_path" field.
func (_c *ExportCreate) SetArtifactPath(v string) *ExportCreate {
	_c.mutation.SetArtifactPath(v)
	return _c
}

// SetNillableArtifactPath sets the "artifact_path" field if the given value is not nil.
func (_c *ExportCreate) SetNillableArtifactPath(v *string) *ExportCreate {
	if v != nil {
		_c.SetArtifactPath(*v)
	}
	return _c
}

// SetExternalRef sets the "external_ref" field.
func (_c *ExportCreate) SetExternalRef(v string) *ExportCreate {
	_c.mutation.SetExternalRef(v)
	return _c
}

// SetNillableExternalRef sets the "external_ref" field if the given value is not nil.
func (_c *ExportCreate) SetNillableExternalRef(v *string) *ExportCreate {
	if v != nil {
		_c.SetExternalRef(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExportCreate) SetErrorMessage(v string) *ExportCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExportCreate) SetNillableErrorMessage(v *string) *ExportCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExportCreate) SetCreatedAt(v time.Time) *ExportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExportCreate) SetNillableCreatedAt(v *time.Time) *ExportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExportCreate) SetID(v uuid.UUID) *ExportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExportCreate) SetNillableID(v *uuid.UUID) *ExportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ExportMutation object of the builder.
func (_c *ExportCreate) Mutation() *ExportMutation {
	return _c.mutation
}

// Save creates the Export in the database.
func (_c *ExportCreate) Save(ctx context.Context) (*Export, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExportCreate) SaveX(ctx context.Context) *Export {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExportCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := export.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := export.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := export.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExportCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "Export.run_id"`)}
	}
	if _, ok := _c.mutation.OperationID(); !ok {
		return &ValidationError{Name: "operation_id", err: errors.New(`ent: missing required field "Export.operation_id"`)}
	}
	if _, ok := _c.mutation.Destination(); !ok {
		return &ValidationError{Name: "destination", err: errors.New(`ent: missing required field "Export.destination"`)}
	}
	if v, ok := _c.mutation.Destination(); ok {
		if err := export.DestinationValidator(v); err != nil {
			return &ValidationError{Name: "destination", err: fmt.Errorf(`ent: validator failed for field "Export.destination": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileKind(); !ok {
		return &ValidationError{Name: "file_kind", err: errors.New(`ent: missing required field "Export.file_kind"`)}
	}
	if v, ok := _c.mutation.FileKind(); ok {
		if err := export.FileKindValidator(v); err != nil {
			return &ValidationError{Name: "file_kind", err: fmt.Errorf(`ent: validator failed for field "Export.file_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Export.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := export.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Export.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Export.created_at"`)}
	}
	return nil
}

func (_c *ExportCreate) sqlSave(ctx context.Context) (*Export, error) {
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

func (_c *ExportCreate) createSpec() (*Export, *sqlgraph.CreateSpec) {
	var (
		_node = &Export{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(export.Table, sqlgraph.NewFieldSpec(export.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(export.FieldRunID, field.TypeUUID, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.OperationID(); ok {
		_spec.SetField(export.FieldOperationID, field.TypeUUID, value)
		_node.OperationID = value
	}
	if value, ok := _c.mutation.Destination(); ok {
		_spec.SetField(export.FieldDestination, field.TypeString, value)
		_node.Destination = value
	}
	if value, ok := _c.mutation.FileKind(); ok {
		_spec.SetField(export.FieldFileKind, field.TypeString, value)
		_node.FileKind = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(export.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.ArtifactPath(); ok {
		_spec.SetField(export.FieldArtifactPath, field.TypeString, value)
		_node.ArtifactPath = value
	}
	if value, ok := _c.mutation.ExternalRef(); ok {
		_spec.SetField(export.FieldExternalRef, field.TypeString, value)
		_node.ExternalRef = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(export.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(export.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ExportCreateBulk is the builder for creating many Export entities in bulk.
type ExportCreateBulk struct {
	config
	err      error
	builders []*ExportCreate
}

// Save creates the Export entities in the database.
func (_c *ExportCreateBulk) Save(ctx context.Context) ([]*Export, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Export, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExportMutation)
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
func (_c *ExportCreateBulk) SaveX(ctx context.Context) []*Export {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
