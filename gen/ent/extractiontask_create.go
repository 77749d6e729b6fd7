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
	"github.com/tablelift/tablelift/gen/ent/extractiontask"
	"github.com/tablelift/tablelift/gen/ent/jobrun"
)

// ExtractionTaskCreate is the builder for creating a ExtractionTask entity.
type ExtractionTaskCreate struct {
	config
	mutation *ExtractionTaskMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *ExtractionTaskCreate) SetRunID(v uuid.UUID) *ExtractionTaskCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetFolder sets the "folder" field.
func (_c *ExtractionTaskCreate) SetFolder(v string) *ExtractionTaskCreate {
	_c.mutation.SetFolder(v)
	return _c
}

// SetNillableFolder sets the "folder" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableFolder(v *string) *ExtractionTaskCreate {
	if v != nil {
		_c.SetFolder(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *ExtractionTaskCreate) SetMode(v string) *ExtractionTaskCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetFileIds sets the "file_ids" field.
func (_c *ExtractionTaskCreate) SetFileIds(v []uuid.UUID) *ExtractionTaskCreate {
	_c.mutation.SetFileIds(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionTaskCreate) SetStatus(v string) *ExtractionTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableStatus(v *string) *ExtractionTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *ExtractionTaskCreate) SetResult(v json.RawMessage) *ExtractionTaskCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *ExtractionTaskCreate) SetErrorKind(v string) *ExtractionTaskCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableErrorKind(v *string) *ExtractionTaskCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExtractionTaskCreate) SetErrorMessage(v string) *ExtractionTaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableErrorMessage(v *string) *ExtractionTaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCarriedOver sets the "carried_over" field.
func (_c *ExtractionTaskCreate) SetCarriedOver(v bool) *ExtractionTaskCreate {
	_c.mutation.SetCarriedOver(v)
	return _c
}

// SetNillableCarriedOver sets the "carried_over" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableCarriedOver(v *bool) *ExtractionTaskCreate {
	if v != nil {
		_c.SetCarriedOver(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionTaskCreate) SetCreatedAt(v time.Time) *ExtractionTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableCreatedAt(v *time.Time) *ExtractionTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ExtractionTaskCreate) SetFinishedAt(v time.Time) *ExtractionTaskCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableFinishedAt(v *time.Time) *ExtractionTaskCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionTaskCreate) SetID(v uuid.UUID) *ExtractionTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionTaskCreate) SetNillableID(v *uuid.UUID) *ExtractionTaskCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRun sets the "run" edge to the JobRun entity.
func (_c *ExtractionTaskCreate) SetRun(v *JobRun) *ExtractionTaskCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the ExtractionTaskMutation object of the builder.
func (_c *ExtractionTaskCreate) Mutation() *ExtractionTaskMutation {
	return _c.mutation
}

// Save creates the ExtractionTask in the database.
func (_c *ExtractionTaskCreate) Save(ctx context.Context) (*ExtractionTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionTaskCreate) SaveX(ctx context.Context) *ExtractionTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionTaskCreate) defaults() {
	if _, ok := _c.mutation.Folder(); !ok {
		v := extractiontask.DefaultFolder
		_c.mutation.SetFolder(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := extractiontask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CarriedOver(); !ok {
		v := extractiontask.DefaultCarriedOver
		_c.mutation.SetCarriedOver(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractiontask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractiontask.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionTaskCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ExtractionTask.run_id"`)}
	}
	if _, ok := _c.mutation.Folder(); !ok {
		return &ValidationError{Name: "folder", err: errors.New(`ent: missing required field "ExtractionTask.folder"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "ExtractionTask.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := extractiontask.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractionTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extractiontask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CarriedOver(); !ok {
		return &ValidationError{Name: "carried_over", err: errors.New(`ent: missing required field "ExtractionTask.carried_over"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionTask.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "ExtractionTask.run"`)}
	}
	return nil
}

func (_c *ExtractionTaskCreate) sqlSave(ctx context.Context) (*ExtractionTask, error) {
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

func (_c *ExtractionTaskCreate) createSpec() (*ExtractionTask, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractiontask.Table, sqlgraph.NewFieldSpec(extractiontask.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Folder(); ok {
		_spec.SetField(extractiontask.FieldFolder, field.TypeString, value)
		_node.Folder = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(extractiontask.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.FileIds(); ok {
		_spec.SetField(extractiontask.FieldFileIds, field.TypeJSON, value)
		_node.FileIds = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractiontask.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(extractiontask.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(extractiontask.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(extractiontask.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.CarriedOver(); ok {
		_spec.SetField(extractiontask.FieldCarriedOver, field.TypeBool, value)
		_node.CarriedOver = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractiontask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(extractiontask.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractiontask.RunTable,
			Columns: []string{extractiontask.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobrun.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionTaskCreateBulk is the builder for creating many ExtractionTask entities in bulk.
type ExtractionTaskCreateBulk struct {
	config
	err      error
	builders []*ExtractionTaskCreate
}

// Save creates the ExtractionTask entities in the database.
func (_c *ExtractionTaskCreateBulk) Save(ctx context.Context) ([]*ExtractionTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionTaskMutation)
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
func (_c *ExtractionTaskCreateBulk) SaveX(ctx context.Context) []*ExtractionTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
