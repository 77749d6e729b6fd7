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
	"github.com/tablelift/tablelift/gen/ent/job"
	"github.com/tablelift/tablelift/gen/ent/jobrun"
	"github.com/tablelift/tablelift/gen/ent/sourcefile"
)

// JobRunCreate is the builder for creating a JobRun entity.
type JobRunCreate struct {
	config
	mutation *JobRunMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *JobRunCreate) SetJobID(v uuid.UUID) *JobRunCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobRunCreate) SetStatus(v string) *JobRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobRunCreate) SetNillableStatus(v *string) *JobRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConfigStep sets the "config_step" field.
func (_c *JobRunCreate) SetConfigStep(v string) *JobRunCreate {
	_c.mutation.SetConfigStep(v)
	return _c
}

// SetNillableConfigStep sets the "config_step" field if the given value is not nil.
func (_c *JobRunCreate) SetNillableConfigStep(v *string) *JobRunCreate {
	if v != nil {
		_c.SetConfigStep(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *JobRunCreate) SetVersion(v int32) *JobRunCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *JobRunCreate) SetNillableVersion(v *int32) *JobRunCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetFields sets the "fields" field.
func (_c *JobRunCreate) SetFields(v json.RawMessage) *JobRunCreate {
	_c.mutation.SetFields(v)
	return _c
}

// SetTaskDefs sets the "task_defs" field.
func (_c *JobRunCreate) SetTaskDefs(v json.RawMessage) *JobRunCreate {
	_c.mutation.SetTaskDefs(v)
	return _c
}

// SetFieldsChecksum sets the "fields_checksum" field.
func (_c *JobRunCreate) SetFieldsChecksum(v string) *JobRunCreate {
	_c.mutation.SetFieldsChecksum(v)
	return _c
}

// SetNillableFieldsChecksum sets the "fields_checksum" field if the given value is not nil.
func (_c *JobRunCreate) SetNillableFieldsChecksum(v *string) *JobRunCreate {
	if v != nil {
		_c.SetFieldsChecksum(*v)
	}
	return _c
}

// SetClonedFromID sets the "cloned_from_id" field.
func (_c *JobRunCreate) SetClonedFromID(v uuid.UUID) *JobRunCreate {
	_c.mutation.SetClonedFromID(v)
	return _c
}

// SetNillableClonedFromID sets the "cloned_from_id" field if the given value is not nil.
func (_c *JobRunCreate) SetNillableClonedFromID(v *uuid.UUID) *JobRunCreate {
	if v != nil {
		_c.SetClonedFromID(*v)
	}
	return _c
}

// SetTasksTotal sets the "tasks_total" field.
func (_c *JobRunCreate) SetTasksTotal(v int32) *JobRunCreate {
	_c.mutation.SetTasksTotal(v)
	return _c
}

// SetNillableTasksTotal sets the "tasks_total" field if the given value is not nil.
func (_c *JobRunCreate) SetNillableTasksTotal(v *int32) *JobRunCreate {
	if v != nil {
		_c.SetTasksTotal(*v)
	}
	return _c
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_c *JobRunCreate) SetTasksCompleted(v int32) *JobRunCreate {
	_c.mutation.SetTasksCompleted(v)
	return _c
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_c *JobRunCreate) SetNillableTasksCompleted(v *int32) *JobRunCreate {
	if v != nil {
		_c.SetTasksCompleted(*v)
	}
	return _c
}

// SetTasksFailed sets the "tasks_failed" field.
func (_c *JobRunCreate) SetTasksFailed(v int32) *JobRunCreate {
	_c.mutation.SetTasksFailed(v)
	return _c
}

// SetNillableTasksFailed sets the "tasks_failed" field if the given value is not nil.
func (_c *JobRunCreate) SetNillableTasksFailed(v *int32) *JobRunCreate {
	if v != nil {
		_c.SetTasksFailed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobRunCreate) SetCreatedAt(v time.Time) *JobRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobRunCreate) SetNillableCreatedAt(v *time.Time) *JobRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *JobRunCreate) SetCompletedAt(v time.Time) *JobRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *JobRunCreate) SetNillableCompletedAt(v *time.Time) *JobRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobRunCreate) SetID(v uuid.UUID) *JobRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *JobRunCreate) SetNillableID(v *uuid.UUID) *JobRunCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *JobRunCreate) SetJob(v *Job) *JobRunCreate {
	return _c.SetJobID(v.ID)
}

// AddFileIDs adds the "files" edge to the SourceFile entity by IDs.
func (_c *JobRunCreate) AddFileIDs(ids ...uuid.UUID) *JobRunCreate {
	_c.mutation.AddFileIDs(ids...)
	return _c
}

// AddFiles adds the "files" edges to the SourceFile entity.
func (_c *JobRunCreate) AddFiles(v ...*SourceFile) *JobRunCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the ExtractionTask entity by IDs.
func (_c *JobRunCreate) AddTaskIDs(ids ...uuid.UUID) *JobRunCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the ExtractionTask entity.
func (_c *JobRunCreate) AddTasks(v ...*ExtractionTask) *JobRunCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// Mutation returns the JobRunMutation object of the builder.
func (_c *JobRunCreate) Mutation() *JobRunMutation {
	return _c.mutation
}

// Save creates the JobRun in the database.
func (_c *JobRunCreate) Save(ctx context.Context) (*JobRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobRunCreate) SaveX(ctx context.Context) *JobRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := jobrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ConfigStep(); !ok {
		v := jobrun.DefaultConfigStep
		_c.mutation.SetConfigStep(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := jobrun.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.TasksTotal(); !ok {
		v := jobrun.DefaultTasksTotal
		_c.mutation.SetTasksTotal(v)
	}
	if _, ok := _c.mutation.TasksCompleted(); !ok {
		v := jobrun.DefaultTasksCompleted
		_c.mutation.SetTasksCompleted(v)
	}
	if _, ok := _c.mutation.TasksFailed(); !ok {
		v := jobrun.DefaultTasksFailed
		_c.mutation.SetTasksFailed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := jobrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := jobrun.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobRunCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobRun.job_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "JobRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := jobrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfigStep(); !ok {
		return &ValidationError{Name: "config_step", err: errors.New(`ent: missing required field "JobRun.config_step"`)}
	}
	if v, ok := _c.mutation.ConfigStep(); ok {
		if err := jobrun.ConfigStepValidator(v); err != nil {
			return &ValidationError{Name: "config_step", err: fmt.Errorf(`ent: validator failed for field "JobRun.config_step": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "JobRun.version"`)}
	}
	if _, ok := _c.mutation.TasksTotal(); !ok {
		return &ValidationError{Name: "tasks_total", err: errors.New(`ent: missing required field "JobRun.tasks_total"`)}
	}
	if v, ok := _c.mutation.TasksTotal(); ok {
		if err := jobrun.TasksTotalValidator(v); err != nil {
			return &ValidationError{Name: "tasks_total", err: fmt.Errorf(`ent: validator failed for field "JobRun.tasks_total": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TasksCompleted(); !ok {
		return &ValidationError{Name: "tasks_completed", err: errors.New(`ent: missing required field "JobRun.tasks_completed"`)}
	}
	if v, ok := _c.mutation.TasksCompleted(); ok {
		if err := jobrun.TasksCompletedValidator(v); err != nil {
			return &ValidationError{Name: "tasks_completed", err: fmt.Errorf(`ent: validator failed for field "JobRun.tasks_completed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TasksFailed(); !ok {
		return &ValidationError{Name: "tasks_failed", err: errors.New(`ent: missing required field "JobRun.tasks_failed"`)}
	}
	if v, ok := _c.mutation.TasksFailed(); ok {
		if err := jobrun.TasksFailedValidator(v); err != nil {
			return &ValidationError{Name: "tasks_failed", err: fmt.Errorf(`ent: validator failed for field "JobRun.tasks_failed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "JobRun.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobRun.job"`)}
	}
	return nil
}

func (_c *JobRunCreate) sqlSave(ctx context.Context) (*JobRun, error) {
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

func (_c *JobRunCreate) createSpec() (*JobRun, *sqlgraph.CreateSpec) {
	var (
		_node = &JobRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobrun.Table, sqlgraph.NewFieldSpec(jobrun.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(jobrun.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ConfigStep(); ok {
		_spec.SetField(jobrun.FieldConfigStep, field.TypeString, value)
		_node.ConfigStep = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(jobrun.FieldVersion, field.TypeInt32, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.GetFields(); ok {
		_spec.SetField(jobrun.FieldFields, field.TypeJSON, value)
		_node.Fields = value
	}
	if value, ok := _c.mutation.TaskDefs(); ok {
		_spec.SetField(jobrun.FieldTaskDefs, field.TypeJSON, value)
		_node.TaskDefs = value
	}
	if value, ok := _c.mutation.FieldsChecksum(); ok {
		_spec.SetField(jobrun.FieldFieldsChecksum, field.TypeString, value)
		_node.FieldsChecksum = value
	}
	if value, ok := _c.mutation.ClonedFromID(); ok {
		_spec.SetField(jobrun.FieldClonedFromID, field.TypeUUID, value)
		_node.ClonedFromID = &value
	}
	if value, ok := _c.mutation.TasksTotal(); ok {
		_spec.SetField(jobrun.FieldTasksTotal, field.TypeInt32, value)
		_node.TasksTotal = value
	}
	if value, ok := _c.mutation.TasksCompleted(); ok {
		_spec.SetField(jobrun.FieldTasksCompleted, field.TypeInt32, value)
		_node.TasksCompleted = value
	}
	if value, ok := _c.mutation.TasksFailed(); ok {
		_spec.SetField(jobrun.FieldTasksFailed, field.TypeInt32, value)
		_node.TasksFailed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(jobrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(jobrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobRunCreateBulk is the builder for creating many JobRun entities in bulk.
type JobRunCreateBulk struct {
	config
	err      error
	builders []*JobRunCreate
}

// Save creates the JobRun entities in the database.
func (_c *JobRunCreateBulk) Save(ctx context.Context) ([]*JobRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobRunMutation)
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
func (_c *JobRunCreateBulk) SaveX(ctx context.Context) []*JobRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
