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
	"github.com/tablelift/tablelift/gen/ent/jobrun"
	"github.com/tablelift/tablelift/gen/ent/predicate"
)

// ExtractionTaskUpdate is the builder for updating ExtractionTask entities.
type ExtractionTaskUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionTaskMutation
}

// Where appends a list predicates to the ExtractionTaskUpdate builder.
func (_u *ExtractionTaskUpdate) Where(ps ...predicate.ExtractionTask) *ExtractionTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ExtractionTaskUpdate) SetRunID(v uuid.UUID) *ExtractionTaskUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableRunID(v *uuid.UUID) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetFolder sets the "folder" field.
func (_u *ExtractionTaskUpdate) SetFolder(v string) *ExtractionTaskUpdate {
	_u.mutation.SetFolder(v)
	return _u
}

// SetNillableFolder sets the "folder" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableFolder(v *string) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetFolder(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ExtractionTaskUpdate) SetMode(v string) *ExtractionTaskUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableMode(v *string) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetFileIds sets the "file_ids" field.
func (_u *ExtractionTaskUpdate) SetFileIds(v []uuid.UUID) *ExtractionTaskUpdate {
	_u.mutation.SetFileIds(v)
	return _u
}

// AppendFileIds appends value to the "file_ids" field.
func (_u *ExtractionTaskUpdate) AppendFileIds(v []uuid.UUID) *ExtractionTaskUpdate {
	_u.mutation.AppendFileIds(v)
	return _u
}

// ClearFileIds clears the value of the "file_ids" field.
func (_u *ExtractionTaskUpdate) ClearFileIds() *ExtractionTaskUpdate {
	_u.mutation.ClearFileIds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionTaskUpdate) SetStatus(v string) *ExtractionTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableStatus(v *string) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ExtractionTaskUpdate) SetResult(v json.RawMessage) *ExtractionTaskUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *ExtractionTaskUpdate) AppendResult(v json.RawMessage) *ExtractionTaskUpdate {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ExtractionTaskUpdate) ClearResult() *ExtractionTaskUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ExtractionTaskUpdate) SetErrorKind(v string) *ExtractionTaskUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableErrorKind(v *string) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ExtractionTaskUpdate) ClearErrorKind() *ExtractionTaskUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionTaskUpdate) SetErrorMessage(v string) *ExtractionTaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableErrorMessage(v *string) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionTaskUpdate) ClearErrorMessage() *ExtractionTaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCarriedOver sets the "carried_over" field.
func (_u *ExtractionTaskUpdate) SetCarriedOver(v bool) *ExtractionTaskUpdate {
	_u.mutation.SetCarriedOver(v)
	return _u
}

// SetNillableCarriedOver sets the "carried_over" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableCarriedOver(v *bool) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetCarriedOver(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionTaskUpdate) SetFinishedAt(v time.Time) *ExtractionTaskUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionTaskUpdate) SetNillableFinishedAt(v *time.Time) *ExtractionTaskUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionTaskUpdate) ClearFinishedAt() *ExtractionTaskUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetRun sets the "run" edge to the JobRun entity.
func (_u *ExtractionTaskUpdate) SetRun(v *JobRun) *ExtractionTaskUpdate {
	return _u.SetRunID(v.ID)
}

// Mutation returns the ExtractionTaskMutation object of the builder.
func (_u *ExtractionTaskUpdate) Mutation() *ExtractionTaskMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the JobRun entity.
func (_u *ExtractionTaskUpdate) ClearRun() *ExtractionTaskUpdate {
	_u.mutation.ClearRun()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionTaskUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := extractiontask.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractiontask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionTask.run"`)
	}
	return nil
}

func (_u *ExtractionTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractiontask.Table, extractiontask.Columns, sqlgraph.NewFieldSpec(extractiontask.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Folder(); ok {
		_spec.SetField(extractiontask.FieldFolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(extractiontask.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileIds(); ok {
		_spec.SetField(extractiontask.FieldFileIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFileIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractiontask.FieldFileIds, value)
		})
	}
	if _u.mutation.FileIdsCleared() {
		_spec.ClearField(extractiontask.FieldFileIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractiontask.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(extractiontask.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractiontask.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(extractiontask.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(extractiontask.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(extractiontask.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractiontask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractiontask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CarriedOver(); ok {
		_spec.SetField(extractiontask.FieldCarriedOver, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractiontask.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractiontask.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.RunCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractiontask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionTaskUpdateOne is the builder for updating a single ExtractionTask entity.
type ExtractionTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionTaskMutation
}

// SetRunID sets the "run_id" field.
func (_u *ExtractionTaskUpdateOne) SetRunID(v uuid.UUID) *ExtractionTaskUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableRunID(v *uuid.UUID) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetFolder sets the "folder" field.
func (_u *ExtractionTaskUpdateOne) SetFolder(v string) *ExtractionTaskUpdateOne {
	_u.mutation.SetFolder(v)
	return _u
}

// SetNillableFolder sets the "folder" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableFolder(v *string) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetFolder(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ExtractionTaskUpdateOne) SetMode(v string) *ExtractionTaskUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableMode(v *string) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetFileIds sets the "file_ids" field.
func (_u *ExtractionTaskUpdateOne) SetFileIds(v []uuid.UUID) *ExtractionTaskUpdateOne {
	_u.mutation.SetFileIds(v)
	return _u
}

// AppendFileIds appends value to the "file_ids" field.
func (_u *ExtractionTaskUpdateOne) AppendFileIds(v []uuid.UUID) *ExtractionTaskUpdateOne {
	_u.mutation.AppendFileIds(v)
	return _u
}

// ClearFileIds clears the value of the "file_ids" field.
func (_u *ExtractionTaskUpdateOne) ClearFileIds() *ExtractionTaskUpdateOne {
	_u.mutation.ClearFileIds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionTaskUpdateOne) SetStatus(v string) *ExtractionTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableStatus(v *string) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ExtractionTaskUpdateOne) SetResult(v json.RawMessage) *ExtractionTaskUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *ExtractionTaskUpdateOne) AppendResult(v json.RawMessage) *ExtractionTaskUpdateOne {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ExtractionTaskUpdateOne) ClearResult() *ExtractionTaskUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ExtractionTaskUpdateOne) SetErrorKind(v string) *ExtractionTaskUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableErrorKind(v *string) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ExtractionTaskUpdateOne) ClearErrorKind() *ExtractionTaskUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionTaskUpdateOne) SetErrorMessage(v string) *ExtractionTaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableErrorMessage(v *string) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionTaskUpdateOne) ClearErrorMessage() *ExtractionTaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCarriedOver sets the "carried_over" field.
func (_u *ExtractionTaskUpdateOne) SetCarriedOver(v bool) *ExtractionTaskUpdateOne {
	_u.mutation.SetCarriedOver(v)
	return _u
}

// SetNillableCarriedOver sets the "carried_over" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableCarriedOver(v *bool) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetCarriedOver(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionTaskUpdateOne) SetFinishedAt(v time.Time) *ExtractionTaskUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionTaskUpdateOne) SetNillableFinishedAt(v *time.Time) *ExtractionTaskUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionTaskUpdateOne) ClearFinishedAt() *ExtractionTaskUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetRun sets the "run" edge to the JobRun entity.
func (_u *ExtractionTaskUpdateOne) SetRun(v *JobRun) *ExtractionTaskUpdateOne {
	return _u.SetRunID(v.ID)
}

// Mutation returns the ExtractionTaskMutation object of the builder.
func (_u *ExtractionTaskUpdateOne) Mutation() *ExtractionTaskMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the JobRun entity.
func (_u *ExtractionTaskUpdateOne) ClearRun() *ExtractionTaskUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// Where appends a list predicates to the ExtractionTaskUpdate builder.
func (_u *ExtractionTaskUpdateOne) Where(ps ...predicate.ExtractionTask) *ExtractionTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionTaskUpdateOne) Select(field string, fields ...string) *ExtractionTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionTask entity.
func (_u *ExtractionTaskUpdateOne) Save(ctx context.Context) (*ExtractionTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionTaskUpdateOne) SaveX(ctx context.Context) *ExtractionTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := extractiontask.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractiontask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionTask.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionTask.run"`)
	}
	return nil
}

func (_u *ExtractionTaskUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractiontask.Table, extractiontask.Columns, sqlgraph.NewFieldSpec(extractiontask.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractiontask.FieldID)
		for _, f := range fields {
			if !extractiontask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractiontask.FieldID {
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
	if value, ok := _u.mutation.Folder(); ok {
		_spec.SetField(extractiontask.FieldFolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(extractiontask.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileIds(); ok {
		_spec.SetField(extractiontask.FieldFileIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFileIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractiontask.FieldFileIds, value)
		})
	}
	if _u.mutation.FileIdsCleared() {
		_spec.ClearField(extractiontask.FieldFileIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractiontask.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(extractiontask.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractiontask.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(extractiontask.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(extractiontask.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(extractiontask.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractiontask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractiontask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CarriedOver(); ok {
		_spec.SetField(extractiontask.FieldCarriedOver, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractiontask.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractiontask.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.RunCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractiontask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
