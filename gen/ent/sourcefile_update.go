// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tablelift/tablelift/gen/ent/jobrun"
	"github.com/tablelift/tablelift/gen/ent/predicate"
	"github.com/tablelift/tablelift/gen/ent/sourcefile"
)

// SourceFileUpdate is the builder for updating SourceFile entities.
type SourceFileUpdate struct {
	config
	hooks    []Hook
	mutation *SourceFileMutation
}

// Where appends a list predicates to the SourceFileUpdate builder.
func (_u *SourceFileUpdate) Where(ps ...predicate.SourceFile) *SourceFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *SourceFileUpdate) SetRunID(v uuid.UUID) *SourceFileUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableRunID(v *uuid.UUID) *SourceFileUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *SourceFileUpdate) SetSourcePath(v string) *SourceFileUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableSourcePath(v *string) *SourceFileUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *SourceFileUpdate) SetFilename(v string) *SourceFileUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableFilename(v *string) *SourceFileUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *SourceFileUpdate) SetFileExt(v string) *SourceFileUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableFileExt(v *string) *SourceFileUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// ClearFileExt clears the value of the "file_ext" field.
func (_u *SourceFileUpdate) ClearFileExt() *SourceFileUpdate {
	_u.mutation.ClearFileExt()
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *SourceFileUpdate) SetFileSize(v int64) *SourceFileUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableFileSize(v *int64) *SourceFileUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *SourceFileUpdate) AddFileSize(v int64) *SourceFileUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *SourceFileUpdate) SetContentHash(v []byte) *SourceFileUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *SourceFileUpdate) ClearContentHash() *SourceFileUpdate {
	_u.mutation.ClearContentHash()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SourceFileUpdate) SetStatus(v string) *SourceFileUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableStatus(v *string) *SourceFileUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *SourceFileUpdate) SetOrigin(v string) *SourceFileUpdate {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableOrigin(v *string) *SourceFileUpdate {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *SourceFileUpdate) SetParentID(v uuid.UUID) *SourceFileUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableParentID(v *uuid.UUID) *SourceFileUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *SourceFileUpdate) ClearParentID() *SourceFileUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SourceFileUpdate) SetErrorMessage(v string) *SourceFileUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableErrorMessage(v *string) *SourceFileUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SourceFileUpdate) ClearErrorMessage() *SourceFileUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *SourceFileUpdate) SetUploadedAt(v time.Time) *SourceFileUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableUploadedAt(v *time.Time) *SourceFileUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetRun sets the "run" edge to the JobRun entity.
func (_u *SourceFileUpdate) SetRun(v *JobRun) *SourceFileUpdate {
	return _u.SetRunID(v.ID)
}

// Mutation returns the SourceFileMutation object of the builder.
func (_u *SourceFileUpdate) Mutation() *SourceFileMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the JobRun entity.
func (_u *SourceFileUpdate) ClearRun() *SourceFileUpdate {
	_u.mutation.ClearRun()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceFileUpdate) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := sourcefile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "SourceFile.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := sourcefile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "SourceFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := sourcefile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "SourceFile.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sourcefile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SourceFile.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Origin(); ok {
		if err := sourcefile.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "SourceFile.origin": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceFile.run"`)
	}
	return nil
}

func (_u *SourceFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcefile.Table, sourcefile.Columns, sqlgraph.NewFieldSpec(sourcefile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(sourcefile.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(sourcefile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(sourcefile.FieldFileExt, field.TypeString, value)
	}
	if _u.mutation.FileExtCleared() {
		_spec.ClearField(sourcefile.FieldFileExt, field.TypeString)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(sourcefile.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(sourcefile.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(sourcefile.FieldContentHash, field.TypeBytes, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(sourcefile.FieldContentHash, field.TypeBytes)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sourcefile.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(sourcefile.FieldOrigin, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(sourcefile.FieldParentID, field.TypeUUID, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(sourcefile.FieldParentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(sourcefile.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(sourcefile.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(sourcefile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sourcefile.RunTable,
			Columns: []string{sourcefile.RunColumn},
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
			Table:   sourcefile.RunTable,
			Columns: []string{sourcefile.RunColumn},
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
			err = &NotFoundError{sourcefile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceFileUpdateOne is the builder for updating a single SourceFile entity.
type SourceFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SourceFileMutation
}

// SetRunID sets the "run_id" field.
func (_u *SourceFileUpdateOne) SetRunID(v uuid.UUID) *SourceFileUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableRunID(v *uuid.UUID) *SourceFileUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *SourceFileUpdateOne) SetSourcePath(v string) *SourceFileUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableSourcePath(v *string) *SourceFileUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *SourceFileUpdateOne) SetFilename(v string) *SourceFileUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableFilename(v *string) *SourceFileUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *SourceFileUpdateOne) SetFileExt(v string) *SourceFileUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableFileExt(v *string) *SourceFileUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// ClearFileExt clears the value of the "file_ext" field.
func (_u *SourceFileUpdateOne) ClearFileExt() *SourceFileUpdateOne {
	_u.mutation.ClearFileExt()
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *SourceFileUpdateOne) SetFileSize(v int64) *SourceFileUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableFileSize(v *int64) *SourceFileUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *SourceFileUpdateOne) AddFileSize(v int64) *SourceFileUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *SourceFileUpdateOne) SetContentHash(v []byte) *SourceFileUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *SourceFileUpdateOne) ClearContentHash() *SourceFileUpdateOne {
	_u.mutation.ClearContentHash()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SourceFileUpdateOne) SetStatus(v string) *SourceFileUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableStatus(v *string) *SourceFileUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *SourceFileUpdateOne) SetOrigin(v string) *SourceFileUpdateOne {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableOrigin(v *string) *SourceFileUpdateOne {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *SourceFileUpdateOne) SetParentID(v uuid.UUID) *SourceFileUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableParentID(v *uuid.UUID) *SourceFileUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *SourceFileUpdateOne) ClearParentID() *SourceFileUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SourceFileUpdateOne) SetErrorMessage(v string) *SourceFileUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableErrorMessage(v *string) *SourceFileUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SourceFileUpdateOne) ClearErrorMessage() *SourceFileUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *SourceFileUpdateOne) SetUploadedAt(v time.Time) *SourceFileUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableUploadedAt(v *time.Time) *SourceFileUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetRun sets the "run" edge to the JobRun entity.
func (_u *SourceFileUpdateOne) SetRun(v *JobRun) *SourceFileUpdateOne {
	return _u.SetRunID(v.ID)
}

// Mutation returns the SourceFileMutation object of the builder.
func (_u *SourceFileUpdateOne) Mutation() *SourceFileMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the JobRun entity.
func (_u *SourceFileUpdateOne) ClearRun() *SourceFileUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// Where appends a list predicates to the SourceFileUpdate builder.
func (_u *SourceFileUpdateOne) Where(ps ...predicate.SourceFile) *SourceFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceFileUpdateOne) Select(field string, fields ...string) *SourceFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SourceFile entity.
func (_u *SourceFileUpdateOne) Save(ctx context.Context) (*SourceFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceFileUpdateOne) SaveX(ctx context.Context) *SourceFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceFileUpdateOne) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := sourcefile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "SourceFile.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := sourcefile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "SourceFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := sourcefile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "SourceFile.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sourcefile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SourceFile.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Origin(); ok {
		if err := sourcefile.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "SourceFile.origin": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceFile.run"`)
	}
	return nil
}

func (_u *SourceFileUpdateOne) sqlSave(ctx context.Context) (_node *SourceFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcefile.Table, sourcefile.Columns, sqlgraph.NewFieldSpec(sourcefile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SourceFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sourcefile.FieldID)
		for _, f := range fields {
			if !sourcefile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sourcefile.FieldID {
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
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(sourcefile.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(sourcefile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(sourcefile.FieldFileExt, field.TypeString, value)
	}
	if _u.mutation.FileExtCleared() {
		_spec.ClearField(sourcefile.FieldFileExt, field.TypeString)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(sourcefile.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(sourcefile.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(sourcefile.FieldContentHash, field.TypeBytes, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(sourcefile.FieldContentHash, field.TypeBytes)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sourcefile.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(sourcefile.FieldOrigin, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(sourcefile.FieldParentID, field.TypeUUID, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(sourcefile.FieldParentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(sourcefile.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(sourcefile.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(sourcefile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sourcefile.RunTable,
			Columns: []string{sourcefile.RunColumn},
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
			Table:   sourcefile.RunTable,
			Columns: []string{sourcefile.RunColumn},
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
	_node = &SourceFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcefile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
