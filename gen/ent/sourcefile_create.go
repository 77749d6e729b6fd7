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
	"github.com/tablelift/tablelift/gen/ent/jobrun"
	"github.com/tablelift/tablelift/gen/ent/sourcefile"
)

// SourceFileCreate is the builder for creating a SourceFile entity.
type SourceFileCreate struct {
	config
	mutation *SourceFileMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *SourceFileCreate) SetRunID(v uuid.UUID) *SourceFileCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *SourceFileCreate) SetSourcePath(v string) *SourceFileCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *SourceFileCreate) SetFilename(v string) *SourceFileCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *SourceFileCreate) SetFileExt(v string) *SourceFileCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_c *SourceFileCreate) SetNillableFileExt(v *string) *SourceFileCreate {
	if v != nil {
		_c.SetFileExt(*v)
	}
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *SourceFileCreate) SetFileSize(v int64) *SourceFileCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_c *SourceFileCreate) SetNillableFileSize(v *int64) *SourceFileCreate {
	if v != nil {
		_c.SetFileSize(*v)
	}
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *SourceFileCreate) SetContentHash(v []byte) *SourceFileCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SourceFileCreate) SetStatus(v string) *SourceFileCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SourceFileCreate) SetNillableStatus(v *string) *SourceFileCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOrigin sets the "origin" field.
func (_c *SourceFileCreate) SetOrigin(v string) *SourceFileCreate {
	_c.mutation.SetOrigin(v)
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *SourceFileCreate) SetParentID(v uuid.UUID) *SourceFileCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *SourceFileCreate) SetNillableParentID(v *uuid.UUID) *SourceFileCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SourceFileCreate) SetErrorMessage(v string) *SourceFileCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SourceFileCreate) SetNillableErrorMessage(v *string) *SourceFileCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *SourceFileCreate) SetUploadedAt(v time.Time) *SourceFileCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *SourceFileCreate) SetNillableUploadedAt(v *time.Time) *SourceFileCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SourceFileCreate) SetID(v uuid.UUID) *SourceFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SourceFileCreate) SetNillableID(v *uuid.UUID) *SourceFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRun sets the "run" edge to the JobRun entity.
func (_c *SourceFileCreate) SetRun(v *JobRun) *SourceFileCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the SourceFileMutation object of the builder.
func (_c *SourceFileCreate) Mutation() *SourceFileMutation {
	return _c.mutation
}

// Save creates the SourceFile in the database.
func (_c *SourceFileCreate) Save(ctx context.Context) (*SourceFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceFileCreate) SaveX(ctx context.Context) *SourceFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceFileCreate) defaults() {
	if _, ok := _c.mutation.FileSize(); !ok {
		v := sourcefile.DefaultFileSize
		_c.mutation.SetFileSize(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := sourcefile.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := sourcefile.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := sourcefile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceFileCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "SourceFile.run_id"`)}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "SourceFile.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := sourcefile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "SourceFile.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "SourceFile.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := sourcefile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "SourceFile.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "SourceFile.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := sourcefile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "SourceFile.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SourceFile.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sourcefile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SourceFile.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Origin(); !ok {
		return &ValidationError{Name: "origin", err: errors.New(`ent: missing required field "SourceFile.origin"`)}
	}
	if v, ok := _c.mutation.Origin(); ok {
		if err := sourcefile.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "SourceFile.origin": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "SourceFile.uploaded_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "SourceFile.run"`)}
	}
	return nil
}

func (_c *SourceFileCreate) sqlSave(ctx context.Context) (*SourceFile, error) {
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

func (_c *SourceFileCreate) createSpec() (*SourceFile, *sqlgraph.CreateSpec) {
	var (
		_node = &SourceFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sourcefile.Table, sqlgraph.NewFieldSpec(sourcefile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(sourcefile.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(sourcefile.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(sourcefile.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(sourcefile.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(sourcefile.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sourcefile.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Origin(); ok {
		_spec.SetField(sourcefile.FieldOrigin, field.TypeString, value)
		_node.Origin = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(sourcefile.FieldParentID, field.TypeUUID, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(sourcefile.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(sourcefile.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
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
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SourceFileCreateBulk is the builder for creating many SourceFile entities in bulk.
type SourceFileCreateBulk struct {
	config
	err      error
	builders []*SourceFileCreate
}

// Save creates the SourceFile entities in the database.
func (_c *SourceFileCreateBulk) Save(ctx context.Context) ([]*SourceFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SourceFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceFileMutation)
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
func (_c *SourceFileCreateBulk) SaveX(ctx context.Context) []*SourceFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
