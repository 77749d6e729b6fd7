// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tablelift/tablelift/gen/ent/extractiontask"
	"github.com/tablelift/tablelift/gen/ent/predicate"
)

// ExtractionTaskDelete is the builder for deleting a ExtractionTask entity.
type ExtractionTaskDelete struct {
	config
	hooks    []Hook
	mutation *ExtractionTaskMutation
}

// Where appends a list predicates to the ExtractionTaskDelete builder.
func (_d *ExtractionTaskDelete) Where(ps ...predicate.ExtractionTask) *ExtractionTaskDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractionTaskDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractionTaskDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractionTaskDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractiontask.Table, sqlgraph.NewFieldSpec(extractiontask.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExtractionTaskDeleteOne is the builder for deleting a single ExtractionTask entity.
type ExtractionTaskDeleteOne struct {
	_d *ExtractionTaskDelete
}

// Where appends a list predicates to the ExtractionTaskDelete builder.
func (_d *ExtractionTaskDeleteOne) Where(ps ...predicate.ExtractionTask) *ExtractionTaskDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractionTaskDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractiontask.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractionTaskDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
