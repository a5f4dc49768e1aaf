// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finlingo/finlingo/ent/lessoncompletionevent"
	"github.com/finlingo/finlingo/ent/predicate"
)

// LessonCompletionEventDelete is the builder for deleting a LessonCompletionEvent entity.
type LessonCompletionEventDelete struct {
	config
	hooks    []Hook
	mutation *LessonCompletionEventMutation
}

// Where appends a list predicates to the LessonCompletionEventDelete builder.
func (_d *LessonCompletionEventDelete) Where(ps ...predicate.LessonCompletionEvent) *LessonCompletionEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LessonCompletionEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LessonCompletionEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LessonCompletionEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(lessoncompletionevent.Table, sqlgraph.NewFieldSpec(lessoncompletionevent.FieldID, field.TypeInt))
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

// LessonCompletionEventDeleteOne is the builder for deleting a single LessonCompletionEvent entity.
type LessonCompletionEventDeleteOne struct {
	_d *LessonCompletionEventDelete
}

// Where appends a list predicates to the LessonCompletionEventDelete builder.
func (_d *LessonCompletionEventDeleteOne) Where(ps ...predicate.LessonCompletionEvent) *LessonCompletionEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LessonCompletionEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{lessoncompletionevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LessonCompletionEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
