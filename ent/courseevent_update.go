// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finlingo/finlingo/ent/courseevent"
	"github.com/finlingo/finlingo/ent/predicate"
)

// CourseEventUpdate is the builder for updating CourseEvent entities.
type CourseEventUpdate struct {
	config
	hooks    []Hook
	mutation *CourseEventMutation
}

// Where appends a list predicates to the CourseEventUpdate builder.
func (_u *CourseEventUpdate) Where(ps ...predicate.CourseEvent) *CourseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *CourseEventUpdate) SetCourseID(v string) *CourseEventUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *CourseEventUpdate) SetNillableCourseID(v *string) *CourseEventUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *CourseEventUpdate) SetAction(v string) *CourseEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *CourseEventUpdate) SetNillableAction(v *string) *CourseEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// Mutation returns the CourseEventMutation object of the builder.
func (_u *CourseEventUpdate) Mutation() *CourseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseEventUpdate) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := courseevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "CourseEvent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := courseevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "CourseEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courseevent.Table, courseevent.Columns, sqlgraph.NewFieldSpec(courseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(courseevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(courseevent.FieldAction, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseEventUpdateOne is the builder for updating a single CourseEvent entity.
type CourseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseEventMutation
}

// SetCourseID sets the "course_id" field.
func (_u *CourseEventUpdateOne) SetCourseID(v string) *CourseEventUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *CourseEventUpdateOne) SetNillableCourseID(v *string) *CourseEventUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *CourseEventUpdateOne) SetAction(v string) *CourseEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *CourseEventUpdateOne) SetNillableAction(v *string) *CourseEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// Mutation returns the CourseEventMutation object of the builder.
func (_u *CourseEventUpdateOne) Mutation() *CourseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CourseEventUpdate builder.
func (_u *CourseEventUpdateOne) Where(ps ...predicate.CourseEvent) *CourseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseEventUpdateOne) Select(field string, fields ...string) *CourseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CourseEvent entity.
func (_u *CourseEventUpdateOne) Save(ctx context.Context) (*CourseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseEventUpdateOne) SaveX(ctx context.Context) *CourseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseEventUpdateOne) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := courseevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "CourseEvent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := courseevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "CourseEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseEventUpdateOne) sqlSave(ctx context.Context) (_node *CourseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courseevent.Table, courseevent.Columns, sqlgraph.NewFieldSpec(courseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CourseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, courseevent.FieldID)
		for _, f := range fields {
			if !courseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != courseevent.FieldID {
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
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(courseevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(courseevent.FieldAction, field.TypeString, value)
	}
	_node = &CourseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
