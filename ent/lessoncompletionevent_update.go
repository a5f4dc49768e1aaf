// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finlingo/finlingo/ent/lessoncompletionevent"
	"github.com/finlingo/finlingo/ent/predicate"
)

// LessonCompletionEventUpdate is the builder for updating LessonCompletionEvent entities.
type LessonCompletionEventUpdate struct {
	config
	hooks    []Hook
	mutation *LessonCompletionEventMutation
}

// Where appends a list predicates to the LessonCompletionEventUpdate builder.
func (_u *LessonCompletionEventUpdate) Where(ps ...predicate.LessonCompletionEvent) *LessonCompletionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LessonCompletionEventUpdate) SetSessionID(v string) *LessonCompletionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LessonCompletionEventUpdate) SetNillableSessionID(v *string) *LessonCompletionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *LessonCompletionEventUpdate) SetLessonID(v string) *LessonCompletionEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *LessonCompletionEventUpdate) SetNillableLessonID(v *string) *LessonCompletionEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *LessonCompletionEventUpdate) SetCourseID(v string) *LessonCompletionEventUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LessonCompletionEventUpdate) SetNillableCourseID(v *string) *LessonCompletionEventUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *LessonCompletionEventUpdate) SetCategory(v string) *LessonCompletionEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *LessonCompletionEventUpdate) SetNillableCategory(v *string) *LessonCompletionEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *LessonCompletionEventUpdate) SetDifficulty(v string) *LessonCompletionEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *LessonCompletionEventUpdate) SetNillableDifficulty(v *string) *LessonCompletionEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *LessonCompletionEventUpdate) SetScore(v float64) *LessonCompletionEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *LessonCompletionEventUpdate) SetNillableScore(v *float64) *LessonCompletionEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *LessonCompletionEventUpdate) AddScore(v float64) *LessonCompletionEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_u *LessonCompletionEventUpdate) SetTimeSpentMinutes(v int) *LessonCompletionEventUpdate {
	_u.mutation.ResetTimeSpentMinutes()
	_u.mutation.SetTimeSpentMinutes(v)
	return _u
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_u *LessonCompletionEventUpdate) SetNillableTimeSpentMinutes(v *int) *LessonCompletionEventUpdate {
	if v != nil {
		_u.SetTimeSpentMinutes(*v)
	}
	return _u
}

// AddTimeSpentMinutes adds value to the "time_spent_minutes" field.
func (_u *LessonCompletionEventUpdate) AddTimeSpentMinutes(v int) *LessonCompletionEventUpdate {
	_u.mutation.AddTimeSpentMinutes(v)
	return _u
}

// SetQuestionsTotal sets the "questions_total" field.
func (_u *LessonCompletionEventUpdate) SetQuestionsTotal(v int) *LessonCompletionEventUpdate {
	_u.mutation.ResetQuestionsTotal()
	_u.mutation.SetQuestionsTotal(v)
	return _u
}

// SetNillableQuestionsTotal sets the "questions_total" field if the given value is not nil.
func (_u *LessonCompletionEventUpdate) SetNillableQuestionsTotal(v *int) *LessonCompletionEventUpdate {
	if v != nil {
		_u.SetQuestionsTotal(*v)
	}
	return _u
}

// AddQuestionsTotal adds value to the "questions_total" field.
func (_u *LessonCompletionEventUpdate) AddQuestionsTotal(v int) *LessonCompletionEventUpdate {
	_u.mutation.AddQuestionsTotal(v)
	return _u
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (_u *LessonCompletionEventUpdate) SetQuestionsCorrect(v int) *LessonCompletionEventUpdate {
	_u.mutation.ResetQuestionsCorrect()
	_u.mutation.SetQuestionsCorrect(v)
	return _u
}

// SetNillableQuestionsCorrect sets the "questions_correct" field if the given value is not nil.
func (_u *LessonCompletionEventUpdate) SetNillableQuestionsCorrect(v *int) *LessonCompletionEventUpdate {
	if v != nil {
		_u.SetQuestionsCorrect(*v)
	}
	return _u
}

// AddQuestionsCorrect adds value to the "questions_correct" field.
func (_u *LessonCompletionEventUpdate) AddQuestionsCorrect(v int) *LessonCompletionEventUpdate {
	_u.mutation.AddQuestionsCorrect(v)
	return _u
}

// Mutation returns the LessonCompletionEventMutation object of the builder.
func (_u *LessonCompletionEventUpdate) Mutation() *LessonCompletionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonCompletionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonCompletionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonCompletionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonCompletionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonCompletionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := lessoncompletionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := lessoncompletionevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := lessoncompletionevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := lessoncompletionevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := lessoncompletionevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonCompletionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessoncompletionevent.Table, lessoncompletionevent.Columns, sqlgraph.NewFieldSpec(lessoncompletionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(lessoncompletionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(lessoncompletionevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(lessoncompletionevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(lessoncompletionevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(lessoncompletionevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(lessoncompletionevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(lessoncompletionevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(lessoncompletionevent.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMinutes(); ok {
		_spec.AddField(lessoncompletionevent.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsTotal(); ok {
		_spec.SetField(lessoncompletionevent.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsTotal(); ok {
		_spec.AddField(lessoncompletionevent.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsCorrect(); ok {
		_spec.SetField(lessoncompletionevent.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsCorrect(); ok {
		_spec.AddField(lessoncompletionevent.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessoncompletionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonCompletionEventUpdateOne is the builder for updating a single LessonCompletionEvent entity.
type LessonCompletionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonCompletionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *LessonCompletionEventUpdateOne) SetSessionID(v string) *LessonCompletionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LessonCompletionEventUpdateOne) SetNillableSessionID(v *string) *LessonCompletionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *LessonCompletionEventUpdateOne) SetLessonID(v string) *LessonCompletionEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *LessonCompletionEventUpdateOne) SetNillableLessonID(v *string) *LessonCompletionEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *LessonCompletionEventUpdateOne) SetCourseID(v string) *LessonCompletionEventUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LessonCompletionEventUpdateOne) SetNillableCourseID(v *string) *LessonCompletionEventUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *LessonCompletionEventUpdateOne) SetCategory(v string) *LessonCompletionEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *LessonCompletionEventUpdateOne) SetNillableCategory(v *string) *LessonCompletionEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *LessonCompletionEventUpdateOne) SetDifficulty(v string) *LessonCompletionEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *LessonCompletionEventUpdateOne) SetNillableDifficulty(v *string) *LessonCompletionEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *LessonCompletionEventUpdateOne) SetScore(v float64) *LessonCompletionEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *LessonCompletionEventUpdateOne) SetNillableScore(v *float64) *LessonCompletionEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *LessonCompletionEventUpdateOne) AddScore(v float64) *LessonCompletionEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_u *LessonCompletionEventUpdateOne) SetTimeSpentMinutes(v int) *LessonCompletionEventUpdateOne {
	_u.mutation.ResetTimeSpentMinutes()
	_u.mutation.SetTimeSpentMinutes(v)
	return _u
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_u *LessonCompletionEventUpdateOne) SetNillableTimeSpentMinutes(v *int) *LessonCompletionEventUpdateOne {
	if v != nil {
		_u.SetTimeSpentMinutes(*v)
	}
	return _u
}

// AddTimeSpentMinutes adds value to the "time_spent_minutes" field.
func (_u *LessonCompletionEventUpdateOne) AddTimeSpentMinutes(v int) *LessonCompletionEventUpdateOne {
	_u.mutation.AddTimeSpentMinutes(v)
	return _u
}

// SetQuestionsTotal sets the "questions_total" field.
func (_u *LessonCompletionEventUpdateOne) SetQuestionsTotal(v int) *LessonCompletionEventUpdateOne {
	_u.mutation.ResetQuestionsTotal()
	_u.mutation.SetQuestionsTotal(v)
	return _u
}

// SetNillableQuestionsTotal sets the "questions_total" field if the given value is not nil.
func (_u *LessonCompletionEventUpdateOne) SetNillableQuestionsTotal(v *int) *LessonCompletionEventUpdateOne {
	if v != nil {
		_u.SetQuestionsTotal(*v)
	}
	return _u
}

// AddQuestionsTotal adds value to the "questions_total" field.
func (_u *LessonCompletionEventUpdateOne) AddQuestionsTotal(v int) *LessonCompletionEventUpdateOne {
	_u.mutation.AddQuestionsTotal(v)
	return _u
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (_u *LessonCompletionEventUpdateOne) SetQuestionsCorrect(v int) *LessonCompletionEventUpdateOne {
	_u.mutation.ResetQuestionsCorrect()
	_u.mutation.SetQuestionsCorrect(v)
	return _u
}

// SetNillableQuestionsCorrect sets the "questions_correct" field if the given value is not nil.
func (_u *LessonCompletionEventUpdateOne) SetNillableQuestionsCorrect(v *int) *LessonCompletionEventUpdateOne {
	if v != nil {
		_u.SetQuestionsCorrect(*v)
	}
	return _u
}

// AddQuestionsCorrect adds value to the "questions_correct" field.
func (_u *LessonCompletionEventUpdateOne) AddQuestionsCorrect(v int) *LessonCompletionEventUpdateOne {
	_u.mutation.AddQuestionsCorrect(v)
	return _u
}

// Mutation returns the LessonCompletionEventMutation object of the builder.
func (_u *LessonCompletionEventUpdateOne) Mutation() *LessonCompletionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonCompletionEventUpdate builder.
func (_u *LessonCompletionEventUpdateOne) Where(ps ...predicate.LessonCompletionEvent) *LessonCompletionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonCompletionEventUpdateOne) Select(field string, fields ...string) *LessonCompletionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonCompletionEvent entity.
func (_u *LessonCompletionEventUpdateOne) Save(ctx context.Context) (*LessonCompletionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonCompletionEventUpdateOne) SaveX(ctx context.Context) *LessonCompletionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonCompletionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonCompletionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonCompletionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := lessoncompletionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := lessoncompletionevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := lessoncompletionevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := lessoncompletionevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := lessoncompletionevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonCompletionEventUpdateOne) sqlSave(ctx context.Context) (_node *LessonCompletionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessoncompletionevent.Table, lessoncompletionevent.Columns, sqlgraph.NewFieldSpec(lessoncompletionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonCompletionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessoncompletionevent.FieldID)
		for _, f := range fields {
			if !lessoncompletionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessoncompletionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(lessoncompletionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(lessoncompletionevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(lessoncompletionevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(lessoncompletionevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(lessoncompletionevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(lessoncompletionevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(lessoncompletionevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(lessoncompletionevent.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMinutes(); ok {
		_spec.AddField(lessoncompletionevent.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsTotal(); ok {
		_spec.SetField(lessoncompletionevent.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsTotal(); ok {
		_spec.AddField(lessoncompletionevent.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsCorrect(); ok {
		_spec.SetField(lessoncompletionevent.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsCorrect(); ok {
		_spec.AddField(lessoncompletionevent.FieldQuestionsCorrect, field.TypeInt, value)
	}
	_node = &LessonCompletionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessoncompletionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
