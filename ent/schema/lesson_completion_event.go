package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonCompletionEvent records a finished lesson attempt. This is the
// primary record the analytics aggregator derives from, so the course
// category and difficulty are denormalized onto the event.
type LessonCompletionEvent struct {
	ent.Schema
}

func (LessonCompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonCompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the lesson session"),
		field.String("lesson_id").NotEmpty(),
		field.String("course_id").NotEmpty(),
		field.String("category").
			NotEmpty().
			Comment("Course category at completion time"),
		field.String("difficulty").
			NotEmpty().
			Comment("Course difficulty at completion time"),
		field.Float("score").
			Comment("Lesson score, 0-100"),
		field.Int("time_spent_minutes").
			Default(0),
		field.Int("questions_total").
			Default(0),
		field.Int("questions_correct").
			Default(0),
	}
}

func (LessonCompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("course_id"),
		index.Fields("category"),
	}
}
