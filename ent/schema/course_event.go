package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CourseEvent records course lifecycle transitions.
type CourseEvent struct {
	ent.Schema
}

func (CourseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CourseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("selected, completed, or unlocked"),
	}
}

func (CourseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
		index.Fields("action"),
	}
}
