package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AchievementEvent records an achievement unlock. The progress snapshot
// carries the canonical achievement list; the event mirrors it so unlock
// history survives a profile reset.
type AchievementEvent struct {
	ent.Schema
}

func (AchievementEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AchievementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").NotEmpty(),
		field.String("description").
			Default(""),
		field.String("category").
			NotEmpty().
			Comment("streak, completion, time_spent, financial, social"),
		field.String("icon").
			Default(""),
		field.Int("milestone").
			Default(0).
			Comment("Milestone value that triggered the unlock, 0 if none"),
	}
}

func (AchievementEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("title"),
		index.Fields("category"),
	}
}
