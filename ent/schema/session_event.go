package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("kind").
			NotEmpty().
			Comment("quiz or study"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("surah_number").
			Default(0).
			Comment("Surah under quiz (0 for study sessions)"),
		field.String("mode").
			Optional().
			Comment("Presentation mode (quiz sessions only)"),
		field.Int("questions_served").
			Default(0).
			Comment("Total questions (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on end only)"),
		field.Int("points").
			Default(0).
			Comment("Points earned (on end only)"),
		field.Int("max_points").
			Default(0).
			Comment("Points available (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("kind"),
		index.Fields("action"),
	}
}
