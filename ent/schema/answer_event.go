package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("question_type").
			NotEmpty().
			Comment("translation, transliteration, arabic, missing-word, word-meaning, word-arabic, or reading"),
		field.Int("surah_number").
			Default(0).
			Comment("Surah the verse belongs to (0 for vocabulary questions)"),
		field.Int("verse_number").
			Default(0).
			Comment("Verse within the surah (0 for vocabulary questions)"),
		field.String("word_id").
			Optional().
			Comment("Corpus word identifier for vocabulary questions"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Bool("hint_used").
			Default(false).
			Comment("Whether the answer was revealed before submitting"),
		field.Int("points").
			Comment("Points awarded"),
		field.Int("max_points").
			Comment("Maximum points available for the question"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_type"),
		index.Fields("correct"),
	}
}
