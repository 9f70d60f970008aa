package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewRecord holds the current spaced-repetition state for one
// vocabulary word. One row per word, updated in place after each review.
type ReviewRecord struct {
	ent.Schema
}

func (ReviewRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("word_id").
			NotEmpty().
			Unique().
			Comment("Corpus word identifier"),
		field.Float("ease_factor").
			Default(2.5).
			Comment("SM-2 ease factor, floored at 1.3"),
		field.Int("interval_days").
			Default(0).
			Comment("Days until the next review"),
		field.Int("repetitions").
			Default(0).
			Comment("Consecutive successful reviews"),
		field.Time("next_review").
			Comment("When the word is next due"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last time this record was written"),
	}
}

func (ReviewRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("next_review"),
	}
}
