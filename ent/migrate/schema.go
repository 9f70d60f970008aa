// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString},
		{Name: "surah_number", Type: field.TypeInt, Default: 0},
		{Name: "verse_number", Type: field.TypeInt, Default: 0},
		{Name: "word_id", Type: field.TypeString, Nullable: true},
		{Name: "correct", Type: field.TypeBool},
		{Name: "hint_used", Type: field.TypeBool, Default: false},
		{Name: "points", Type: field.TypeInt},
		{Name: "max_points", Type: field.TypeInt},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_question_type",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[8]},
			},
		},
	}
	// ReviewRecordsColumns holds the columns for the "review_records" table.
	ReviewRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "word_id", Type: field.TypeString, Unique: true},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "interval_days", Type: field.TypeInt, Default: 0},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "next_review", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ReviewRecordsTable holds the schema information for the "review_records" table.
	ReviewRecordsTable = &schema.Table{
		Name:       "review_records",
		Columns:    ReviewRecordsColumns,
		PrimaryKey: []*schema.Column{ReviewRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewrecord_next_review",
				Unique:  false,
				Columns: []*schema.Column{ReviewRecordsColumns[5]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "surah_number", Type: field.TypeInt, Default: 0},
		{Name: "mode", Type: field.TypeString, Nullable: true},
		{Name: "questions_served", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "points", Type: field.TypeInt, Default: 0},
		{Name: "max_points", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_kind",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		ReviewRecordsTable,
		SessionEventsTable,
	}
)

func init() {
}
