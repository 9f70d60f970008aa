// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answerevent type in the database.
	Label = "answer_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldSurahNumber holds the string denoting the surah_number field in the database.
	FieldSurahNumber = "surah_number"
	// FieldVerseNumber holds the string denoting the verse_number field in the database.
	FieldVerseNumber = "verse_number"
	// FieldWordID holds the string denoting the word_id field in the database.
	FieldWordID = "word_id"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldHintUsed holds the string denoting the hint_used field in the database.
	FieldHintUsed = "hint_used"
	// FieldPoints holds the string denoting the points field in the database.
	FieldPoints = "points"
	// FieldMaxPoints holds the string denoting the max_points field in the database.
	FieldMaxPoints = "max_points"
	// Table holds the table name of the answerevent in the database.
	Table = "answer_events"
)

// Columns holds all SQL columns for answerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldQuestionType,
	FieldSurahNumber,
	FieldVerseNumber,
	FieldWordID,
	FieldCorrect,
	FieldHintUsed,
	FieldPoints,
	FieldMaxPoints,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	QuestionTypeValidator func(string) error
	// DefaultSurahNumber holds the default value on creation for the "surah_number" field.
	DefaultSurahNumber int
	// DefaultVerseNumber holds the default value on creation for the "verse_number" field.
	DefaultVerseNumber int
	// DefaultHintUsed holds the default value on creation for the "hint_used" field.
	DefaultHintUsed bool
)

// OrderOption defines the ordering options for the AnswerEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByQuestionType orders the results by the question_type field.
func ByQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionType, opts...).ToFunc()
}

// BySurahNumber orders the results by the surah_number field.
func BySurahNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSurahNumber, opts...).ToFunc()
}

// ByVerseNumber orders the results by the verse_number field.
func ByVerseNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerseNumber, opts...).ToFunc()
}

// ByWordID orders the results by the word_id field.
func ByWordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordID, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByHintUsed orders the results by the hint_used field.
func ByHintUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintUsed, opts...).ToFunc()
}

// ByPoints orders the results by the points field.
func ByPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoints, opts...).ToFunc()
}

// ByMaxPoints orders the results by the max_points field.
func ByMaxPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxPoints, opts...).ToFunc()
}
