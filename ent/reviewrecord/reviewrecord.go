// Code generated by ent, DO NOT EDIT.

package reviewrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewrecord type in the database.
	Label = "review_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWordID holds the string denoting the word_id field in the database.
	FieldWordID = "word_id"
	// FieldEaseFactor holds the string denoting the ease_factor field in the database.
	FieldEaseFactor = "ease_factor"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldRepetitions holds the string denoting the repetitions field in the database.
	FieldRepetitions = "repetitions"
	// FieldNextReview holds the string denoting the next_review field in the database.
	FieldNextReview = "next_review"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the reviewrecord in the database.
	Table = "review_records"
)

// Columns holds all SQL columns for reviewrecord fields.
var Columns = []string{
	FieldID,
	FieldWordID,
	FieldEaseFactor,
	FieldIntervalDays,
	FieldRepetitions,
	FieldNextReview,
	FieldUpdatedAt,
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
	// WordIDValidator is a validator for the "word_id" field. It is called by the builders before save.
	WordIDValidator func(string) error
	// DefaultEaseFactor holds the default value on creation for the "ease_factor" field.
	DefaultEaseFactor float64
	// DefaultIntervalDays holds the default value on creation for the "interval_days" field.
	DefaultIntervalDays int
	// DefaultRepetitions holds the default value on creation for the "repetitions" field.
	DefaultRepetitions int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ReviewRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWordID orders the results by the word_id field.
func ByWordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordID, opts...).ToFunc()
}

// ByEaseFactor orders the results by the ease_factor field.
func ByEaseFactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseFactor, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByRepetitions orders the results by the repetitions field.
func ByRepetitions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepetitions, opts...).ToFunc()
}

// ByNextReview orders the results by the next_review field.
func ByNextReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReview, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
