// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/moh-dev-stack/quran-memorise-sub000/ent/reviewrecord"
)

// ReviewRecord is the model entity for the ReviewRecord schema.
type ReviewRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Corpus word identifier
	WordID string `json:"word_id,omitempty"`
	// SM-2 ease factor, floored at 1.3
	EaseFactor float64 `json:"ease_factor,omitempty"`
	// Days until the next review
	IntervalDays int `json:"interval_days,omitempty"`
	// Consecutive successful reviews
	Repetitions int `json:"repetitions,omitempty"`
	// When the word is next due
	NextReview time.Time `json:"next_review,omitempty"`
	// Last time this record was written
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewrecord.FieldEaseFactor:
			values[i] = new(sql.NullFloat64)
		case reviewrecord.FieldID, reviewrecord.FieldIntervalDays, reviewrecord.FieldRepetitions:
			values[i] = new(sql.NullInt64)
		case reviewrecord.FieldWordID:
			values[i] = new(sql.NullString)
		case reviewrecord.FieldNextReview, reviewrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewRecord fields.
func (_m *ReviewRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reviewrecord.FieldWordID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field word_id", values[i])
			} else if value.Valid {
				_m.WordID = value.String
			}
		case reviewrecord.FieldEaseFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_factor", values[i])
			} else if value.Valid {
				_m.EaseFactor = value.Float64
			}
		case reviewrecord.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case reviewrecord.FieldRepetitions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetitions", values[i])
			} else if value.Valid {
				_m.Repetitions = int(value.Int64)
			}
		case reviewrecord.FieldNextReview:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review", values[i])
			} else if value.Valid {
				_m.NextReview = value.Time
			}
		case reviewrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewRecord.
// Note that you need to call ReviewRecord.Unwrap() before calling this method if this ReviewRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewRecord) Update() *ReviewRecordUpdateOne {
	return NewReviewRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewRecord) Unwrap() *ReviewRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("word_id=")
	builder.WriteString(_m.WordID)
	builder.WriteString(", ")
	builder.WriteString("ease_factor=")
	builder.WriteString(fmt.Sprintf("%v", _m.EaseFactor))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("repetitions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Repetitions))
	builder.WriteString(", ")
	builder.WriteString("next_review=")
	builder.WriteString(_m.NextReview.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewRecords is a parsable slice of ReviewRecord.
type ReviewRecords []*ReviewRecord
