// Code generated by ent, DO NOT EDIT.

package reviewrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/moh-dev-stack/quran-memorise-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldID, id))
}

// WordID applies equality check predicate on the "word_id" field. It's identical to WordIDEQ.
func WordID(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldWordID, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldEaseFactor, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldIntervalDays, v))
}

// Repetitions applies equality check predicate on the "repetitions" field. It's identical to RepetitionsEQ.
func Repetitions(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldRepetitions, v))
}

// NextReview applies equality check predicate on the "next_review" field. It's identical to NextReviewEQ.
func NextReview(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldNextReview, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// WordIDEQ applies the EQ predicate on the "word_id" field.
func WordIDEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldWordID, v))
}

// WordIDNEQ applies the NEQ predicate on the "word_id" field.
func WordIDNEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldWordID, v))
}

// WordIDIn applies the In predicate on the "word_id" field.
func WordIDIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldWordID, vs...))
}

// WordIDNotIn applies the NotIn predicate on the "word_id" field.
func WordIDNotIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldWordID, vs...))
}

// WordIDGT applies the GT predicate on the "word_id" field.
func WordIDGT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldWordID, v))
}

// WordIDGTE applies the GTE predicate on the "word_id" field.
func WordIDGTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldWordID, v))
}

// WordIDLT applies the LT predicate on the "word_id" field.
func WordIDLT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldWordID, v))
}

// WordIDLTE applies the LTE predicate on the "word_id" field.
func WordIDLTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldWordID, v))
}

// WordIDContains applies the Contains predicate on the "word_id" field.
func WordIDContains(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContains(FieldWordID, v))
}

// WordIDHasPrefix applies the HasPrefix predicate on the "word_id" field.
func WordIDHasPrefix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasPrefix(FieldWordID, v))
}

// WordIDHasSuffix applies the HasSuffix predicate on the "word_id" field.
func WordIDHasSuffix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasSuffix(FieldWordID, v))
}

// WordIDEqualFold applies the EqualFold predicate on the "word_id" field.
func WordIDEqualFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEqualFold(FieldWordID, v))
}

// WordIDContainsFold applies the ContainsFold predicate on the "word_id" field.
func WordIDContainsFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContainsFold(FieldWordID, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldEaseFactor, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldIntervalDays, v))
}

// RepetitionsEQ applies the EQ predicate on the "repetitions" field.
func RepetitionsEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldRepetitions, v))
}

// RepetitionsNEQ applies the NEQ predicate on the "repetitions" field.
func RepetitionsNEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldRepetitions, v))
}

// RepetitionsIn applies the In predicate on the "repetitions" field.
func RepetitionsIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldRepetitions, vs...))
}

// RepetitionsNotIn applies the NotIn predicate on the "repetitions" field.
func RepetitionsNotIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldRepetitions, vs...))
}

// RepetitionsGT applies the GT predicate on the "repetitions" field.
func RepetitionsGT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldRepetitions, v))
}

// RepetitionsGTE applies the GTE predicate on the "repetitions" field.
func RepetitionsGTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldRepetitions, v))
}

// RepetitionsLT applies the LT predicate on the "repetitions" field.
func RepetitionsLT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldRepetitions, v))
}

// RepetitionsLTE applies the LTE predicate on the "repetitions" field.
func RepetitionsLTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldRepetitions, v))
}

// NextReviewEQ applies the EQ predicate on the "next_review" field.
func NextReviewEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldNextReview, v))
}

// NextReviewNEQ applies the NEQ predicate on the "next_review" field.
func NextReviewNEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldNextReview, v))
}

// NextReviewIn applies the In predicate on the "next_review" field.
func NextReviewIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldNextReview, vs...))
}

// NextReviewNotIn applies the NotIn predicate on the "next_review" field.
func NextReviewNotIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldNextReview, vs...))
}

// NextReviewGT applies the GT predicate on the "next_review" field.
func NextReviewGT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldNextReview, v))
}

// NextReviewGTE applies the GTE predicate on the "next_review" field.
func NextReviewGTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldNextReview, v))
}

// NextReviewLT applies the LT predicate on the "next_review" field.
func NextReviewLT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldNextReview, v))
}

// NextReviewLTE applies the LTE predicate on the "next_review" field.
func NextReviewLTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldNextReview, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewRecord) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewRecord) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewRecord) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.NotPredicates(p))
}
