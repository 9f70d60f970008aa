// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/moh-dev-stack/quran-memorise-sub000/ent/predicate"
	"github.com/moh-dev-stack/quran-memorise-sub000/ent/reviewrecord"
)

// ReviewRecordUpdate is the builder for updating ReviewRecord entities.
type ReviewRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewRecordMutation
}

// Where appends a list predicates to the ReviewRecordUpdate builder.
func (_u *ReviewRecordUpdate) Where(ps ...predicate.ReviewRecord) *ReviewRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWordID sets the "word_id" field.
func (_u *ReviewRecordUpdate) SetWordID(v string) *ReviewRecordUpdate {
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableWordID(v *string) *ReviewRecordUpdate {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewRecordUpdate) SetEaseFactor(v float64) *ReviewRecordUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableEaseFactor(v *float64) *ReviewRecordUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewRecordUpdate) AddEaseFactor(v float64) *ReviewRecordUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewRecordUpdate) SetIntervalDays(v int) *ReviewRecordUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableIntervalDays(v *int) *ReviewRecordUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewRecordUpdate) AddIntervalDays(v int) *ReviewRecordUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ReviewRecordUpdate) SetRepetitions(v int) *ReviewRecordUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableRepetitions(v *int) *ReviewRecordUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ReviewRecordUpdate) AddRepetitions(v int) *ReviewRecordUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ReviewRecordUpdate) SetNextReview(v time.Time) *ReviewRecordUpdate {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableNextReview(v *time.Time) *ReviewRecordUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewRecordUpdate) SetUpdatedAt(v time.Time) *ReviewRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReviewRecordMutation object of the builder.
func (_u *ReviewRecordUpdate) Mutation() *ReviewRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewRecordUpdate) check() error {
	if v, ok := _u.mutation.WordID(); ok {
		if err := reviewrecord.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.word_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewrecord.Table, reviewrecord.Columns, sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(reviewrecord.FieldWordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewrecord.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewrecord.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(reviewrecord.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(reviewrecord.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(reviewrecord.FieldNextReview, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewRecordUpdateOne is the builder for updating a single ReviewRecord entity.
type ReviewRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewRecordMutation
}

// SetWordID sets the "word_id" field.
func (_u *ReviewRecordUpdateOne) SetWordID(v string) *ReviewRecordUpdateOne {
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableWordID(v *string) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewRecordUpdateOne) SetEaseFactor(v float64) *ReviewRecordUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableEaseFactor(v *float64) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewRecordUpdateOne) AddEaseFactor(v float64) *ReviewRecordUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewRecordUpdateOne) SetIntervalDays(v int) *ReviewRecordUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableIntervalDays(v *int) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewRecordUpdateOne) AddIntervalDays(v int) *ReviewRecordUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ReviewRecordUpdateOne) SetRepetitions(v int) *ReviewRecordUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableRepetitions(v *int) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ReviewRecordUpdateOne) AddRepetitions(v int) *ReviewRecordUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ReviewRecordUpdateOne) SetNextReview(v time.Time) *ReviewRecordUpdateOne {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableNextReview(v *time.Time) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewRecordUpdateOne) SetUpdatedAt(v time.Time) *ReviewRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReviewRecordMutation object of the builder.
func (_u *ReviewRecordUpdateOne) Mutation() *ReviewRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewRecordUpdate builder.
func (_u *ReviewRecordUpdateOne) Where(ps ...predicate.ReviewRecord) *ReviewRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewRecordUpdateOne) Select(field string, fields ...string) *ReviewRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewRecord entity.
func (_u *ReviewRecordUpdateOne) Save(ctx context.Context) (*ReviewRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewRecordUpdateOne) SaveX(ctx context.Context) *ReviewRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewRecordUpdateOne) check() error {
	if v, ok := _u.mutation.WordID(); ok {
		if err := reviewrecord.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.word_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewRecordUpdateOne) sqlSave(ctx context.Context) (_node *ReviewRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewrecord.Table, reviewrecord.Columns, sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewrecord.FieldID)
		for _, f := range fields {
			if !reviewrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(reviewrecord.FieldWordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewrecord.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewrecord.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(reviewrecord.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(reviewrecord.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(reviewrecord.FieldNextReview, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ReviewRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
