// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/moh-dev-stack/quran-memorise-sub000/ent/answerevent"
	"github.com/moh-dev-stack/quran-memorise-sub000/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *AnswerEventUpdate) SetQuestionType(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionType(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetSurahNumber sets the "surah_number" field.
func (_u *AnswerEventUpdate) SetSurahNumber(v int) *AnswerEventUpdate {
	_u.mutation.ResetSurahNumber()
	_u.mutation.SetSurahNumber(v)
	return _u
}

// SetNillableSurahNumber sets the "surah_number" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSurahNumber(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetSurahNumber(*v)
	}
	return _u
}

// AddSurahNumber adds value to the "surah_number" field.
func (_u *AnswerEventUpdate) AddSurahNumber(v int) *AnswerEventUpdate {
	_u.mutation.AddSurahNumber(v)
	return _u
}

// SetVerseNumber sets the "verse_number" field.
func (_u *AnswerEventUpdate) SetVerseNumber(v int) *AnswerEventUpdate {
	_u.mutation.ResetVerseNumber()
	_u.mutation.SetVerseNumber(v)
	return _u
}

// SetNillableVerseNumber sets the "verse_number" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableVerseNumber(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetVerseNumber(*v)
	}
	return _u
}

// AddVerseNumber adds value to the "verse_number" field.
func (_u *AnswerEventUpdate) AddVerseNumber(v int) *AnswerEventUpdate {
	_u.mutation.AddVerseNumber(v)
	return _u
}

// SetWordID sets the "word_id" field.
func (_u *AnswerEventUpdate) SetWordID(v string) *AnswerEventUpdate {
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableWordID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// ClearWordID clears the value of the "word_id" field.
func (_u *AnswerEventUpdate) ClearWordID() *AnswerEventUpdate {
	_u.mutation.ClearWordID()
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetHintUsed sets the "hint_used" field.
func (_u *AnswerEventUpdate) SetHintUsed(v bool) *AnswerEventUpdate {
	_u.mutation.SetHintUsed(v)
	return _u
}

// SetNillableHintUsed sets the "hint_used" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableHintUsed(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetHintUsed(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *AnswerEventUpdate) SetPoints(v int) *AnswerEventUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillablePoints(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *AnswerEventUpdate) AddPoints(v int) *AnswerEventUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetMaxPoints sets the "max_points" field.
func (_u *AnswerEventUpdate) SetMaxPoints(v int) *AnswerEventUpdate {
	_u.mutation.ResetMaxPoints()
	_u.mutation.SetMaxPoints(v)
	return _u
}

// SetNillableMaxPoints sets the "max_points" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableMaxPoints(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetMaxPoints(*v)
	}
	return _u
}

// AddMaxPoints adds value to the "max_points" field.
func (_u *AnswerEventUpdate) AddMaxPoints(v int) *AnswerEventUpdate {
	_u.mutation.AddMaxPoints(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := answerevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(answerevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SurahNumber(); ok {
		_spec.SetField(answerevent.FieldSurahNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSurahNumber(); ok {
		_spec.AddField(answerevent.FieldSurahNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VerseNumber(); ok {
		_spec.SetField(answerevent.FieldVerseNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVerseNumber(); ok {
		_spec.AddField(answerevent.FieldVerseNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(answerevent.FieldWordID, field.TypeString, value)
	}
	if _u.mutation.WordIDCleared() {
		_spec.ClearField(answerevent.FieldWordID, field.TypeString)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HintUsed(); ok {
		_spec.SetField(answerevent.FieldHintUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(answerevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(answerevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxPoints(); ok {
		_spec.SetField(answerevent.FieldMaxPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxPoints(); ok {
		_spec.AddField(answerevent.FieldMaxPoints, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *AnswerEventUpdateOne) SetQuestionType(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionType(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetSurahNumber sets the "surah_number" field.
func (_u *AnswerEventUpdateOne) SetSurahNumber(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetSurahNumber()
	_u.mutation.SetSurahNumber(v)
	return _u
}

// SetNillableSurahNumber sets the "surah_number" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSurahNumber(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSurahNumber(*v)
	}
	return _u
}

// AddSurahNumber adds value to the "surah_number" field.
func (_u *AnswerEventUpdateOne) AddSurahNumber(v int) *AnswerEventUpdateOne {
	_u.mutation.AddSurahNumber(v)
	return _u
}

// SetVerseNumber sets the "verse_number" field.
func (_u *AnswerEventUpdateOne) SetVerseNumber(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetVerseNumber()
	_u.mutation.SetVerseNumber(v)
	return _u
}

// SetNillableVerseNumber sets the "verse_number" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableVerseNumber(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetVerseNumber(*v)
	}
	return _u
}

// AddVerseNumber adds value to the "verse_number" field.
func (_u *AnswerEventUpdateOne) AddVerseNumber(v int) *AnswerEventUpdateOne {
	_u.mutation.AddVerseNumber(v)
	return _u
}

// SetWordID sets the "word_id" field.
func (_u *AnswerEventUpdateOne) SetWordID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableWordID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// ClearWordID clears the value of the "word_id" field.
func (_u *AnswerEventUpdateOne) ClearWordID() *AnswerEventUpdateOne {
	_u.mutation.ClearWordID()
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetHintUsed sets the "hint_used" field.
func (_u *AnswerEventUpdateOne) SetHintUsed(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetHintUsed(v)
	return _u
}

// SetNillableHintUsed sets the "hint_used" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableHintUsed(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetHintUsed(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *AnswerEventUpdateOne) SetPoints(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillablePoints(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *AnswerEventUpdateOne) AddPoints(v int) *AnswerEventUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetMaxPoints sets the "max_points" field.
func (_u *AnswerEventUpdateOne) SetMaxPoints(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetMaxPoints()
	_u.mutation.SetMaxPoints(v)
	return _u
}

// SetNillableMaxPoints sets the "max_points" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableMaxPoints(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetMaxPoints(*v)
	}
	return _u
}

// AddMaxPoints adds value to the "max_points" field.
func (_u *AnswerEventUpdateOne) AddMaxPoints(v int) *AnswerEventUpdateOne {
	_u.mutation.AddMaxPoints(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := answerevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(answerevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SurahNumber(); ok {
		_spec.SetField(answerevent.FieldSurahNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSurahNumber(); ok {
		_spec.AddField(answerevent.FieldSurahNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VerseNumber(); ok {
		_spec.SetField(answerevent.FieldVerseNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVerseNumber(); ok {
		_spec.AddField(answerevent.FieldVerseNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(answerevent.FieldWordID, field.TypeString, value)
	}
	if _u.mutation.WordIDCleared() {
		_spec.ClearField(answerevent.FieldWordID, field.TypeString)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HintUsed(); ok {
		_spec.SetField(answerevent.FieldHintUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(answerevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(answerevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxPoints(); ok {
		_spec.SetField(answerevent.FieldMaxPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxPoints(); ok {
		_spec.AddField(answerevent.FieldMaxPoints, field.TypeInt, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
