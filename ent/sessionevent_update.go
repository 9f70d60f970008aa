// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/moh-dev-stack/quran-memorise-sub000/ent/predicate"
	"github.com/moh-dev-stack/quran-memorise-sub000/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *SessionEventUpdate) SetKind(v string) *SessionEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableKind(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetSurahNumber sets the "surah_number" field.
func (_u *SessionEventUpdate) SetSurahNumber(v int) *SessionEventUpdate {
	_u.mutation.ResetSurahNumber()
	_u.mutation.SetSurahNumber(v)
	return _u
}

// SetNillableSurahNumber sets the "surah_number" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSurahNumber(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetSurahNumber(*v)
	}
	return _u
}

// AddSurahNumber adds value to the "surah_number" field.
func (_u *SessionEventUpdate) AddSurahNumber(v int) *SessionEventUpdate {
	_u.mutation.AddSurahNumber(v)
	return _u
}

// SetMode sets the "mode" field.
func (_u *SessionEventUpdate) SetMode(v string) *SessionEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableMode(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// ClearMode clears the value of the "mode" field.
func (_u *SessionEventUpdate) ClearMode() *SessionEventUpdate {
	_u.mutation.ClearMode()
	return _u
}

// SetQuestionsServed sets the "questions_served" field.
func (_u *SessionEventUpdate) SetQuestionsServed(v int) *SessionEventUpdate {
	_u.mutation.ResetQuestionsServed()
	_u.mutation.SetQuestionsServed(v)
	return _u
}

// SetNillableQuestionsServed sets the "questions_served" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableQuestionsServed(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetQuestionsServed(*v)
	}
	return _u
}

// AddQuestionsServed adds value to the "questions_served" field.
func (_u *SessionEventUpdate) AddQuestionsServed(v int) *SessionEventUpdate {
	_u.mutation.AddQuestionsServed(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *SessionEventUpdate) SetCorrectAnswers(v int) *SessionEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableCorrectAnswers(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *SessionEventUpdate) AddCorrectAnswers(v int) *SessionEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetPoints sets the "points" field.
func (_u *SessionEventUpdate) SetPoints(v int) *SessionEventUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillablePoints(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *SessionEventUpdate) AddPoints(v int) *SessionEventUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetMaxPoints sets the "max_points" field.
func (_u *SessionEventUpdate) SetMaxPoints(v int) *SessionEventUpdate {
	_u.mutation.ResetMaxPoints()
	_u.mutation.SetMaxPoints(v)
	return _u
}

// SetNillableMaxPoints sets the "max_points" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableMaxPoints(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetMaxPoints(*v)
	}
	return _u
}

// AddMaxPoints adds value to the "max_points" field.
func (_u *SessionEventUpdate) AddMaxPoints(v int) *SessionEventUpdate {
	_u.mutation.AddMaxPoints(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdate) SetDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDurationSecs(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdate) AddDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := sessionevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(sessionevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.SurahNumber(); ok {
		_spec.SetField(sessionevent.FieldSurahNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSurahNumber(); ok {
		_spec.AddField(sessionevent.FieldSurahNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(sessionevent.FieldMode, field.TypeString, value)
	}
	if _u.mutation.ModeCleared() {
		_spec.ClearField(sessionevent.FieldMode, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionsServed(); ok {
		_spec.SetField(sessionevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsServed(); ok {
		_spec.AddField(sessionevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(sessionevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(sessionevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxPoints(); ok {
		_spec.SetField(sessionevent.FieldMaxPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxPoints(); ok {
		_spec.AddField(sessionevent.FieldMaxPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *SessionEventUpdateOne) SetKind(v string) *SessionEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableKind(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetSurahNumber sets the "surah_number" field.
func (_u *SessionEventUpdateOne) SetSurahNumber(v int) *SessionEventUpdateOne {
	_u.mutation.ResetSurahNumber()
	_u.mutation.SetSurahNumber(v)
	return _u
}

// SetNillableSurahNumber sets the "surah_number" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSurahNumber(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSurahNumber(*v)
	}
	return _u
}

// AddSurahNumber adds value to the "surah_number" field.
func (_u *SessionEventUpdateOne) AddSurahNumber(v int) *SessionEventUpdateOne {
	_u.mutation.AddSurahNumber(v)
	return _u
}

// SetMode sets the "mode" field.
func (_u *SessionEventUpdateOne) SetMode(v string) *SessionEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableMode(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// ClearMode clears the value of the "mode" field.
func (_u *SessionEventUpdateOne) ClearMode() *SessionEventUpdateOne {
	_u.mutation.ClearMode()
	return _u
}

// SetQuestionsServed sets the "questions_served" field.
func (_u *SessionEventUpdateOne) SetQuestionsServed(v int) *SessionEventUpdateOne {
	_u.mutation.ResetQuestionsServed()
	_u.mutation.SetQuestionsServed(v)
	return _u
}

// SetNillableQuestionsServed sets the "questions_served" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableQuestionsServed(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetQuestionsServed(*v)
	}
	return _u
}

// AddQuestionsServed adds value to the "questions_served" field.
func (_u *SessionEventUpdateOne) AddQuestionsServed(v int) *SessionEventUpdateOne {
	_u.mutation.AddQuestionsServed(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *SessionEventUpdateOne) SetCorrectAnswers(v int) *SessionEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableCorrectAnswers(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *SessionEventUpdateOne) AddCorrectAnswers(v int) *SessionEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetPoints sets the "points" field.
func (_u *SessionEventUpdateOne) SetPoints(v int) *SessionEventUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillablePoints(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *SessionEventUpdateOne) AddPoints(v int) *SessionEventUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetMaxPoints sets the "max_points" field.
func (_u *SessionEventUpdateOne) SetMaxPoints(v int) *SessionEventUpdateOne {
	_u.mutation.ResetMaxPoints()
	_u.mutation.SetMaxPoints(v)
	return _u
}

// SetNillableMaxPoints sets the "max_points" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableMaxPoints(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetMaxPoints(*v)
	}
	return _u
}

// AddMaxPoints adds value to the "max_points" field.
func (_u *SessionEventUpdateOne) AddMaxPoints(v int) *SessionEventUpdateOne {
	_u.mutation.AddMaxPoints(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdateOne) SetDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDurationSecs(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdateOne) AddDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := sessionevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(sessionevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.SurahNumber(); ok {
		_spec.SetField(sessionevent.FieldSurahNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSurahNumber(); ok {
		_spec.AddField(sessionevent.FieldSurahNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(sessionevent.FieldMode, field.TypeString, value)
	}
	if _u.mutation.ModeCleared() {
		_spec.ClearField(sessionevent.FieldMode, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionsServed(); ok {
		_spec.SetField(sessionevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsServed(); ok {
		_spec.AddField(sessionevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(sessionevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(sessionevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxPoints(); ok {
		_spec.SetField(sessionevent.FieldMaxPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxPoints(); ok {
		_spec.AddField(sessionevent.FieldMaxPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
