// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/moh-dev-stack/quran-memorise-sub000/ent/sessionevent"
)

// SessionEventCreate is the builder for creating a SessionEvent entity.
type SessionEventCreate struct {
	config
	mutation *SessionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SessionEventCreate) SetSequence(v int64) *SessionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SessionEventCreate) SetTimestamp(v time.Time) *SessionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableTimestamp(v *time.Time) *SessionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionEventCreate) SetSessionID(v string) *SessionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *SessionEventCreate) SetKind(v string) *SessionEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *SessionEventCreate) SetAction(v string) *SessionEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetSurahNumber sets the "surah_number" field.
func (_c *SessionEventCreate) SetSurahNumber(v int) *SessionEventCreate {
	_c.mutation.SetSurahNumber(v)
	return _c
}

// SetNillableSurahNumber sets the "surah_number" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableSurahNumber(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetSurahNumber(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *SessionEventCreate) SetMode(v string) *SessionEventCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableMode(v *string) *SessionEventCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetQuestionsServed sets the "questions_served" field.
func (_c *SessionEventCreate) SetQuestionsServed(v int) *SessionEventCreate {
	_c.mutation.SetQuestionsServed(v)
	return _c
}

// SetNillableQuestionsServed sets the "questions_served" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableQuestionsServed(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetQuestionsServed(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *SessionEventCreate) SetCorrectAnswers(v int) *SessionEventCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableCorrectAnswers(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetPoints sets the "points" field.
func (_c *SessionEventCreate) SetPoints(v int) *SessionEventCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillablePoints(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetPoints(*v)
	}
	return _c
}

// SetMaxPoints sets the "max_points" field.
func (_c *SessionEventCreate) SetMaxPoints(v int) *SessionEventCreate {
	_c.mutation.SetMaxPoints(v)
	return _c
}

// SetNillableMaxPoints sets the "max_points" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableMaxPoints(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetMaxPoints(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *SessionEventCreate) SetDurationSecs(v int) *SessionEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableDurationSecs(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the SessionEventMutation object of the builder.
func (_c *SessionEventCreate) Mutation() *SessionEventMutation {
	return _c.mutation
}

// Save creates the SessionEvent in the database.
func (_c *SessionEventCreate) Save(ctx context.Context) (*SessionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionEventCreate) SaveX(ctx context.Context) *SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := sessionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SurahNumber(); !ok {
		v := sessionevent.DefaultSurahNumber
		_c.mutation.SetSurahNumber(v)
	}
	if _, ok := _c.mutation.QuestionsServed(); !ok {
		v := sessionevent.DefaultQuestionsServed
		_c.mutation.SetQuestionsServed(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := sessionevent.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.Points(); !ok {
		v := sessionevent.DefaultPoints
		_c.mutation.SetPoints(v)
	}
	if _, ok := _c.mutation.MaxPoints(); !ok {
		v := sessionevent.DefaultMaxPoints
		_c.mutation.SetMaxPoints(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := sessionevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SessionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SessionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "SessionEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := sessionevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "SessionEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SurahNumber(); !ok {
		return &ValidationError{Name: "surah_number", err: errors.New(`ent: missing required field "SessionEvent.surah_number"`)}
	}
	if _, ok := _c.mutation.QuestionsServed(); !ok {
		return &ValidationError{Name: "questions_served", err: errors.New(`ent: missing required field "SessionEvent.questions_served"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "SessionEvent.correct_answers"`)}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "SessionEvent.points"`)}
	}
	if _, ok := _c.mutation.MaxPoints(); !ok {
		return &ValidationError{Name: "max_points", err: errors.New(`ent: missing required field "SessionEvent.max_points"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "SessionEvent.duration_secs"`)}
	}
	return nil
}

func (_c *SessionEventCreate) sqlSave(ctx context.Context) (*SessionEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionEventCreate) createSpec() (*SessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionevent.Table, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(sessionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(sessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(sessionevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.SurahNumber(); ok {
		_spec.SetField(sessionevent.FieldSurahNumber, field.TypeInt, value)
		_node.SurahNumber = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(sessionevent.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.QuestionsServed(); ok {
		_spec.SetField(sessionevent.FieldQuestionsServed, field.TypeInt, value)
		_node.QuestionsServed = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(sessionevent.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.MaxPoints(); ok {
		_spec.SetField(sessionevent.FieldMaxPoints, field.TypeInt, value)
		_node.MaxPoints = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// SessionEventCreateBulk is the builder for creating many SessionEvent entities in bulk.
type SessionEventCreateBulk struct {
	config
	err      error
	builders []*SessionEventCreate
}

// Save creates the SessionEvent entities in the database.
func (_c *SessionEventCreateBulk) Save(ctx context.Context) ([]*SessionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionEventCreateBulk) SaveX(ctx context.Context) []*SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
