// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/moh-dev-stack/quran-memorise-sub000/ent/answerevent"
)

// AnswerEventCreate is the builder for creating a AnswerEvent entity.
type AnswerEventCreate struct {
	config
	mutation *AnswerEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnswerEventCreate) SetSequence(v int64) *AnswerEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnswerEventCreate) SetTimestamp(v time.Time) *AnswerEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableTimestamp(v *time.Time) *AnswerEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AnswerEventCreate) SetSessionID(v string) *AnswerEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *AnswerEventCreate) SetQuestionType(v string) *AnswerEventCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetSurahNumber sets the "surah_number" field.
func (_c *AnswerEventCreate) SetSurahNumber(v int) *AnswerEventCreate {
	_c.mutation.SetSurahNumber(v)
	return _c
}

// SetNillableSurahNumber sets the "surah_number" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableSurahNumber(v *int) *AnswerEventCreate {
	if v != nil {
		_c.SetSurahNumber(*v)
	}
	return _c
}

// SetVerseNumber sets the "verse_number" field.
func (_c *AnswerEventCreate) SetVerseNumber(v int) *AnswerEventCreate {
	_c.mutation.SetVerseNumber(v)
	return _c
}

// SetNillableVerseNumber sets the "verse_number" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableVerseNumber(v *int) *AnswerEventCreate {
	if v != nil {
		_c.SetVerseNumber(*v)
	}
	return _c
}

// SetWordID sets the "word_id" field.
func (_c *AnswerEventCreate) SetWordID(v string) *AnswerEventCreate {
	_c.mutation.SetWordID(v)
	return _c
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableWordID(v *string) *AnswerEventCreate {
	if v != nil {
		_c.SetWordID(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AnswerEventCreate) SetCorrect(v bool) *AnswerEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetHintUsed sets the "hint_used" field.
func (_c *AnswerEventCreate) SetHintUsed(v bool) *AnswerEventCreate {
	_c.mutation.SetHintUsed(v)
	return _c
}

// SetNillableHintUsed sets the "hint_used" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableHintUsed(v *bool) *AnswerEventCreate {
	if v != nil {
		_c.SetHintUsed(*v)
	}
	return _c
}

// SetPoints sets the "points" field.
func (_c *AnswerEventCreate) SetPoints(v int) *AnswerEventCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetMaxPoints sets the "max_points" field.
func (_c *AnswerEventCreate) SetMaxPoints(v int) *AnswerEventCreate {
	_c.mutation.SetMaxPoints(v)
	return _c
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_c *AnswerEventCreate) Mutation() *AnswerEventMutation {
	return _c.mutation
}

// Save creates the AnswerEvent in the database.
func (_c *AnswerEventCreate) Save(ctx context.Context) (*AnswerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerEventCreate) SaveX(ctx context.Context) *AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := answerevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SurahNumber(); !ok {
		v := answerevent.DefaultSurahNumber
		_c.mutation.SetSurahNumber(v)
	}
	if _, ok := _c.mutation.VerseNumber(); !ok {
		v := answerevent.DefaultVerseNumber
		_c.mutation.SetVerseNumber(v)
	}
	if _, ok := _c.mutation.HintUsed(); !ok {
		v := answerevent.DefaultHintUsed
		_c.mutation.SetHintUsed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnswerEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnswerEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnswerEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "AnswerEvent.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := answerevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SurahNumber(); !ok {
		return &ValidationError{Name: "surah_number", err: errors.New(`ent: missing required field "AnswerEvent.surah_number"`)}
	}
	if _, ok := _c.mutation.VerseNumber(); !ok {
		return &ValidationError{Name: "verse_number", err: errors.New(`ent: missing required field "AnswerEvent.verse_number"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AnswerEvent.correct"`)}
	}
	if _, ok := _c.mutation.HintUsed(); !ok {
		return &ValidationError{Name: "hint_used", err: errors.New(`ent: missing required field "AnswerEvent.hint_used"`)}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "AnswerEvent.points"`)}
	}
	if _, ok := _c.mutation.MaxPoints(); !ok {
		return &ValidationError{Name: "max_points", err: errors.New(`ent: missing required field "AnswerEvent.max_points"`)}
	}
	return nil
}

func (_c *AnswerEventCreate) sqlSave(ctx context.Context) (*AnswerEvent, error) {
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

func (_c *AnswerEventCreate) createSpec() (*AnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerevent.Table, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(answerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(answerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(answerevent.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.SurahNumber(); ok {
		_spec.SetField(answerevent.FieldSurahNumber, field.TypeInt, value)
		_node.SurahNumber = value
	}
	if value, ok := _c.mutation.VerseNumber(); ok {
		_spec.SetField(answerevent.FieldVerseNumber, field.TypeInt, value)
		_node.VerseNumber = value
	}
	if value, ok := _c.mutation.WordID(); ok {
		_spec.SetField(answerevent.FieldWordID, field.TypeString, value)
		_node.WordID = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.HintUsed(); ok {
		_spec.SetField(answerevent.FieldHintUsed, field.TypeBool, value)
		_node.HintUsed = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(answerevent.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.MaxPoints(); ok {
		_spec.SetField(answerevent.FieldMaxPoints, field.TypeInt, value)
		_node.MaxPoints = value
	}
	return _node, _spec
}

// AnswerEventCreateBulk is the builder for creating many AnswerEvent entities in bulk.
type AnswerEventCreateBulk struct {
	config
	err      error
	builders []*AnswerEventCreate
}

// Save creates the AnswerEvent entities in the database.
func (_c *AnswerEventCreateBulk) Save(ctx context.Context) ([]*AnswerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerEventMutation)
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
func (_c *AnswerEventCreateBulk) SaveX(ctx context.Context) []*AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
