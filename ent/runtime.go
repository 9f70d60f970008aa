// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/moh-dev-stack/quran-memorise-sub000/ent/answerevent"
	"github.com/moh-dev-stack/quran-memorise-sub000/ent/reviewrecord"
	"github.com/moh-dev-stack/quran-memorise-sub000/ent/schema"
	"github.com/moh-dev-stack/quran-memorise-sub000/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[1].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescSurahNumber is the schema descriptor for surah_number field.
	answereventDescSurahNumber := answereventFields[2].Descriptor()
	// answerevent.DefaultSurahNumber holds the default value on creation for the surah_number field.
	answerevent.DefaultSurahNumber = answereventDescSurahNumber.Default.(int)
	// answereventDescVerseNumber is the schema descriptor for verse_number field.
	answereventDescVerseNumber := answereventFields[3].Descriptor()
	// answerevent.DefaultVerseNumber holds the default value on creation for the verse_number field.
	answerevent.DefaultVerseNumber = answereventDescVerseNumber.Default.(int)
	// answereventDescHintUsed is the schema descriptor for hint_used field.
	answereventDescHintUsed := answereventFields[6].Descriptor()
	// answerevent.DefaultHintUsed holds the default value on creation for the hint_used field.
	answerevent.DefaultHintUsed = answereventDescHintUsed.Default.(bool)
	reviewrecordFields := schema.ReviewRecord{}.Fields()
	_ = reviewrecordFields
	// reviewrecordDescWordID is the schema descriptor for word_id field.
	reviewrecordDescWordID := reviewrecordFields[0].Descriptor()
	// reviewrecord.WordIDValidator is a validator for the "word_id" field. It is called by the builders before save.
	reviewrecord.WordIDValidator = reviewrecordDescWordID.Validators[0].(func(string) error)
	// reviewrecordDescEaseFactor is the schema descriptor for ease_factor field.
	reviewrecordDescEaseFactor := reviewrecordFields[1].Descriptor()
	// reviewrecord.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	reviewrecord.DefaultEaseFactor = reviewrecordDescEaseFactor.Default.(float64)
	// reviewrecordDescIntervalDays is the schema descriptor for interval_days field.
	reviewrecordDescIntervalDays := reviewrecordFields[2].Descriptor()
	// reviewrecord.DefaultIntervalDays holds the default value on creation for the interval_days field.
	reviewrecord.DefaultIntervalDays = reviewrecordDescIntervalDays.Default.(int)
	// reviewrecordDescRepetitions is the schema descriptor for repetitions field.
	reviewrecordDescRepetitions := reviewrecordFields[3].Descriptor()
	// reviewrecord.DefaultRepetitions holds the default value on creation for the repetitions field.
	reviewrecord.DefaultRepetitions = reviewrecordDescRepetitions.Default.(int)
	// reviewrecordDescUpdatedAt is the schema descriptor for updated_at field.
	reviewrecordDescUpdatedAt := reviewrecordFields[5].Descriptor()
	// reviewrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reviewrecord.DefaultUpdatedAt = reviewrecordDescUpdatedAt.Default.(func() time.Time)
	// reviewrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reviewrecord.UpdateDefaultUpdatedAt = reviewrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescKind is the schema descriptor for kind field.
	sessioneventDescKind := sessioneventFields[1].Descriptor()
	// sessionevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	sessionevent.KindValidator = sessioneventDescKind.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescSurahNumber is the schema descriptor for surah_number field.
	sessioneventDescSurahNumber := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultSurahNumber holds the default value on creation for the surah_number field.
	sessionevent.DefaultSurahNumber = sessioneventDescSurahNumber.Default.(int)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescPoints is the schema descriptor for points field.
	sessioneventDescPoints := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultPoints holds the default value on creation for the points field.
	sessionevent.DefaultPoints = sessioneventDescPoints.Default.(int)
	// sessioneventDescMaxPoints is the schema descriptor for max_points field.
	sessioneventDescMaxPoints := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultMaxPoints holds the default value on creation for the max_points field.
	sessionevent.DefaultMaxPoints = sessioneventDescMaxPoints.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
