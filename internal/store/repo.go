package store

import (
	"context"
	"time"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/srs"
)

// AnswerEventData captures one answered question for the event log.
type AnswerEventData struct {
	SessionID    string
	QuestionType string
	SurahNumber  int
	VerseNumber  int
	WordID       string
	Correct      bool
	HintUsed     bool
	Points       int
	MaxPoints    int
}

// SessionEventData captures a session lifecycle event. The totals are only
// meaningful on the end event.
type SessionEventData struct {
	SessionID       string
	Kind            string
	Action          string
	SurahNumber     int
	Mode            string
	QuestionsServed int
	CorrectAnswers  int
	Points          int
	MaxPoints       int
	DurationSecs    int
}

// SessionSummary is one completed session as read back for the stats view.
type SessionSummary struct {
	SessionID       string
	Kind            string
	SurahNumber     int
	Mode            string
	QuestionsServed int
	CorrectAnswers  int
	Points          int
	MaxPoints       int
	Timestamp       time.Time
}

// TypeStats aggregates answers for one question type.
type TypeStats struct {
	QuestionType string
	Answered     int
	Correct      int
	Points       int
	MaxPoints    int
}

// Summary is the all-time aggregate over the answer log.
type Summary struct {
	TotalAnswers   int
	CorrectAnswers int
	Points         int
	MaxPoints      int
	ByType         []TypeStats
}

// EventRepo provides append and aggregate access to the event log.
type EventRepo interface {
	// AppendAnswer records one answered question.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendSession records a session start or end.
	AppendSession(ctx context.Context, data SessionEventData) error

	// Summary aggregates the full answer log.
	Summary(ctx context.Context) (Summary, error)

	// RecentSessions returns up to limit completed sessions, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error)
}

// ReviewRepo persists per-word spaced-repetition state.
type ReviewRepo interface {
	// All loads every stored review state keyed by word ID.
	All(ctx context.Context) (map[string]srs.ReviewState, error)

	// Save upserts the state for one word.
	Save(ctx context.Context, wordID string, state srs.ReviewState) error
}
