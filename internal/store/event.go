package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"

	"github.com/moh-dev-stack/quran-memorise-sub000/ent"
	"github.com/moh-dev-stack/quran-memorise-sub000/ent/sessionevent"
)

// sequenceCounter manages the global monotonic sequence number shared across
// all event types. Each event type lives in its own ent-managed table, so
// per-table auto-increment IDs can't establish cross-type ordering. This
// shared counter assigns a single increasing sequence to every event
// regardless of type, enabling:
//
//   - Cross-type ordering (e.g. did the answer land before the session end?)
//   - Append-only guarantees (events are never reordered)
//
// Uses raw SQL outside ent because ent doesn't support database-level atomic
// counters. The mutex serializes within the process; the RETURNING clause
// makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionType(data.QuestionType).
		SetSurahNumber(data.SurahNumber).
		SetVerseNumber(data.VerseNumber).
		SetCorrect(data.Correct).
		SetHintUsed(data.HintUsed).
		SetPoints(data.Points).
		SetMaxPoints(data.MaxPoints)

	if data.WordID != "" {
		builder = builder.SetWordID(data.WordID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetKind(data.Kind).
		SetAction(data.Action).
		SetSurahNumber(data.SurahNumber).
		SetQuestionsServed(data.QuestionsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetPoints(data.Points).
		SetMaxPoints(data.MaxPoints).
		SetDurationSecs(data.DurationSecs)

	if data.Mode != "" {
		builder = builder.SetMode(data.Mode)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) Summary(ctx context.Context) (Summary, error) {
	events, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("query answer events: %w", err)
	}

	sum := Summary{}
	byType := make(map[string]*TypeStats)
	for _, e := range events {
		sum.TotalAnswers++
		sum.Points += e.Points
		sum.MaxPoints += e.MaxPoints
		if e.Correct {
			sum.CorrectAnswers++
		}

		ts, ok := byType[e.QuestionType]
		if !ok {
			ts = &TypeStats{QuestionType: e.QuestionType}
			byType[e.QuestionType] = ts
		}
		ts.Answered++
		ts.Points += e.Points
		ts.MaxPoints += e.MaxPoints
		if e.Correct {
			ts.Correct++
		}
	}

	for _, ts := range byType {
		sum.ByType = append(sum.ByType, *ts)
	}
	sort.Slice(sum.ByType, func(i, j int) bool {
		return sum.ByType[i].QuestionType < sum.ByType[j].QuestionType
	})
	return sum, nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	out := make([]SessionSummary, 0, len(events))
	for _, e := range events {
		out = append(out, SessionSummary{
			SessionID:       e.SessionID,
			Kind:            e.Kind,
			SurahNumber:     e.SurahNumber,
			Mode:            e.Mode,
			QuestionsServed: e.QuestionsServed,
			CorrectAnswers:  e.CorrectAnswers,
			Points:          e.Points,
			MaxPoints:       e.MaxPoints,
			Timestamp:       e.Timestamp,
		})
	}
	return out, nil
}
