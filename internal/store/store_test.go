package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/srs"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestReviewRepo_SaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()

	states, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, states)

	next := time.Now().UTC().Truncate(time.Second).AddDate(0, 0, 6)
	err = repo.Save(ctx, "w-001", srs.ReviewState{
		EaseFactor:  2.5,
		Interval:    6,
		Repetitions: 2,
		NextReview:  next,
	})
	require.NoError(t, err)

	states, err = repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, states, 1)
	got := states["w-001"]
	assert.Equal(t, 2.5, got.EaseFactor)
	assert.Equal(t, 6, got.Interval)
	assert.Equal(t, 2, got.Repetitions)
	assert.True(t, got.NextReview.Equal(next))
}

func TestReviewRepo_SaveUpdatesInPlace(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Save(ctx, "w-001", srs.ReviewState{
		EaseFactor: 2.5, Interval: 1, Repetitions: 1, NextReview: now.AddDate(0, 0, 1),
	}))
	require.NoError(t, repo.Save(ctx, "w-001", srs.ReviewState{
		EaseFactor: 2.6, Interval: 6, Repetitions: 2, NextReview: now.AddDate(0, 0, 6),
	}))

	states, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, states, 1, "save must upsert, not duplicate")
	assert.Equal(t, 6, states["w-001"].Interval)
}

func TestEventRepo_Summary(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", QuestionType: "translation", SurahNumber: 112, VerseNumber: 1, Correct: true, Points: 10, MaxPoints: 10},
		{SessionID: "s1", QuestionType: "translation", SurahNumber: 112, VerseNumber: 2, Correct: false, Points: 0, MaxPoints: 10},
		{SessionID: "s1", QuestionType: "missing-word", SurahNumber: 112, VerseNumber: 3, Correct: true, HintUsed: true, Points: 4, MaxPoints: 10},
	}
	for _, a := range answers {
		require.NoError(t, repo.AppendAnswer(ctx, a))
	}

	sum, err := repo.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.TotalAnswers)
	assert.Equal(t, 2, sum.CorrectAnswers)
	assert.Equal(t, 14, sum.Points)
	assert.Equal(t, 30, sum.MaxPoints)

	require.Len(t, sum.ByType, 2)
	assert.Equal(t, "missing-word", sum.ByType[0].QuestionType)
	assert.Equal(t, "translation", sum.ByType[1].QuestionType)
	assert.Equal(t, 2, sum.ByType[1].Answered)
	assert.Equal(t, 1, sum.ByType[1].Correct)
}

func TestEventRepo_RecentSessions(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		id := string(rune('a' + i))
		require.NoError(t, repo.AppendSession(ctx, SessionEventData{
			SessionID: id, Kind: "quiz", Action: "start", SurahNumber: 112,
		}))
		require.NoError(t, repo.AppendSession(ctx, SessionEventData{
			SessionID: id, Kind: "quiz", Action: "end", SurahNumber: 112,
			Mode: "translation", QuestionsServed: 4, CorrectAnswers: 3,
			Points: 30, MaxPoints: 40, DurationSecs: 90,
		}))
	}

	sessions, err := repo.RecentSessions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, sessions, 2, "limit and start-event filtering")
	assert.Equal(t, "c", sessions[0].SessionID, "newest first")
	assert.Equal(t, "b", sessions[1].SessionID)
	assert.Equal(t, 4, sessions[0].QuestionsServed)
	assert.Equal(t, "translation", sessions[0].Mode)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		require.NoError(t, err)
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		assert.Equal(t, int64(i+1), seq)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.ReviewRepo().Save(ctx, "w-001", srs.ReviewState{
		EaseFactor: 2.5, Interval: 1, Repetitions: 1, NextReview: time.Now(),
	}))
	require.NoError(t, s.EventRepo().AppendAnswer(ctx, AnswerEventData{
		SessionID: "s1", QuestionType: "translation", Correct: true, Points: 10, MaxPoints: 10,
	}))

	require.NoError(t, s.Reset(ctx))

	states, err := s.ReviewRepo().All(ctx)
	require.NoError(t, err)
	assert.Empty(t, states)

	sum, err := s.EventRepo().Summary(ctx)
	require.NoError(t, err)
	assert.Zero(t, sum.TotalAnswers)

	seq, err := s.seq.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq, "sequence restarts after reset")
}
