package study

import (
	"reflect"
	"testing"
	"time"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/corpus"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/scoring"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/srs"
)

func testWords(ids ...string) []corpus.Word {
	ws := make([]corpus.Word, len(ids))
	for i, id := range ids {
		ws[i] = corpus.Word{
			ID:              id,
			Arabic:          "كلمة",
			Transliteration: "kalima",
			Translation:     "word",
			PartOfSpeech:    corpus.PartNoun,
			Frequency:       1,
		}
	}
	return ws
}

func TestSelectLearningSet(t *testing.T) {
	s := NewSession().SelectLearningSet(testWords("a", "b"))
	if s.Phase != PhaseReviewing || len(s.Words) != 2 {
		t.Errorf("state after select: %+v", s)
	}

	empty := NewSession()
	if got := empty.SelectLearningSet(nil); !reflect.DeepEqual(got, empty) {
		t.Error("empty set changed state")
	}
}

func TestSubmitAnswer_RecordsScoreAndRating(t *testing.T) {
	s := NewSession().SelectLearningSet(testWords("a", "b"))
	s = s.SubmitAnswer(true, false, scoring.Score(scoring.TypeWordMeaning, true, false))

	if len(s.Scores) != 1 || s.Scores[0].Points != 10 {
		t.Errorf("scores = %+v", s.Scores)
	}
	want := Rating{WordID: "a", Quality: 4}
	if len(s.Ratings) != 1 || s.Ratings[0] != want {
		t.Errorf("ratings = %+v, want [%+v]", s.Ratings, want)
	}
}

func TestSubmitAnswer_EasyAndIncorrectQualities(t *testing.T) {
	s := NewSession().SelectLearningSet(testWords("a", "b", "c"))

	s = s.SubmitAnswer(true, true, scoring.ScoreResult{Points: 10, MaxPoints: 10})
	s = s.Next()
	s = s.SubmitAnswer(false, false, scoring.ScoreResult{Points: 0, MaxPoints: 10})

	if s.Ratings[0].Quality != 5 {
		t.Errorf("easy recall quality = %d, want 5", s.Ratings[0].Quality)
	}
	if s.Ratings[1].Quality != 0 {
		t.Errorf("incorrect recall quality = %d, want 0", s.Ratings[1].Quality)
	}
}

func TestSubmitAnswer_Idempotent(t *testing.T) {
	s := NewSession().SelectLearningSet(testWords("a"))
	s = s.SubmitAnswer(true, false, scoring.ScoreResult{Points: 10, MaxPoints: 10})

	again := s.SubmitAnswer(false, false, scoring.ScoreResult{Points: 0, MaxPoints: 10})
	if !reflect.DeepEqual(again, s) {
		t.Error("second submit changed state")
	}
}

func TestMarkKnownAndNeedsReview(t *testing.T) {
	s := NewSession().SelectLearningSet(testWords("a", "b"))

	s = s.MarkKnown()
	if len(s.Ratings) != 1 || s.Ratings[0].Quality != 5 {
		t.Errorf("ratings after MarkKnown = %+v", s.Ratings)
	}
	if len(s.Scores) != 0 {
		t.Errorf("MarkKnown recorded a score: %+v", s.Scores)
	}

	s = s.Next().MarkNeedsReview()
	if len(s.Ratings) != 2 || s.Ratings[1].Quality != 0 {
		t.Errorf("ratings after MarkNeedsReview = %+v", s.Ratings)
	}
}

func TestNavigation(t *testing.T) {
	s := NewSession().SelectLearningSet(testWords("a", "b", "c"))

	s = s.Next()
	if s.Index != 1 {
		t.Errorf("Index after Next = %d", s.Index)
	}

	s = s.Previous()
	if s.Index != 0 {
		t.Errorf("Index after Previous = %d", s.Index)
	}

	if got := s.Previous(); !reflect.DeepEqual(got, s) {
		t.Error("Previous at first word changed state")
	}

	s = s.JumpTo(2)
	if s.Index != 2 {
		t.Errorf("Index after JumpTo(2) = %d", s.Index)
	}
	if got := s.Next(); !reflect.DeepEqual(got, s) {
		t.Error("Next at last word changed state")
	}
	if got := s.JumpTo(7); !reflect.DeepEqual(got, s) {
		t.Error("JumpTo out of range changed state")
	}
}

func TestNavigation_ClearsAnswered(t *testing.T) {
	s := NewSession().SelectLearningSet(testWords("a", "b"))
	s = s.MarkKnown()
	s = s.Next()
	if s.Answered {
		t.Error("Answered not cleared by Next")
	}
}

func TestFinish(t *testing.T) {
	s := NewSession().SelectLearningSet(testWords("a"))
	s = s.Finish()
	if s.Phase != PhaseComplete {
		t.Errorf("Phase = %v, want PhaseComplete", s.Phase)
	}
	if got := s.Finish(); !reflect.DeepEqual(got, s) {
		t.Error("Finish on complete session changed state")
	}
}

func TestBuildLearningSet_Ordering(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	words := testWords("overdue-short", "overdue-long", "fresh", "scheduled")

	states := map[string]srs.ReviewState{
		"overdue-short": {EaseFactor: 2.5, Interval: 1, Repetitions: 1, NextReview: now.AddDate(0, 0, -1)},
		"overdue-long":  {EaseFactor: 2.5, Interval: 1, Repetitions: 1, NextReview: now.AddDate(0, 0, -5)},
		"scheduled":     {EaseFactor: 2.5, Interval: 6, Repetitions: 2, NextReview: now.AddDate(0, 0, 3)},
	}

	got := BuildLearningSet(words, states, now, 0)

	wantOrder := []string{"overdue-long", "overdue-short", "fresh", "scheduled"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d = %q, want %q (full: %v)", i, got[i].ID, id, ids(got))
		}
	}
}

func TestBuildLearningSet_Limit(t *testing.T) {
	now := time.Now()
	words := testWords("a", "b", "c", "d")
	got := BuildLearningSet(words, nil, now, 2)
	if len(got) != 2 {
		t.Errorf("limited set size = %d, want 2", len(got))
	}
}

func TestCountDue(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	words := testWords("due", "fresh", "future")
	states := map[string]srs.ReviewState{
		"due":    {NextReview: now.AddDate(0, 0, -1)},
		"future": {NextReview: now.AddDate(0, 0, 2)},
	}
	if got := CountDue(words, states, now); got != 2 {
		t.Errorf("CountDue = %d, want 2", got)
	}
}

func ids(ws []corpus.Word) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.ID
	}
	return out
}
