package srs

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func mustUpdate(t *testing.T, s ReviewState, quality int, now time.Time) ReviewState {
	t.Helper()
	next, err := Update(s, quality, now)
	if err != nil {
		t.Fatalf("Update(q=%d): %v", quality, err)
	}
	return next
}

func TestNewReviewState(t *testing.T) {
	s := NewReviewState(testNow)
	if s.EaseFactor != InitialEase {
		t.Errorf("EaseFactor = %v, want %v", s.EaseFactor, InitialEase)
	}
	if s.Interval != 0 || s.Repetitions != 0 {
		t.Errorf("Interval/Repetitions = %d/%d, want 0/0", s.Interval, s.Repetitions)
	}
	if !s.NextReview.Equal(testNow) {
		t.Errorf("NextReview = %v, want %v", s.NextReview, testNow)
	}
}

// Worked example: a fresh item rated 4 three times walks the 1, 6, 15-day
// ladder with ease held at 2.5 (q=4 leaves ease unchanged).
func TestUpdate_WorkedExample(t *testing.T) {
	s := NewReviewState(testNow)

	s = mustUpdate(t, s, 4, testNow)
	if s.Repetitions != 1 || s.Interval != 1 {
		t.Fatalf("after first 4: rep=%d interval=%d, want 1/1", s.Repetitions, s.Interval)
	}
	if math.Abs(s.EaseFactor-2.5) > 1e-9 {
		t.Fatalf("after first 4: ease = %v, want 2.5", s.EaseFactor)
	}

	s = mustUpdate(t, s, 4, testNow.AddDate(0, 0, 1))
	if s.Repetitions != 2 || s.Interval != 6 {
		t.Fatalf("after second 4: rep=%d interval=%d, want 2/6", s.Repetitions, s.Interval)
	}

	day7 := testNow.AddDate(0, 0, 7)
	s = mustUpdate(t, s, 4, day7)
	if s.Repetitions != 3 || s.Interval != 15 {
		t.Fatalf("after third 4: rep=%d interval=%d, want 3/15", s.Repetitions, s.Interval)
	}
	if want := day7.AddDate(0, 0, 15); !s.NextReview.Equal(want) {
		t.Errorf("NextReview = %v, want %v", s.NextReview, want)
	}
}

func TestUpdate_PerfectRecallRaisesEase(t *testing.T) {
	s := NewReviewState(testNow)
	s = mustUpdate(t, s, 5, testNow)
	if math.Abs(s.EaseFactor-2.6) > 1e-9 {
		t.Errorf("ease after q=5 = %v, want 2.6", s.EaseFactor)
	}
}

func TestUpdate_FailureResets(t *testing.T) {
	for quality := 0; quality < 3; quality++ {
		s := ReviewState{EaseFactor: 2.5, Interval: 30, Repetitions: 7, NextReview: testNow}
		next := mustUpdate(t, s, quality, testNow)

		if next.Repetitions != 0 {
			t.Errorf("q=%d: repetitions = %d, want 0", quality, next.Repetitions)
		}
		if next.Interval != 1 {
			t.Errorf("q=%d: interval = %d, want 1", quality, next.Interval)
		}
		if next.EaseFactor >= s.EaseFactor {
			t.Errorf("q=%d: ease did not drop (%v -> %v)", quality, s.EaseFactor, next.EaseFactor)
		}
		if want := testNow.AddDate(0, 0, 1); !next.NextReview.Equal(want) {
			t.Errorf("q=%d: NextReview = %v, want %v", quality, next.NextReview, want)
		}
	}
}

func TestUpdate_EaseNeverBelowFloor(t *testing.T) {
	s := NewReviewState(testNow)
	for i := 0; i < 20; i++ {
		s = mustUpdate(t, s, 0, testNow)
	}
	if s.EaseFactor != MinEase {
		t.Errorf("ease after repeated failures = %v, want %v", s.EaseFactor, MinEase)
	}

	// One good review lifts it off the floor by exactly the q=5 bonus.
	s = mustUpdate(t, s, 5, testNow)
	if math.Abs(s.EaseFactor-(MinEase+0.1)) > 1e-9 {
		t.Errorf("ease after recovery = %v, want %v", s.EaseFactor, MinEase+0.1)
	}
}

func TestUpdate_InvalidQuality(t *testing.T) {
	s := NewReviewState(testNow)
	for _, q := range []int{-1, 6, 100} {
		got, err := Update(s, q, testNow)
		if err != ErrInvalidQuality {
			t.Errorf("q=%d: err = %v, want ErrInvalidQuality", q, err)
		}
		if got != s {
			t.Errorf("q=%d: state changed on invalid input", q)
		}
	}
}

func TestUpdate_DoesNotMutateInput(t *testing.T) {
	s := ReviewState{EaseFactor: 2.5, Interval: 6, Repetitions: 2, NextReview: testNow}
	orig := s
	mustUpdate(t, s, 5, testNow)
	if s != orig {
		t.Errorf("input state mutated: %+v", s)
	}
}

func TestIsDue(t *testing.T) {
	if !IsDue(nil, testNow) {
		t.Error("nil state should be due")
	}

	s := ReviewState{NextReview: testNow}
	if !IsDue(&s, testNow) {
		t.Error("item scheduled exactly now should be due")
	}
	if !IsDue(&s, testNow.Add(time.Hour)) {
		t.Error("past-due item should be due")
	}
	if IsDue(&s, testNow.Add(-time.Hour)) {
		t.Error("future item should not be due")
	}
}

func TestOverdueDays(t *testing.T) {
	s := ReviewState{NextReview: testNow}
	if d := OverdueDays(&s, testNow.AddDate(0, 0, 3)); math.Abs(d-3) > 1e-9 {
		t.Errorf("OverdueDays = %v, want 3", d)
	}
	if d := OverdueDays(&s, testNow.Add(-time.Hour)); d != 0 {
		t.Errorf("OverdueDays before due = %v, want 0", d)
	}
}

func TestQualityFor(t *testing.T) {
	tests := []struct {
		correct, easy bool
		want          int
	}{
		{true, true, 5},
		{true, false, 4},
		{false, false, 0},
		{false, true, 0},
	}
	for _, tt := range tests {
		if got := QualityFor(tt.correct, tt.easy); got != tt.want {
			t.Errorf("QualityFor(%v, %v) = %d, want %d", tt.correct, tt.easy, got, tt.want)
		}
	}
}
