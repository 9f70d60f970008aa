// Package srs schedules vocabulary reviews with the SuperMemo-2 algorithm.
//
// Update is a pure transition over ReviewState values; persistence of the
// states is owned by the store layer.
package srs

import (
	"errors"
	"math"
	"time"
)

const (
	// InitialEase is the ease factor assigned to a fresh item.
	InitialEase = 2.5

	// MinEase is the floor below which the ease factor never drops.
	MinEase = 1.3

	// MaxQuality is the top of the 0..5 recall-quality scale.
	MaxQuality = 5

	// passingQuality is the lowest rating counted as a successful recall.
	passingQuality = 3
)

// ErrInvalidQuality reports a rating outside the 0..5 scale — a caller bug,
// not a data condition.
var ErrInvalidQuality = errors.New("srs: quality rating must be between 0 and 5")

// ReviewState is the SM-2 scheduling state of one word.
type ReviewState struct {
	EaseFactor  float64   `json:"easeFactor"`
	Interval    int       `json:"interval"` // days
	Repetitions int       `json:"repetitions"`
	NextReview  time.Time `json:"nextReview"`
}

// NewReviewState creates the state for a word entering the review cycle:
// due immediately, with the standard initial ease.
func NewReviewState(now time.Time) ReviewState {
	return ReviewState{
		EaseFactor:  InitialEase,
		Interval:    0,
		Repetitions: 0,
		NextReview:  now,
	}
}

// Update applies one review with the given recall quality and returns the
// new state. The input state is not modified.
//
// Failed recall (quality < 3) resets repetitions and schedules a one-day
// retry; it still lowers the ease factor, never below MinEase. Successful
// recall walks the 1-day, 6-day, then interval×ease ladder.
func Update(s ReviewState, quality int, now time.Time) (ReviewState, error) {
	if quality < 0 || quality > MaxQuality {
		return s, ErrInvalidQuality
	}

	q := float64(quality)
	ease := s.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ease < MinEase {
		ease = MinEase
	}

	next := s
	next.EaseFactor = ease

	if quality < passingQuality {
		next.Repetitions = 0
		next.Interval = 1
	} else {
		next.Repetitions = s.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.Interval = 1
		case 2:
			next.Interval = 6
		default:
			next.Interval = int(math.Round(float64(s.Interval) * ease))
		}
	}

	next.NextReview = now.AddDate(0, 0, next.Interval)
	return next, nil
}

// IsDue reports whether an item should be reviewed: it has never entered
// the cycle (nil state), or its scheduled date is at or before now.
func IsDue(s *ReviewState, now time.Time) bool {
	return s == nil || !s.NextReview.After(now)
}

// OverdueDays returns how many days past due the item is, 0 if not yet due.
func OverdueDays(s *ReviewState, now time.Time) float64 {
	if s == nil || now.Before(s.NextReview) {
		return 0
	}
	return now.Sub(s.NextReview).Hours() / 24.0
}

// QualityFor maps the simplified answer flows onto the 0..5 scale:
// correct and flagged easy is 5, correct is 4, incorrect is 0.
func QualityFor(correct, easy bool) int {
	switch {
	case correct && easy:
		return 5
	case correct:
		return 4
	default:
		return 0
	}
}
