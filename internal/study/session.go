// Package study drives a vocabulary review session and assembles the
// learning set from spaced-repetition state.
//
// Like the quiz machine, Session is a value with total transitions: invalid
// calls return the input unchanged.
package study

import (
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/corpus"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/scoring"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/srs"
)

// Phase is the lifecycle phase of a study session. Study has only one
// presentation mode, so there is no mode-selection phase.
type Phase int

const (
	// PhaseSelectSet awaits the learning set.
	PhaseSelectSet Phase = iota
	// PhaseReviewing is the main card loop.
	PhaseReviewing
	// PhaseComplete is the terminal phase.
	PhaseComplete
)

// Rating is one recall-quality judgement ready to feed srs.Update.
type Rating struct {
	WordID  string
	Quality int
}

// Session is the full state of one study pass over a word list.
type Session struct {
	Phase    Phase
	Words    []corpus.Word
	Index    int
	Answered bool
	Scores   []scoring.ScoreResult
	Ratings  []Rating
}

// NewSession creates a session awaiting its learning set.
func NewSession() Session {
	return Session{Phase: PhaseSelectSet}
}

// SelectLearningSet loads the fixed word list and resets progress.
// No-op when words is empty.
func (s Session) SelectLearningSet(words []corpus.Word) Session {
	if len(words) == 0 {
		return s
	}
	ws := make([]corpus.Word, len(words))
	copy(ws, words)
	return Session{Phase: PhaseReviewing, Words: ws}
}

// SubmitAnswer records the caller-computed score and the recall rating for
// the current word. easy distinguishes a confident recall (quality 5) from
// a plain correct one (quality 4); incorrect maps to 0. Ignored when the
// current word was already answered.
func (s Session) SubmitAnswer(correct, easy bool, result scoring.ScoreResult) Session {
	if s.Phase != PhaseReviewing || s.Answered {
		return s
	}

	next := s
	next.Answered = true
	next.Scores = append(s.Scores[:len(s.Scores):len(s.Scores)], result)
	next.Ratings = append(s.Ratings[:len(s.Ratings):len(s.Ratings)], Rating{
		WordID:  s.Words[s.Index].ID,
		Quality: srs.QualityFor(correct, easy),
	})
	return next
}

// MarkKnown records the current word as confidently known (quality 5)
// without a scored answer.
func (s Session) MarkKnown() Session {
	return s.mark(srs.QualityFor(true, true))
}

// MarkNeedsReview flags the current word for an early retry (quality 0).
func (s Session) MarkNeedsReview() Session {
	return s.mark(srs.QualityFor(false, false))
}

func (s Session) mark(quality int) Session {
	if s.Phase != PhaseReviewing || s.Answered {
		return s
	}
	next := s
	next.Answered = true
	next.Ratings = append(s.Ratings[:len(s.Ratings):len(s.Ratings)], Rating{
		WordID:  s.Words[s.Index].ID,
		Quality: quality,
	})
	return next
}

// Next moves forward one word. No-op at the last word.
func (s Session) Next() Session {
	return s.JumpTo(s.Index + 1)
}

// Previous moves back one word. No-op at the first word.
func (s Session) Previous() Session {
	return s.JumpTo(s.Index - 1)
}

// JumpTo moves the cursor to an arbitrary position and clears the answered
// flag. No-op when out of range or before the set is loaded.
func (s Session) JumpTo(index int) Session {
	if s.Phase != PhaseReviewing {
		return s
	}
	if index < 0 || index >= len(s.Words) || index == s.Index {
		return s
	}
	next := s
	next.Index = index
	next.Answered = false
	return next
}

// Finish moves the session to its terminal phase.
func (s Session) Finish() Session {
	if s.Phase != PhaseReviewing {
		return s
	}
	next := s
	next.Phase = PhaseComplete
	return next
}

// Current returns the active word, or false when none is active.
func (s Session) Current() (corpus.Word, bool) {
	if s.Phase != PhaseReviewing || s.Index < 0 || s.Index >= len(s.Words) {
		return corpus.Word{}, false
	}
	return s.Words[s.Index], true
}

// IsLast reports whether the cursor is on the final word.
func (s Session) IsLast() bool {
	return len(s.Words) > 0 && s.Index == len(s.Words)-1
}
