// Package quiz drives a question-answering session over one surah's verses.
//
// Session is a value: every transition returns a new Session and leaves the
// receiver untouched. Invalid calls (wrong phase, empty input, already
// answered) return the input unchanged rather than erroring, so the UI can
// forward user actions without guarding each one.
package quiz

import (
	"sort"
	"time"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/corpus"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/randgen"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/scoring"
)

// Phase is the lifecycle phase of a quiz session.
type Phase int

const (
	// PhaseSelectCorpus awaits the surah's question list.
	PhaseSelectCorpus Phase = iota
	// PhaseSelectMode awaits the presentation mode.
	PhaseSelectMode
	// PhaseAnswering has an unanswered question active.
	PhaseAnswering
	// PhaseAnswered shows feedback for the current question.
	PhaseAnswered
	// PhaseComplete is the terminal phase; scores are final.
	PhaseComplete
)

// Session is the full state of one quiz. The zero value is not usable;
// start with NewSession.
type Session struct {
	Phase     Phase
	Questions []corpus.Question
	Mode      Mode
	Index     int
	Answered  bool
	HintUsed  bool
	Scores    []scoring.ScoreResult

	// Seed is fixed when the mode is selected and scopes every random
	// draw of the session, so option sets and blanks survive re-renders.
	Seed int64
}

// NewSession creates a session awaiting corpus selection.
func NewSession() Session {
	return Session{Phase: PhaseSelectCorpus}
}

// SelectCorpus loads the fixed question list and resets all progress.
// No-op when items is empty.
func (s Session) SelectCorpus(items []corpus.Question) Session {
	if len(items) == 0 {
		return s
	}
	qs := make([]corpus.Question, len(items))
	copy(qs, items)
	return Session{Phase: PhaseSelectMode, Questions: qs}
}

// SelectMode fixes the presentation mode and orders the question list:
// sequential modes keep ascending verse order, every other mode shuffles
// under a seed mixed from the mode name and a fresh random component.
// No-op when no questions are loaded.
func (s Session) SelectMode(mode Mode) Session {
	return s.selectMode(mode, time.Now().UnixNano())
}

func (s Session) selectMode(mode Mode, entropy int64) Session {
	if len(s.Questions) == 0 || s.Phase == PhaseSelectCorpus {
		return s
	}

	next := s
	next.Mode = mode
	next.Index = 0
	next.Answered = false
	next.HintUsed = false
	next.Scores = nil
	next.Phase = PhaseAnswering
	next.Seed = randgen.SeedFromValues(string(mode), entropy)

	qs := make([]corpus.Question, len(s.Questions))
	copy(qs, s.Questions)
	if mode.Sequential() {
		sort.Slice(qs, func(i, j int) bool { return qs[i].Verse.Number < qs[j].Verse.Number })
	} else {
		qs = randgen.Shuffle(randgen.New(next.Seed), qs)
	}
	next.Questions = qs
	return next
}

// SubmitAnswer records the result for the current question. Ignored when
// the question was already answered or no mode is selected, which makes a
// double submit harmless.
func (s Session) SubmitAnswer(correct, hintUsed bool) Session {
	if s.Phase != PhaseAnswering {
		return s
	}

	next := s
	next.Answered = true
	next.HintUsed = hintUsed
	next.Phase = PhaseAnswered
	next.Scores = append(s.Scores[:len(s.Scores):len(s.Scores)],
		scoring.Score(s.Mode.QuestionType(), correct, hintUsed))
	return next
}

// Advance moves to the next question and clears the answer flags. At the
// last question it is a no-op; the caller reads the scores and calls Finish.
func (s Session) Advance() Session {
	if s.Phase != PhaseAnswering && s.Phase != PhaseAnswered {
		return s
	}
	if s.Index >= len(s.Questions)-1 {
		return s
	}

	next := s
	next.Index++
	next.Answered = false
	next.HintUsed = false
	next.Phase = PhaseAnswering
	return next
}

// Finish moves the session to its terminal phase. No-op before a mode is
// selected.
func (s Session) Finish() Session {
	if s.Phase != PhaseAnswering && s.Phase != PhaseAnswered {
		return s
	}
	next := s
	next.Phase = PhaseComplete
	return next
}

// ResetToModeSelection discards the mode and all progress while keeping the
// loaded corpus.
func (s Session) ResetToModeSelection() Session {
	if s.Phase == PhaseSelectCorpus {
		return s
	}
	return Session{Phase: PhaseSelectMode, Questions: s.Questions}
}

// ResetToCorpusSelection discards everything.
func (s Session) ResetToCorpusSelection() Session {
	return NewSession()
}

// Current returns the active question, or false when none is active.
func (s Session) Current() (corpus.Question, bool) {
	if s.Phase != PhaseAnswering && s.Phase != PhaseAnswered {
		return corpus.Question{}, false
	}
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return corpus.Question{}, false
	}
	return s.Questions[s.Index], true
}

// IsLast reports whether the cursor is on the final question.
func (s Session) IsLast() bool {
	return len(s.Questions) > 0 && s.Index == len(s.Questions)-1
}

// QuestionSeed derives the per-question seed for stable option sets and
// blanks: mixing the session seed with the question index means the same
// question renders identically however often the screen redraws.
func (s Session) QuestionSeed(index int) int64 {
	return randgen.SeedFromValues(s.Seed, index)
}

// Total returns the accumulated points over the maximum so far.
func (s Session) Total() (points, maxPoints int) {
	return scoring.Total(s.Scores)
}
