// Package study is the screen driving a vocabulary review session. Words
// are ordered by the spaced-repetition scheduler; ratings are written back
// when the session finishes.
package study

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/corpus"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/options"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/randgen"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/router"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/screen"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/screens/summary"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/scoring"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/srs"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/store"
	studycore "github.com/moh-dev-stack/quran-memorise-sub000/internal/study"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/textnorm"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/components"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/layout"
)

// sessionWordLimit caps how many words one study session serves.
const sessionWordLimit = 10

// StudyScreen implements screen.Screen for a vocabulary review session.
type StudyScreen struct {
	eventRepo  store.EventRepo
	reviewRepo store.ReviewRepo

	session   studycore.Session
	states    map[string]srs.ReviewState
	allWords  []corpus.Word
	sessionID string
	startedAt time.Time

	mc           components.MultiChoice
	input        components.TextInput
	typed        bool
	reverse      bool
	awaitRating  bool
	correctCount int
	errMsg       string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a new StudyScreen.
func New(eventRepo store.EventRepo, reviewRepo store.ReviewRepo) *StudyScreen {
	words, err := corpus.Words()
	s := &StudyScreen{
		eventRepo:  eventRepo,
		reviewRepo: reviewRepo,
		session:    studycore.NewSession(),
		allWords:   words,
		sessionID:  uuid.New().String(),
		startedAt:  time.Now(),
	}
	if err != nil {
		s.errMsg = err.Error()
	}
	return s
}

func (s *StudyScreen) Init() tea.Cmd {
	if s.errMsg != "" {
		return nil
	}
	return tea.Batch(s.loadStates(), s.persistStart())
}

// loadStates loads the stored review states for scheduling.
func (s *StudyScreen) loadStates() tea.Cmd {
	if s.reviewRepo == nil {
		return nil
	}
	repo := s.reviewRepo
	return func() tea.Msg {
		states, err := repo.All(context.Background())
		return statesLoadedMsg{States: states, Err: err}
	}
}

func (s *StudyScreen) Title() string {
	return "Study"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.awaitRating:
		return []layout.KeyHint{
			{Key: "1", Description: "Easy"},
			{Key: "2", Description: "Good"},
		}
	case s.session.Answered:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	case s.session.Phase == studycore.PhaseReviewing:
		if s.typed {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Submit"},
				{Key: "Esc", Description: "Abandon"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Y", Description: "Already know it"},
			{Key: "F", Description: "Forgot it"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	return nil
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.states = msg.States
		set := studycore.BuildLearningSet(s.allWords, s.states, time.Now(), sessionWordLimit)
		s.session = s.session.SelectLearningSet(set)
		if s.session.Phase != studycore.PhaseReviewing {
			s.errMsg = "no vocabulary words available"
			return s, nil
		}
		s.prepareCard()
		return s, nil

	case eventSavedMsg, ratingsSavedMsg:
		if err := persistErr(msg); err != nil {
			fmt.Fprintln(os.Stderr, "warning: persist study data:", err)
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" || s.session.Phase != studycore.PhaseReviewing {
		return s, nil
	}

	if s.awaitRating {
		switch msg.String() {
		case "1":
			return s.submitRecall(true)
		case "2", "enter":
			return s.submitRecall(false)
		}
		return s, nil
	}

	if s.session.Answered {
		if msg.String() == "enter" {
			return s.continueSession()
		}
		return s, nil
	}

	if !s.typed {
		switch msg.String() {
		case "y":
			s.session = s.session.MarkKnown()
			return s, nil
		case "f":
			s.session = s.session.MarkNeedsReview()
			return s, nil
		}

		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			if s.mc.IsCorrect() {
				// Hold the transition until the learner rates the recall.
				s.awaitRating = true
				return s, nil
			}
			result := scoring.Score(s.cardType(), false, false)
			s.session = s.session.SubmitAnswer(false, false, result)
			return s, s.persistAnswer(false, result)
		}
		return s, cmd
	}

	// Typed recall for words past their early repetitions.
	if msg.String() == "enter" {
		w, _ := s.session.Current()
		correct := textnorm.Text(s.input.Value()) != "" &&
			textnorm.Text(s.input.Value()) == textnorm.Text(w.Translation)
		s.input.Submit(correct)
		if correct {
			s.awaitRating = true
			return s, nil
		}
		result := scoring.Score(s.cardType(), false, false)
		s.session = s.session.SubmitAnswer(false, false, result)
		return s, s.persistAnswer(false, result)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitRecall records a correct answer with the chosen recall quality.
func (s *StudyScreen) submitRecall(easy bool) (screen.Screen, tea.Cmd) {
	s.awaitRating = false
	result := scoring.Score(s.cardType(), true, false)
	s.session = s.session.SubmitAnswer(true, easy, result)
	s.correctCount++
	return s, s.persistAnswer(true, result)
}

// continueSession moves to the next word, or finishes and writes ratings
// through the scheduler when the last word is done.
func (s *StudyScreen) continueSession() (screen.Screen, tea.Cmd) {
	if !s.session.IsLast() {
		s.session = s.session.Next()
		s.prepareCard()
		return s, nil
	}

	s.session = s.session.Finish()
	points, maxPoints := scoring.Total(s.session.Scores)
	sum := summary.New(summary.Stats{
		Heading:   "Study session complete!",
		Questions: len(s.session.Scores),
		Correct:   s.correctCount,
		Points:    points,
		MaxPoints: maxPoints,
		Duration:  time.Since(s.startedAt),
		Reviewed:  len(s.session.Ratings),
	})
	return s, tea.Batch(
		s.saveRatings(),
		s.persistEnd(points, maxPoints),
		func() tea.Msg { return router.ReplaceScreenMsg{Screen: sum} },
	)
}

// typedRepetitions is the repetition count from which a word switches from
// multiple choice to typed recall.
const typedRepetitions = 2

// prepareCard builds the recall prompt for the current word: multiple
// choice early on, typed recall once the word has a review history. The
// option seed is derived from the session and position so redraws are
// stable. Multiple-choice cards run in both directions; the seed also
// decides which way this one faces.
func (s *StudyScreen) prepareCard() {
	s.awaitRating = false
	s.typed = false
	s.reverse = false
	s.mc = components.MultiChoice{}

	w, ok := s.session.Current()
	if !ok {
		return
	}

	if state, tracked := s.states[w.ID]; tracked && state.Repetitions >= typedRepetitions {
		s.typed = true
		s.input = components.NewTextInput("Type the meaning...", 40)
		return
	}

	g := randgen.New(randgen.SeedFromValues(s.sessionID, s.session.Index))
	s.reverse = g.IntN(0, 2) == 1
	pool := make([]corpus.Word, 0, len(s.allWords)-1)
	for _, other := range s.allWords {
		if other.ID != w.ID {
			pool = append(pool, other)
		}
	}

	if s.reverse {
		s.mc = components.NewMultiChoice("Which word means this?",
			options.ForWordArabic(g, w, pool, options.DefaultSetSize))
		return
	}
	s.mc = components.NewMultiChoice("What does this word mean?",
		options.ForWordMeaning(g, w, pool, options.DefaultSetSize))
}

// cardType is the scoring type for the current card.
func (s *StudyScreen) cardType() scoring.QuestionType {
	if s.reverse {
		return scoring.TypeWordArabic
	}
	return scoring.TypeWordMeaning
}

// saveRatings runs every rating through the SM-2 scheduler and persists the
// resulting states.
func (s *StudyScreen) saveRatings() tea.Cmd {
	if s.reviewRepo == nil {
		return nil
	}
	repo := s.reviewRepo
	ratings := s.session.Ratings
	states := s.states
	return func() tea.Msg {
		now := time.Now()
		ctx := context.Background()
		for _, r := range ratings {
			base, ok := states[r.WordID]
			if !ok {
				base = srs.NewReviewState(now)
			}
			updated, err := srs.Update(base, r.Quality, now)
			if err != nil {
				return ratingsSavedMsg{Err: err}
			}
			if err := repo.Save(ctx, r.WordID, updated); err != nil {
				return ratingsSavedMsg{Err: err}
			}
		}
		return ratingsSavedMsg{}
	}
}

func (s *StudyScreen) persistStart() tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	repo, id := s.eventRepo, s.sessionID
	return func() tea.Msg {
		err := repo.AppendSession(context.Background(), store.SessionEventData{
			SessionID: id,
			Kind:      "study",
			Action:    "start",
		})
		return eventSavedMsg{Err: err}
	}
}

func (s *StudyScreen) persistAnswer(correct bool, result scoring.ScoreResult) tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	w, ok := s.session.Current()
	if !ok {
		return nil
	}
	data := store.AnswerEventData{
		SessionID:    s.sessionID,
		QuestionType: string(s.cardType()),
		WordID:       w.ID,
		Correct:      correct,
		Points:       result.Points,
		MaxPoints:    result.MaxPoints,
	}
	repo := s.eventRepo
	return func() tea.Msg {
		return eventSavedMsg{Err: repo.AppendAnswer(context.Background(), data)}
	}
}

func (s *StudyScreen) persistEnd(points, maxPoints int) tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	data := store.SessionEventData{
		SessionID:       s.sessionID,
		Kind:            "study",
		Action:          "end",
		QuestionsServed: len(s.session.Words),
		CorrectAnswers:  s.correctCount,
		Points:          points,
		MaxPoints:       maxPoints,
		DurationSecs:    int(time.Since(s.startedAt).Seconds()),
	}
	repo := s.eventRepo
	return func() tea.Msg {
		return eventSavedMsg{Err: repo.AppendSession(context.Background(), data)}
	}
}

func persistErr(msg tea.Msg) error {
	switch m := msg.(type) {
	case eventSavedMsg:
		return m.Err
	case ratingsSavedMsg:
		return m.Err
	}
	return nil
}
