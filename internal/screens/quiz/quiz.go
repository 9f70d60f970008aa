// Package quiz is the screen driving a question-answering session over one
// surah. Each user action maps to a single session transition; the option
// sets and blanks for a question are derived from the session seed so a
// re-render never changes them.
package quiz

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/blanks"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/corpus"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/options"
	quizcore "github.com/moh-dev-stack/quran-memorise-sub000/internal/quiz"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/randgen"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/router"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/screen"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/screens/summary"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/store"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/components"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/layout"
)

// QuizScreen implements screen.Screen for an active quiz.
type QuizScreen struct {
	surah     corpus.Surah
	eventRepo store.EventRepo

	session   quizcore.Session
	sessionID string
	startedAt time.Time

	modeIndex    int
	mc           components.MultiChoice
	blank        blanks.Blank
	revealed     bool
	correctCount int

	// Token union over the surah, the distractor pool for missing words.
	corpusTokens []string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a new QuizScreen over the given surah.
func New(surah corpus.Surah, eventRepo store.EventRepo) *QuizScreen {
	texts := make([]string, len(surah.Verses))
	for i, v := range surah.Verses {
		texts[i] = v.Arabic
	}

	return &QuizScreen{
		surah:        surah,
		eventRepo:    eventRepo,
		session:      quizcore.NewSession().SelectCorpus(surah.Questions()),
		sessionID:    uuid.New().String(),
		startedAt:    time.Now(),
		corpusTokens: blanks.CorpusTokens(texts, nil),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.persistStart()
}

func (s *QuizScreen) Title() string {
	return "Quiz: " + s.surah.Name
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.session.Phase {
	case quizcore.PhaseSelectMode:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select mode"},
			{Key: "Esc", Description: "Back"},
		}
	case quizcore.PhaseAnswering:
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Submit"},
		}
		if s.session.Mode == quizcore.ModeMissingWord && !s.revealed {
			hints = append(hints, layout.KeyHint{Key: "R", Description: "Reveal"})
		}
		if s.session.Mode == quizcore.ModeReading {
			hints = []layout.KeyHint{{Key: "Enter", Description: "Next verse"}}
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Abandon"})
	case quizcore.PhaseAnswered:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	}
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg, answerSavedMsg, sessionEndedMsg:
		// Persistence failures must not interrupt the quiz.
		if err := persistErr(msg); err != nil {
			fmt.Fprintln(os.Stderr, "warning: persist event:", err)
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.session.Phase {
	case quizcore.PhaseSelectMode:
		return s.handleModeKey(msg)
	case quizcore.PhaseAnswering:
		return s.handleAnswerKey(msg)
	case quizcore.PhaseAnswered:
		if msg.String() == "enter" {
			return s.continueSession()
		}
	}
	return s, nil
}

func (s *QuizScreen) handleModeKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	modes := quizcore.AllModes()
	switch msg.String() {
	case "up", "k":
		if s.modeIndex > 0 {
			s.modeIndex--
		}
	case "down", "j":
		if s.modeIndex < len(modes)-1 {
			s.modeIndex++
		}
	case "enter":
		s.session = s.session.SelectMode(modes[s.modeIndex])
		s.prepareQuestion()
	}
	return s, nil
}

func (s *QuizScreen) handleAnswerKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.session.Mode == quizcore.ModeReading {
		if msg.String() == "enter" {
			return s.submit(true)
		}
		return s, nil
	}

	if s.session.Mode == quizcore.ModeMissingWord && msg.String() == "r" {
		s.revealed = true
		return s, nil
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	if s.mc.Submitted {
		return s.submit(s.mc.IsCorrect())
	}
	return s, cmd
}

// submit records the answer in the session machine and persists the event.
func (s *QuizScreen) submit(correct bool) (screen.Screen, tea.Cmd) {
	s.session = s.session.SubmitAnswer(correct, s.revealed)
	if correct {
		s.correctCount++
	}

	q, ok := s.session.Current()
	if !ok {
		return s, nil
	}
	result := s.session.Scores[len(s.session.Scores)-1]
	return s, s.persistAnswer(q, correct, result.Points, result.MaxPoints)
}

// continueSession advances to the next question, or ends the quiz when the
// last one was answered.
func (s *QuizScreen) continueSession() (screen.Screen, tea.Cmd) {
	if !s.session.IsLast() {
		s.session = s.session.Advance()
		s.prepareQuestion()
		return s, nil
	}

	s.session = s.session.Finish()
	points, maxPoints := s.session.Total()
	sum := summary.New(summary.Stats{
		Heading:   "Quiz complete!",
		Questions: len(s.session.Questions),
		Correct:   s.correctCount,
		Points:    points,
		MaxPoints: maxPoints,
		Duration:  time.Since(s.startedAt),
	})
	return s, tea.Batch(
		s.persistEnd(points, maxPoints),
		func() tea.Msg { return router.ReplaceScreenMsg{Screen: sum} },
	)
}

// prepareQuestion derives the option set or blank for the current question
// from the session seed, so redraws are stable.
func (s *QuizScreen) prepareQuestion() {
	s.revealed = false
	s.mc = components.MultiChoice{}
	s.blank = blanks.Blank{}

	q, ok := s.session.Current()
	if !ok {
		return
	}

	g := randgen.New(s.session.QuestionSeed(s.session.Index))
	pool := make([]corpus.Question, 0, len(s.session.Questions)-1)
	for i, other := range s.session.Questions {
		if i != s.session.Index {
			pool = append(pool, other)
		}
	}

	switch s.session.Mode {
	case quizcore.ModeTranslation:
		s.mc = components.NewMultiChoice("What does this verse mean?",
			options.ForTranslation(g, q, pool, options.DefaultSetSize))
	case quizcore.ModeTransliteration:
		s.mc = components.NewMultiChoice("How is this verse pronounced?",
			options.ForTransliteration(g, q, pool, options.DefaultSetSize))
	case quizcore.ModeArabic:
		s.mc = components.NewMultiChoice("Which verse is this?",
			options.ForArabicVerse(g, q, pool, options.DefaultSetSize))
	case quizcore.ModeMissingWord:
		s.blank = blanks.Build(q.Verse.Arabic, nil, g)
		s.mc = components.NewMultiChoice("Which words are missing?",
			blanks.MissingWordOptions(g, s.blank.MissingWords, s.corpusTokens, options.DefaultSetSize))
	}
}

func (s *QuizScreen) persistStart() tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	repo, id, surah := s.eventRepo, s.sessionID, s.surah.Number
	return func() tea.Msg {
		err := repo.AppendSession(context.Background(), store.SessionEventData{
			SessionID:   id,
			Kind:        "quiz",
			Action:      "start",
			SurahNumber: surah,
		})
		return sessionStartedMsg{Err: err}
	}
}

func (s *QuizScreen) persistAnswer(q corpus.Question, correct bool, points, maxPoints int) tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	data := store.AnswerEventData{
		SessionID:    s.sessionID,
		QuestionType: string(s.session.Mode.QuestionType()),
		SurahNumber:  q.SurahNumber,
		VerseNumber:  q.Verse.Number,
		Correct:      correct,
		HintUsed:     s.revealed,
		Points:       points,
		MaxPoints:    maxPoints,
	}
	repo := s.eventRepo
	return func() tea.Msg {
		return answerSavedMsg{Err: repo.AppendAnswer(context.Background(), data)}
	}
}

func (s *QuizScreen) persistEnd(points, maxPoints int) tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	data := store.SessionEventData{
		SessionID:       s.sessionID,
		Kind:            "quiz",
		Action:          "end",
		SurahNumber:     s.surah.Number,
		Mode:            string(s.session.Mode),
		QuestionsServed: len(s.session.Questions),
		CorrectAnswers:  s.correctCount,
		Points:          points,
		MaxPoints:       maxPoints,
		DurationSecs:    int(time.Since(s.startedAt).Seconds()),
	}
	repo := s.eventRepo
	return func() tea.Msg {
		return sessionEndedMsg{Err: repo.AppendSession(context.Background(), data)}
	}
}

func persistErr(msg tea.Msg) error {
	switch m := msg.(type) {
	case sessionStartedMsg:
		return m.Err
	case answerSavedMsg:
		return m.Err
	case sessionEndedMsg:
		return m.Err
	}
	return nil
}
