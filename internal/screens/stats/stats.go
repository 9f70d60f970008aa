// Package stats shows all-time answer aggregates and recent sessions from
// the event log.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/screen"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/scoring"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/store"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/layout"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/theme"
)

// recentLimit caps the recent-session list.
const recentLimit = 10

// statsLoadedMsg carries the aggregates read from the event log.
type statsLoadedMsg struct {
	Summary  store.Summary
	Sessions []store.SessionSummary
	Err      error
}

// StatsScreen displays learning statistics.
type StatsScreen struct {
	eventRepo store.EventRepo
	loaded    bool
	summary   store.Summary
	sessions  []store.SessionSummary
	errMsg    string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(eventRepo store.EventRepo) *StatsScreen {
	return &StatsScreen{eventRepo: eventRepo}
}

func (s *StatsScreen) Init() tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()
		sum, err := repo.Summary(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		sessions, err := repo.RecentSessions(ctx, recentLimit)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Summary: sum, Sessions: sessions}
	}
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsLoadedMsg); ok {
		if m.Err != nil {
			s.errMsg = m.Err.Error()
			return s, nil
		}
		s.loaded = true
		s.summary = m.Summary
		s.sessions = m.Sessions
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("Failed to load statistics: "+s.errMsg))
	}
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading..."))
	}
	if s.summary.TotalAnswers == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No sessions recorded yet. Start a quiz!"))
	}

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("All-time"))
	b.WriteString("\n\n")

	accuracy := float64(s.summary.CorrectAnswers) / float64(s.summary.TotalAnswers)
	totals := fmt.Sprintf("Answers: %d        Correct: %d        Accuracy: %.0f%%        Points: %d/%d",
		s.summary.TotalAnswers, s.summary.CorrectAnswers, accuracy*100,
		s.summary.Points, s.summary.MaxPoints)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render(totals)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("By question type")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")
	for _, ts := range s.summary.ByType {
		name := scoring.QuestionType(ts.QuestionType).DisplayName()
		line := fmt.Sprintf("  %-18s %3d answered   %3d correct   %4d pts",
			name, ts.Answered, ts.Correct, ts.Points)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render(line)))
		b.WriteString("\n")
	}

	if len(s.sessions) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Subtitle.Render("Recent sessions")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		for _, sess := range s.sessions {
			desc := sess.Kind
			if sess.Kind == "quiz" {
				desc = fmt.Sprintf("quiz surah %d (%s)", sess.SurahNumber, sess.Mode)
			}
			line := fmt.Sprintf("  %s  %-28s %2d/%2d correct   %3d/%3d pts",
				sess.Timestamp.Format("2006-01-02 15:04"), desc,
				sess.CorrectAnswers, sess.QuestionsServed,
				sess.Points, sess.MaxPoints)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Body.Render(line)))
			b.WriteString("\n")
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
