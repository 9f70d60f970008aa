// Package summary shows the end-of-session recap.
package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/router"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/screen"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/layout"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/theme"
)

// Stats is the recap shown when a session ends.
type Stats struct {
	Heading   string
	Questions int
	Correct   int
	Points    int
	MaxPoints int
	Duration  time.Duration

	// Reviewed is the number of words pushed through the scheduler;
	// zero for quiz sessions.
	Reviewed int
}

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	stats Stats
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(stats Stats) *SummaryScreen {
	return &SummaryScreen{stats: stats}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	st := s.stats
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(st.Heading))
	b.WriteString("\n\n")

	mins := int(st.Duration.Minutes())
	secs := int(st.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	accuracy := 0.0
	if st.Questions > 0 {
		accuracy = float64(st.Correct) / float64(st.Questions)
	}
	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
		st.Questions, st.Correct, accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	scoreLine := fmt.Sprintf("Score: %d / %d points", st.Points, st.MaxPoints)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(scoreLine))

	if st.Reviewed > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d words rescheduled for review", st.Reviewed)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
