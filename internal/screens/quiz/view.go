package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	quizcore "github.com/moh-dev-stack/quran-memorise-sub000/internal/quiz"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/components"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch s.session.Phase {
	case quizcore.PhaseSelectMode:
		return s.renderModeSelect(width, height)
	case quizcore.PhaseAnswering, quizcore.PhaseAnswered:
		return s.renderQuestion(width, height)
	}
	return ""
}

func (s *QuizScreen) renderModeSelect(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("How would you like to practice?"))
	b.WriteString("\n\n")

	for i, mode := range quizcore.AllModes() {
		line := "    " + mode.DisplayName()
		style := theme.Unselected
		if i == s.modeIndex {
			line = "  ▸ " + mode.DisplayName()
			style = theme.Selected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	q, ok := s.session.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	// Progress line.
	points, maxPoints := s.session.Total()
	progress := components.NewProgressBar(
		fmt.Sprintf("Verse %d/%d", s.session.Index+1, len(s.session.Questions)),
		float64(s.session.Index)/float64(len(s.session.Questions)),
		min(width-8, 48))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, progress.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render(fmt.Sprintf("%d/%d points", points, maxPoints))))
	b.WriteString("\n\n")

	// Prompt.
	switch s.session.Mode {
	case quizcore.ModeReading:
		b.WriteString(theme.Verse.Width(width).Render(q.Verse.Arabic))
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Width(width).Render(q.Verse.Transliteration))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.Text).Render(q.Verse.Translation))

	case quizcore.ModeArabic:
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.Text).Bold(true).Render(q.Verse.Translation))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))

	case quizcore.ModeMissingWord:
		b.WriteString(theme.Verse.Width(width).Render(s.blank.BlankedText))
		b.WriteString("\n\n")
		if s.revealed && !s.session.Answered {
			b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
				Render("Revealed: " + strings.Join(s.blank.MissingWords, " ")))
			b.WriteString("\n\n")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))

	default:
		b.WriteString(theme.Verse.Width(width).Render(q.Verse.Arabic))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	}

	// Feedback.
	if s.session.Phase == quizcore.PhaseAnswered {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderFeedback()))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *QuizScreen) renderFeedback() string {
	last := s.session.Scores[len(s.session.Scores)-1]

	if s.session.Mode == quizcore.ModeReading {
		return theme.Hint.Render(fmt.Sprintf("+%d points", last.Points))
	}
	if last.Points == 0 {
		return theme.Incorrect.Render("Not quite. Keep practicing!")
	}
	return theme.Correct.Render(fmt.Sprintf("Correct! +%d points", last.Points))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
