package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/corpus"
	studycore "github.com/moh-dev-stack/quran-memorise-sub000/internal/study"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/components"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/theme"
)

func (s *StudyScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render(s.errMsg))
	}
	if s.session.Phase != studycore.PhaseReviewing {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Preparing your review session..."))
	}

	w, ok := s.session.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	progress := components.NewProgressBar(
		fmt.Sprintf("Word %d/%d", s.session.Index+1, len(s.session.Words)),
		float64(s.session.Index)/float64(len(s.session.Words)),
		min(width-8, 48))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, progress.View()))
	b.WriteString("\n\n")

	// The card. Reverse cards prompt with the meaning; everything else shows
	// the Arabic word with its transliteration and part of speech.
	if s.reverse {
		b.WriteString(theme.Body.Bold(true).Width(width).Align(lipgloss.Center).
			Render(w.Translation))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render(w.PartOfSpeech.DisplayName()))
		b.WriteString("\n\n")
	} else {
		b.WriteString(theme.Verse.Width(width).Render(w.Arabic))
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Width(width).Render(w.Transliteration))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render(w.PartOfSpeech.DisplayName()))
		b.WriteString("\n\n")
	}

	if s.typed {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Bold(true).Render("What does this word mean?")))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	}

	switch {
	case s.awaitRating:
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Correct.Render("Correct! How hard was the recall?  1 Easy   2 Good")))

	case s.session.Answered:
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderFeedback(w)))
		if len(w.VerseExamples) > 0 {
			ex := w.VerseExamples[0]
			b.WriteString("\n\n")
			b.WriteString(theme.Verse.Width(width).Render(ex.Text))
			b.WriteString("\n")
			b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
				Render(fmt.Sprintf("Surah %d, verse %d", ex.SurahNumber, ex.VerseNumber)))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *StudyScreen) renderFeedback(w corpus.Word) string {
	if len(s.session.Ratings) == 0 {
		return ""
	}
	answer := "It means: " + w.Translation
	if s.reverse {
		answer = "It is: " + w.Arabic + "  " + w.Transliteration
	}
	last := s.session.Ratings[len(s.session.Ratings)-1]
	if last.Quality >= 4 {
		return theme.Correct.Render(answer)
	}
	return theme.Incorrect.Render(answer)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
