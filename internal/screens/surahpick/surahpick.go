// Package surahpick lists the available surahs and starts a quiz over the
// chosen one.
package surahpick

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/corpus"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/router"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/screen"
	quizscreen "github.com/moh-dev-stack/quran-memorise-sub000/internal/screens/quiz"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/store"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/components"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/layout"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/theme"
)

// SurahPickScreen lets the user choose which surah to quiz.
type SurahPickScreen struct {
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*SurahPickScreen)(nil)
var _ screen.KeyHintProvider = (*SurahPickScreen)(nil)

// New creates a new SurahPickScreen.
func New(eventRepo store.EventRepo) *SurahPickScreen {
	surahs, err := corpus.Surahs()
	if err != nil {
		return &SurahPickScreen{errMsg: err.Error()}
	}

	items := make([]components.MenuItem, 0, len(surahs))
	for _, s := range surahs {
		surah := s
		label := fmt.Sprintf("%d. %s  %s  (%d verses)",
			surah.Number, surah.Name, surah.ArabicName, len(surah.Verses))
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: quizscreen.New(surah, eventRepo)}
				}
			},
		})
	}

	return &SurahPickScreen{menu: components.NewMenu(items)}
}

func (s *SurahPickScreen) Init() tea.Cmd {
	return nil
}

func (s *SurahPickScreen) Title() string {
	return "Choose a Surah"
}

func (s *SurahPickScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start quiz"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SurahPickScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, nil
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SurahPickScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("Failed to load surahs: "+s.errMsg))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Which surah would you like to practice?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
