package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/corpus"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/router"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/screen"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/screens/stats"
	studyscreen "github.com/moh-dev-stack/quran-memorise-sub000/internal/screens/study"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/screens/surahpick"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/store"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/study"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/components"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	reviewsDue int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(eventRepo store.EventRepo, reviewRepo store.ReviewRepo) *HomeScreen {
	words, _ := corpus.Words()

	var reviewsDue int
	if reviewRepo != nil {
		if states, err := reviewRepo.All(context.Background()); err == nil {
			reviewsDue = study.CountDue(words, states, time.Now())
		}
	}

	items := []components.MenuItem{
		{Label: "QUIZ A SURAH", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: surahpick.New(eventRepo)}
			}
		}},
		{Label: "STUDY VOCABULARY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: studyscreen.New(eventRepo, reviewRepo)}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(eventRepo)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		reviewsDue: reviewsDue,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Hifz"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Quran memorisation practice"))
	b.WriteString("\n\n")

	due := "All reviews done for today"
	if h.reviewsDue == 1 {
		due = lipgloss.NewStyle().Foreground(theme.Accent).Render("1 word due for review")
	} else if h.reviewsDue > 1 {
		due = lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("%d words due for review", h.reviewsDue))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, due))
	b.WriteString("\n\n")

	menu := h.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (h *HomeScreen) Title() string {
	return "Home"
}

