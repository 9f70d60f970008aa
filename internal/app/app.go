package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/corpus"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/router"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/screen"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/screens/home"
	quizscreen "github.com/moh-dev-stack/quran-memorise-sub000/internal/screens/quiz"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/screens/stats"
	studyscreen "github.com/moh-dev-stack/quran-memorise-sub000/internal/screens/study"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/screens/surahpick"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/store"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/study"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/layout"
)

// StartScreen selects which screen the app opens on. Screens other than
// home sit above it on the stack, so Esc still leads back home.
type StartScreen int

const (
	StartHome StartScreen = iota
	StartQuiz
	StartStudy
	StartStats
)

// Options carries the injected dependencies for the TUI.
type Options struct {
	EventRepo  store.EventRepo
	ReviewRepo store.ReviewRepo
	Start      StartScreen

	// Surah, when set with StartQuiz, skips the picker and quizzes it
	// directly.
	Surah *corpus.Surah
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int

	totalPoints int
	reviewsDue  int

	// initCmd is the Init command of a non-home start screen.
	initCmd tea.Cmd
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	m := AppModel{
		router: router.New(home.New(opts.EventRepo, opts.ReviewRepo)),
		opts:   opts,
	}

	switch opts.Start {
	case StartQuiz:
		if opts.Surah != nil {
			m.initCmd = m.router.Push(quizscreen.New(*opts.Surah, opts.EventRepo))
			break
		}
		m.initCmd = m.router.Push(surahpick.New(opts.EventRepo))
	case StartStudy:
		m.initCmd = m.router.Push(studyscreen.New(opts.EventRepo, opts.ReviewRepo))
	case StartStats:
		m.initCmd = m.router.Push(stats.New(opts.EventRepo))
	}

	m.refreshHeaderStats()
	return m
}

// refreshHeaderStats recomputes the header's point total and due count.
func (m *AppModel) refreshHeaderStats() {
	ctx := context.Background()
	if m.opts.EventRepo != nil {
		if sum, err := m.opts.EventRepo.Summary(ctx); err == nil {
			m.totalPoints = sum.Points
		}
	}
	if m.opts.ReviewRepo != nil {
		words, _ := corpus.Words()
		if states, err := m.opts.ReviewRepo.All(ctx); err == nil {
			m.reviewsDue = study.CountDue(words, states, time.Now())
		}
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.PopScreenMsg:
		// Returning toward home; points and dues may have changed.
		m.refreshHeaderStats()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.totalPoints, m.reviewsDue, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
