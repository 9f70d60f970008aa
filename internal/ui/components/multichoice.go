package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/options"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/theme"
)

// MultiChoice renders an option set as a multiple-choice selector.
type MultiChoice struct {
	Question    string
	Options     []options.Option
	Selected    int
	Submitted   bool
	ChosenIndex int
}

// NewMultiChoice creates a new multiple-choice component over an option set.
func NewMultiChoice(question string, opts []options.Option) MultiChoice {
	return MultiChoice{
		Question:    question,
		Options:     opts,
		Selected:    0,
		Submitted:   false,
		ChosenIndex: -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D"}
	correctIndex := options.CorrectIndex(m.Options)

	for i, opt := range m.Options {
		label := labels[i%len(labels)]
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt.Payload.Display())

		if m.Submitted {
			if i == correctIndex {
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			} else if i == m.ChosenIndex {
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == m.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}

// IsCorrect returns true if the user chose the correct option.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted &&
		m.ChosenIndex >= 0 &&
		m.ChosenIndex < len(m.Options) &&
		m.Options[m.ChosenIndex].Correct
}
