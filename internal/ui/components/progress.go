package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/ui/theme"
)

// ProgressBar is a labelled horizontal progress bar.
type ProgressBar struct {
	Label   string
	Percent float64
	Width   int
}

// NewProgressBar creates a progress bar. Percent is clamped to [0, 1] at
// render time; Width is the total width including the label.
func NewProgressBar(label string, percent float64, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, Width: width}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var out string
	if p.Label != "" {
		out = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	barWidth := p.Width - lipgloss.Width(out)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}

	out += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	out += theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
	return out
}
