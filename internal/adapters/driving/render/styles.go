package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the colour styles of the report. The colour profile is
// decided globally (see cli), so styles degrade to plain text on
// non-terminals or with --color never.
type Styles struct {
	// Good marks matching keys and content.
	Good lipgloss.Style

	// Bad marks missing keys and content differences.
	Bad lipgloss.Style

	// Warn marks degenerate situations (nothing to compare).
	Warn lipgloss.Style

	// Count highlights selection counts.
	Count lipgloss.Style
}

// NewStyles returns the default report styles, matching the classic
// ANSI palette: green for agreement, red for disagreement, a yellow
// badge for warnings.
func NewStyles() *Styles {
	return &Styles{
		Good:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Bad:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Warn:  lipgloss.NewStyle().Background(lipgloss.Color("3")),
		Count: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
}
