package cmd

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Output styles shared across commands.
var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	strongStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E")).
			Bold(true)

	weakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F43F5E")).
			Bold(true)
)

// masteryBar renders a fixed-width bar for a mastery value in [0,1].
func masteryBar(v float64, width int) string {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	filled := int(v*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// masteryStyle colors a mastery value by whether it clears the gap threshold.
func masteryStyle(v float64) lipgloss.Style {
	if v >= 0.6 {
		return strongStyle
	}
	return weakStyle
}
