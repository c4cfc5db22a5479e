package cli

import "github.com/charmbracelet/lipgloss"

// Reading output styles. Kept minimal so output stays readable on
// light and dark terminals.
var (
	styleHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	styleLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#06B6D4"))

	styleBody = lipgloss.NewStyle().
			PaddingLeft(2).
			Width(72)

	styleMuted = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))

	styleDeep = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F38BA8"))
)
