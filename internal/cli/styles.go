package cli

import "github.com/charmbracelet/lipgloss"

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
			Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

	suggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9893a5", Dark: "#908caa"})

	entityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}).
			Underline(true)

	matchStyle = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"})
)
