package tui

import "github.com/charmbracelet/lipgloss"

var (
	// HeaderStyle styles report section headers.
	HeaderStyle = lipgloss.NewStyle().Bold(true)

	levelStyles = map[string]lipgloss.Style{
		"error":   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		"warning": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"info":    lipgloss.NewStyle().Faint(true),
	}
)

// LevelStyle returns the lipgloss style for the given finding level.
func LevelStyle(level string) lipgloss.Style {
	if s, ok := levelStyles[level]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
