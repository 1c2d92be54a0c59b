package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/automata/internal/render"
)

var (
	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusPaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

func statusBarStyle(theme render.Theme) lipgloss.Style {
	s := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		PaddingLeft(1)
	if theme.Plain {
		return s
	}
	return s.Foreground(theme.Text).BorderForeground(theme.Muted)
}

func labelStyle(theme render.Theme) lipgloss.Style {
	if theme.Plain {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(theme.Muted)
}
