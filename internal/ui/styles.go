package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/tasker-go/internal/todo"
)

var (
	colorRed    = lipgloss.Color("#E06C75")
	colorYellow = lipgloss.Color("#E5C07B")
	colorGreen  = lipgloss.Color("#98C379")
	colorMuted  = lipgloss.Color("#636B78")
	colorBlue   = lipgloss.Color("#61AFEF")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	nameStyle = lipgloss.NewStyle().
			Bold(true)
)

func priorityStyle(p todo.Priority) lipgloss.Style {
	switch p {
	case todo.PriorityHigh:
		return lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	case todo.PriorityMedium:
		return lipgloss.NewStyle().Foreground(colorYellow)
	default:
		return lipgloss.NewStyle().Foreground(colorGreen)
	}
}
