package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/weatheragent/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderStatus renders the status bar
func RenderStatus(s models.State) string {
	var icon string
	var style lipgloss.Style

	switch s.StatusPhase {
	case "executing":
		icon = s.Spinner.View()
		style = StatusExecutingStyle
	case "done":
		icon = "✔"
		style = StatusDoneStyle
	case "error":
		icon = "✘"
		style = StatusErrorStyle
	case "thinking":
		icon = s.Spinner.View()
		style = StatusThinkingStyle
		// Animate the dots
		dots := strings.Repeat(".", s.DotCount)
		msg := s.StatusMessage
		if msg == "" {
			msg = "Generating"
		}
		return withRight(style.Render(fmt.Sprintf("%s %s%s", icon, msg, dots)), s)
	default:
		style = StatusDefaultStyle
	}

	status := "Ready"
	if s.StatusMessage != "" {
		status = fmt.Sprintf("%s %s", icon, s.StatusMessage)
	} else if s.StatusPhase != "" {
		status = icon
	}

	return withRight(style.Render(status), s)
}

// withRight appends progress and the model name.
func withRight(left string, s models.State) string {
	var right []string
	if s.Total > 1 {
		right = append(right, fmt.Sprintf("%d/%d cities", s.Completed, s.Total))
	}
	if s.CurrentModel != "" {
		right = append(right, s.CurrentModel)
	}
	if len(right) == 0 {
		return left
	}
	dim := StatusDefaultStyle.Foreground(lipgloss.Color("241")) // Dim gray
	return fmt.Sprintf("%s  %s", left, dim.Render(strings.Join(right, " · ")))
}
