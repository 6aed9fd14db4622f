package views

import (
	"github.com/Cyclone1070/weatheragent/internal/ui/models"
	"github.com/Cyclone1070/weatheragent/internal/ui/services"
	"github.com/charmbracelet/lipgloss"
)

// RenderRoot renders the complete UI layout
func RenderRoot(s models.State, renderer services.MarkdownRenderer) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderTranscript(s, renderer),
		"",
		RenderStatus(s),
	)
}
