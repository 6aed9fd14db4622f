package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/weatheragent/internal/ui/models"
	"github.com/Cyclone1070/weatheragent/internal/ui/services"
)

// RenderTranscript renders every entry received so far.
func RenderTranscript(s models.State, renderer services.MarkdownRenderer) string {
	if len(s.Entries) == 0 {
		return StageStyle.Render("Waiting for the first question...")
	}

	width := s.Width - 4
	lines := make([]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		lines = append(lines, RenderEntry(e, width, renderer))
	}
	return strings.Join(lines, "\n")
}

// RenderEntry renders a single transcript entry.
func RenderEntry(e models.Entry, width int, renderer services.MarkdownRenderer) string {
	switch e.Kind {
	case models.EntryQuestion:
		return QuestionStyle.Render(fmt.Sprintf("🌍 %s: %s", e.Title, e.Text))

	case models.EntryDecision:
		return StageStyle.Render("  " + e.Text)

	case models.EntryTool:
		head := ToolStyle.Render("  🔧 " + services.FormatToolDescription(e.Title, e.Text))
		if e.Running {
			return head
		}
		result := services.RenderToolDisplay(e.Display)
		if result == "" {
			result = e.Content
		}
		return head + "\n" + ResultStyle.Render(result)

	case models.EntryAnswer:
		body := e.Text
		if renderer != nil {
			if rendered, err := services.RenderMarkdown(e.Text, width, renderer); err == nil {
				body = rendered
			}
		}
		return AnswerTitleStyle.Render("===== "+e.Title+" =====") + "\n" + AnswerStyle.Render(body)

	case models.EntryError:
		return ErrorStyle.Render("✘ " + e.Text)

	default:
		return ""
	}
}
