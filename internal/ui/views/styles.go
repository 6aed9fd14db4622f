package views

import "github.com/charmbracelet/lipgloss"

var (
	QuestionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	StageStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	ToolStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	ResultStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(2)
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	AnswerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	AnswerStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("10")).Padding(0, 1)

	StatusDefaultStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	StatusThinkingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	StatusExecutingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	StatusDoneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	StatusErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
