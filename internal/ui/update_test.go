package ui

import (
	"errors"
	"testing"

	"github.com/Cyclone1070/weatheragent/internal/tool"
	"github.com/Cyclone1070/weatheragent/internal/ui/models"
	"github.com/Cyclone1070/weatheragent/internal/workflow"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestModel() BubbleTeaModel {
	return newBubbleTeaModel(nil, nil, &MockMarkdownRenderer{}, mockSpinnerFactory, Options{Model: "gpt-4o-mini", Total: 2})
}

func feed(m BubbleTeaModel, events ...workflow.Event) BubbleTeaModel {
	for _, ev := range events {
		next, _ := m.Update(eventMsg{event: ev})
		m = next.(BubbleTeaModel)
	}
	return m
}

func TestInit_ReturnsCommands(t *testing.T) {
	model := createTestModel()
	assert.NotNil(t, model.Init())
}

func TestUpdate_WindowSize(t *testing.T) {
	next, _ := createTestModel().Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m := next.(BubbleTeaModel)
	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 40, m.state.Height)
}

func TestUpdate_ToolPath_BuildsTranscript(t *testing.T) {
	temp := 18.5
	m := feed(createTestModel(),
		workflow.QuestionEvent{City: "Seoul", Prompt: "What is the weather like in Seoul today?"},
		workflow.ThinkingEvent{Round: 1},
		workflow.ToolDecisionEvent{ToolCalls: 1},
		workflow.ToolStartEvent{ToolName: "get_today_weather", RequestDisplay: "city=Seoul"},
	)

	require.Len(t, m.state.Entries, 3)
	assert.Equal(t, "executing", m.state.StatusPhase)
	assert.True(t, m.state.Entries[2].Running)

	m = feed(m,
		workflow.ToolEndEvent{ToolName: "get_today_weather", Display: tool.WeatherDisplay{City: "Seoul", Temperature: &temp}, Content: `{"temperature":18.5}`},
		workflow.ThinkingEvent{Round: 2},
		workflow.AnswerEvent{City: "Seoul", Text: "Clear, 18.5°C."},
		workflow.DoneEvent{},
	)

	require.Len(t, m.state.Entries, 4)
	toolEntry := m.state.Entries[2]
	assert.False(t, toolEntry.Running)
	assert.Equal(t, `{"temperature":18.5}`, toolEntry.Content)
	assert.IsType(t, tool.WeatherDisplay{}, toolEntry.Display)

	answer := m.state.Entries[3]
	assert.Equal(t, models.EntryAnswer, answer.Kind)
	assert.Equal(t, "Clear, 18.5°C.", answer.Text)

	assert.Equal(t, 1, m.state.Completed)
	assert.Equal(t, "done", m.state.StatusPhase)
	assert.Equal(t, "Answered 1 of 2", m.state.StatusMessage)
}

func TestUpdate_NoToolDecision(t *testing.T) {
	m := feed(createTestModel(), workflow.ToolDecisionEvent{ToolCalls: 0})

	require.Len(t, m.state.Entries, 1)
	assert.Contains(t, m.state.Entries[0].Text, "without calling a tool")
}

func TestUpdate_ThinkingRounds(t *testing.T) {
	m := feed(createTestModel(), workflow.ThinkingEvent{Round: 1})
	assert.Equal(t, "thinking", m.state.StatusPhase)
	assert.Equal(t, "Asking the model", m.state.StatusMessage)

	m = feed(m, workflow.ThinkingEvent{Round: 2})
	assert.Equal(t, "Composing the final answer", m.state.StatusMessage)
}

func TestUpdate_DoneWithError(t *testing.T) {
	m := feed(createTestModel(), workflow.DoneEvent{Err: errors.New("provider.Generate: authentication_failed")})

	assert.True(t, m.state.Failed)
	assert.Equal(t, "error", m.state.StatusPhase)
	require.Len(t, m.state.Entries, 1)
	assert.Equal(t, models.EntryError, m.state.Entries[0].Kind)
}

func TestView_RendersTranscriptAndStatus(t *testing.T) {
	m := feed(createTestModel(),
		workflow.QuestionEvent{City: "Seoul", Prompt: "What is the weather like in Seoul today?"},
		workflow.AnswerEvent{City: "Seoul", Text: "Sunny"},
		workflow.DoneEvent{},
	)

	view := m.View()
	assert.Contains(t, view, "What is the weather like in Seoul today?")
	assert.Contains(t, view, "Sunny")
	assert.Contains(t, view, "gpt-4o-mini")
	assert.Contains(t, view, "1/2 cities")
}
