package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/Cyclone1070/weatheragent/internal/ui/models"
	"github.com/Cyclone1070/weatheragent/internal/ui/services"
	"github.com/Cyclone1070/weatheragent/internal/ui/views"
	"github.com/Cyclone1070/weatheragent/internal/workflow"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// BubbleTeaModel implements tea.Model
type BubbleTeaModel struct {
	state models.State

	// Dependencies
	renderer services.MarkdownRenderer

	// Workflow -> UI
	events <-chan workflow.Event

	// UI -> Workflow
	cancel    context.CancelFunc
	cancelled bool
}

// newBubbleTeaModel creates a new Bubble Tea model
func newBubbleTeaModel(
	events <-chan workflow.Event,
	cancel context.CancelFunc,
	renderer services.MarkdownRenderer,
	spinnerFactory SpinnerFactory,
	opts Options,
) BubbleTeaModel {
	return BubbleTeaModel{
		state: models.State{
			Spinner:      spinnerFactory(),
			CurrentModel: opts.Model,
			Total:        opts.Total,
		},
		renderer: renderer,
		events:   events,
		cancel:   cancel,
	}
}

// Internal messages
type tickMsg time.Time
type eventMsg struct{ event workflow.Event }
type eventsClosedMsg struct{}

// Init initializes the model
func (m BubbleTeaModel) Init() tea.Cmd {
	return tea.Batch(
		m.state.Spinner.Tick,
		tick(),
		listenForEvents(m.events),
	)
}

// Update handles messages
func (m BubbleTeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height

	case tickMsg:
		// Update dot animation
		m.state.DotCount = (m.state.DotCount + 1) % 4
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd

	case eventMsg:
		m.apply(msg.event)
		return m, listenForEvents(m.events)

	case eventsClosedMsg:
		if !m.state.Failed {
			m.state.StatusPhase = "done"
			m.state.StatusMessage = "Done"
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI
func (m BubbleTeaModel) View() string {
	return views.RenderRoot(m.state, m.renderer) + "\n"
}

// handleKeyPress handles keyboard input
func (m BubbleTeaModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		// A second press gives up waiting for the workflow to wind down.
		if m.cancelled {
			return m, tea.Quit
		}
		m.cancelled = true
		if m.cancel != nil {
			m.cancel()
		}
		m.state.StatusPhase = "error"
		m.state.StatusMessage = "Cancelling..."
	}
	return m, nil
}

// apply folds a workflow event into the UI state.
func (m *BubbleTeaModel) apply(ev workflow.Event) {
	s := &m.state

	switch e := ev.(type) {
	case workflow.QuestionEvent:
		s.Entries = append(s.Entries, models.Entry{Kind: models.EntryQuestion, Title: e.City, Text: e.Prompt})

	case workflow.ThinkingEvent:
		s.StatusPhase = "thinking"
		if e.Round == 1 {
			s.StatusMessage = "Asking the model"
		} else {
			s.StatusMessage = "Composing the final answer"
		}

	case workflow.ToolDecisionEvent:
		text := "❌ The model answered without calling a tool"
		if e.ToolCalls > 0 {
			text = fmt.Sprintf("✅ The model decided to call a tool (%d call(s))", e.ToolCalls)
		}
		s.Entries = append(s.Entries, models.Entry{Kind: models.EntryDecision, Text: text})

	case workflow.ToolStartEvent:
		s.StatusPhase = "executing"
		s.StatusMessage = "Running " + e.ToolName
		s.Entries = append(s.Entries, models.Entry{
			Kind:    models.EntryTool,
			Title:   e.ToolName,
			Text:    e.RequestDisplay,
			Running: true,
		})

	case workflow.ToolEndEvent:
		for i := len(s.Entries) - 1; i >= 0; i-- {
			entry := &s.Entries[i]
			if entry.Kind == models.EntryTool && entry.Running && entry.Title == e.ToolName {
				entry.Running = false
				entry.Display = e.Display
				entry.Content = e.Content
				break
			}
		}

	case workflow.AnswerEvent:
		s.Entries = append(s.Entries, models.Entry{Kind: models.EntryAnswer, Title: "Final answer · " + e.City, Text: e.Text})

	case workflow.DoneEvent:
		s.Completed++
		if e.Err != nil {
			s.Failed = true
			s.StatusPhase = "error"
			s.StatusMessage = "Failed"
			s.Entries = append(s.Entries, models.Entry{Kind: models.EntryError, Text: e.Err.Error()})
			return
		}
		s.StatusPhase = "done"
		s.StatusMessage = fmt.Sprintf("Answered %d of %d", s.Completed, max(s.Total, s.Completed))
	}
}

func listenForEvents(ch <-chan workflow.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg{event: ev}
	}
}

func tick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
