package ui

import (
	"context"

	"github.com/Cyclone1070/weatheragent/internal/ui/services"
	"github.com/Cyclone1070/weatheragent/internal/ui/views"
	"github.com/Cyclone1070/weatheragent/internal/workflow"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// SpinnerFactory creates a new spinner
type SpinnerFactory func() spinner.Model

// DefaultSpinner is the spinner used in the status bar.
func DefaultSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = views.StatusThinkingStyle
	return s
}

// Options describes the run being displayed.
type Options struct {
	Model string // Model name shown in the status bar
	Total int    // Number of cities in the run
}

// UI renders workflow progress with Bubble Tea until the event channel is closed.
type UI struct {
	program *tea.Program
}

// NewUI creates a new Bubble Tea UI. cancel is called when the user presses ctrl+c.
func NewUI(
	events <-chan workflow.Event,
	cancel context.CancelFunc,
	renderer services.MarkdownRenderer,
	spinnerFactory SpinnerFactory,
	opts Options,
	programOpts ...tea.ProgramOption,
) *UI {
	model := newBubbleTeaModel(events, cancel, renderer, spinnerFactory, opts)
	return &UI{
		program: tea.NewProgram(model, programOpts...),
	}
}

// Start runs the UI program and blocks until it exits.
func (u *UI) Start() error {
	_, err := u.program.Run()
	return err
}
