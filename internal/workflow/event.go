package workflow

import (
	"context"

	"github.com/Cyclone1070/weatheragent/internal/tool"
)

// Event is the interface for all workflow events.
// UI handles events via type switch.
type Event interface {
	isEvent()
}

// QuestionEvent is emitted when an invocation starts.
type QuestionEvent struct {
	City   string
	Prompt string
}

func (QuestionEvent) isEvent() {}

// ThinkingEvent is emitted before each chat-completion request.
// Round is 1 for the tool-decision request and 2 for the final answer.
type ThinkingEvent struct {
	Round int
}

func (ThinkingEvent) isEvent() {}

// ToolDecisionEvent reports how many tool calls the model requested in round one.
type ToolDecisionEvent struct {
	ToolCalls int
}

func (ToolDecisionEvent) isEvent() {}

// ToolStartEvent is emitted when a tool execution begins.
type ToolStartEvent struct {
	ToolName       string
	RequestDisplay string // e.g., "city=Seoul"
}

func (ToolStartEvent) isEvent() {}

// ToolEndEvent is emitted when a tool completes.
type ToolEndEvent struct {
	ToolName string
	Display  tool.ToolDisplay
	Content  string // Raw payload handed to the model
}

func (ToolEndEvent) isEvent() {}

// AnswerEvent carries the final answer of an invocation.
type AnswerEvent struct {
	City string
	Text string
}

func (AnswerEvent) isEvent() {}

// DoneEvent is emitted when an invocation completes, successfully or not.
type DoneEvent struct {
	Err error
}

func (DoneEvent) isEvent() {}

// Send delivers ev on events unless events is nil or ctx is done first.
func Send(ctx context.Context, events chan<- Event, ev Event) {
	if events == nil {
		return
	}
	select {
	case events <- ev:
	case <-ctx.Done():
	}
}
