// Package testhelpers provides shared doubles for end-to-end style tests
package testhelpers

import (
	"context"
	"sync"

	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/tool"
	"github.com/Cyclone1070/weatheragent/internal/tool/weather"
	"github.com/Cyclone1070/weatheragent/internal/workflow"
)

// GenerateCall records the arguments of one Generate call.
type GenerateCall struct {
	Messages []provider.Message
	Tools    []tool.Declaration
}

type scripted struct {
	msg *provider.Message
	err error
}

// MockProvider is a scripted chat provider. Responses are returned in the
// order they were queued; an exhausted queue answers with "Done".
type MockProvider struct {
	mu        sync.Mutex
	responses []scripted
	index     int
	modelName string
	calls     []GenerateCall

	// OnGenerateCalled is a callback for observing Generate calls
	OnGenerateCalled func(messages []provider.Message, tools []tool.Declaration)
}

// NewMockProvider creates a new mock provider with default settings
func NewMockProvider() *MockProvider {
	return &MockProvider{modelName: "mock-model"}
}

// WithModel sets the reported model name.
func (m *MockProvider) WithModel(name string) *MockProvider {
	m.modelName = name
	return m
}

// WithTextResponse adds a text response to the queue
func (m *MockProvider) WithTextResponse(text string) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, scripted{msg: &provider.Message{
		Role:    provider.RoleAssistant,
		Content: text,
	}})
	return m
}

// WithToolCallResponse adds a tool call response to the queue
func (m *MockProvider) WithToolCallResponse(toolCalls ...provider.ToolCall) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, scripted{msg: &provider.Message{
		Role:      provider.RoleAssistant,
		ToolCalls: toolCalls,
	}})
	return m
}

// WithError adds a failing response to the queue
func (m *MockProvider) WithError(err error) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, scripted{err: err})
	return m
}

// Generate returns the next queued response.
func (m *MockProvider) Generate(ctx context.Context, messages []provider.Message, tools []tool.Declaration) (*provider.Message, error) {
	if m.OnGenerateCalled != nil {
		m.OnGenerateCalled(messages, tools)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, GenerateCall{
		Messages: append([]provider.Message(nil), messages...),
		Tools:    tools,
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if m.index >= len(m.responses) {
		return &provider.Message{Role: provider.RoleAssistant, Content: "Done"}, nil
	}

	resp := m.responses[m.index]
	m.index++
	if resp.err != nil {
		return nil, resp.err
	}
	msg := *resp.msg
	return &msg, nil
}

func (m *MockProvider) Model() string {
	return m.modelName
}

// Calls returns a copy of every recorded Generate call.
func (m *MockProvider) Calls() []GenerateCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]GenerateCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// ToolCall builds a get_today_weather call for city.
func ToolCall(id, city string) provider.ToolCall {
	return provider.ToolCall{
		ID: id,
		Function: provider.FunctionCall{
			Name:      weather.ToolName,
			Arguments: []byte(`{"city":"` + city + `"}`),
		},
	}
}

// MockLooker records looked-up cities and answers with a fixed clear-sky result
// unless LookupFunc is set.
type MockLooker struct {
	mu     sync.Mutex
	cities []string

	LookupFunc func(ctx context.Context, city string) weather.Result
}

func (m *MockLooker) Lookup(ctx context.Context, city string) weather.Result {
	m.mu.Lock()
	m.cities = append(m.cities, city)
	m.mu.Unlock()

	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, city)
	}
	temp, feels, humidity := 18.5, 17.0, 40
	return weather.Result{
		City:        city,
		Weather:     "Clear",
		Description: "맑음",
		Temperature: &temp,
		FeelsLike:   &feels,
		Humidity:    &humidity,
	}
}

// Cities returns the cities looked up so far, in order.
func (m *MockLooker) Cities() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.cities...)
}

// EventSink drains a workflow event channel in the background.
type EventSink struct {
	mu     sync.Mutex
	events []workflow.Event
	done   chan struct{}
}

// NewEventSink starts draining events until the channel is closed.
func NewEventSink(events <-chan workflow.Event) *EventSink {
	s := &EventSink{done: make(chan struct{})}
	go func() {
		defer close(s.done)
		for ev := range events {
			s.mu.Lock()
			s.events = append(s.events, ev)
			s.mu.Unlock()
		}
	}()
	return s
}

// Wait blocks until the channel is closed and returns every event received.
func (s *EventSink) Wait() []workflow.Event {
	<-s.done
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]workflow.Event(nil), s.events...)
}
