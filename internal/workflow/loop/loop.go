package loop

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cyclone1070/weatheragent/internal/config"
	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/workflow"
	"github.com/sirupsen/logrus"
)

var xlog = logrus.WithField("module", "loop")

// Loop answers one weather question per call with at most two completions:
// a tool decision round and, when tools ran, a final round without tools.
type Loop struct {
	provider llmProvider
	tools    toolManager
	events   chan<- workflow.Event
	cfg      config.OrchestratorConfig
}

func NewLoop(provider llmProvider, tools toolManager, events chan<- workflow.Event, cfg config.OrchestratorConfig) *Loop {
	return &Loop{
		provider: provider,
		tools:    tools,
		events:   events,
		cfg:      cfg,
	}
}

// Prompt renders the user question for city.
func (l *Loop) Prompt(city string) string {
	return strings.ReplaceAll(l.cfg.PromptTemplate, "{city}", city)
}

// Answer asks the model about today's weather in city and returns its final text.
// Provider failures are returned wrapped; weather lookup failures reach the model
// as tool output.
func (l *Loop) Answer(ctx context.Context, city string) (answer string, err error) {
	prompt := l.Prompt(city)
	messages := []provider.Message{
		{Role: provider.RoleUser, Content: prompt},
	}
	log := xlog.WithField("city", city)

	workflow.Send(ctx, l.events, workflow.QuestionEvent{City: city, Prompt: prompt})
	defer func() {
		if err == nil {
			workflow.Send(ctx, l.events, workflow.AnswerEvent{City: city, Text: answer})
		}
		workflow.Send(ctx, l.events, workflow.DoneEvent{Err: err})
	}()

	workflow.Send(ctx, l.events, workflow.ThinkingEvent{Round: 1})
	resp, err := l.provider.Generate(ctx, messages, l.tools.Declarations())
	if err != nil {
		return "", fmt.Errorf("provider.Generate: %w", err)
	}
	if resp.Content != "" || resp.HasToolCalls() {
		messages = append(messages, *resp)
	}
	workflow.Send(ctx, l.events, workflow.ToolDecisionEvent{ToolCalls: len(resp.ToolCalls)})
	log.WithField("tool_calls", len(resp.ToolCalls)).Debug("tool decision received")

	if !resp.HasToolCalls() && !l.cfg.ReissueWithoutToolCall && resp.Content != "" {
		return resp.Content, nil
	}

	for _, tc := range resp.ToolCalls {
		toolResp, err := l.tools.Execute(ctx, tc, l.events)
		if err != nil {
			return "", fmt.Errorf("tools.Execute (%s): %w", tc.Function.Name, err)
		}
		messages = append(messages, toolResp)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	workflow.Send(ctx, l.events, workflow.ThinkingEvent{Round: 2})
	final, err := l.provider.Generate(ctx, messages, nil)
	if err != nil {
		return "", fmt.Errorf("provider.Generate: %w", err)
	}
	if final.Content == "" {
		log.Warn("final answer is empty")
		return "", fmt.Errorf("provider.Generate: %w", provider.ErrEmptyResponse)
	}
	log.Debug("final answer received")

	return final.Content, nil
}
