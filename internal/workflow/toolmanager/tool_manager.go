package toolmanager

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/tool"
	"github.com/Cyclone1070/weatheragent/internal/tool/weather"
	"github.com/Cyclone1070/weatheragent/internal/workflow"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"
)

var xlog = logrus.WithField("module", "toolmanager")

// ToolName enumerates the tools the agent can run.
type ToolName string

const (
	ToolGetTodayWeather ToolName = weather.ToolName
)

// ToolManager dispatches model tool calls to their statically bound handlers.
type ToolManager struct {
	weather       weatherTool
	weatherSchema *gojsonschema.Schema
}

// NewToolManager creates a ToolManager and compiles the argument schema of every tool.
func NewToolManager(weatherTool weatherTool) (*ToolManager, error) {
	schema, err := compileSchema(weatherTool.Declaration())
	if err != nil {
		return nil, err
	}
	return &ToolManager{
		weather:       weatherTool,
		weatherSchema: schema,
	}, nil
}

func compileSchema(decl tool.Declaration) (*gojsonschema.Schema, error) {
	if decl.Parameters == nil {
		return nil, nil
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(decl.Parameters))
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", decl.Name, err)
	}
	return schema, nil
}

// Declarations returns all tool schemas for the LLM.
func (m *ToolManager) Declarations() []tool.Declaration {
	return []tool.Declaration{m.weather.Declaration()}
}

// Execute runs a tool call and returns the tool-role message answering it.
// Unknown tools and invalid arguments are reported to the model in the message
// content; the returned error is reserved for cancellation.
func (m *ToolManager) Execute(ctx context.Context, tc provider.ToolCall, events chan<- workflow.Event) (provider.Message, error) {
	switch ToolName(tc.Function.Name) {
	case ToolGetTodayWeather:
		return m.executeWeather(ctx, tc, events)
	default:
		xlog.WithField("tool", tc.Function.Name).Warn("model requested unknown tool")
		return m.rejected(ctx, tc, events, fmt.Sprintf("tool %q does not exist", tc.Function.Name)), nil
	}
}

func (m *ToolManager) executeWeather(ctx context.Context, tc provider.ToolCall, events chan<- workflow.Event) (provider.Message, error) {
	var req weather.Request
	if err := decodeArgs(tc.Function.Arguments, m.weatherSchema, &req); err != nil {
		xlog.WithError(err).WithField("tool", tc.Function.Name).Warn("invalid tool arguments")
		return m.rejected(ctx, tc, events, fmt.Sprintf("invalid arguments for tool %q: %v", tc.Function.Name, err)), nil
	}

	workflow.Send(ctx, events, workflow.ToolStartEvent{
		ToolName:       tc.Function.Name,
		RequestDisplay: req.String(),
	})

	res, err := m.weather.Execute(ctx, req)
	if err != nil {
		workflow.Send(ctx, events, workflow.ToolEndEvent{
			ToolName: tc.Function.Name,
			Display:  tool.StringDisplay("Cancelled"),
		})
		return provider.Message{}, err
	}

	content := res.LLMContent()
	workflow.Send(ctx, events, workflow.ToolEndEvent{
		ToolName: tc.Function.Name,
		Display:  res.Display(),
		Content:  content,
	})

	return toolMessage(tc, content), nil
}

// rejected answers a tool call that never reached a handler.
func (m *ToolManager) rejected(ctx context.Context, tc provider.ToolCall, events chan<- workflow.Event, reason string) provider.Message {
	content := errorContent(reason)

	workflow.Send(ctx, events, workflow.ToolStartEvent{ToolName: tc.Function.Name})
	workflow.Send(ctx, events, workflow.ToolEndEvent{
		ToolName: tc.Function.Name,
		Display:  tool.ErrorDisplay{Message: reason},
		Content:  content,
	})

	return toolMessage(tc, content)
}

// decodeArgs validates raw JSON arguments against schema and decodes them into out.
// An empty argument string is treated as an empty object.
func decodeArgs(raw json.RawMessage, schema *gojsonschema.Schema, out any) error {
	args := map[string]any{}
	if len(strings.TrimSpace(string(raw))) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return fmt.Errorf("arguments are not a JSON object: %w", err)
		}
	}

	if schema != nil {
		result, err := schema.Validate(gojsonschema.NewGoLoader(args))
		if err != nil {
			return err
		}
		if !result.Valid() {
			msgs := make([]string, 0, len(result.Errors()))
			for _, e := range result.Errors() {
				msgs = append(msgs, e.String())
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
	}

	return mapstructure.Decode(args, out)
}

func toolMessage(tc provider.ToolCall, content string) provider.Message {
	return provider.Message{
		Role:       provider.RoleTool,
		ToolCallID: tc.ID,
		Name:       tc.Function.Name,
		Content:    content,
	}
}

func errorContent(reason string) string {
	data, _ := json.Marshal(map[string]string{"error": reason})
	return string(data)
}
