package weather

import (
	"context"

	"github.com/Cyclone1070/weatheragent/internal/tool"
)

// ToolName is the name the model uses to call the weather lookup.
const ToolName = "get_today_weather"

// Looker performs a single weather lookup.
type Looker interface {
	Lookup(ctx context.Context, city string) Result
}

// Tool exposes a Looker as the get_today_weather tool.
type Tool struct {
	looker Looker
}

// NewTool creates the get_today_weather tool backed by looker.
func NewTool(looker Looker) *Tool {
	return &Tool{looker: looker}
}

// Name returns the tool's identifier.
func (t *Tool) Name() string {
	return ToolName
}

// Declaration returns the tool's schema for the LLM.
func (t *Tool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        ToolName,
		Description: "Looks up the current weather for a city: condition, description, temperature, feels-like temperature and humidity.",
		Parameters: &tool.Schema{
			Type: tool.TypeObject,
			Properties: map[string]*tool.Schema{
				"city": {
					Type:        tool.TypeString,
					Description: "City name to look up (e.g. Seoul, Busan, Tokyo, New York)",
				},
			},
			Required: []string{"city"},
		},
	}
}

// Execute runs the lookup. Lookup failures are part of the Result, so the
// only error returned is context cancellation.
func (t *Tool) Execute(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	res := t.looker.Lookup(ctx, req.City)
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return res, nil
}
