package toolmanager

import (
	"context"

	"github.com/Cyclone1070/weatheragent/internal/tool"
	"github.com/Cyclone1070/weatheragent/internal/tool/weather"
)

// weatherTool runs the get_today_weather tool with a decoded request.
type weatherTool interface {
	// Declaration returns the tool's schema for the LLM.
	Declaration() tool.Declaration

	// Execute runs the lookup. Lookup failures live inside the Result;
	// the error is reserved for cancellation.
	Execute(ctx context.Context, req weather.Request) (weather.Result, error)
}
