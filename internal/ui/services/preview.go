package services

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/weatheragent/internal/tool"
)

// FormatToolDescription renders a tool call the way it reads in code, e.g.
// get_today_weather(city=Seoul).
func FormatToolDescription(name string, requestDisplay string) string {
	return fmt.Sprintf("%s(%s)", name, requestDisplay)
}

// RenderToolDisplay renders a tool result for the transcript.
func RenderToolDisplay(display tool.ToolDisplay) string {
	switch d := display.(type) {
	case nil:
		return ""
	case tool.StringDisplay:
		return string(d)
	case tool.ErrorDisplay:
		return "error: " + d.Message
	case tool.WeatherDisplay:
		return renderWeather(d)
	default:
		return ""
	}
}

func renderWeather(d tool.WeatherDisplay) string {
	parts := []string{fmt.Sprintf("%s (%s)", d.Weather, d.Description)}
	parts = append(parts, "temp "+formatFloat(d.Temperature, "°C"))
	parts = append(parts, "feels like "+formatFloat(d.FeelsLike, "°C"))
	if d.Humidity != nil {
		parts = append(parts, fmt.Sprintf("humidity %d%%", *d.Humidity))
	} else {
		parts = append(parts, "humidity n/a")
	}
	return strings.Join(parts, ", ")
}

func formatFloat(v *float64, unit string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%s", *v, unit)
}
