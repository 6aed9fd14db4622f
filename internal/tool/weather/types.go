package weather

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Cyclone1070/weatheragent/internal/tool"
)

// Unknown replaces weather text fields missing from the upstream response.
const Unknown = "Unknown"

// Request is the argument set of the get_today_weather tool.
type Request struct {
	City string `json:"city" mapstructure:"city"`
}

// String renders the request the way the call is announced, e.g. "city=Seoul".
func (r Request) String() string {
	return fmt.Sprintf("city=%s", r.City)
}

// Result is the normalized outcome of one lookup: either the five weather
// fields or a single error description, never both.
type Result struct {
	City        string
	Weather     string
	Description string
	Temperature *float64
	FeelsLike   *float64
	Humidity    *int
	Error       string
}

type successPayload struct {
	Weather     string   `json:"weather"`
	Description string   `json:"description"`
	Temperature *float64 `json:"temperature"`
	FeelsLike   *float64 `json:"feels_like"`
	Humidity    *int     `json:"humidity"`
}

type errorPayload struct {
	Error string `json:"error"`
}

// Failed reports whether the lookup produced an error payload.
func (r Result) Failed() bool {
	return r.Error != ""
}

// MarshalJSON emits {"error": ...} for failures and the five weather fields otherwise.
// Missing numeric fields are encoded as null.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return marshalUnescaped(errorPayload{Error: r.Error})
	}
	return marshalUnescaped(successPayload{
		Weather:     r.Weather,
		Description: r.Description,
		Temperature: r.Temperature,
		FeelsLike:   r.FeelsLike,
		Humidity:    r.Humidity,
	})
}

// LLMContent returns the JSON text handed back to the model as tool output.
func (r Result) LLMContent() string {
	data, err := marshalUnescaped(r)
	if err != nil {
		// Only reachable with non-finite floats, which JSON decoding never yields.
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}
	return string(data)
}

// marshalUnescaped is json.Marshal without HTML escaping, so city names
// reach the model exactly as typed.
func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Display returns the UI representation of the result.
func (r Result) Display() tool.ToolDisplay {
	if r.Failed() {
		return tool.ErrorDisplay{Message: r.Error}
	}
	return tool.WeatherDisplay{
		City:        r.City,
		Weather:     r.Weather,
		Description: r.Description,
		Temperature: r.Temperature,
		FeelsLike:   r.FeelsLike,
		Humidity:    r.Humidity,
	}
}

func notFound(city string) Result {
	return Result{City: city, Error: fmt.Sprintf("'%s' 도시를 찾을 수 없습니다.", city)}
}

func requestFailed(city, description string) Result {
	return Result{City: city, Error: fmt.Sprintf("API 요청 중 에러 발생: %s", description)}
}
