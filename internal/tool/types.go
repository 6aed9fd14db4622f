package tool

// Type represents JSON Schema types.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// Schema represents a JSON Schema for tool parameters.
type Schema struct {
	Type        Type               `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
}

// Declaration declares a tool's function signature for the LLM.
type Declaration struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Parameters  *Schema `json:"parameters,omitempty"`
}

// ToolDisplay is implemented by all display types returned from tools.
// The UI uses type switches to render each type appropriately.
type ToolDisplay interface {
	isToolDisplay()
}

// StringDisplay is for simple text output.
type StringDisplay string

func (StringDisplay) isToolDisplay() {}

// ErrorDisplay is for tool calls that produced an error payload instead of data.
type ErrorDisplay struct {
	Message string
}

func (ErrorDisplay) isToolDisplay() {}

// WeatherDisplay is the UI view of a successful weather lookup.
type WeatherDisplay struct {
	City        string
	Weather     string
	Description string
	Temperature *float64
	FeelsLike   *float64
	Humidity    *int
}

func (WeatherDisplay) isToolDisplay() {}
