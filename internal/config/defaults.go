package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Orchestrator OrchestratorConfig `json:"orchestrator"`
	Provider     ProviderConfig     `json:"provider"`
	Weather      WeatherConfig      `json:"weather"`
	Logging      LoggingConfig      `json:"logging"`
	Demo         DemoConfig         `json:"demo"`

	// Credentials are read from the environment only, never from the dotfile.
	Credentials Credentials `json:"-"`
}

type OrchestratorConfig struct {
	// PromptTemplate is the user question; "{city}" is replaced with the city name.
	PromptTemplate string `json:"prompt_template"` // Default: "What is the weather like in {city} today?"

	// ReissueWithoutToolCall sends a second completion even when the model answered
	// round one without calling a tool. Default: false (round one's text is returned).
	ReissueWithoutToolCall bool `json:"reissue_without_tool_call"`
}

type ProviderConfig struct {
	Backend        string `json:"backend"`         // Default: "openai" ("openai" | "gemini")
	OpenAIModel    string `json:"openai_model"`    // Default: "gpt-4o-mini"
	OpenAIBaseURL  string `json:"openai_base_url"` // Default: "" (SDK default)
	GeminiModel    string `json:"gemini_model"`    // Default: "gemini-2.5-flash"
	TimeoutSeconds int    `json:"timeout_seconds"` // Default: 60
}

type WeatherConfig struct {
	BaseURL        string `json:"base_url"`        // Default: OpenWeatherMap current weather endpoint
	Units          string `json:"units"`           // Default: "metric"
	Language       string `json:"language"`        // Default: "kr"
	TimeoutSeconds int    `json:"timeout_seconds"` // Default: 10
}

type LoggingConfig struct {
	Level      string `json:"level"`        // Default: "warn"
	File       string `json:"file"`         // Default: "" (stderr)
	MaxSizeMB  int    `json:"max_size_mb"`  // Default: 20
	MaxBackups int    `json:"max_backups"`  // Default: 3
}

type DemoConfig struct {
	DefaultCity string `json:"default_city"` // Default: "서울"
}

// Credentials holds API keys injected from the process environment.
type Credentials struct {
	OpenAIAPIKey      string
	GeminiAPIKey      string
	OpenWeatherAPIKey string
}

const (
	BackendOpenAI = "openai"
	BackendGemini = "gemini"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Orchestrator: OrchestratorConfig{
			PromptTemplate:         "What is the weather like in {city} today?",
			ReissueWithoutToolCall: false,
		},
		Provider: ProviderConfig{
			Backend:        BackendOpenAI,
			OpenAIModel:    "gpt-4o-mini",
			GeminiModel:    "gemini-2.5-flash",
			TimeoutSeconds: 60,
		},
		Weather: WeatherConfig{
			BaseURL:        "https://api.openweathermap.org/data/2.5/weather",
			Units:          "metric",
			Language:       "kr",
			TimeoutSeconds: 10,
		},
		Logging: LoggingConfig{
			Level:      "warn",
			MaxSizeMB:  20,
			MaxBackups: 3,
		},
		Demo: DemoConfig{
			DefaultCity: "서울",
		},
	}
}
