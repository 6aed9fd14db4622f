package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Orchestrator validation
	if !strings.Contains(c.Orchestrator.PromptTemplate, "{city}") {
		errs = append(errs, "orchestrator.prompt_template must contain {city}")
	}

	// Provider validation
	switch c.Provider.Backend {
	case BackendOpenAI:
		if c.Provider.OpenAIModel == "" {
			errs = append(errs, "provider.openai_model must not be empty")
		}
	case BackendGemini:
		if c.Provider.GeminiModel == "" {
			errs = append(errs, "provider.gemini_model must not be empty")
		}
	default:
		errs = append(errs, fmt.Sprintf("provider.backend must be %q or %q", BackendOpenAI, BackendGemini))
	}
	if c.Provider.TimeoutSeconds < 1 {
		errs = append(errs, "provider.timeout_seconds must be >= 1")
	}

	// Weather validation
	if u, err := url.Parse(c.Weather.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, "weather.base_url must be an absolute URL")
	}
	if c.Weather.Units == "" {
		errs = append(errs, "weather.units must not be empty")
	}
	if c.Weather.TimeoutSeconds < 1 {
		errs = append(errs, "weather.timeout_seconds must be >= 1")
	}

	// Logging validation
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, "logging.level must be a valid log level")
	}
	if c.Logging.MaxSizeMB < 1 {
		errs = append(errs, "logging.max_size_mb must be >= 1")
	}
	if c.Logging.MaxBackups < 0 {
		errs = append(errs, "logging.max_backups must be >= 0")
	}

	if c.Demo.DefaultCity == "" {
		errs = append(errs, "demo.default_city must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}

// ValidateCredentials checks that the keys needed by the selected backend are present.
func (c *Config) ValidateCredentials() error {
	var missing []string

	switch c.Provider.Backend {
	case BackendGemini:
		if c.Credentials.GeminiAPIKey == "" {
			missing = append(missing, EnvGeminiAPIKey)
		}
	default:
		if c.Credentials.OpenAIAPIKey == "" {
			missing = append(missing, EnvOpenAIAPIKey)
		}
	}
	if c.Credentials.OpenWeatherAPIKey == "" {
		missing = append(missing, EnvOpenWeatherAPIKey)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
