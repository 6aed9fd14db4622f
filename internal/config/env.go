package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names for credentials.
const (
	EnvOpenAIAPIKey      = "OPENAI_API_KEY"
	EnvGeminiAPIKey      = "GEMINI_API_KEY"
	EnvOpenWeatherAPIKey = "OPENWEATHER_API_KEY"
)

// LoadDotEnv loads variables from the given .env files into the process environment.
// Variables already set in the environment win. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// CredentialsFromEnv reads API keys using the given lookup function.
func CredentialsFromEnv(getenv func(string) string) Credentials {
	if getenv == nil {
		getenv = os.Getenv
	}
	return Credentials{
		OpenAIAPIKey:      getenv(EnvOpenAIAPIKey),
		GeminiAPIKey:      getenv(EnvGeminiAPIKey),
		OpenWeatherAPIKey: getenv(EnvOpenWeatherAPIKey),
	}
}
