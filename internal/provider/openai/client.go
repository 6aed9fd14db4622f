package openai

import (
	"context"
	"net/http"
	"time"

	"github.com/Cyclone1070/weatheragent/internal/provider"
	goopenai "github.com/sashabaranov/go-openai"
)

// ChatClient defines the subset of the OpenAI SDK the provider uses.
type ChatClient interface {
	// CreateChatCompletion sends one chat completion request.
	CreateChatCompletion(ctx context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

// Dial creates an SDK client. An empty baseURL keeps the SDK's default endpoint.
func Dial(apiKey, baseURL string, timeout time.Duration) (*goopenai.Client, error) {
	if apiKey == "" {
		return nil, provider.ErrMissingAPIKey
	}
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	return goopenai.NewClientWithConfig(cfg), nil
}
