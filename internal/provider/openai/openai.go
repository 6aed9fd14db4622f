// Package openai answers chat turns with the OpenAI chat completions API.
package openai

import (
	"context"

	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/tool"
	goopenai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

var xlog = logrus.WithField("module", "openai")

// OpenAIProvider implements chat completion with tool calling on OpenAI models.
type OpenAIProvider struct {
	client    ChatClient
	modelName string
}

// New creates a new OpenAIProvider with the specified client and model.
func New(client ChatClient, modelName string) *OpenAIProvider {
	return &OpenAIProvider{
		client:    client,
		modelName: modelName,
	}
}

// Model returns the model name requests are sent to.
func (p *OpenAIProvider) Model() string {
	return p.modelName
}

// Generate sends the conversation and returns the first choice's message.
// Tool choice is "auto" when tools are offered; with no tools the field is omitted.
func (p *OpenAIProvider) Generate(ctx context.Context, messages []provider.Message, tools []tool.Declaration) (*provider.Message, error) {
	req := goopenai.ChatCompletionRequest{
		Model:    p.modelName,
		Messages: toOpenAIMessages(messages),
	}
	if len(tools) > 0 {
		req.Tools = toOpenAITools(tools)
		req.ToolChoice = "auto"
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		xlog.WithError(err).WithField("model", p.modelName).Warn("chat completion failed")
		return nil, mapOpenAIError(err)
	}

	return fromOpenAIResponse(resp)
}
