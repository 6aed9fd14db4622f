package gemini

import (
	"context"

	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/tool"
	"github.com/sirupsen/logrus"
)

var xlog = logrus.WithField("module", "gemini")

// GeminiProvider answers chat turns with Google Gemini.
type GeminiProvider struct {
	client    GeminiClient
	modelName string
}

// New creates a new GeminiProvider with the specified client and model.
func New(client GeminiClient, modelName string) *GeminiProvider {
	return &GeminiProvider{
		client:    client,
		modelName: modelName,
	}
}

// Model returns the model name requests are sent to.
func (p *GeminiProvider) Model() string {
	return p.modelName
}

// Generate sends the conversation to Gemini and returns the model's reply.
// Tools are offered in automatic function-calling mode only when tools is non-empty.
func (p *GeminiProvider) Generate(ctx context.Context, messages []provider.Message, tools []tool.Declaration) (*provider.Message, error) {
	contents, err := toGeminiContents(messages)
	if err != nil {
		return nil, &provider.ProviderError{
			Code:       provider.ErrorCodeInvalidRequest,
			Message:    "convert messages",
			Underlying: err,
		}
	}

	resp, err := p.client.GenerateContent(ctx, p.modelName, contents, toGeminiConfig(tools))
	if err != nil {
		xlog.WithError(err).WithField("model", p.modelName).Warn("generate content failed")
		return nil, mapGeminiError(err)
	}

	return fromGeminiResponse(resp)
}
