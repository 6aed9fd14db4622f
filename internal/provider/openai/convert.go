package openai

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/tool"
	goopenai "github.com/sashabaranov/go-openai"
)

// toOpenAIMessages converts the conversation to chat completion messages.
func toOpenAIMessages(messages []provider.Message) []goopenai.ChatCompletionMessage {
	out := make([]goopenai.ChatCompletionMessage, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case provider.RoleAssistant:
			// An assistant message needs content or tool calls.
			if msg.Content == "" && !msg.HasToolCalls() {
				continue
			}
			m := goopenai.ChatCompletionMessage{
				Role:    goopenai.ChatMessageRoleAssistant,
				Content: msg.Content,
			}
			for _, tc := range msg.ToolCalls {
				m.ToolCalls = append(m.ToolCalls, goopenai.ToolCall{
					ID:   tc.ID,
					Type: goopenai.ToolTypeFunction,
					Function: goopenai.FunctionCall{
						Name:      tc.Function.Name,
						Arguments: string(tc.Function.Arguments),
					},
				})
			}
			out = append(out, m)

		case provider.RoleTool:
			out = append(out, goopenai.ChatCompletionMessage{
				Role:       goopenai.ChatMessageRoleTool,
				Content:    msg.Content,
				ToolCallID: msg.ToolCallID,
				Name:       msg.Name,
			})

		default:
			out = append(out, goopenai.ChatCompletionMessage{
				Role:    goopenai.ChatMessageRoleUser,
				Content: msg.Content,
			})
		}
	}

	return out
}

// toOpenAITools converts tool declarations to function tools.
// tool.Schema marshals to JSON Schema, so it is passed through as the parameters.
func toOpenAITools(tools []tool.Declaration) []goopenai.Tool {
	out := make([]goopenai.Tool, 0, len(tools))
	for _, t := range tools {
		fd := &goopenai.FunctionDefinition{
			Name:        t.Name,
			Description: t.Description,
		}
		if t.Parameters != nil {
			fd.Parameters = t.Parameters
		}
		out = append(out, goopenai.Tool{
			Type:     goopenai.ToolTypeFunction,
			Function: fd,
		})
	}
	return out
}

// fromOpenAIResponse converts the first choice to an assistant message.
func fromOpenAIResponse(resp goopenai.ChatCompletionResponse) (*provider.Message, error) {
	if len(resp.Choices) == 0 {
		return nil, &provider.ProviderError{
			Code:       provider.ErrorCodeInvalidRequest,
			Message:    "no choices in response",
			Underlying: provider.ErrEmptyResponse,
		}
	}

	choice := resp.Choices[0]
	if choice.FinishReason == goopenai.FinishReasonContentFilter {
		return nil, &provider.ProviderError{
			Code:    provider.ErrorCodeContentBlocked,
			Message: "content blocked by content filter",
		}
	}

	msg := &provider.Message{
		Role:    provider.RoleAssistant,
		Content: choice.Message.Content,
	}
	for _, tc := range choice.Message.ToolCalls {
		args := json.RawMessage(tc.Function.Arguments)
		msg.ToolCalls = append(msg.ToolCalls, provider.ToolCall{
			ID: tc.ID,
			Function: provider.FunctionCall{
				Name:      tc.Function.Name,
				Arguments: args,
			},
		})
	}

	return msg, nil
}

// mapOpenAIError maps SDK errors to provider errors.
func mapOpenAIError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == "context_length_exceeded" {
			return &provider.ProviderError{
				Code:       provider.ErrorCodeContextLength,
				Message:    apiErr.Message,
				Underlying: err,
			}
		}
		return provider.FromHTTPStatus(apiErr.HTTPStatusCode, apiErr.Message, err)
	}

	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return provider.FromHTTPStatus(reqErr.HTTPStatusCode, reqErr.Error(), err)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &provider.ProviderError{
			Code:       provider.ErrorCodeNetwork,
			Message:    "request aborted",
			Underlying: err,
		}
	}

	// Generic network error
	return &provider.ProviderError{
		Code:       provider.ErrorCodeNetwork,
		Message:    "network error",
		Underlying: err,
		Retryable:  true,
	}
}
