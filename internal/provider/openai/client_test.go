package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDial_SendsChatCompletionOverHTTP(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"finish_reason": "tool_calls",
				"message": {
					"role": "assistant",
					"content": "",
					"tool_calls": [{
						"id": "call_1",
						"type": "function",
						"function": {"name": "get_today_weather", "arguments": "{\"city\":\"Seoul\"}"}
					}]
				}
			}]
		}`)
	}))
	defer srv.Close()

	client, err := Dial("sk-test", srv.URL+"/v1", 5*time.Second)
	require.NoError(t, err)

	resp, err := New(client, "gpt-4o-mini").Generate(context.Background(), []provider.Message{
		{Role: provider.RoleUser, Content: "What is the weather like in Seoul today?"},
	}, nil)

	require.NoError(t, err)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "call_1", resp.ToolCalls[0].ID)
	assert.JSONEq(t, `{"city":"Seoul"}`, string(resp.ToolCalls[0].Function.Arguments))
	assert.Equal(t, "gpt-4o-mini", body["model"])
}

func TestDial_UnauthorizedMapsToAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`)
	}))
	defer srv.Close()

	client, err := Dial("sk-bad", srv.URL+"/v1", 5*time.Second)
	require.NoError(t, err)

	_, err = New(client, "gpt-4o-mini").Generate(context.Background(), []provider.Message{
		{Role: provider.RoleUser, Content: "hi"},
	}, nil)

	assert.Equal(t, provider.ErrorCodeAuth, provider.CodeOf(err))
}

func TestDial_EmptyAssistantReplyNotSent(t *testing.T) {
	var body struct {
		Messages []map[string]any `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "chatcmpl-2",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "Clear skies."}}]
		}`)
	}))
	defer srv.Close()

	client, err := Dial("sk-test", srv.URL+"/v1", 5*time.Second)
	require.NoError(t, err)

	_, err = New(client, "gpt-4o-mini").Generate(context.Background(), []provider.Message{
		{Role: provider.RoleUser, Content: "What is the weather like in Seoul today?"},
		{Role: provider.RoleAssistant},
	}, nil)
	require.NoError(t, err)

	require.Len(t, body.Messages, 1)
	assert.Equal(t, "user", body.Messages[0]["role"])
	for _, m := range body.Messages {
		if m["role"] == "assistant" {
			assert.True(t, m["content"] != nil || m["tool_calls"] != nil, "assistant message without content or tool_calls")
		}
	}
}
