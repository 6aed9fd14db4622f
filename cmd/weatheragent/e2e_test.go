package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Cyclone1070/weatheragent/internal/config"
	"github.com/Cyclone1070/weatheragent/internal/tool/weather"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOpenAI serves chat completions: a get_today_weather call when tools are offered,
// otherwise a text answer echoing the last tool payload.
type fakeOpenAI struct {
	mu       sync.Mutex
	requests []map[string]any
}

func (f *fakeOpenAI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req map[string]any
	raw, _ := io.ReadAll(r.Body)
	_ = json.Unmarshal(raw, &req)

	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	messages, _ := req["messages"].([]any)
	last, _ := messages[len(messages)-1].(map[string]any)

	var message map[string]any
	if _, hasTools := req["tools"]; hasTools {
		message = map[string]any{
			"role":    "assistant",
			"content": "",
			"tool_calls": []any{map[string]any{
				"id":   "call_seoul",
				"type": "function",
				"function": map[string]any{
					"name":      "get_today_weather",
					"arguments": `{"city":"Seoul"}`,
				},
			}},
		}
	} else {
		message = map[string]any{
			"role":    "assistant",
			"content": "Seoul today: " + last["content"].(string),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-e2e",
		"object":  "chat.completion",
		"model":   req["model"],
		"choices": []any{map[string]any{"index": 0, "message": message, "finish_reason": "stop"}},
	})
}

func TestEndToEnd_OpenAIAndOpenWeatherMap(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	var weatherQueries atomic.Int32
	owm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		weatherQueries.Add(1)
		assert.Equal(t, "Seoul", r.URL.Query().Get("q"))
		assert.Equal(t, "owm-key", r.URL.Query().Get("appid"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"weather":[{"main":"Clear","description":"맑음"}],"main":{"temp":18.5,"feels_like":17.9,"humidity":40}}`)
	}))
	defer owm.Close()

	chat := &fakeOpenAI{}
	llm := httptest.NewServer(chat)
	defer llm.Close()

	cfg := config.DefaultConfig()
	cfg.Provider.OpenAIBaseURL = llm.URL + "/v1"
	cfg.Weather.BaseURL = owm.URL
	cfg.Credentials = config.Credentials{OpenAIAPIKey: "sk-test", OpenWeatherAPIKey: "owm-key"}

	p, err := createProvider(context.Background(), cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	deps := Dependencies{
		Config:   cfg,
		Provider: p,
		Weather:  weather.NewClient(cfg.Weather, cfg.Credentials.OpenWeatherAPIKey),
		Stdout:   &out,
	}

	require.NoError(t, runCities(context.Background(), deps, []string{"Seoul"}))

	assert.Equal(t, int32(1), weatherQueries.Load())

	chat.mu.Lock()
	defer chat.mu.Unlock()
	require.Len(t, chat.requests, 2)

	first := chat.requests[0]
	assert.Equal(t, "auto", first["tool_choice"])
	assert.Len(t, first["messages"], 1)

	second := chat.requests[1]
	assert.NotContains(t, second, "tools")
	msgs := second["messages"].([]any)
	require.Len(t, msgs, 3)
	toolMsg := msgs[2].(map[string]any)
	assert.Equal(t, "tool", toolMsg["role"])
	assert.Equal(t, "call_seoul", toolMsg["tool_call_id"])
	assert.JSONEq(t, `{"weather":"Clear","description":"맑음","temperature":18.5,"feels_like":17.9,"humidity":40}`, toolMsg["content"].(string))

	assert.Contains(t, out.String(), "- call: get_today_weather(city=Seoul)")
	assert.Contains(t, out.String(), "===== Final answer =====\nSeoul today: ")
}
