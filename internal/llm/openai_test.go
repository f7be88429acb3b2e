package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatServer(t *testing.T, reply string, captured *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer groq-key", r.Header.Get("Authorization"))
		if captured != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIClient_Generate_Text(t *testing.T) {
	var body map[string]any
	srv := newChatServer(t, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"model": "mixtral-8x7b-32768",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "Use Case 1: Triage"}, "finish_reason": "stop"}]
	}`, &body)

	c := NewOpenAIClient("groq-key", "mixtral-8x7b-32768", srv.URL, 0.5, 0)
	resp, err := c.Generate(context.Background(), "prompt text")
	require.NoError(t, err)

	assert.Equal(t, TextResponse, resp.Kind)
	assert.Equal(t, "Use Case 1: Triage", resp.Text())

	assert.Equal(t, "mixtral-8x7b-32768", body["model"])
	assert.InDelta(t, 0.5, body["temperature"], 1e-6)
	msgs := body["messages"].([]any)
	require.Len(t, msgs, 1)
	assert.Equal(t, "prompt text", msgs[0].(map[string]any)["content"])
}

func TestOpenAIClient_Generate_NoChoicesIsRaw(t *testing.T) {
	srv := newChatServer(t, `{"id": "chatcmpl-2", "object": "chat.completion", "choices": []}`, nil)

	c := NewOpenAIClient("groq-key", "m", srv.URL, 0.5, 0)
	resp, err := c.Generate(context.Background(), "p")
	require.NoError(t, err)

	assert.Equal(t, RawResponse, resp.Kind)
	assert.Contains(t, resp.Text(), "chatcmpl-2")
}

func TestOpenAIClient_Generate_ErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "Invalid API Key", "type": "invalid_request_error"}}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("bad", "m", srv.URL, 0.5, 0)
	_, err := c.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API Key")
}
