package anthropic

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T, handler http.HandlerFunc) *Generator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("claude-test",
		option.WithBaseURL(srv.URL),
		option.WithAPIKey("test-key"),
		option.WithMaxRetries(0),
	)
}

func TestGenerateMetaCandidate_ReturnsText(t *testing.T) {
	var got map[string]any
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"model": "claude-test",
			"content": [{"type": "text", "text": "  \"A concise guide to auditing meta descriptions.\"  "}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 12, "output_tokens": 9}
		}`)
	})

	cand, err := g.GenerateMetaCandidate(context.Background(), "Meta audits", "Long article text")

	require.NoError(t, err)
	assert.Equal(t, "A concise guide to auditing meta descriptions.", cand.Text)
	assert.Nil(t, cand.Confidence)
	assert.Equal(t, "claude-test", got["model"])
	assert.Contains(t, got["messages"].([]any)[0].(map[string]any)["content"].([]any)[0].(map[string]any)["text"], "Meta audits")
}

func TestGenerateMetaCandidate_APIError(t *testing.T) {
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"type":"error","error":{"type":"api_error","message":"boom"}}`)
	})

	_, err := g.GenerateMetaCandidate(context.Background(), "t", "p")

	require.Error(t, err)
}

func TestGenerateMetaCandidate_EmptyReply(t *testing.T) {
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"msg_02","type":"message","role":"assistant","model":"claude-test","content":[],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":0}}`)
	})

	_, err := g.GenerateMetaCandidate(context.Background(), "t", "p")

	require.ErrorIs(t, err, errEmptyReply)
}
