package aiquiz_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/saulo-duarte/grammar-quiz-lambda/internal/config"
)

const testAPIKey = "test-key"

// fakeGemini stands in for the generateContent endpoint.
type fakeGemini struct {
	server *httptest.Server
	calls  atomic.Int32

	status int
	body   string

	lastPath   string
	lastKey    string
	lastHeader http.Header
	lastBody   []byte
}

func newFakeGemini(t *testing.T, status int, body string) *fakeGemini {
	t.Helper()

	f := &fakeGemini{status: status, body: body}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		f.lastPath = r.URL.Path
		f.lastKey = r.URL.Query().Get("key")
		f.lastHeader = r.Header.Clone()
		f.lastBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_, _ = io.WriteString(w, f.body)
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeGemini) config() config.GeminiConfig {
	return config.GeminiConfig{
		APIKey:     testAPIKey,
		BaseURL:    f.server.URL,
		APIVersion: config.DefaultGeminiAPIVersion,
		Model:      config.DefaultGeminiModel,
		Transport:  config.TransportREST,
	}
}

// candidateBody wraps text the way generateContent returns it.
func candidateBody(t *testing.T, text string) string {
	t.Helper()

	payload := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to build candidate body: %v", err)
	}
	return string(b)
}
