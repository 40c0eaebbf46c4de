package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/study-notes-api/internal/config"
	"github.com/phrazzld/study-notes-api/internal/generation"
	"github.com/phrazzld/study-notes-api/internal/platform/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestProvider points a Provider at an httptest server running handler.
func newTestProvider(t *testing.T, handler http.HandlerFunc) *openai.Provider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := openai.NewProvider(newTestLogger(), config.LLMConfig{
		OpenAIAPIKey:  "sk-test",
		OpenAIBaseURL: server.URL + "/v1/",
	}, openai.WithHTTPClient(server.Client()))
	require.NoError(t, err)
	return p
}

func testRequest() generation.CompletionRequest {
	return generation.CompletionRequest{
		Model: "gpt-4o-mini",
		Messages: []generation.Message{
			{Role: generation.RoleSystem, Content: generation.SystemPrompt},
			{Role: generation.RoleUser, Content: "prompt"},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	}
}

func TestNewProvider_Validation(t *testing.T) {
	t.Parallel()

	_, err := openai.NewProvider(nil, config.LLMConfig{OpenAIAPIKey: "k", OpenAIBaseURL: "http://x"})
	assert.Error(t, err)

	_, err = openai.NewProvider(newTestLogger(), config.LLMConfig{OpenAIBaseURL: "http://x"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = openai.NewProvider(newTestLogger(), config.LLMConfig{OpenAIAPIKey: "k"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestComplete_Success(t *testing.T) {
	t.Parallel()

	var received map[string]any
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"definition\":\"D\"}"}},{"message":{"content":"second"}}]}`))
	})

	content, err := p.Complete(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, `{"definition":"D"}`, content, "only the first choice is used")

	assert.Equal(t, "gpt-4o-mini", received["model"])
	assert.InDelta(t, 0.7, received["temperature"], 0.0001)
	assert.EqualValues(t, 500, received["max_tokens"])
	messages, ok := received["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, map[string]any{"role": "system", "content": generation.SystemPrompt}, messages[0])
	assert.Equal(t, map[string]any{"role": "user", "content": "prompt"}, messages[1])
}

func TestComplete_NoContent(t *testing.T) {
	t.Parallel()

	bodies := []string{
		`{"choices":[]}`,
		`{"choices":[{}]}`,
		`{"choices":[null]}`,
		`{"choices":[{"message":{"content":null}}]}`,
		`{"choices":[{"message":{"content":""}}]}`,
	}

	for _, body := range bodies {
		body := body
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})

		content, err := p.Complete(context.Background(), testRequest())

		require.NoError(t, err, body)
		assert.Empty(t, content, body)
	}
}

func TestComplete_MissingChoices(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{}`, `{"choices":null}`, `{"id":"chatcmpl-1"}`} {
		body := body
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})

		content, err := p.Complete(context.Background(), testRequest())

		require.Error(t, err, body)
		assert.Empty(t, content, body)
		assert.NotErrorIs(t, err, generation.ErrNoContent, body)

		var providerErr *generation.ProviderError
		assert.False(t, errors.As(err, &providerErr), body)
	}
}

func TestComplete_ProviderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantPublic  string
	}{
		{
			name:        "rate limited",
			status:      http.StatusTooManyRequests,
			body:        `{"error":{"message":"rate limited"}}`,
			wantMessage: "rate limited",
			wantPublic:  "rate limited",
		},
		{
			name:        "unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`,
			wantMessage: "Incorrect API key provided",
			wantPublic:  "Incorrect API key provided",
		},
		{
			name:       "non-json body",
			status:     http.StatusBadGateway,
			body:       `<html>bad gateway</html>`,
			wantPublic: "OpenAI API error",
		},
		{
			name:       "json without message",
			status:     http.StatusServiceUnavailable,
			body:       `{"error":{}}`,
			wantPublic: "OpenAI API error",
		},
		{
			name:       "empty body",
			status:     http.StatusInternalServerError,
			body:       ``,
			wantPublic: "OpenAI API error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			content, err := p.Complete(context.Background(), testRequest())

			assert.Empty(t, content)
			var providerErr *generation.ProviderError
			require.ErrorAs(t, err, &providerErr)
			assert.Equal(t, tc.status, providerErr.StatusCode)
			assert.Equal(t, tc.wantMessage, providerErr.Message)
			assert.Equal(t, tc.wantPublic, providerErr.PublicMessage())
		})
	}
}

func TestComplete_MalformedSuccessBody(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := p.Complete(context.Background(), testRequest())

	require.Error(t, err)
	var providerErr *generation.ProviderError
	assert.False(t, errors.As(err, &providerErr), "a malformed success body is not a provider error")
}

func TestComplete_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	p, err := openai.NewProvider(newTestLogger(), config.LLMConfig{
		OpenAIAPIKey:  "sk-test",
		OpenAIBaseURL: url,
	})
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), testRequest())

	require.Error(t, err)
	var providerErr *generation.ProviderError
	assert.False(t, errors.As(err, &providerErr))
}

func TestComplete_ContextCanceled(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Complete(ctx, testRequest())

	assert.ErrorIs(t, err, context.Canceled)
}
