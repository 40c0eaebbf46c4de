package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/study-notes-api/internal/config"
	"github.com/phrazzld/study-notes-api/internal/generation"
)

// ProviderName identifies this provider in messages and logs.
const ProviderName = "OpenAI"

// maxResponseBytes caps how much of an upstream response is read.
const maxResponseBytes = 4 << 20

// Provider implements generation.Provider for the OpenAI chat completions API.
type Provider struct {
	logger     *slog.Logger
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

var _ generation.Provider = (*Provider)(nil)

// Option customizes a Provider.
type Option func(*Provider)

// WithHTTPClient replaces the HTTP client used for outbound calls.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = c
	}
}

// NewProvider creates a Provider from the LLM configuration.
// The client carries no timeout of its own; callers bound calls through the
// request context.
func NewProvider(logger *slog.Logger, cfg config.LLMConfig, opts ...Option) (*Provider, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: OpenAI API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.OpenAIBaseURL == "" {
		return nil, fmt.Errorf("%w: OpenAI base URL cannot be empty", generation.ErrInvalidConfig)
	}

	p := &Provider{
		logger:     logger,
		apiKey:     cfg.OpenAIAPIKey,
		endpoint:   strings.TrimRight(cfg.OpenAIBaseURL, "/") + "/chat/completions",
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Complete sends a single chat completion request and returns the content of
// the first choice.
func (p *Provider) Complete(ctx context.Context, req generation.CompletionRequest) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call OpenAI API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		providerErr := &generation.ProviderError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody),
		}
		p.logger.WarnContext(ctx, "OpenAI API returned an error",
			"status_code", resp.StatusCode,
			"message_present", providerErr.Message != "")
		return "", providerErr
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	// A missing choices list is malformed; an empty one means nothing was generated
	if chat.Choices == nil {
		return "", errors.New("unmarshal response: missing choices")
	}
	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == nil {
		return "", nil
	}
	return *chat.Choices[0].Message.Content, nil
}

// errorMessage extracts error.message from an upstream error body.
// Bodies that are not JSON or lack the field yield an empty string.
func errorMessage(body []byte) string {
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Error == nil {
		return ""
	}
	return parsed.Error.Message
}
