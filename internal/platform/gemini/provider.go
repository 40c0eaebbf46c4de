package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/study-notes-api/internal/config"
	"github.com/phrazzld/study-notes-api/internal/generation"
	"google.golang.org/genai"
)

// ProviderName identifies this provider in messages and logs.
const ProviderName = "Gemini"

// contentGenerator is the subset of *genai.Models used by Provider.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Provider implements generation.Provider using the Gemini API.
type Provider struct {
	logger *slog.Logger
	models contentGenerator
}

var _ generation.Provider = (*Provider)(nil)

// NewProvider creates a Provider with a new Gemini API client.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing the Gemini API key
func NewProvider(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Provider, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Provider{logger: logger, models: client.Models}, nil
}

// Complete implements generation.Provider.
func (p *Provider) Complete(ctx context.Context, req generation.CompletionRequest) (string, error) {
	contents, cfg := buildRequest(req)

	resp, err := p.models.GenerateContent(ctx, req.Model, contents, cfg)
	if err != nil {
		if providerErr := toProviderError(err); providerErr != nil {
			p.logger.WarnContext(ctx, "Gemini API returned an error",
				"status_code", providerErr.StatusCode)
			return "", providerErr
		}
		return "", fmt.Errorf("call Gemini API: %w", err)
	}

	if resp != nil && len(resp.Candidates) > 0 &&
		resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		p.logger.WarnContext(ctx, "Gemini response blocked by safety filters")
	}

	return firstCandidateText(resp), nil
}

// buildRequest maps a completion request onto Gemini contents and config.
// System turns are joined into the system instruction.
func buildRequest(req generation.CompletionRequest) ([]*genai.Content, *genai.GenerateContentConfig) {
	temperature := req.Temperature
	cfg := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  int32(req.MaxTokens),
		ResponseMIMEType: "application/json",
	}

	var system []string
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, msg := range req.Messages {
		if msg.Role == generation.RoleSystem {
			system = append(system, msg.Content)
			continue
		}
		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}

	if len(system) > 0 {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: strings.Join(system, "\n\n")}},
		}
	}

	return contents, cfg
}

// firstCandidateText concatenates the text parts of the first candidate.
func firstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

// toProviderError converts a genai API error into a ProviderError.
// It returns nil for errors that did not come from the API.
func toProviderError(err error) *generation.ProviderError {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		var apiErrPtr *genai.APIError
		if !errors.As(err, &apiErrPtr) || apiErrPtr == nil {
			return nil
		}
		apiErr = *apiErrPtr
	}

	status := apiErr.Code
	if status < http.StatusBadRequest {
		status = http.StatusBadGateway
	}

	return &generation.ProviderError{
		Provider:   ProviderName,
		StatusCode: status,
		Message:    apiErr.Message,
	}
}
