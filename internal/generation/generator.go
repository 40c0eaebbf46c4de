package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"text/template"
	"time"

	"github.com/phrazzld/study-notes-api/internal/domain"
)

// Generator defines the interface for generating study notes from a topic.
// This interface serves as a boundary between the HTTP layer and the
// external LLM services.
type Generator interface {
	// GenerateNotes produces study notes for topic.
	//
	// Errors are one of *ConfigError, *ProviderError, ErrNoContent,
	// domain.ErrUnparsableNotes, domain.ErrInvalidNotesFormat, or an
	// unexpected failure (transport, template, cancellation).
	GenerateNotes(ctx context.Context, topic domain.Topic) (*domain.StudyNotes, error)
}

// Options configures a NotesGenerator.
type Options struct {
	// ProviderName is used in operator-facing messages, e.g. "OpenAI".
	ProviderName string
	Model        string
	Temperature  float32
	MaxTokens    int
	// Timeout bounds the provider call. Zero means no timeout beyond the
	// caller's context.
	Timeout time.Duration
	// Template renders the user prompt. Nil selects DefaultPromptTemplate.
	Template *template.Template
}

// NotesGenerator implements Generator on top of a single Provider.
// It holds no mutable state and is safe for concurrent use.
type NotesGenerator struct {
	provider Provider
	opts     Options
	logger   *slog.Logger
}

var _ Generator = (*NotesGenerator)(nil)

// NewNotesGenerator creates a NotesGenerator.
//
// provider may be nil when no credential is configured; GenerateNotes then
// fails with a *ConfigError so that the condition is reported per request.
func NewNotesGenerator(provider Provider, opts Options, logger *slog.Logger) (*NotesGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if opts.ProviderName == "" {
		return nil, fmt.Errorf("%w: provider name cannot be empty", ErrInvalidConfig)
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", ErrInvalidConfig)
	}
	if opts.MaxTokens <= 0 {
		return nil, fmt.Errorf("%w: max tokens must be positive", ErrInvalidConfig)
	}
	if opts.Template == nil {
		opts.Template = DefaultPromptTemplate()
	}

	return &NotesGenerator{
		provider: provider,
		opts:     opts,
		logger:   logger,
	}, nil
}

// GenerateNotes implements Generator.
func (g *NotesGenerator) GenerateNotes(
	ctx context.Context,
	topic domain.Topic,
) (*domain.StudyNotes, error) {
	if g.provider == nil {
		return nil, &ConfigError{Provider: g.opts.ProviderName}
	}

	prompt, err := BuildPrompt(g.opts.Template, topic)
	if err != nil {
		return nil, err
	}

	req := CompletionRequest{
		Model: g.opts.Model,
		Messages: []Message{
			{Role: RoleSystem, Content: SystemPrompt},
			{Role: RoleUser, Content: prompt},
		},
		Temperature: g.opts.Temperature,
		MaxTokens:   g.opts.MaxTokens,
	}

	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	g.logger.DebugContext(ctx, "requesting study notes",
		"provider", g.opts.ProviderName,
		"model", g.opts.Model,
		"topic_length", len(topic),
		"prompt_length", len(prompt))

	started := time.Now()
	content, err := g.provider.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	g.logger.DebugContext(ctx, "provider responded",
		"provider", g.opts.ProviderName,
		"content_length", len(content),
		"duration_ms", time.Since(started).Milliseconds())

	if content == "" {
		return nil, ErrNoContent
	}

	return domain.ParseStudyNotes(content)
}
