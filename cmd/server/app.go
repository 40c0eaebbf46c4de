package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/study-notes-api/internal/config"
	"github.com/phrazzld/study-notes-api/internal/generation"
	"github.com/phrazzld/study-notes-api/internal/platform/gemini"
	"github.com/phrazzld/study-notes-api/internal/platform/openai"
)

// application holds the shared application dependencies.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	generator generation.Generator
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	tmpl, err := generation.LoadPromptTemplate(cfg.LLM.PromptTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}

	provider, opts, err := newProvider(ctx, cfg.LLM, logger.With("component", "llm_provider"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}
	opts.Temperature = cfg.LLM.Temperature
	opts.MaxTokens = cfg.LLM.MaxTokens
	opts.Timeout = cfg.LLM.RequestTimeout
	opts.Template = tmpl

	app.generator, err = generation.NewNotesGenerator(provider, opts, logger.With("component", "notes_generator"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize notes generator: %w", err)
	}

	logger.Info("Notes generator initialized",
		"provider", opts.ProviderName,
		"model", opts.Model,
		"credential_present", provider != nil)

	return app, nil
}

// newProvider builds the provider selected by cfg along with the generator
// options that name it. The returned provider is nil when the selected
// provider has no API key; the generator then reports the missing key per
// request.
func newProvider(
	ctx context.Context,
	cfg config.LLMConfig,
	logger *slog.Logger,
) (generation.Provider, generation.Options, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		opts := generation.Options{ProviderName: gemini.ProviderName, Model: cfg.GeminiModelName}
		if cfg.GeminiAPIKey == "" {
			return nil, opts, nil
		}
		p, err := gemini.NewProvider(ctx, logger, cfg)
		if err != nil {
			return nil, opts, err
		}
		return p, opts, nil

	case config.ProviderOpenAI, "":
		opts := generation.Options{ProviderName: openai.ProviderName, Model: cfg.ModelName}
		if cfg.OpenAIAPIKey == "" {
			return nil, opts, nil
		}
		p, err := openai.NewProvider(logger, cfg)
		if err != nil {
			return nil, opts, err
		}
		return p, opts, nil

	default:
		return nil, generation.Options{}, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}
