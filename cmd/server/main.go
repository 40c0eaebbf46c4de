// Package main implements the entry point for the study notes API server,
// which generates study notes for a topic through a configurable LLM provider.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/phrazzld/study-notes-api/internal/config"
	"github.com/phrazzld/study-notes-api/internal/platform/logger"
)

// main is the entry point for the study notes API server.
// It loads configuration, sets up logging, wires the generation service,
// and runs the HTTP server until it is told to stop.
func main() {
	fmt.Println("Study Notes API Server Starting...")

	cfg, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, slog.Default())
	if err != nil {
		slog.Error("Failed to create application", "error", err)
		log.Fatalf("Failed to create application: %v", err)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		slog.Error("Server stopped with error", "error", err)
		log.Fatalf("Server stopped with error: %v", err)
	}
}

// initializeApp loads configuration and sets up logging.
// Returns the loaded config and any initialization error.
func initializeApp() (*config.Config, error) {
	// Variables from .env never override the real environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"llm_provider", cfg.LLM.Provider)

	if cfg.LLM.APIKey() == "" {
		slog.Warn("LLM API key not configured; generation requests will fail",
			"llm_provider", cfg.LLM.Provider)
	}

	return cfg, nil
}
