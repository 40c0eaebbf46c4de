package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/study-notes-api/internal/api"
	apiMiddleware "github.com/phrazzld/study-notes-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.Recoverer)
	r.Use(middleware.RequestSize(app.config.Server.MaxBodyBytes))

	notesHandler := api.NewNotesHandler(app.generator, app.logger)

	// All methods reach the handler so that it can answer 405 itself
	r.HandleFunc("/api/generate", notesHandler.GenerateNotes)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
