package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/study-notes-api/internal/api/shared"
	"github.com/phrazzld/study-notes-api/internal/domain"
	"github.com/phrazzld/study-notes-api/internal/generation"
	"github.com/phrazzld/study-notes-api/internal/platform/logger"
)

// NotesHandler handles study notes generation requests
type NotesHandler struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewNotesHandler creates a new NotesHandler
func NewNotesHandler(generator generation.Generator, logger *slog.Logger) *NotesHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotesHandler{
		generator: generator,
		logger:    logger.With("component", "notes_handler"),
	}
}

// GenerateNotes handles /api/generate requests.
//
// Only POST is accepted. The body must be a JSON object with a non-blank
// "topic" string. On success the generated notes document is returned as-is.
func (h *NotesHandler) GenerateNotes(w http.ResponseWriter, r *http.Request) {
	// Responses log through the request-scoped logger, falling back to the handler's own
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	r = r.WithContext(logger.WithLogger(r.Context(), log))

	// The method is checked before the body is touched
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
		return
	}

	req, err := decodeGenerateNotesRequest(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequestFormat, err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgTopicRequired)
		return
	}

	topic := domain.Topic(req.Topic)
	notes, err := h.generator.GenerateNotes(r.Context(), topic)
	if err != nil {
		status, message := MapGenerationError(err)

		var providerErr *generation.ProviderError
		if errors.As(err, &providerErr) {
			shared.RespondWithErrorAndLog(w, r, status, message, err, shared.WithElevatedLogLevel())
			return
		}
		shared.RespondWithErrorAndLog(w, r, status, message, err)
		return
	}

	log.Debug("study notes generated",
		"topic_length", len(topic),
		"points", len(notes.Points),
		"terms", len(notes.Terms))

	shared.RespondWithJSON(w, r, http.StatusOK, notes)
}
