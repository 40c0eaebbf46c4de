package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/study-notes-api/internal/domain"
	"github.com/phrazzld/study-notes-api/internal/generation"
)

// Error messages returned to clients.
const (
	MsgMethodNotAllowed      = "Method not allowed"
	MsgTopicRequired         = "Topic is required"
	MsgInvalidRequestFormat  = "Invalid request format"
	MsgNoContentGenerated    = "No content generated"
	MsgFailedToParseResponse = "Failed to parse AI response"
	MsgInvalidResponseFormat = "Invalid response format"
	MsgInternalServerError   = "Internal server error"
)

// MapGenerationError maps an error returned by a generation.Generator to the
// HTTP status code and message sent to the client.
//
// Configuration errors name the missing credential. Provider errors keep the
// provider's status and message. Anything unrecognized is reported as an
// internal error without leaking its details.
func MapGenerationError(err error) (int, string) {
	var configErr *generation.ConfigError
	var providerErr *generation.ProviderError

	switch {
	case errors.As(err, &configErr):
		return http.StatusInternalServerError, configErr.Error()

	case errors.As(err, &providerErr):
		return providerStatus(providerErr.StatusCode), providerErr.PublicMessage()

	case errors.Is(err, generation.ErrNoContent):
		return http.StatusInternalServerError, MsgNoContentGenerated

	case errors.Is(err, domain.ErrUnparsableNotes):
		return http.StatusInternalServerError, MsgFailedToParseResponse

	case errors.Is(err, domain.ErrInvalidNotesFormat):
		return http.StatusInternalServerError, MsgInvalidResponseFormat

	default:
		return http.StatusInternalServerError, MsgInternalServerError
	}
}

// providerStatus passes the provider's status through. Values net/http cannot
// write become 502 Bad Gateway.
func providerStatus(code int) int {
	if code < 100 || code > 599 {
		return http.StatusBadGateway
	}
	return code
}
