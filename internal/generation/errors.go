package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrNotConfigured is returned when no provider credential is available.
	ErrNotConfigured = errors.New("generation provider not configured")

	// ErrNoContent is returned when the provider responds without any text.
	ErrNoContent = errors.New("no content generated")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// ConfigError reports a missing provider credential. Its message is meant to
// be shown to operators and names the provider.
type ConfigError struct {
	Provider string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s API key not configured", e.Provider)
}

// Unwrap allows errors.Is(err, ErrNotConfigured).
func (e *ConfigError) Unwrap() error {
	return ErrNotConfigured
}

// ProviderError is returned when the provider answers with a non-success
// status. StatusCode is the provider's HTTP status and Message the
// human-readable message extracted from its error body, if any.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s API returned status %d: %s", e.Provider, e.StatusCode, e.PublicMessage())
}

// PublicMessage returns the provider's message, or a generic one naming the
// provider when the error body carried none.
func (e *ProviderError) PublicMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Provider + " API error"
}
