package api

import "github.com/phrazzld/study-notes-api/internal/domain"

// GenerateNotesRequest defines the payload for the notes generation endpoint.
type GenerateNotesRequest struct {
	// Topic is the subject to generate notes for. It must be non-blank.
	Topic string `json:"topic" validate:"required"`
}

// Validate rejects topics that are blank once surrounding whitespace,
// including Unicode spaces and the byte order mark, is ignored.
func (r GenerateNotesRequest) Validate() error {
	_, err := domain.NewTopic(r.Topic)
	return err
}
