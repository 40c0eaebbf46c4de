package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/phrazzld/study-notes-api/internal/api/shared"
)

// decodeGenerateNotesRequest reads the request body.
//
// An empty body, a JSON null, a non-object document, or a non-string topic
// are not decoding failures: they leave Topic empty so that the caller
// reports a missing topic. Only malformed or oversized bodies return an error.
func decodeGenerateNotesRequest(r *http.Request) (GenerateNotesRequest, error) {
	var req GenerateNotesRequest

	err := shared.DecodeJSON(r, &req)
	if err == nil || errors.Is(err, io.EOF) {
		return req, nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return GenerateNotesRequest{}, nil
	}

	return GenerateNotesRequest{}, err
}
