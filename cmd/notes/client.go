package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/phrazzld/study-notes-api/internal/api"
	"github.com/phrazzld/study-notes-api/internal/api/shared"
	"github.com/phrazzld/study-notes-api/internal/domain"
)

// maxResponseBytes caps how much of a server response is read.
const maxResponseBytes = 1 << 20

// APIError is an error response returned by the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
}

// client calls the study notes API.
type client struct {
	endpoint   string
	httpClient *http.Client
}

func newClient(serverURL string, httpClient *http.Client) *client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &client{
		endpoint:   strings.TrimRight(serverURL, "/") + "/api/generate",
		httpClient: httpClient,
	}
}

// Generate requests study notes for topic.
func (c *client) Generate(ctx context.Context, topic string) (*domain.StudyNotes, error) {
	body, err := json.Marshal(api.GenerateNotesRequest{Topic: topic})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call study notes API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp shared.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Error == "" {
			errResp.Error = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	var notes domain.StudyNotes
	if err := json.Unmarshal(respBody, &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return &notes, nil
}
