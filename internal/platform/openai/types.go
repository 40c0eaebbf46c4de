package openai

import "github.com/phrazzld/study-notes-api/internal/generation"

// chatRequest is the request payload for the chat completions endpoint.
type chatRequest struct {
	Model       string               `json:"model"`
	Messages    []generation.Message `json:"messages"`
	Temperature float32              `json:"temperature"`
	MaxTokens   int                  `json:"max_tokens"`
}

// chatResponse is the subset of the chat completions response we read.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// errorResponse is the error body returned with non-success statuses.
type errorResponse struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}
