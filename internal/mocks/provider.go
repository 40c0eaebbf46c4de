package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/study-notes-api/internal/generation"
)

// MockProvider implements generation.Provider for testing
type MockProvider struct {
	// CompleteFn allows test cases to mock the Complete behavior
	CompleteFn func(ctx context.Context, req generation.CompletionRequest) (string, error)

	// Default response values
	Content string
	Err     error

	mu       sync.Mutex
	requests []generation.CompletionRequest
}

var _ generation.Provider = (*MockProvider)(nil)

// Complete implements the generation.Provider interface
func (m *MockProvider) Complete(
	ctx context.Context,
	req generation.CompletionRequest,
) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, req)
	}

	return m.Content, m.Err
}

// Requests returns a copy of every request received so far.
func (m *MockProvider) Requests() []generation.CompletionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]generation.CompletionRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// NewMockProviderWithContent creates a MockProvider that returns content
func NewMockProviderWithContent(content string) *MockProvider {
	return &MockProvider{
		Content: content,
	}
}

// NewMockProviderWithError creates a MockProvider that returns err
func NewMockProviderWithError(err error) *MockProvider {
	return &MockProvider{
		Err: err,
	}
}
