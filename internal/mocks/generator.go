package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/study-notes-api/internal/domain"
	"github.com/phrazzld/study-notes-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateNotesFn allows test cases to mock the GenerateNotes behavior
	GenerateNotesFn func(ctx context.Context, topic domain.Topic) (*domain.StudyNotes, error)

	// Default response values
	Notes *domain.StudyNotes
	Err   error

	// Call tracking for verification
	GenerateNotesCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times GenerateNotes was called
		Count int

		// Topics contains all topics passed to GenerateNotes calls
		Topics []domain.Topic
	}
}

var _ generation.Generator = (*MockGenerator)(nil)

// GenerateNotes implements the generation.Generator interface
func (m *MockGenerator) GenerateNotes(
	ctx context.Context,
	topic domain.Topic,
) (*domain.StudyNotes, error) {
	m.GenerateNotesCalls.mu.Lock()
	m.GenerateNotesCalls.Count++
	m.GenerateNotesCalls.Topics = append(m.GenerateNotesCalls.Topics, topic)
	m.GenerateNotesCalls.mu.Unlock()

	if m.GenerateNotesFn != nil {
		return m.GenerateNotesFn(ctx, topic)
	}

	return m.Notes, m.Err
}

// CallCount returns the number of GenerateNotes calls so far.
func (m *MockGenerator) CallCount() int {
	m.GenerateNotesCalls.mu.Lock()
	defer m.GenerateNotesCalls.mu.Unlock()
	return m.GenerateNotesCalls.Count
}

// NewMockGeneratorWithNotes creates a MockGenerator that returns the specified notes
func NewMockGeneratorWithNotes(notes *domain.StudyNotes) *MockGenerator {
	return &MockGenerator{
		Notes: notes,
	}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{
		Err: err,
	}
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.GenerateNotesCalls.mu.Lock()
	defer m.GenerateNotesCalls.mu.Unlock()

	m.GenerateNotesCalls.Count = 0
	m.GenerateNotesCalls.Topics = nil
}
