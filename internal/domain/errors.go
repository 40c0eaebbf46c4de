package domain

import "errors"

// Domain errors used across the application.
var (
	// ErrTopicRequired is returned when a topic is empty or contains only whitespace.
	ErrTopicRequired = errors.New("topic is required")

	// ErrUnparsableNotes is returned when generated content is not valid JSON.
	ErrUnparsableNotes = errors.New("study notes content is not valid JSON")

	// ErrInvalidNotesFormat is returned when the JSON document lacks a truthy
	// definition, points or terms field.
	ErrInvalidNotesFormat = errors.New("study notes content has an invalid format")
)
