// Package mocks provides centralized mock implementations for testing.
//
// Mocks use function fields so individual tests can override behavior, and
// fall back to canned return values otherwise. Call tracking is safe for
// concurrent use.
//
// Usage:
//
//	provider := mocks.NewMockProviderWithContent(`{"definition":"D","points":["p"],"terms":["t"]}`)
//	generator, err := generation.NewNotesGenerator(provider, opts, logger)
package mocks
