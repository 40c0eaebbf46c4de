// Package openai provides an implementation of the generation.Provider
// interface backed by the OpenAI chat completions API, or any service that
// speaks the same protocol at a configurable base URL.
//
// Non-success responses are translated into *generation.ProviderError with
// the upstream status code and the message from the upstream error body, so
// callers can pass both through unchanged.
package openai
