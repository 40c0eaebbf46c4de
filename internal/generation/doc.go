// Package generation turns a topic into study notes using an external
// large-language-model provider.
//
// The package owns the parts of the flow that do not depend on a particular
// provider: building the prompt from a template, issuing a single completion
// request through the Provider port, and parsing and shallow-validating the
// returned JSON. Provider adapters live under internal/platform.
//
// No retries are attempted; every failure is returned to the caller once.
package generation
