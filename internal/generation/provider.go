package generation

import "context"

// Message roles used in completion requests.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is a single turn sent to the provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest describes one chat completion call.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	Temperature float32
	MaxTokens   int
}

// Provider is the boundary between the application and an external
// completion service.
//
// Complete returns the text of the first completion candidate. A candidate
// without text is reported as an empty string with a nil error. Non-success
// responses are reported as *ProviderError; any other error is a transport
// or decoding failure.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
