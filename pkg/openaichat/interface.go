package openaichat

import "context"

// IChat defines the interface for an OpenAI compatible chat completion API.
// Any endpoint that speaks the same protocol (Qwen compatible mode, DeepSeek,
// Azure gateways) works through BaseURL. Implementations are safe for
// concurrent use.
type IChat interface {
	// Complete sends a single system+user exchange and returns the reply
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new chat client with the given configuration
func New(cfg Config) (IChat, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newChatImpl(cfg), nil
}
