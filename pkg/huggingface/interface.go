package huggingface

import "context"

// IHuggingFace defines the interface for the Hugging Face inference API.
// Implementations are safe for concurrent use.
type IHuggingFace interface {
	// Generate runs the configured model on the request inputs
	Generate(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Hugging Face client with the given configuration
func New(cfg Config) (IHuggingFace, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newHuggingFaceImpl(cfg), nil
}
