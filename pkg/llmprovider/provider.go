package llmprovider

import "context"

// Provider defines the interface for generation backends
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "huggingface")
	Name() string

	// Model returns the model being used
	Model() string
}

// RawFormat names the shape the backend produced its text in.
// Post-processing thresholds depend on it.
type RawFormat string

const (
	FormatChatCompletion RawFormat = "chat_completion"
	FormatGeneratedText  RawFormat = "generated_text"
	FormatSummaryText    RawFormat = "summary_text"
)

// Request represents a normalized single-turn generation request
type Request struct {
	SystemPrompt string
	Prompt       string
	Temperature  float64
	MaxTokens    int
}

// Response represents a normalized generation response
type Response struct {
	Text         string
	RawFormat    RawFormat
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
