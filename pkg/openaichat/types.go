package openaichat

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go"
)

// Config holds chat client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openaichat: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

type chatImpl struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

// Request is a single-turn chat completion request
type Request struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Response is the first choice of a chat completion
type Response struct {
	Text         string
	FinishReason string
	Usage        Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// ErrUnrecognizedOutput is returned when a 2xx response body is not a chat
// completion.
var ErrUnrecognizedOutput = errors.New("openaichat: unrecognized output format")

// APIError is returned when the API answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openaichat: API error %d: %s", e.StatusCode, e.Message)
}

// HTTPStatus exposes the status code to the retry controller.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}
