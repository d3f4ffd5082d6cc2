package huggingface

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds Hugging Face client configuration
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
		return fmt.Errorf("huggingface: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

type huggingFaceImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Request is a single inference call
type Request struct {
	Inputs       string
	MaxNewTokens int
	Temperature  float64
}

// Response is the text the model produced together with the shape it came in
type Response struct {
	Text   string
	Format string
}

// APIError is returned for any non-200 answer. A 503 means the model is
// still loading; EstimatedTime is the server's hint in seconds.
type APIError struct {
	StatusCode    int
	Message       string
	EstimatedTime float64
}

func (e *APIError) Error() string {
	return fmt.Sprintf("huggingface: API error %d: %s", e.StatusCode, e.Message)
}

// HTTPStatus exposes the status code to the retry controller.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
	Options    inferenceOptions    `json:"options"`
}

type inferenceParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens,omitempty"`
	Temperature    float64 `json:"temperature,omitempty"`
	ReturnFullText bool    `json:"return_full_text"`
}

type inferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
	UseCache     bool `json:"use_cache"`
}

type inferenceOutput struct {
	GeneratedText *string `json:"generated_text"`
	SummaryText   *string `json:"summary_text"`
}

type errorBody struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}
