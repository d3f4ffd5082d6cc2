package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrUnrecognizedOutput is returned when a 2xx body is not JSON or is JSON
// in a shape this client does not know.
var ErrUnrecognizedOutput = errors.New("huggingface: unrecognized output format")

func newHuggingFaceImpl(cfg Config) *huggingFaceImpl {
	return &huggingFaceImpl{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// Generate sends the inputs to the model endpoint
func (h *huggingFaceImpl) Generate(ctx context.Context, req *Request) (*Response, error) {
	maxNewTokens := req.MaxNewTokens
	if maxNewTokens == 0 {
		maxNewTokens = DefaultMaxNewTokens
	}

	// wait_for_model=false makes a cold model answer 503 right away so the
	// caller's backoff decides how long to wait.
	body, err := json.Marshal(inferenceRequest{
		Inputs: req.Inputs,
		Parameters: inferenceParameters{
			MaxNewTokens: maxNewTokens,
			Temperature:  req.Temperature,
		},
		Options: inferenceOptions{WaitForModel: false, UseCache: false},
	})
	if err != nil {
		return nil, fmt.Errorf("huggingface: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/"+h.model, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("huggingface: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+h.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := h.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("huggingface: API call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("huggingface: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp.StatusCode, raw)
	}

	return parseOutput(raw)
}

// Model returns the model being used
func (h *huggingFaceImpl) Model() string {
	return h.model
}

func newAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Message: strings.TrimSpace(string(raw))}

	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil && eb.Error != "" {
		apiErr.Message = eb.Error
		apiErr.EstimatedTime = eb.EstimatedTime
	}
	return apiErr
}

// parseOutput accepts both the list form `[{"generated_text": ...}]` and the
// bare object form, for text-generation and summarization models.
func parseOutput(raw []byte) (*Response, error) {
	var outputs []inferenceOutput
	if err := json.Unmarshal(raw, &outputs); err != nil {
		var single inferenceOutput
		if errSingle := json.Unmarshal(raw, &single); errSingle != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnrecognizedOutput, err)
		}
		outputs = []inferenceOutput{single}
	}

	for _, out := range outputs {
		switch {
		case out.GeneratedText != nil:
			return &Response{Text: *out.GeneratedText, Format: FormatGeneratedText}, nil
		case out.SummaryText != nil:
			return &Response{Text: *out.SummaryText, Format: FormatSummaryText}, nil
		}
	}

	return nil, ErrUnrecognizedOutput
}
