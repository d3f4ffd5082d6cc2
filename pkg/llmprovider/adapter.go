package llmprovider

import (
	"context"
	"errors"
	"strings"

	"pr-review-relay/pkg/huggingface"
	"pr-review-relay/pkg/openaichat"
)

// OpenAIAdapter adapts pkg/openaichat to llmprovider.Provider interface
type OpenAIAdapter struct {
	name   string
	client openaichat.IChat
}

// NewOpenAIAdapter creates a new chat completion adapter. name is what shows
// up in logs, so OpenAI compatible vendors keep their own label.
func NewOpenAIAdapter(name string, client openaichat.IChat) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrInvalidRequest
	}

	resp, err := a.client.Complete(ctx, &openaichat.Request{
		System:      req.SystemPrompt,
		User:        req.Prompt,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		var apiErr *openaichat.APIError
		if errors.As(err, &apiErr) {
			return nil, &StatusError{Provider: a.name, StatusCode: apiErr.StatusCode, Err: err}
		}
		if errors.Is(err, openaichat.ErrUnrecognizedOutput) {
			return nil, ErrEmptyOutput
		}
		return nil, err
	}

	if strings.TrimSpace(resp.Text) == "" {
		return nil, ErrEmptyOutput
	}

	return &Response{
		Text:         resp.Text,
		RawFormat:    FormatChatCompletion,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// HuggingFaceAdapter adapts pkg/huggingface to llmprovider.Provider interface
type HuggingFaceAdapter struct {
	client huggingface.IHuggingFace
}

// NewHuggingFaceAdapter creates a new Hugging Face adapter
func NewHuggingFaceAdapter(client huggingface.IHuggingFace) *HuggingFaceAdapter {
	return &HuggingFaceAdapter{client: client}
}

// GenerateContent implements Provider interface. The inference API has no
// system role, so the system prompt is prepended to the input.
func (a *HuggingFaceAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrInvalidRequest
	}

	inputs := req.Prompt
	if req.SystemPrompt != "" {
		inputs = req.SystemPrompt + "\n\n" + req.Prompt
	}

	resp, err := a.client.Generate(ctx, &huggingface.Request{
		Inputs:       inputs,
		MaxNewTokens: req.MaxTokens,
		Temperature:  req.Temperature,
	})
	if err != nil {
		var apiErr *huggingface.APIError
		if errors.As(err, &apiErr) {
			return nil, &StatusError{Provider: a.Name(), StatusCode: apiErr.StatusCode, Err: err}
		}
		if errors.Is(err, huggingface.ErrUnrecognizedOutput) {
			return nil, ErrEmptyOutput
		}
		return nil, err
	}

	if strings.TrimSpace(resp.Text) == "" {
		return nil, ErrEmptyOutput
	}

	format := FormatGeneratedText
	if resp.Format == huggingface.FormatSummaryText {
		format = FormatSummaryText
	}

	return &Response{
		Text:         resp.Text,
		RawFormat:    format,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}, nil
}

// Name returns provider name
func (a *HuggingFaceAdapter) Name() string {
	return "huggingface"
}

// Model returns model name
func (a *HuggingFaceAdapter) Model() string {
	return a.client.Model()
}
