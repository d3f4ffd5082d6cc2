package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pr-review-relay/pkg/log"
	"pr-review-relay/pkg/retry"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	Retry           retry.Config
	MaxTotalTimeout time.Duration // bounds the entire fallback chain, backoff included
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateContent iterates through providers in priority order with fallback logic.
// Each provider is called through the retry controller, so a 503 is retried
// against the same provider before moving on.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for _, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generation aborted after %d provider(s): %w", len(m.providers), err)
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = err

		if errors.Is(err, ErrInvalidRequest) || !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry runs one provider under the retry controller
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempt := 0
	return retry.Do(ctx, m.config.Retry, func(ctx context.Context) (*Response, error) {
		attempt++
		resp, err := provider.GenerateContent(ctx, req)
		if err != nil && retry.IsServiceUnavailable(err) {
			m.logger.Warn(ctx, "LLM backend unavailable",
				"provider", provider.Name(),
				"attempt", attempt,
			)
		}
		return resp, err
	})
}

// logSuccess logs successful generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"format", string(resp.RawFormat),
		"input_tokens", in,
		"output_tokens", out,
	)
}

// logFailure logs failed generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
