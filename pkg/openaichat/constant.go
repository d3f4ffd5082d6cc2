package openaichat

import "time"

const (
	// DefaultModel is the default chat model
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout is the default per-request timeout
	DefaultTimeout = 60 * time.Second

	// DefaultMaxTokens caps completion length
	DefaultMaxTokens = 1500
)
