package main

import (
	"testing"
	"time"

	"pr-review-relay/config"
	"pr-review-relay/pkg/retry"
)

func TestNewRetryConfig(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.LLMConfig
		wantRetries int
		wantDelay   time.Duration
	}{
		{name: "configured count", cfg: config.LLMConfig{MaxRetries: 5, InitialDelay: "1s"}, wantRetries: 5, wantDelay: time.Second},
		{name: "zero disables retrying", cfg: config.LLMConfig{MaxRetries: 0}, wantRetries: -1, wantDelay: retry.DefaultInitialDelay},
		{name: "bad delay keeps default", cfg: config.LLMConfig{MaxRetries: 3, InitialDelay: "soon"}, wantRetries: 3, wantDelay: retry.DefaultInitialDelay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newRetryConfig(tt.cfg)
			if got.MaxRetries != tt.wantRetries || got.InitialDelay != tt.wantDelay {
				t.Errorf("newRetryConfig() = %+v, want retries %d delay %v", got, tt.wantRetries, tt.wantDelay)
			}
		})
	}
}
