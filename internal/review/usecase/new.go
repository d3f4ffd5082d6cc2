package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"pr-review-relay/pkg/github"
	"pr-review-relay/pkg/llmprovider"
	"pr-review-relay/pkg/log"
)

// Diff modes
const (
	DiffModeDiff  = "diff"
	DiffModeFiles = "files"
)

// Generator produces review text; *llmprovider.Manager implements it with
// retry and provider fallback.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config controls prompting, post-processing and publishing.
type Config struct {
	DiffMode         string
	MaxDiffChars     int
	MinBodyChars     int // overrides the per-format default when > 0
	MinBodyLines     int // overrides the per-format default when > 0
	PatchTitle       bool
	PatchDescription bool
	FallbackTitle    string
	SystemPrompt     string
	Temperature      float64
	MaxTokens        int
}

// implUseCase is the private implementation of review.UseCase.
type implUseCase struct {
	gh     github.IFactory
	llm    Generator
	cfg    Config
	l      log.Logger
	tracer trace.Tracer
}

// New creates the review orchestrator.
func New(gh github.IFactory, llm Generator, cfg Config, l log.Logger) *implUseCase {
	if cfg.DiffMode == "" {
		cfg.DiffMode = DiffModeDiff
	}
	if cfg.MaxDiffChars <= 0 {
		cfg.MaxDiffChars = DefaultMaxDiffChars
	}
	if cfg.FallbackTitle == "" {
		cfg.FallbackTitle = DefaultFallbackTitle
	}
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = defaultSystemPrompt
	}
	return &implUseCase{
		gh:     gh,
		llm:    llm,
		cfg:    cfg,
		l:      l,
		tracer: otel.Tracer("pr-review-relay/internal/review"),
	}
}
