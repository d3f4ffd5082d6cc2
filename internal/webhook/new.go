package webhook

import (
	"time"

	"pr-review-relay/internal/review"
	pkgLog "pr-review-relay/pkg/log"
)

const (
	defaultProcessTimeout = 2 * time.Minute
	defaultMaxBodyBytes   = 1 << 20
)

type Handler struct {
	reviewUC      review.UseCase
	authenticator *Authenticator
	security      *SecurityValidator
	githubParser  *GitHubWebhookParser
	cfg           HandlerConfig
	l             pkgLog.Logger
}

func NewHandler(
	reviewUC review.UseCase,
	securityConfig SecurityConfig,
	registrations RegistrationLookup,
	cfg HandlerConfig,
	l pkgLog.Logger,
) *Handler {
	if cfg.ProcessTimeout <= 0 {
		cfg.ProcessTimeout = defaultProcessTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	return &Handler{
		reviewUC:      reviewUC,
		authenticator: NewAuthenticator(securityConfig, registrations, l),
		security:      NewSecurityValidator(securityConfig),
		githubParser:  NewGitHubParser(),
		cfg:           cfg,
		l:             l,
	}
}
