package http

import (
	"time"

	"pr-review-relay/internal/auth"
	"pr-review-relay/pkg/log"
)

// CookieConfig controls the session cookie set on login.
type CookieConfig struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

type handler struct {
	l      log.Logger
	uc     auth.UseCase
	cookie CookieConfig
}

// New creates the HTTP handler for GitHub sign-in.
func New(l log.Logger, uc auth.UseCase, cookie CookieConfig) *handler {
	if cookie.Name == "" {
		cookie.Name = "session_id"
	}
	return &handler{
		l:      l,
		uc:     uc,
		cookie: cookie,
	}
}
