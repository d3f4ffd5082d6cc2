package middleware

import (
	"context"

	"pr-review-relay/internal/model"
	"pr-review-relay/pkg/log"
)

// HeaderSessionID carries the session id for clients that do not keep cookies.
const HeaderSessionID = "X-Session-ID"

// SessionResolver resolves a session id into the caller scope.
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (model.Scope, error)
}

type Middleware struct {
	l              log.Logger
	sessions       SessionResolver
	cookieName     string
	allowedOrigins []string
}

func New(l log.Logger, sessions SessionResolver, cookieName string, allowedOrigins []string) Middleware {
	if cookieName == "" {
		cookieName = "session_id"
	}
	return Middleware{
		l:              l,
		sessions:       sessions,
		cookieName:     cookieName,
		allowedOrigins: allowedOrigins,
	}
}
