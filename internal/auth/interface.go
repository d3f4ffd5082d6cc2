package auth

import (
	"context"

	"pr-review-relay/internal/model"
)

// UseCase defines the business logic interface for GitHub sign-in.
type UseCase interface {
	// Login exchanges an OAuth code for a token and opens a session.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)

	// Resolve returns the scope of a live session, or ErrInvalidSession.
	Resolve(ctx context.Context, sessionID string) (model.Scope, error)

	// Ping reports whether the session store is reachable.
	Ping(ctx context.Context) error
}
