package repository

import (
	"context"

	"pr-review-relay/internal/model"
)

// Repository stores sessions with a fixed TTL.
type Repository interface {
	// Create stores a new session.
	Create(ctx context.Context, s model.Session) error
	// Get returns the session, or a zero value (ID == "") when missing or expired.
	Get(ctx context.Context, id string) (model.Session, error)
	// Ping checks store connectivity.
	Ping(ctx context.Context) error
}
