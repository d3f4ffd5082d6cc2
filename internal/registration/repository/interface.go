package repository

import (
	"context"

	"pr-review-relay/internal/model"
)

// Repository stores webhook registrations keyed by model.RegistrationKey.
type Repository interface {
	// Get returns the registration, or a zero value (Owner == "") when none exists.
	Get(ctx context.Context, owner, repo string) (model.WebhookRegistration, error)
	// Upsert replaces the registration stored under reg.Key().
	Upsert(ctx context.Context, reg model.WebhookRegistration) error
	// Ping checks store connectivity.
	Ping(ctx context.Context) error
}
