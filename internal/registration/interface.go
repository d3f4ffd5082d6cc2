package registration

import (
	"context"

	"pr-review-relay/internal/model"
)

// UseCase defines the business logic interface for webhook registrations.
type UseCase interface {
	// CreateWebhook creates a pull_request hook with a fresh secret and stores the registration.
	CreateWebhook(ctx context.Context, sc model.Scope, input CreateWebhookInput) (CreateWebhookOutput, error)

	// CheckWebhook reports whether the repository already has a hook for the given URL.
	CheckWebhook(ctx context.Context, sc model.Scope, input CheckWebhookInput) (CheckWebhookOutput, error)

	// Lookup returns the registration of owner/repo, or ErrNotFound.
	Lookup(ctx context.Context, owner, repo string) (model.WebhookRegistration, error)

	// Ping reports whether the registration store is reachable.
	Ping(ctx context.Context) error
}
