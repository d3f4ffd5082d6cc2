package usecase

import (
	"context"
	"fmt"

	"pr-review-relay/internal/model"
	"pr-review-relay/internal/registration"
)

// CheckWebhook lists the repository hooks and looks for one delivering to the URL.
func (uc *implUseCase) CheckWebhook(ctx context.Context, sc model.Scope, input registration.CheckWebhookInput) (registration.CheckWebhookOutput, error) {
	owner, repo, err := normalizeRepo(input.Owner, input.Repo)
	if err != nil {
		return registration.CheckWebhookOutput{}, err
	}
	if sc.AccessToken == "" {
		return registration.CheckWebhookOutput{}, registration.ErrMissingCredential
	}

	target := input.WebhookURL
	if target == "" {
		target = uc.webhookURL
	}
	if target == "" {
		return registration.CheckWebhookOutput{}, registration.ErrWebhookURLNotConfigured
	}

	hooks, err := uc.gh.ForToken(sc.AccessToken).ListHooks(ctx, owner, repo)
	if err != nil {
		uc.l.Warnf(ctx, "uc.CheckWebhook ListHooks %s/%s: %v", owner, repo, err)
		return registration.CheckWebhookOutput{}, fmt.Errorf("%w: %v", registration.ErrGitHub, err)
	}

	for _, h := range hooks {
		if sameURL(h.URL, target) {
			return registration.CheckWebhookOutput{Exists: true}, nil
		}
	}
	return registration.CheckWebhookOutput{}, nil
}
