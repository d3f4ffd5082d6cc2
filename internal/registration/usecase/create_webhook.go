package usecase

import (
	"context"
	"fmt"

	"pr-review-relay/internal/model"
	"pr-review-relay/internal/registration"
	"pr-review-relay/pkg/github"
)

// CreateWebhook installs a pull_request hook with a fresh secret and stores
// the registration, replacing any previous one for the repository.
func (uc *implUseCase) CreateWebhook(ctx context.Context, sc model.Scope, input registration.CreateWebhookInput) (registration.CreateWebhookOutput, error) {
	owner, repo, err := normalizeRepo(input.Owner, input.Repo)
	if err != nil {
		return registration.CreateWebhookOutput{}, err
	}
	if sc.AccessToken == "" {
		return registration.CreateWebhookOutput{}, registration.ErrMissingCredential
	}
	if uc.webhookURL == "" {
		return registration.CreateWebhookOutput{}, registration.ErrWebhookURLNotConfigured
	}

	previous, err := uc.repo.Get(ctx, owner, repo)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateWebhook Get: %v", err)
		return registration.CreateWebhookOutput{}, registration.ErrStore
	}

	secret, err := generateSecret()
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateWebhook generateSecret: %v", err)
		return registration.CreateWebhookOutput{}, err
	}

	client := uc.gh.ForToken(sc.AccessToken)
	hookID, err := client.CreateHook(ctx, owner, repo, github.HookConfig{
		URL:    uc.webhookURL,
		Secret: secret,
		Events: []string{github.HookEventPullRequest},
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.CreateWebhook CreateHook %s/%s: %v", owner, repo, err)
		return registration.CreateWebhookOutput{}, fmt.Errorf("%w: %v", registration.ErrGitHub, err)
	}

	now := uc.now()
	reg := model.WebhookRegistration{
		Owner:       owner,
		Repo:        repo,
		HookID:      hookID,
		Secret:      secret,
		AccessToken: sc.AccessToken,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if previous.Owner != "" {
		reg.CreatedAt = previous.CreatedAt
	}

	if err := uc.repo.Upsert(ctx, reg); err != nil {
		uc.l.Errorf(ctx, "uc.CreateWebhook Upsert: %v", err)
		// A hook whose secret we never stored would only produce 401s.
		if delErr := client.DeleteHook(ctx, owner, repo, hookID); delErr != nil {
			uc.l.Warnf(ctx, "uc.CreateWebhook DeleteHook %d: %v", hookID, delErr)
		}
		return registration.CreateWebhookOutput{}, registration.ErrStore
	}

	if previous.HookID != 0 && previous.HookID != hookID {
		if err := client.DeleteHook(ctx, owner, repo, previous.HookID); err != nil {
			uc.l.Warnf(ctx, "uc.CreateWebhook DeleteHook previous %d: %v", previous.HookID, err)
		}
	}

	uc.l.Infof(ctx, "registered webhook %d for %s/%s", hookID, owner, repo)
	return registration.CreateWebhookOutput{Owner: owner, Repo: repo, HookID: hookID}, nil
}
