package usecase

import (
	"context"

	"pr-review-relay/internal/model"
	"pr-review-relay/internal/registration"
)

func (uc *implUseCase) Lookup(ctx context.Context, owner, repo string) (model.WebhookRegistration, error) {
	reg, err := uc.repo.Get(ctx, owner, repo)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Lookup Get: %v", err)
		return model.WebhookRegistration{}, registration.ErrStore
	}
	if reg.Owner == "" {
		return model.WebhookRegistration{}, registration.ErrNotFound
	}
	return reg, nil
}

func (uc *implUseCase) Ping(ctx context.Context) error {
	return uc.repo.Ping(ctx)
}
