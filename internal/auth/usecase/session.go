package usecase

import (
	"context"

	"pr-review-relay/internal/auth"
	"pr-review-relay/internal/model"
)

func (uc *implUseCase) Resolve(ctx context.Context, sessionID string) (model.Scope, error) {
	if sessionID == "" {
		return model.Scope{}, auth.ErrInvalidSession
	}
	s, err := uc.repo.Get(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Resolve Get: %v", err)
		return model.Scope{}, auth.ErrStore
	}
	if s.ID == "" || s.AccessToken == "" {
		return model.Scope{}, auth.ErrInvalidSession
	}
	return s.Scope(), nil
}

func (uc *implUseCase) Ping(ctx context.Context) error {
	return uc.repo.Ping(ctx)
}
