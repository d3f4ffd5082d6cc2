package usecase

import (
	"context"
	"errors"
	"strings"

	"pr-review-relay/internal/auth"
	"pr-review-relay/internal/model"
	"pr-review-relay/pkg/github"
)

// Login exchanges the OAuth code and opens a session holding the token.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	code := strings.TrimSpace(input.Code)
	if code == "" {
		return auth.LoginOutput{}, auth.ErrMissingCode
	}

	token, err := uc.oauth.Exchange(ctx, code)
	if err != nil {
		var apiErr *github.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			uc.l.Warnf(ctx, "uc.Login Exchange rejected: %v", err)
			return auth.LoginOutput{}, auth.ErrInvalidCode
		}
		uc.l.Errorf(ctx, "uc.Login Exchange: %v", err)
		return auth.LoginOutput{}, auth.ErrExchange
	}

	s := model.Session{
		ID:          uc.newID(),
		AccessToken: token,
		CreatedAt:   uc.now(),
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		uc.l.Errorf(ctx, "uc.Login Create: %v", err)
		return auth.LoginOutput{}, auth.ErrStore
	}

	return auth.LoginOutput{SessionID: s.ID, AccessToken: token}, nil
}
