package webhook

import (
	"context"
	"errors"
	"fmt"

	"pr-review-relay/internal/model"
	"pr-review-relay/internal/registration"
	"pr-review-relay/pkg/log"
)

// RegistrationLookup finds the registration of a repository.
// It returns registration.ErrNotFound when there is none.
type RegistrationLookup interface {
	Lookup(ctx context.Context, owner, repo string) (model.WebhookRegistration, error)
}

// Authenticator verifies deliveries and resolves the credential the
// review runs with.
type Authenticator struct {
	cfg           SecurityConfig
	registrations RegistrationLookup
	l             log.Logger
}

func NewAuthenticator(cfg SecurityConfig, registrations RegistrationLookup, l log.Logger) *Authenticator {
	if cfg.SecretMode == "" {
		cfg.SecretMode = SecretModePerRepository
	}
	return &Authenticator{cfg: cfg, registrations: registrations, l: l}
}

// Authenticate verifies signature over payload with the secret of owner/repo.
// An empty secret skips verification.
func (a *Authenticator) Authenticate(ctx context.Context, owner, repo string, payload []byte, signature string) (model.Credential, error) {
	if a.cfg.SecretMode == SecretModeGlobal {
		return a.authenticateGlobal(ctx, owner, repo, payload, signature)
	}

	reg, err := a.lookup(ctx, owner, repo)
	if err != nil {
		return model.Credential{}, err
	}
	if reg.Owner == "" {
		return model.Credential{}, ErrNotFound
	}

	if err := a.verify(ctx, owner, repo, payload, signature, reg.Secret); err != nil {
		return model.Credential{}, err
	}

	return model.Credential{
		Owner:  reg.Owner,
		Repo:   reg.Repo,
		Token:  reg.AccessToken,
		Source: model.CredentialFromRegistration,
	}, nil
}

func (a *Authenticator) authenticateGlobal(ctx context.Context, owner, repo string, payload []byte, signature string) (model.Credential, error) {
	if err := a.verify(ctx, owner, repo, payload, signature, a.cfg.Secret); err != nil {
		return model.Credential{}, err
	}

	reg, err := a.lookup(ctx, owner, repo)
	if err != nil {
		return model.Credential{}, err
	}
	if reg.Owner != "" && reg.AccessToken != "" {
		return model.Credential{Owner: reg.Owner, Repo: reg.Repo, Token: reg.AccessToken, Source: model.CredentialFromRegistration}, nil
	}
	if a.cfg.BotToken != "" {
		return model.Credential{Owner: owner, Repo: repo, Token: a.cfg.BotToken, Source: model.CredentialFromBotToken}, nil
	}
	return model.Credential{}, ErrNotFound
}

// lookup returns a zero registration when none exists.
func (a *Authenticator) lookup(ctx context.Context, owner, repo string) (model.WebhookRegistration, error) {
	reg, err := a.registrations.Lookup(ctx, owner, repo)
	if errors.Is(err, registration.ErrNotFound) {
		return model.WebhookRegistration{}, nil
	}
	if err != nil {
		return model.WebhookRegistration{}, fmt.Errorf("webhook: lookup %s/%s: %w", owner, repo, err)
	}
	return reg, nil
}

func (a *Authenticator) verify(ctx context.Context, owner, repo string, payload []byte, signature, secret string) error {
	if secret == "" {
		a.l.Warnf(ctx, "webhook secret for %s/%s is empty, signature verification skipped", owner, repo)
		return nil
	}
	if !VerifySignature(payload, signature, secret) {
		return ErrUnauthorized
	}
	return nil
}
