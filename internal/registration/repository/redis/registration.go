package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"pr-review-relay/internal/model"
	"pr-review-relay/internal/registration/repository"
)

// record is the stored form; unlike model.WebhookRegistration it keeps the secrets.
type record struct {
	Owner       string    `json:"owner"`
	Repo        string    `json:"repo"`
	HookID      int64     `json:"hook_id"`
	Secret      string    `json:"secret"`
	AccessToken string    `json:"access_token"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *implRepository) Get(ctx context.Context, owner, repo string) (model.WebhookRegistration, error) {
	raw, err := r.client.Get(ctx, r.key(model.RegistrationKey(owner, repo))).Bytes()
	if errors.Is(err, goredis.Nil) {
		return model.WebhookRegistration{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Get"), err)
		return model.WebhookRegistration{}, repository.ErrFailedToGet
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		r.l.Errorf(ctx, "%s: decode: %v", r.dsn("Get"), err)
		return model.WebhookRegistration{}, repository.ErrFailedToGet
	}

	return model.WebhookRegistration{
		Owner:       rec.Owner,
		Repo:        rec.Repo,
		HookID:      rec.HookID,
		Secret:      rec.Secret,
		AccessToken: rec.AccessToken,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}, nil
}

func (r *implRepository) Upsert(ctx context.Context, reg model.WebhookRegistration) error {
	raw, err := json.Marshal(record{
		Owner:       reg.Owner,
		Repo:        reg.Repo,
		HookID:      reg.HookID,
		Secret:      reg.Secret,
		AccessToken: reg.AccessToken,
		CreatedAt:   reg.CreatedAt,
		UpdatedAt:   reg.UpdatedAt,
	})
	if err != nil {
		return repository.ErrFailedToUpsert
	}

	if err := r.client.Set(ctx, r.key(reg.Key()), raw, 0).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Upsert"), err)
		return repository.ErrFailedToUpsert
	}
	return nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
