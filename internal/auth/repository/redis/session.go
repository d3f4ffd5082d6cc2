package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"pr-review-relay/internal/auth/repository"
	"pr-review-relay/internal/model"
)

// record is the stored form; model.Session hides the token from JSON.
type record struct {
	ID          string    `json:"id"`
	AccessToken string    `json:"access_token"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *implRepository) Create(ctx context.Context, s model.Session) error {
	raw, err := json.Marshal(record{ID: s.ID, AccessToken: s.AccessToken, CreatedAt: s.CreatedAt})
	if err != nil {
		return repository.ErrFailedToCreate
	}
	if err := r.client.Set(ctx, r.key(s.ID), raw, r.ttl).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return repository.ErrFailedToCreate
	}
	return nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Session, error) {
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return model.Session{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Get"), err)
		return model.Session{}, repository.ErrFailedToGet
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		r.l.Errorf(ctx, "%s: corrupt session %s: %v", r.dsn("Get"), id, err)
		return model.Session{}, repository.ErrFailedToGet
	}
	return model.Session{ID: rec.ID, AccessToken: rec.AccessToken, CreatedAt: rec.CreatedAt}, nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
