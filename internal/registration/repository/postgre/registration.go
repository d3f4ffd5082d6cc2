package postgre

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"pr-review-relay/internal/model"
	"pr-review-relay/internal/registration/repository"
)

func (r *implRepository) Get(ctx context.Context, owner, repo string) (model.WebhookRegistration, error) {
	const query = `
		SELECT owner, repo, hook_id, secret, access_token, created_at, updated_at
		FROM webhook_registrations
		WHERE repo_key = $1`

	var reg model.WebhookRegistration
	err := r.db.QueryRow(ctx, query, model.RegistrationKey(owner, repo)).Scan(
		&reg.Owner, &reg.Repo, &reg.HookID, &reg.Secret, &reg.AccessToken, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.WebhookRegistration{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Get"), err)
		return model.WebhookRegistration{}, repository.ErrFailedToGet
	}
	return reg, nil
}

// Upsert keeps the original created_at when replacing.
func (r *implRepository) Upsert(ctx context.Context, reg model.WebhookRegistration) error {
	const query = `
		INSERT INTO webhook_registrations (repo_key, owner, repo, hook_id, secret, access_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (repo_key) DO UPDATE SET
			owner = EXCLUDED.owner,
			repo = EXCLUDED.repo,
			hook_id = EXCLUDED.hook_id,
			secret = EXCLUDED.secret,
			access_token = EXCLUDED.access_token,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query,
		reg.Key(), reg.Owner, reg.Repo, reg.HookID, reg.Secret, reg.AccessToken, reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Upsert"), err)
		return repository.ErrFailedToUpsert
	}
	return nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
