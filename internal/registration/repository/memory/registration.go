package memory

import (
	"context"

	"pr-review-relay/internal/model"
)

func (r *implRepository) Get(ctx context.Context, owner, repo string) (model.WebhookRegistration, error) {
	reg, ok := r.cache.Get(model.RegistrationKey(owner, repo))
	if !ok {
		return model.WebhookRegistration{}, nil
	}
	return reg, nil
}

func (r *implRepository) Upsert(ctx context.Context, reg model.WebhookRegistration) error {
	r.cache.Add(reg.Key(), reg)
	return nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	return nil
}
