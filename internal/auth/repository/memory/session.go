package memory

import (
	"context"

	"pr-review-relay/internal/model"
)

func (r *implRepository) Create(ctx context.Context, s model.Session) error {
	r.cache.Add(s.ID, s)
	return nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Session, error) {
	s, ok := r.cache.Get(id)
	if !ok {
		return model.Session{}, nil
	}
	return s, nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	return nil
}
