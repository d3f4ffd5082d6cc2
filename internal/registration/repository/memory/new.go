package memory

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"pr-review-relay/internal/model"
	"pr-review-relay/internal/registration/repository"
)

const defaultSize = 10000

type implRepository struct {
	cache *lru.Cache[string, model.WebhookRegistration]
}

// New creates an in-process registration store bounded to size entries.
// Registrations are lost on restart.
func New(size int) repository.Repository {
	if size <= 0 {
		size = defaultSize
	}
	cache, err := lru.New[string, model.WebhookRegistration](size)
	if err != nil {
		panic("registration/repository/memory: " + err.Error())
	}
	return &implRepository{cache: cache}
}
