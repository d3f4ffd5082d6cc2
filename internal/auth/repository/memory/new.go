package memory

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"pr-review-relay/internal/auth/repository"
	"pr-review-relay/internal/model"
)

const defaultSize = 10000

type implRepository struct {
	cache *expirable.LRU[string, model.Session]
}

// New creates an in-process session store. Sessions expire after ttl and
// the oldest are evicted beyond size entries.
func New(size int, ttl time.Duration) repository.Repository {
	if size <= 0 {
		size = defaultSize
	}
	return &implRepository{
		cache: expirable.NewLRU[string, model.Session](size, nil, ttl),
	}
}
