package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"pr-review-relay/internal/auth/repository"
	"pr-review-relay/pkg/log"
)

// Client is the subset of *goredis.Client the repository uses.
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Ping(ctx context.Context) *goredis.StatusCmd
}

type implRepository struct {
	client Client
	prefix string
	ttl    time.Duration
	l      log.Logger
}

// New creates a Redis-backed session store; keys expire after ttl.
func New(client Client, prefix string, ttl time.Duration, l log.Logger) repository.Repository {
	if client == nil {
		panic("auth/repository/redis: client is required")
	}
	return &implRepository{client: client, prefix: prefix, ttl: ttl, l: l}
}

func (r *implRepository) key(id string) string {
	return r.prefix + "session:" + id
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("auth/repository/redis.%s", method)
}
