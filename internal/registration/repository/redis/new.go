package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"pr-review-relay/internal/registration/repository"
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
	l      log.Logger
}

// New creates a Redis-backed registration store. Keys are
// <prefix>registration:<owner>/<repo> and never expire.
func New(client Client, prefix string, l log.Logger) repository.Repository {
	if client == nil {
		panic("registration/repository/redis: client is required")
	}
	return &implRepository{client: client, prefix: prefix, l: l}
}

func (r *implRepository) key(regKey string) string {
	return r.prefix + "registration:" + regKey
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("registration/repository/redis.%s", method)
}
