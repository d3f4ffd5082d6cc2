package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"pr-review-relay/config"
	authRepo "pr-review-relay/internal/auth/repository"
	authMemory "pr-review-relay/internal/auth/repository/memory"
	authRedis "pr-review-relay/internal/auth/repository/redis"
	registrationRepo "pr-review-relay/internal/registration/repository"
	registrationMemory "pr-review-relay/internal/registration/repository/memory"
	registrationPostgre "pr-review-relay/internal/registration/repository/postgre"
	registrationRedis "pr-review-relay/internal/registration/repository/redis"
	"pr-review-relay/pkg/log"
	"pr-review-relay/pkg/postgres"
	"pr-review-relay/pkg/redis"
)

type stores struct {
	sessions      authRepo.Repository
	registrations registrationRepo.Repository

	redisClient *goredis.Client
	pgPool      *pgxpool.Pool
}

func (s *stores) Close() {
	if s.redisClient != nil {
		s.redisClient.Close()
	}
	if s.pgPool != nil {
		s.pgPool.Close()
	}
}

// openStores connects the backends named by storage.* and builds both repositories.
func openStores(ctx context.Context, cfg *config.Config, l log.Logger) (*stores, error) {
	s := &stores{}

	if cfg.Storage.Sessions == config.StoreRedis || cfg.Storage.Registrations == config.StoreRedis {
		client, err := redis.Connect(ctx, redis.Config{URL: cfg.Redis.URL, KeyPrefix: cfg.Redis.KeyPrefix})
		if err != nil {
			return nil, err
		}
		s.redisClient = client
	}

	if cfg.Storage.Registrations == config.StorePostgres {
		pool, err := postgres.Connect(ctx, postgres.Config{
			DSN:      cfg.Postgres.DSN,
			MaxConns: cfg.Postgres.MaxConns,
			MinConns: cfg.Postgres.MinConns,
		})
		if err != nil {
			s.Close()
			return nil, err
		}
		s.pgPool = pool
		if err := registrationPostgre.Migrate(ctx, pool); err != nil {
			s.Close()
			return nil, err
		}
	}

	switch cfg.Storage.Sessions {
	case config.StoreRedis:
		s.sessions = authRedis.New(s.redisClient, cfg.Redis.KeyPrefix, cfg.Session.TTL, l)
	case config.StoreMemory:
		s.sessions = authMemory.New(cfg.Session.MaxEntries, cfg.Session.TTL)
	default:
		s.Close()
		return nil, fmt.Errorf("unknown session store %q", cfg.Storage.Sessions)
	}

	switch cfg.Storage.Registrations {
	case config.StoreRedis:
		s.registrations = registrationRedis.New(s.redisClient, cfg.Redis.KeyPrefix, l)
	case config.StorePostgres:
		s.registrations = registrationPostgre.New(s.pgPool, l)
	case config.StoreMemory:
		s.registrations = registrationMemory.New(cfg.Storage.MemoryMaxRegistrations)
		l.Infof(ctx, "In-memory registrations hold at most %d repositories", cfg.Storage.MemoryMaxRegistrations)
	default:
		s.Close()
		return nil, fmt.Errorf("unknown registration store %q", cfg.Storage.Registrations)
	}

	return s, nil
}
