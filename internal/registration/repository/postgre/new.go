package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"pr-review-relay/internal/registration/repository"
	"pr-review-relay/pkg/log"
)

// DB is the subset of *pgxpool.Pool the repository uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type implRepository struct {
	db DB
	l  log.Logger
}

// New creates a PostgreSQL-backed registration store.
func New(db DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("registration/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

const schema = `
CREATE TABLE IF NOT EXISTS webhook_registrations (
	repo_key     TEXT PRIMARY KEY,
	owner        TEXT NOT NULL,
	repo         TEXT NOT NULL,
	hook_id      BIGINT NOT NULL,
	secret       TEXT NOT NULL,
	access_token TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL
)`

// Migrate creates the registrations table when missing.
func Migrate(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("creating webhook_registrations: %w", err)
	}
	return nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("registration/repository/postgre.%s", method)
}
