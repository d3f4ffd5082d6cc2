package postgre

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"pr-review-relay/internal/model"
	"pr-review-relay/internal/registration/repository"
	"pr-review-relay/pkg/log"
)

type fakeRow struct {
	reg *model.WebhookRegistration
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.reg.Owner
	*dest[1].(*string) = r.reg.Repo
	*dest[2].(*int64) = r.reg.HookID
	*dest[3].(*string) = r.reg.Secret
	*dest[4].(*string) = r.reg.AccessToken
	*dest[5].(*time.Time) = r.reg.CreatedAt
	*dest[6].(*time.Time) = r.reg.UpdatedAt
	return nil
}

type fakeDB struct {
	row      fakeRow
	execErr  error
	execSQL  []string
	execArgs [][]any
	queryArg []any
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execSQL = append(f.execSQL, sql)
	f.execArgs = append(f.execArgs, args)
	return pgconn.NewCommandTag("INSERT 0 1"), f.execErr
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.queryArg = args
	return f.row
}

func (f *fakeDB) Ping(ctx context.Context) error { return nil }

func TestGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{reg: &model.WebhookRegistration{Owner: "Octo", Repo: "Hello", HookID: 3, Secret: "s"}}}
		repo := New(db, log.NewNop())

		got, err := repo.Get(context.Background(), "Octo", "Hello")
		if err != nil {
			t.Fatalf("Get() error: %v", err)
		}
		if got.HookID != 3 || got.Secret != "s" {
			t.Errorf("Get() = %+v", got)
		}
		if db.queryArg[0] != "octo/hello" {
			t.Errorf("query key = %v, want normalized key", db.queryArg[0])
		}
	})

	t.Run("not found is zero value", func(t *testing.T) {
		repo := New(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}}, log.NewNop())
		got, err := repo.Get(context.Background(), "octo", "hello")
		if err != nil || got.Owner != "" {
			t.Errorf("Get() = %+v, %v", got, err)
		}
	})

	t.Run("query failure", func(t *testing.T) {
		repo := New(&fakeDB{row: fakeRow{err: errors.New("conn reset")}}, log.NewNop())
		if _, err := repo.Get(context.Background(), "octo", "hello"); !errors.Is(err, repository.ErrFailedToGet) {
			t.Errorf("Get() error = %v", err)
		}
	})
}

func TestUpsert(t *testing.T) {
	db := &fakeDB{}
	repo := New(db, log.NewNop())

	reg := model.WebhookRegistration{Owner: "Octo", Repo: "Hello", HookID: 9, Secret: "s", AccessToken: "t"}
	if err := repo.Upsert(context.Background(), reg); err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}
	if !strings.Contains(db.execSQL[0], "ON CONFLICT (repo_key) DO UPDATE") {
		t.Errorf("Upsert SQL is not an upsert: %s", db.execSQL[0])
	}
	if db.execArgs[0][0] != "octo/hello" || db.execArgs[0][3] != int64(9) {
		t.Errorf("Upsert args = %v", db.execArgs[0])
	}

	db.execErr = errors.New("deadlock")
	if err := repo.Upsert(context.Background(), reg); !errors.Is(err, repository.ErrFailedToUpsert) {
		t.Errorf("Upsert() error = %v", err)
	}
}

func TestMigrate(t *testing.T) {
	db := &fakeDB{}
	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}
	if !strings.Contains(db.execSQL[0], "CREATE TABLE IF NOT EXISTS webhook_registrations") {
		t.Errorf("unexpected DDL %s", db.execSQL[0])
	}
}
