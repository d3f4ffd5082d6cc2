package redis

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"pr-review-relay/internal/model"
	"pr-review-relay/internal/registration/repository"
	"pr-review-relay/pkg/log"
)

// fakeClient is a map-backed Client.
type fakeClient struct {
	data    map[string]string
	getErr  error
	pingErr error
}

func newFakeClient() *fakeClient {
	return &fakeClient{data: map[string]string{}}
}

func (f *fakeClient) Get(ctx context.Context, key string) *goredis.StringCmd {
	if f.getErr != nil {
		return goredis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (f *fakeClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	return goredis.NewStatusResult("OK", nil)
}

func (f *fakeClient) Ping(ctx context.Context) *goredis.StatusCmd {
	return goredis.NewStatusResult("PONG", f.pingErr)
}

func TestRepository_RoundTripKeepsSecrets(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	repo := New(client, "relay:", log.NewNop())

	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	reg := model.WebhookRegistration{Owner: "Octo", Repo: "Hello", HookID: 7, Secret: "s3cr3t", AccessToken: "gho_x", CreatedAt: created, UpdatedAt: created}
	if err := repo.Upsert(ctx, reg); err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}

	if _, ok := client.data["relay:registration:octo/hello"]; !ok {
		t.Fatalf("unexpected keys %v", client.data)
	}

	got, err := repo.Get(ctx, "octo", "HELLO")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Secret != "s3cr3t" || got.AccessToken != "gho_x" || got.HookID != 7 || !got.CreatedAt.Equal(created) {
		t.Errorf("Get() = %+v", got)
	}
}

func TestRepository_GetMissing(t *testing.T) {
	repo := New(newFakeClient(), "relay:", log.NewNop())

	got, err := repo.Get(context.Background(), "octo", "none")
	if err != nil || got.Owner != "" {
		t.Errorf("Get() = %+v, %v, want zero value", got, err)
	}
}

func TestRepository_Failures(t *testing.T) {
	client := newFakeClient()
	client.getErr = errors.New("connection refused")
	client.pingErr = errors.New("connection refused")
	repo := New(client, "relay:", log.NewNop())

	if _, err := repo.Get(context.Background(), "octo", "hello"); !errors.Is(err, repository.ErrFailedToGet) {
		t.Errorf("Get() error = %v, want ErrFailedToGet", err)
	}
	if err := repo.Ping(context.Background()); err == nil {
		t.Error("Ping() should fail")
	}

	client.data["relay:registration:octo/broken"] = "{not json"
	client.getErr = nil
	if _, err := repo.Get(context.Background(), "octo", "broken"); err == nil || !strings.Contains(err.Error(), "failed to get") {
		t.Errorf("Get(corrupt) error = %v", err)
	}
}
