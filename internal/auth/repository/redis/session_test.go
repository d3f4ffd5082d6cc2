package redis

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"pr-review-relay/internal/auth/repository"
	"pr-review-relay/internal/model"
	"pr-review-relay/pkg/log"
)

type fakeClient struct {
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newFakeClient() *fakeClient {
	return &fakeClient{data: map[string]string{}, ttls: map[string]time.Duration{}}
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
	if b, ok := value.([]byte); ok {
		f.data[key] = string(b)
	}
	f.ttls[key] = expiration
	return goredis.NewStatusResult("OK", nil)
}

func (f *fakeClient) Ping(ctx context.Context) *goredis.StatusCmd {
	return goredis.NewStatusResult("PONG", nil)
}

func TestRepository_CreateGet(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	repo := New(client, "relay:", time.Hour, log.NewNop())

	if err := repo.Create(ctx, model.Session{ID: "abc", AccessToken: "gho_x"}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if client.ttls["relay:session:abc"] != time.Hour {
		t.Errorf("ttl = %v, want 1h", client.ttls["relay:session:abc"])
	}
	if !strings.Contains(client.data["relay:session:abc"], "gho_x") {
		t.Error("stored record lost the access token")
	}

	got, err := repo.Get(ctx, "abc")
	if err != nil || got.AccessToken != "gho_x" || got.ID != "abc" {
		t.Errorf("Get() = %+v, %v", got, err)
	}

	missing, err := repo.Get(ctx, "nope")
	if err != nil || missing.ID != "" {
		t.Errorf("Get(missing) = %+v, %v", missing, err)
	}
}

func TestRepository_GetFailure(t *testing.T) {
	client := newFakeClient()
	client.getErr = errors.New("i/o timeout")
	repo := New(client, "", time.Hour, log.NewNop())

	if _, err := repo.Get(context.Background(), "abc"); !errors.Is(err, repository.ErrFailedToGet) {
		t.Errorf("Get() error = %v, want ErrFailedToGet", err)
	}
}
