package memory

import (
	"context"
	"testing"
	"time"

	"pr-review-relay/internal/model"
)

func TestRepository_CreateGet(t *testing.T) {
	ctx := context.Background()
	repo := New(10, time.Hour)

	if err := repo.Create(ctx, model.Session{ID: "abc", AccessToken: "gho_x"}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	got, err := repo.Get(ctx, "abc")
	if err != nil || got.AccessToken != "gho_x" {
		t.Errorf("Get() = %+v, %v", got, err)
	}

	missing, err := repo.Get(ctx, "nope")
	if err != nil || missing.ID != "" {
		t.Errorf("Get(missing) = %+v, %v", missing, err)
	}
}

func TestRepository_Expires(t *testing.T) {
	ctx := context.Background()
	repo := New(10, 20*time.Millisecond)

	repo.Create(ctx, model.Session{ID: "abc", AccessToken: "gho_x"})
	time.Sleep(60 * time.Millisecond)

	if got, _ := repo.Get(ctx, "abc"); got.ID != "" {
		t.Errorf("session still present after TTL: %+v", got)
	}
}
