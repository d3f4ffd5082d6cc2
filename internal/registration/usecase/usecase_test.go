package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pr-review-relay/internal/model"
	"pr-review-relay/internal/registration"
	"pr-review-relay/internal/registration/repository/memory"
	"pr-review-relay/pkg/github"
	"pr-review-relay/pkg/log"
)

type fakeGitHub struct {
	github.IGitHub
	token     string
	nextID    int64
	createErr error
	created   []github.HookConfig
	deleted   []int64
	hooks     []*github.Hook
	listErr   error
}

func (f *fakeGitHub) ForToken(token string) github.IGitHub {
	f.token = token
	return f
}

func (f *fakeGitHub) CreateHook(ctx context.Context, owner, repo string, hook github.HookConfig) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, hook)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeGitHub) DeleteHook(ctx context.Context, owner, repo string, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeGitHub) ListHooks(ctx context.Context, owner, repo string) ([]*github.Hook, error) {
	return f.hooks, f.listErr
}

type failingRepo struct {
	model.WebhookRegistration
	upsertErr error
}

func (r *failingRepo) Get(ctx context.Context, owner, repo string) (model.WebhookRegistration, error) {
	return r.WebhookRegistration, nil
}

func (r *failingRepo) Upsert(ctx context.Context, reg model.WebhookRegistration) error {
	return r.upsertErr
}

func (r *failingRepo) Ping(ctx context.Context) error { return nil }

const relayURL = "https://relay.example.com/webhook"

var userScope = model.Scope{SessionID: "sess", AccessToken: "gho_user"}

func TestCreateWebhook(t *testing.T) {
	ctx := context.Background()
	gh := &fakeGitHub{nextID: 10}
	repo := memory.New(10)
	uc := New(repo, gh, relayURL, log.NewNop())

	out, err := uc.CreateWebhook(ctx, userScope, registration.CreateWebhookInput{Owner: "octo", Repo: "hello"})
	if err != nil {
		t.Fatalf("CreateWebhook() error: %v", err)
	}
	if out.HookID != 11 || out.Owner != "octo" || out.Repo != "hello" {
		t.Errorf("CreateWebhook() = %+v", out)
	}
	if gh.token != "gho_user" {
		t.Errorf("GitHub called with token %q, want caller token", gh.token)
	}
	if gh.created[0].URL != relayURL || len(gh.created[0].Secret) != 64 {
		t.Errorf("unexpected hook config URL=%q secret length=%d", gh.created[0].URL, len(gh.created[0].Secret))
	}

	reg, err := uc.Lookup(ctx, "octo", "hello")
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	if reg.Secret != gh.created[0].Secret || reg.AccessToken != "gho_user" || reg.HookID != 11 {
		t.Errorf("stored registration %+v does not match created hook", reg)
	}
}

func TestCreateWebhook_ReplacesPreviousRegistration(t *testing.T) {
	ctx := context.Background()
	gh := &fakeGitHub{}
	uc := New(memory.New(10), gh, relayURL, log.NewNop())
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return created }

	if _, err := uc.CreateWebhook(ctx, userScope, registration.CreateWebhookInput{Owner: "octo", Repo: "hello"}); err != nil {
		t.Fatalf("first CreateWebhook() error: %v", err)
	}
	uc.now = func() time.Time { return created.Add(time.Hour) }
	if _, err := uc.CreateWebhook(ctx, userScope, registration.CreateWebhookInput{Owner: "Octo", Repo: "Hello"}); err != nil {
		t.Fatalf("second CreateWebhook() error: %v", err)
	}

	if gh.created[0].Secret == gh.created[1].Secret {
		t.Error("secrets must differ between registrations")
	}
	if len(gh.deleted) != 1 || gh.deleted[0] != 1 {
		t.Errorf("deleted hooks = %v, want [1]", gh.deleted)
	}

	reg, _ := uc.Lookup(ctx, "octo", "hello")
	if reg.HookID != 2 || reg.Secret != gh.created[1].Secret {
		t.Errorf("registration not replaced: %+v", reg)
	}
	if !reg.CreatedAt.Equal(created) || !reg.UpdatedAt.Equal(created.Add(time.Hour)) {
		t.Errorf("timestamps = %v / %v", reg.CreatedAt, reg.UpdatedAt)
	}
}

func TestCreateWebhook_StoreFailureRemovesNewHook(t *testing.T) {
	gh := &fakeGitHub{nextID: 4}
	uc := New(&failingRepo{upsertErr: errors.New("down")}, gh, relayURL, log.NewNop())

	_, err := uc.CreateWebhook(context.Background(), userScope, registration.CreateWebhookInput{Owner: "octo", Repo: "hello"})
	if !errors.Is(err, registration.ErrStore) {
		t.Fatalf("CreateWebhook() error = %v, want ErrStore", err)
	}
	if len(gh.deleted) != 1 || gh.deleted[0] != 5 {
		t.Errorf("deleted hooks = %v, want [5]", gh.deleted)
	}
}

func TestCreateWebhook_Errors(t *testing.T) {
	tests := []struct {
		name       string
		scope      model.Scope
		input      registration.CreateWebhookInput
		webhookURL string
		ghErr      error
		want       error
	}{
		{name: "missing repo", scope: userScope, input: registration.CreateWebhookInput{Owner: "octo"}, webhookURL: relayURL, want: registration.ErrInvalidRepository},
		{name: "slash in owner", scope: userScope, input: registration.CreateWebhookInput{Owner: "octo/x", Repo: "y"}, webhookURL: relayURL, want: registration.ErrInvalidRepository},
		{name: "no token", input: registration.CreateWebhookInput{Owner: "octo", Repo: "hello"}, webhookURL: relayURL, want: registration.ErrMissingCredential},
		{name: "no webhook url", scope: userScope, input: registration.CreateWebhookInput{Owner: "octo", Repo: "hello"}, want: registration.ErrWebhookURLNotConfigured},
		{
			name: "github rejects", scope: userScope, input: registration.CreateWebhookInput{Owner: "octo", Repo: "hello"}, webhookURL: relayURL,
			ghErr: &github.APIError{Op: "CreateHook", StatusCode: 404}, want: registration.ErrGitHub,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := memory.New(10)
			uc := New(repo, &fakeGitHub{createErr: tt.ghErr}, tt.webhookURL, log.NewNop())
			_, err := uc.CreateWebhook(context.Background(), tt.scope, tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("CreateWebhook() error = %v, want %v", err, tt.want)
			}
			if _, err := uc.Lookup(context.Background(), "octo", "hello"); !errors.Is(err, registration.ErrNotFound) {
				t.Errorf("registration stored despite failure: %v", err)
			}
		})
	}
}

func TestCheckWebhook(t *testing.T) {
	gh := &fakeGitHub{hooks: []*github.Hook{
		{ID: 1, URL: "https://other.example.com/hook"},
		{ID: 2, URL: relayURL + "/"},
	}}
	uc := New(memory.New(10), gh, relayURL, log.NewNop())
	ctx := context.Background()

	out, err := uc.CheckWebhook(ctx, userScope, registration.CheckWebhookInput{Owner: "octo", Repo: "hello"})
	if err != nil || !out.Exists {
		t.Errorf("CheckWebhook(default url) = %+v, %v", out, err)
	}

	out, err = uc.CheckWebhook(ctx, userScope, registration.CheckWebhookInput{Owner: "octo", Repo: "hello", WebhookURL: "https://missing.example.com"})
	if err != nil || out.Exists {
		t.Errorf("CheckWebhook(missing url) = %+v, %v", out, err)
	}

	gh.listErr = &github.APIError{Op: "ListHooks", StatusCode: 403}
	if _, err := uc.CheckWebhook(ctx, userScope, registration.CheckWebhookInput{Owner: "octo", Repo: "hello"}); !errors.Is(err, registration.ErrGitHub) {
		t.Errorf("CheckWebhook() error = %v, want ErrGitHub", err)
	}
}
