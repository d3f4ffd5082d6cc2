package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pr-review-relay/internal/auth"
	"pr-review-relay/internal/auth/repository/memory"
	"pr-review-relay/pkg/github"
	"pr-review-relay/pkg/log"
)

type fakeOAuth struct {
	token string
	err   error
}

func (f fakeOAuth) Exchange(ctx context.Context, code string) (string, error) {
	return f.token, f.err
}

func TestLogin(t *testing.T) {
	uc := New(memory.New(10, time.Hour), fakeOAuth{token: "gho_abc"}, log.NewNop())
	uc.newID = func() string { return "session-1" }

	out, err := uc.Login(context.Background(), auth.LoginInput{Code: "code"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if out.SessionID != "session-1" || out.AccessToken != "gho_abc" {
		t.Errorf("Login() = %+v", out)
	}

	sc, err := uc.Resolve(context.Background(), "session-1")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if sc.AccessToken != "gho_abc" || sc.SessionID != "session-1" {
		t.Errorf("Resolve() = %+v", sc)
	}
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		oauth fakeOAuth
		want  error
	}{
		{name: "empty code", code: "  ", want: auth.ErrMissingCode},
		{name: "rejected code", code: "bad", oauth: fakeOAuth{err: &github.APIError{Op: "OAuthExchange", StatusCode: 401}}, want: auth.ErrInvalidCode},
		{name: "github down", code: "c", oauth: fakeOAuth{err: errors.New("dial tcp: refused")}, want: auth.ErrExchange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(memory.New(10, time.Hour), tt.oauth, log.NewNop())
			if _, err := uc.Login(context.Background(), auth.LoginInput{Code: tt.code}); !errors.Is(err, tt.want) {
				t.Errorf("Login() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResolve_UnknownSession(t *testing.T) {
	uc := New(memory.New(10, time.Hour), fakeOAuth{}, log.NewNop())
	for _, id := range []string{"", "missing"} {
		if _, err := uc.Resolve(context.Background(), id); !errors.Is(err, auth.ErrInvalidSession) {
			t.Errorf("Resolve(%q) error = %v", id, err)
		}
	}
}
