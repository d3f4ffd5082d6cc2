package model

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestRegistrationKey(t *testing.T) {
	if got := RegistrationKey("Octo-Org", "Hello.World"); got != "octo-org/hello.world" {
		t.Errorf("RegistrationKey() = %q", got)
	}
	r := WebhookRegistration{Owner: "OCTO", Repo: "Repo"}
	if r.Key() != RegistrationKey("octo", "repo") {
		t.Errorf("Key() = %q", r.Key())
	}
}

func TestWebhookRegistration_JSONHidesSecrets(t *testing.T) {
	raw, err := json.Marshal(WebhookRegistration{Owner: "o", Repo: "r", HookID: 1, Secret: "s3cr3t", AccessToken: "gho_x"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if strings.Contains(string(raw), "s3cr3t") || strings.Contains(string(raw), "gho_x") {
		t.Errorf("secret material leaked: %s", raw)
	}
}

func TestPullRequestEvent_Reviewable(t *testing.T) {
	tests := map[string]bool{
		ActionOpened:      true,
		ActionSynchronize: true,
		"closed":          false,
		"reopened":        false,
		"edited":          false,
		"":                false,
	}
	for action, want := range tests {
		if got := (PullRequestEvent{Action: action}).Reviewable(); got != want {
			t.Errorf("Reviewable(%q) = %v, want %v", action, got, want)
		}
	}
}

func TestScopeContext(t *testing.T) {
	if _, ok := GetScopeFromContext(context.Background()); ok {
		t.Fatal("empty context must not carry a scope")
	}
	ctx := SetScopeToContext(context.Background(), Scope{SessionID: "sid", AccessToken: "tok"})
	sc, ok := GetScopeFromContext(ctx)
	if !ok || sc.SessionID != "sid" || sc.AccessToken != "tok" {
		t.Errorf("GetScopeFromContext() = %+v, %v", sc, ok)
	}
}
