package model

import "context"

// CredentialSource tells where a repository credential came from.
type CredentialSource string

const (
	CredentialFromRegistration CredentialSource = "registration"
	CredentialFromBotToken     CredentialSource = "bot_token"
)

// Credential is the token GitHub calls for one repository are made with.
type Credential struct {
	Owner  string
	Repo   string
	Token  string
	Source CredentialSource
}

// Scope is the authenticated session of an API caller.
type Scope struct {
	SessionID   string
	AccessToken string
}

type scopeCtxKey struct{}

// SetScopeToContext stores the caller scope in ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope stored by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(Scope)
	return sc, ok
}
