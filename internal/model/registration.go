package model

import (
	"strings"
	"time"
)

// WebhookRegistration binds a repository to its hook and secret.
// Secret and AccessToken never leave the process through JSON.
type WebhookRegistration struct {
	Owner       string    `json:"owner"`
	Repo        string    `json:"repo"`
	HookID      int64     `json:"hook_id"`
	Secret      string    `json:"-"`
	AccessToken string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Key returns the storage key of the registration.
func (r WebhookRegistration) Key() string {
	return RegistrationKey(r.Owner, r.Repo)
}

// RegistrationKey normalizes owner/repo; GitHub names are case-insensitive.
func RegistrationKey(owner, repo string) string {
	return strings.ToLower(owner) + "/" + strings.ToLower(repo)
}
