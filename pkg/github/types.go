package github

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Config holds GitHub client configuration
type Config struct {
	// APIBaseURL overrides https://api.github.com/ (GitHub Enterprise, tests)
	APIBaseURL string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.APIBaseURL != "" && !strings.HasPrefix(c.APIBaseURL, "http") {
		return fmt.Errorf("github: invalid APIBaseURL %q", c.APIBaseURL)
	}
	return nil
}

// OAuthConfig holds the OAuth application credentials
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
	// AuthURL and TokenURL override the github.com endpoints
	AuthURL  string
	TokenURL string
}

// Validate validates the configuration and fills defaults
func (c *OAuthConfig) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" {
		return fmt.Errorf("github: OAuth client id and secret are required")
	}
	if len(c.Scopes) == 0 {
		c.Scopes = DefaultOAuthScopes
	}
	return nil
}

// PullRequest represents GitHub pull request metadata
type PullRequest struct {
	Number     int
	Title      string
	Body       string
	State      string
	HeadSHA    string
	HeadBranch string
	BaseBranch string
	Author     string
}

// File represents a file changed in a pull request
type File struct {
	Filename  string
	Status    string // added, removed, modified, renamed
	Additions int
	Deletions int
	Patch     string
}

// PullRequestUpdate carries the fields to patch. Nil means unchanged.
type PullRequestUpdate struct {
	Title *string
	Body  *string
}

// HookConfig describes a webhook to create
type HookConfig struct {
	URL    string
	Secret string
	Events []string
}

// Hook is an existing repository webhook
type Hook struct {
	ID     int64
	URL    string
	Events []string
	Active bool
}

// APIError is returned when GitHub answers with a non-2xx status.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: %s: status %d: %s", e.Op, e.StatusCode, e.Message)
}

// HTTPStatus exposes the upstream status code.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

// IsNotFound reports whether GitHub answered 404.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
