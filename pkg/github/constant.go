package github

import "time"

const (
	// DefaultTimeout is the default per-request HTTP timeout
	DefaultTimeout = 30 * time.Second

	// HookEventPullRequest is the only event relay hooks subscribe to
	HookEventPullRequest = "pull_request"

	listPageSize = 100
)

// DefaultOAuthScopes are requested during the OAuth code exchange.
// admin:repo_hook is required to create and list repository hooks.
var DefaultOAuthScopes = []string{"repo", "admin:repo_hook"}
