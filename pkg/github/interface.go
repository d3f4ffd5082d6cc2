package github

import "context"

// IGitHub is a GitHub REST client bound to one access token.
type IGitHub interface {
	// GetPullRequest retrieves metadata about a pull request
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error)
	// GetDiff returns the unified diff of a pull request
	GetDiff(ctx context.Context, owner, repo string, number int) (string, error)
	// ListFiles returns every changed file of a pull request, following pagination
	ListFiles(ctx context.Context, owner, repo string, number int) ([]*File, error)
	// CreateComment posts an issue comment on the pull request and returns its id
	CreateComment(ctx context.Context, owner, repo string, number int, body string) (int64, error)
	// UpdatePullRequest patches the title and/or body; nil fields are left untouched
	UpdatePullRequest(ctx context.Context, owner, repo string, number int, update PullRequestUpdate) error
	// CreateHook creates a repository webhook and returns its id
	CreateHook(ctx context.Context, owner, repo string, hook HookConfig) (int64, error)
	// DeleteHook removes a repository webhook
	DeleteHook(ctx context.Context, owner, repo string, id int64) error
	// ListHooks returns the repository webhooks
	ListHooks(ctx context.Context, owner, repo string) ([]*Hook, error)
}

// IFactory hands out token-bound clients. Credentials are never stored
// process-wide; every caller passes the token it acts with.
type IFactory interface {
	ForToken(token string) IGitHub
}

// IOAuth exchanges an OAuth authorization code for an access token.
type IOAuth interface {
	Exchange(ctx context.Context, code string) (string, error)
}

// New creates a client factory with the given configuration
func New(cfg Config) (IFactory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newFactory(cfg)
}
