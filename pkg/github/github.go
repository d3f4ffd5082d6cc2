package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

type factory struct {
	baseURL    *url.URL
	timeout    time.Duration
	httpClient *http.Client
}

func newFactory(cfg Config) (*factory, error) {
	f := &factory{timeout: cfg.Timeout, httpClient: cfg.HTTPClient}
	if cfg.APIBaseURL != "" {
		raw := cfg.APIBaseURL
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("github: parse APIBaseURL: %w", err)
		}
		f.baseURL = u
	}
	return f, nil
}

// ForToken returns a client authenticating every request with token.
func (f *factory) ForToken(token string) IGitHub {
	base := f.httpClient
	if base == nil {
		base = &http.Client{Timeout: f.timeout}
	}

	httpClient := base
	if token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
		httpClient.Timeout = f.timeout
	}

	client := gh.NewClient(httpClient)
	if f.baseURL != nil {
		client.BaseURL = f.baseURL
	}
	return &githubImpl{client: client}
}

type githubImpl struct {
	client *gh.Client
}

// GetPullRequest retrieves metadata about a pull request
func (c *githubImpl) GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error) {
	pr, resp, err := c.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, wrapError("get pull request", resp, err)
	}
	return convertPullRequest(pr), nil
}

// GetDiff returns the unified diff of a pull request
func (c *githubImpl) GetDiff(ctx context.Context, owner, repo string, number int) (string, error) {
	diff, resp, err := c.client.PullRequests.GetRaw(ctx, owner, repo, number, gh.RawOptions{Type: gh.Diff})
	if err != nil {
		return "", wrapError("get diff", resp, err)
	}
	return diff, nil
}

// ListFiles returns every changed file of a pull request
func (c *githubImpl) ListFiles(ctx context.Context, owner, repo string, number int) ([]*File, error) {
	allFiles := []*File{}
	opts := &gh.ListOptions{PerPage: listPageSize}

	for {
		files, resp, err := c.client.PullRequests.ListFiles(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, wrapError("list files", resp, err)
		}

		for _, file := range files {
			allFiles = append(allFiles, convertFile(file))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allFiles, nil
}

// CreateComment posts an issue comment on the pull request
func (c *githubImpl) CreateComment(ctx context.Context, owner, repo string, number int, body string) (int64, error) {
	comment, resp, err := c.client.Issues.CreateComment(ctx, owner, repo, number, &gh.IssueComment{
		Body: gh.String(body),
	})
	if err != nil {
		return 0, wrapError("create comment", resp, err)
	}
	return comment.GetID(), nil
}

// UpdatePullRequest patches the pull request title and/or body
func (c *githubImpl) UpdatePullRequest(ctx context.Context, owner, repo string, number int, update PullRequestUpdate) error {
	if update.Title == nil && update.Body == nil {
		return nil
	}

	_, resp, err := c.client.PullRequests.Edit(ctx, owner, repo, number, &gh.PullRequest{
		Title: update.Title,
		Body:  update.Body,
	})
	if err != nil {
		return wrapError("update pull request", resp, err)
	}
	return nil
}

// CreateHook creates an active JSON webhook
func (c *githubImpl) CreateHook(ctx context.Context, owner, repo string, hook HookConfig) (int64, error) {
	events := hook.Events
	if len(events) == 0 {
		events = []string{HookEventPullRequest}
	}

	created, resp, err := c.client.Repositories.CreateHook(ctx, owner, repo, &gh.Hook{
		Events: events,
		Active: gh.Bool(true),
		Config: &gh.HookConfig{
			URL:         gh.String(hook.URL),
			ContentType: gh.String("json"),
			Secret:      gh.String(hook.Secret),
			InsecureSSL: gh.String("0"),
		},
	})
	if err != nil {
		return 0, wrapError("create hook", resp, err)
	}
	return created.GetID(), nil
}

// DeleteHook removes a repository webhook
func (c *githubImpl) DeleteHook(ctx context.Context, owner, repo string, id int64) error {
	resp, err := c.client.Repositories.DeleteHook(ctx, owner, repo, id)
	if err != nil {
		return wrapError("delete hook", resp, err)
	}
	return nil
}

// ListHooks returns the repository webhooks
func (c *githubImpl) ListHooks(ctx context.Context, owner, repo string) ([]*Hook, error) {
	var hooks []*Hook
	opts := &gh.ListOptions{PerPage: listPageSize}

	for {
		page, resp, err := c.client.Repositories.ListHooks(ctx, owner, repo, opts)
		if err != nil {
			return nil, wrapError("list hooks", resp, err)
		}

		for _, h := range page {
			hooks = append(hooks, convertHook(h))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return hooks, nil
}

// wrapError turns an upstream HTTP failure into *APIError and leaves
// transport errors wrapped as-is.
func wrapError(op string, resp *gh.Response, err error) error {
	if resp != nil && resp.Response != nil {
		msg := err.Error()
		if ghErr, ok := err.(*gh.ErrorResponse); ok && ghErr.Message != "" {
			msg = ghErr.Message
		}
		return &APIError{Op: op, StatusCode: resp.StatusCode, Message: msg}
	}
	return fmt.Errorf("github: %s: %w", op, err)
}

func convertPullRequest(pr *gh.PullRequest) *PullRequest {
	if pr == nil {
		return nil
	}

	result := &PullRequest{
		Number: pr.GetNumber(),
		Title:  pr.GetTitle(),
		Body:   pr.GetBody(),
		State:  pr.GetState(),
	}
	if pr.Head != nil {
		result.HeadSHA = pr.Head.GetSHA()
		result.HeadBranch = pr.Head.GetRef()
	}
	if pr.Base != nil {
		result.BaseBranch = pr.Base.GetRef()
	}
	if pr.User != nil {
		result.Author = pr.User.GetLogin()
	}
	return result
}

func convertFile(file *gh.CommitFile) *File {
	return &File{
		Filename:  file.GetFilename(),
		Status:    file.GetStatus(),
		Additions: file.GetAdditions(),
		Deletions: file.GetDeletions(),
		Patch:     file.GetPatch(),
	}
}

func convertHook(h *gh.Hook) *Hook {
	hook := &Hook{
		ID:     h.GetID(),
		Events: h.Events,
		Active: h.GetActive(),
	}
	if h.Config != nil && h.Config.URL != nil {
		hook.URL = *h.Config.URL
	}
	return hook
}
