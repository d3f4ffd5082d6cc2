package webhook

import (
	"encoding/json"
	"fmt"
	"time"

	gh "github.com/google/go-github/v66/github"

	"pr-review-relay/internal/model"
)

// GitHubWebhookParser parses GitHub webhook payloads
type GitHubWebhookParser struct {
	now func() time.Time
}

func NewGitHubParser() *GitHubWebhookParser {
	return &GitHubWebhookParser{now: time.Now}
}

// ParsePullRequestEvent decodes a pull_request delivery. The payload is
// kept as received; the caller verifies it afterwards.
func (p *GitHubWebhookParser) ParsePullRequestEvent(payload []byte) (model.PullRequestEvent, error) {
	var event gh.PullRequestEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return model.PullRequestEvent{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	repo := event.GetRepo()
	owner := repo.GetOwner().GetLogin()
	name := repo.GetName()
	if owner == "" || name == "" {
		return model.PullRequestEvent{}, fmt.Errorf("%w: missing repository", ErrMalformedPayload)
	}

	pr := event.GetPullRequest()
	number := event.GetNumber()
	if number == 0 {
		number = pr.GetNumber()
	}

	return model.PullRequestEvent{
		Action:     event.GetAction(),
		Number:     number,
		Owner:      owner,
		Repo:       name,
		HeadSHA:    pr.GetHead().GetSHA(),
		Title:      pr.GetTitle(),
		Body:       pr.GetBody(),
		Sender:     event.GetSender().GetLogin(),
		Payload:    payload,
		ReceivedAt: p.now(),
	}, nil
}
