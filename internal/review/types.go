package review

import (
	"pr-review-relay/internal/model"
	"pr-review-relay/pkg/github"
	"pr-review-relay/pkg/llmprovider"
)

// State is the stage a delivery reached.
type State string

const (
	StateReceived       State = "received"
	StateRejected       State = "rejected"
	StateIgnored        State = "ignored"
	StateFetchingDiff   State = "fetching_diff"
	StatePrompting      State = "prompting"
	StateGenerating     State = "generating"
	StatePostProcessing State = "post_processing"
	StatePublishing     State = "publishing"
	StateCompleted      State = "completed"
	StateFailed         State = "failed"
)

type ReviewInput struct {
	Event      model.PullRequestEvent
	Credential model.Credential
}

type ReviewOutput struct {
	State        State
	CommentID    int64
	Title        string
	TitlePatched bool
	Advisory     bool
	Provider     string
}

// Request is what the orchestrator sends to the backend for one delivery.
// It lives for one review and is never persisted.
type Request struct {
	Owner  string
	Repo   string
	Number int
	Token  string
	PR     *github.PullRequest
	Diff   string
	Files  []*github.File
}

// GeneratedReview is the post-processed backend output.
type GeneratedReview struct {
	Title          string
	TitleExtracted bool
	Body           string
	TooShort       bool
	Fallback       bool
	RawFormat      llmprovider.RawFormat
}
