package model

import "time"

// Pull request actions that trigger a review. Every other action is ignored.
const (
	ActionOpened      = "opened"
	ActionSynchronize = "synchronize"
)

// GitHub delivery headers
const (
	HeaderSignature  = "X-Hub-Signature-256"
	HeaderEvent      = "X-GitHub-Event"
	HeaderDeliveryID = "X-GitHub-Delivery"

	EventPullRequest = "pull_request"
	EventPing        = "ping"
)

// PullRequestEvent is a verified pull_request delivery.
// Payload holds the exact received bytes; nothing re-serializes it.
type PullRequestEvent struct {
	Action     string
	Number     int
	Owner      string
	Repo       string
	HeadSHA    string
	Title      string
	Body       string
	Sender     string
	Payload    []byte
	Signature  string
	DeliveryID string
	ReceivedAt time.Time
}

// Reviewable reports whether the action starts a review.
func (e PullRequestEvent) Reviewable() bool {
	return e.Action == ActionOpened || e.Action == ActionSynchronize
}

// FullName returns owner/repo as GitHub spells it.
func (e PullRequestEvent) FullName() string {
	return e.Owner + "/" + e.Repo
}
