package review

import "context"

// UseCase defines the review orchestrator.
type UseCase interface {
	// Review runs one verified pull_request delivery through diff fetch,
	// generation and publishing. Non-reviewable actions end in StateIgnored
	// without any GitHub call.
	Review(ctx context.Context, input ReviewInput) (ReviewOutput, error)
}
