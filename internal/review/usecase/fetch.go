package usecase

import (
	"context"
	"fmt"

	"pr-review-relay/internal/model"
	"pr-review-relay/internal/review"
	"pr-review-relay/pkg/github"
)

// fetchDiff loads the pull request and its changes with the repository
// credential. GitHub calls are not retried.
func (uc *implUseCase) fetchDiff(ctx context.Context, client github.IGitHub, ev model.PullRequestEvent, token string) (review.Request, error) {
	req := review.Request{Owner: ev.Owner, Repo: ev.Repo, Number: ev.Number, Token: token}

	pr, err := client.GetPullRequest(ctx, ev.Owner, ev.Repo, ev.Number)
	if err != nil {
		return req, fmt.Errorf("%w: %w", review.ErrFetchDiff, err)
	}
	req.PR = pr

	if uc.cfg.DiffMode == DiffModeFiles {
		files, err := client.ListFiles(ctx, ev.Owner, ev.Repo, ev.Number)
		if err != nil {
			return req, fmt.Errorf("%w: %w", review.ErrFetchDiff, err)
		}
		req.Files = files
		return req, nil
	}

	diff, err := client.GetDiff(ctx, ev.Owner, ev.Repo, ev.Number)
	if err != nil {
		return req, fmt.Errorf("%w: %w", review.ErrFetchDiff, err)
	}
	req.Diff = diff
	return req, nil
}
