package usecase

import (
	"context"
	"fmt"

	"pr-review-relay/internal/model"
	"pr-review-relay/internal/review"
	"pr-review-relay/pkg/github"
)

type publishResult struct {
	commentID    int64
	commented    bool
	titlePatched bool
}

// publish posts the comment and then patches the pull request. The writes
// are independent: a failed patch does not undo the comment.
func (uc *implUseCase) publish(ctx context.Context, client github.IGitHub, ev model.PullRequestEvent, gen review.GeneratedReview) (publishResult, error) {
	var res publishResult
	var errs []error

	commentID, err := client.CreateComment(ctx, ev.Owner, ev.Repo, ev.Number, gen.Body)
	if err != nil {
		uc.l.Errorf(ctx, "review.publish CreateComment %s#%d: %v", ev.FullName(), ev.Number, err)
		errs = append(errs, fmt.Errorf("comment: %w", err))
	} else {
		res.commentID = commentID
		res.commented = true
	}

	var update github.PullRequestUpdate
	if uc.cfg.PatchTitle && gen.TitleExtracted {
		title := gen.Title
		update.Title = &title
	}
	if uc.cfg.PatchDescription && !gen.Fallback {
		body := gen.Body
		update.Body = &body
	}

	if update.Title != nil || update.Body != nil {
		if err := client.UpdatePullRequest(ctx, ev.Owner, ev.Repo, ev.Number, update); err != nil {
			uc.l.Errorf(ctx, "review.publish UpdatePullRequest %s#%d: %v", ev.FullName(), ev.Number, err)
			errs = append(errs, fmt.Errorf("patch: %w", err))
		} else {
			res.titlePatched = update.Title != nil
		}
	}

	if len(errs) > 0 {
		return res, fmt.Errorf("%w: %v", review.ErrPublishFailed, errs)
	}
	return res, nil
}
