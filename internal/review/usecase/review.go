package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pr-review-relay/internal/review"
	"pr-review-relay/pkg/llmprovider"
)

// Review runs one delivery from diff fetch to publishing.
func (uc *implUseCase) Review(ctx context.Context, input review.ReviewInput) (review.ReviewOutput, error) {
	ev := input.Event

	ctx, span := uc.tracer.Start(ctx, "review.Review", trace.WithAttributes(
		attribute.String("github.repository", ev.FullName()),
		attribute.Int("github.pull_request", ev.Number),
		attribute.String("github.action", ev.Action),
		attribute.String("github.delivery", ev.DeliveryID),
	))
	defer span.End()

	if !ev.Reviewable() {
		uc.transition(ctx, span, review.StateIgnored)
		return review.ReviewOutput{State: review.StateIgnored}, nil
	}
	if ev.Owner == "" || ev.Repo == "" || ev.Number <= 0 {
		return uc.fail(ctx, span, review.ErrInvalidEvent)
	}
	if input.Credential.Token == "" {
		return uc.fail(ctx, span, review.ErrMissingCredential)
	}

	client := uc.gh.ForToken(input.Credential.Token)

	uc.transition(ctx, span, review.StateFetchingDiff)
	req, err := uc.fetchDiff(ctx, client, ev, input.Credential.Token)
	if err != nil {
		return uc.fail(ctx, span, err)
	}

	uc.transition(ctx, span, review.StatePrompting)
	prompt := uc.buildPrompt(req)

	uc.transition(ctx, span, review.StateGenerating)
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemPrompt: uc.cfg.SystemPrompt,
		Prompt:       prompt,
		Temperature:  uc.cfg.Temperature,
		MaxTokens:    uc.cfg.MaxTokens,
	})

	uc.transition(ctx, span, review.StatePostProcessing)
	var gen review.GeneratedReview
	var provider string
	switch {
	case err == nil:
		gen = uc.postProcess(resp.Text, resp.RawFormat)
		provider = resp.ProviderName
	case errors.Is(err, llmprovider.ErrEmptyOutput):
		uc.l.Warnf(ctx, "review: backend returned no usable output for %s#%d, publishing fallback", ev.FullName(), ev.Number)
		gen = uc.fallbackReview(review.GeneratedReview{})
	default:
		return uc.fail(ctx, span, fmt.Errorf("%w: %w", review.ErrGenerate, err))
	}

	uc.transition(ctx, span, review.StatePublishing)
	res, err := uc.publish(ctx, client, ev, gen)

	out := review.ReviewOutput{
		State:        review.StateCompleted,
		CommentID:    res.commentID,
		Title:        gen.Title,
		TitlePatched: res.titlePatched,
		Advisory:     gen.TooShort,
		Provider:     provider,
	}
	if !res.commented {
		out.State = review.StateFailed
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		uc.transition(ctx, span, out.State)
		return out, err
	}

	uc.transition(ctx, span, review.StateCompleted)
	uc.l.Infof(ctx, "review published on %s#%d (comment %d, title patched: %t)", ev.FullName(), ev.Number, res.commentID, res.titlePatched)
	return out, nil
}

func (uc *implUseCase) transition(ctx context.Context, span trace.Span, state review.State) {
	span.AddEvent(string(state))
	uc.l.Debugf(ctx, "review state: %s", state)
}

func (uc *implUseCase) fail(ctx context.Context, span trace.Span, err error) (review.ReviewOutput, error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	uc.transition(ctx, span, review.StateFailed)
	uc.l.Errorf(ctx, "review failed: %v", err)
	return review.ReviewOutput{State: review.StateFailed}, err
}
