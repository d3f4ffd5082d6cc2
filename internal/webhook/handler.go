package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"pr-review-relay/internal/model"
	"pr-review-relay/internal/review"
	pkgErrors "pr-review-relay/pkg/errors"
	pkgLog "pr-review-relay/pkg/log"
	pkgResponse "pr-review-relay/pkg/response"
)

type reviewResp struct {
	Status       string `json:"status"`
	CommentID    int64  `json:"comment_id,omitempty"`
	Title        string `json:"title,omitempty"`
	TitlePatched bool   `json:"title_patched,omitempty"`
}

// HandleGitHubWebhook godoc
// @Summary     GitHub pull_request webhook
// @Description Verifies the X-Hub-Signature-256 of the raw body with the repository secret and reviews opened/synchronize pull requests.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       X-Hub-Signature-256 header string true  "sha256=<hex hmac>"
// @Param       X-GitHub-Event      header string true  "Event name"
// @Param       X-GitHub-Delivery   header string false "Delivery id"
// @Success     200 {object} reviewResp
// @Success     202 {object} reviewResp "Accepted, processing asynchronously"
// @Failure     401 {object} pkgResponse.Resp "Signature mismatch"
// @Failure     404 {object} pkgResponse.Resp "Repository not registered"
// @Failure     429 {object} pkgResponse.Resp "Rate limited"
// @Failure     500 {object} pkgResponse.Resp "Review failed"
// @Router      /webhook [POST]
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	deliveryID := c.GetHeader(model.HeaderDeliveryID)
	ctx := pkgLog.ContextWithDeliveryID(c.Request.Context(), deliveryID)

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "Webhook rejected: %v", err)
		pkgResponse.Error(c, pkgErrors.NewHTTPError(http.StatusForbidden, "Forbidden"), nil)
		return
	}

	// Read body, bounded
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxBodyBytes)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			pkgResponse.Error(c, pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "Payload too large"), nil)
			return
		}
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.Error(c, pkgErrors.ErrBadRequest, nil)
		return
	}

	eventType := c.GetHeader(model.HeaderEvent)
	switch eventType {
	case model.EventPullRequest:
	case model.EventPing:
		pkgResponse.OK(c, reviewResp{Status: "pong"})
		return
	default:
		h.l.Infof(ctx, "Unsupported GitHub event type: %s", eventType)
		pkgResponse.OK(c, reviewResp{Status: string(review.StateIgnored)})
		return
	}

	event, err := h.githubParser.ParsePullRequestEvent(body)
	if err != nil {
		h.l.Warnf(ctx, "Failed to parse GitHub event: %v", err)
		pkgResponse.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, ErrMalformedPayload.Error()), nil)
		return
	}
	event.Signature = c.GetHeader(model.HeaderSignature)
	event.DeliveryID = deliveryID

	cred, err := h.authenticator.Authenticate(ctx, event.Owner, event.Repo, body, event.Signature)
	if err != nil {
		h.l.Warnf(ctx, "Webhook for %s rejected: %v", event.FullName(), err)
		pkgResponse.Error(c, h.mapError(err), nil)
		return
	}

	// Only verified deliveries spend the repository's budget.
	if err := h.security.CheckRateLimit(model.RegistrationKey(event.Owner, event.Repo)); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		pkgResponse.Error(c, pkgErrors.ErrTooManyRequests, nil)
		return
	}

	if !event.Reviewable() {
		h.l.Infof(ctx, "Ignoring pull_request action %q on %s#%d", event.Action, event.FullName(), event.Number)
		pkgResponse.OK(c, reviewResp{Status: string(review.StateIgnored)})
		return
	}

	input := review.ReviewInput{Event: event, Credential: cred}

	if h.cfg.Async {
		// Detached from the request so the review outlives the 202.
		go h.processWebhookAsync(context.WithoutCancel(ctx), input)
		c.JSON(http.StatusAccepted, pkgResponse.NewOKResp(reviewResp{Status: "accepted"}))
		return
	}

	output, err := h.reviewUC.Review(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "Review of %s#%d failed: %v", event.FullName(), event.Number, err)
		pkgResponse.Error(c, h.mapError(err), nil)
		return
	}

	pkgResponse.OK(c, newReviewResp(output))
}

// processWebhookAsync processes webhook in background
func (h *Handler) processWebhookAsync(parent context.Context, input review.ReviewInput) {
	ctx, cancel := context.WithTimeout(parent, h.cfg.ProcessTimeout)
	defer cancel()

	h.l.Infof(ctx, "Processing webhook async: %s#%d %s", input.Event.FullName(), input.Event.Number, input.Event.Action)

	output, err := h.reviewUC.Review(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "Webhook processing failed: %v", err)
		return
	}

	h.l.Infof(ctx, "Webhook processed: %s", output.State)
}

func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
	case errors.Is(err, review.ErrInvalidEvent):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, review.ErrInvalidEvent.Error())
	case errors.Is(err, review.ErrPublishFailed):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, review.ErrPublishFailed.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

func newReviewResp(o review.ReviewOutput) reviewResp {
	return reviewResp{
		Status:       string(o.State),
		CommentID:    o.CommentID,
		Title:        o.Title,
		TitlePatched: o.TitlePatched,
	}
}
