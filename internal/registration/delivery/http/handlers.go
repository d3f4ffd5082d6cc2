package http

import (
	"github.com/gin-gonic/gin"

	"pr-review-relay/internal/model"
	pkgErrors "pr-review-relay/pkg/errors"
	"pr-review-relay/pkg/response"
)

// CreateWebhook godoc
// @Summary     Register the relay webhook on a repository
// @Description Creates a pull_request webhook with a fresh per-repository secret using the caller's GitHub token. The secret is never returned.
// @Tags        Registration
// @Accept      json
// @Produce     json
// @Param       body body createWebhookReq true "Repository"
// @Success     200  {object} createWebhookResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     502  {object} response.Resp "GitHub rejected the request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /create-webhook [POST]
func (h *handler) CreateWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateWebhookReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, pkgErrors.ErrUnauthorized, nil)
		return
	}

	output, err := h.uc.CreateWebhook(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "registration.http.CreateWebhook: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateWebhookResp(output))
}

// CheckWebhook godoc
// @Summary     Check whether the relay webhook exists
// @Description Lists the repository hooks with the caller's token and reports whether one delivers to webhookUrl (default: this relay).
// @Tags        Registration
// @Accept      json
// @Produce     json
// @Param       body body checkWebhookReq true "Repository and URL"
// @Success     200  {object} checkWebhookResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     502  {object} response.Resp "GitHub rejected the request"
// @Router      /check-webhook [POST]
func (h *handler) CheckWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCheckWebhookReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, pkgErrors.ErrUnauthorized, nil)
		return
	}

	output, err := h.uc.CheckWebhook(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "registration.http.CheckWebhook: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCheckWebhookResp(output))
}
