package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "pr-review-relay/pkg/errors"
)

func (h *handler) processCreateWebhookReq(c *gin.Context) (createWebhookReq, error) {
	var req createWebhookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	return req, req.validate()
}

func (h *handler) processCheckWebhookReq(c *gin.Context) (checkWebhookReq, error) {
	var req checkWebhookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	return req, req.validate()
}
