package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "pr-review-relay/pkg/errors"
)

func (h *handler) processOAuthReq(c *gin.Context) (oauthReq, error) {
	var req oauthReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}
