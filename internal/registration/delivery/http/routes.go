package http

import (
	"github.com/gin-gonic/gin"

	"pr-review-relay/internal/middleware"
)

// RegisterRoutes maps the registration endpoints. Both act with the
// caller's GitHub token and therefore require a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/create-webhook", mw.Auth(), h.CreateWebhook)
	rg.POST("/check-webhook", mw.Auth(), h.CheckWebhook)
}
