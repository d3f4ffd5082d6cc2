package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the sign-in endpoint. It is public by nature.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/github-oauth", h.GitHubOAuth)
}
