package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	reviewUC "pr-review-relay/internal/review/usecase"
	"pr-review-relay/internal/webhook"
)

// setupWebhookDomain wires the review orchestrator behind POST /webhook.
func (srv HTTPServer) setupWebhookDomain(ctx context.Context, rg *gin.RouterGroup, registrations webhook.RegistrationLookup) error {
	uc := reviewUC.New(srv.githubFactory, srv.generator, srv.reviewConfig, srv.l)

	h := webhook.NewHandler(uc, srv.webhookSecurity, registrations, srv.webhookHandler, srv.l)
	rg.POST("/webhook", h.HandleGitHubWebhook)

	srv.l.Infof(ctx, "GitHub webhook route registered at POST /webhook (secret mode: %s, async: %t)",
		srv.webhookSecurity.SecretMode, srv.webhookHandler.Async)
	return nil
}
