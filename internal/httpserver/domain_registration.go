package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"pr-review-relay/internal/middleware"
	"pr-review-relay/internal/registration"
	registrationHTTP "pr-review-relay/internal/registration/delivery/http"
	registrationUC "pr-review-relay/internal/registration/usecase"
)

// setupRegistrationDomain registers /create-webhook and /check-webhook and
// returns the use case the webhook domain looks secrets up with.
func (srv HTTPServer) setupRegistrationDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware) (registration.UseCase, error) {
	uc := registrationUC.New(srv.registrationRepo, srv.githubFactory, srv.webhookURL, srv.l)

	h := registrationHTTP.New(srv.l, uc)
	registrationHTTP.RegisterRoutes(rg, h, mw)

	if srv.webhookURL == "" {
		srv.l.Warnf(ctx, "github.webhook_url is empty, /create-webhook will fail until it is set")
	}
	srv.l.Infof(ctx, "Registration domain registered")
	return uc, nil
}
