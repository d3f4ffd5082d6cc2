package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"pr-review-relay/internal/auth"
	authHTTP "pr-review-relay/internal/auth/delivery/http"
	authUC "pr-review-relay/internal/auth/usecase"
)

func (srv HTTPServer) newAuthUseCase() auth.UseCase {
	return authUC.New(srv.sessionRepo, srv.githubOAuth, srv.l)
}

// setupAuthDomain registers POST /github-oauth. Without OAuth credentials
// the route is skipped and only existing sessions keep working.
func (srv HTTPServer) setupAuthDomain(ctx context.Context, rg *gin.RouterGroup, uc auth.UseCase) error {
	if srv.githubOAuth == nil {
		srv.l.Warnf(ctx, "GitHub OAuth not configured, skipping /github-oauth")
		return nil
	}

	h := authHTTP.New(srv.l, uc, authHTTP.CookieConfig{
		Name:   srv.session.CookieName,
		Secure: srv.session.CookieSecure,
		MaxAge: srv.session.TTL,
	})
	authHTTP.RegisterRoutes(rg, h)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}
