package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"pr-review-relay/internal/auth"
	"pr-review-relay/internal/middleware"
	"pr-review-relay/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	ctx := context.Background()

	authUC := srv.newAuthUseCase()
	mw := middleware.New(srv.l, authUC, srv.session.CookieName, srv.corsOrigins)

	srv.registerMiddlewares(ctx, mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(ctx, authUC, mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(ctx context.Context, mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	if srv.mode == gin.DebugMode {
		srv.gin.Use(gin.Logger())
	}
	if srv.tracing {
		srv.gin.Use(otelgin.Middleware(srv.serviceName))
	}
	srv.gin.Use(mw.CORS())

	if model.IsProduction(srv.environment) {
		srv.l.Infof(ctx, "CORS mode: production, origins %v", srv.corsOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes on the root group.
func (srv HTTPServer) registerDomainRoutes(ctx context.Context, authUC auth.UseCase, mw middleware.Middleware) error {
	root := srv.gin.Group("")

	if err := srv.setupAuthDomain(ctx, root, authUC); err != nil {
		return err
	}
	registrationUC, err := srv.setupRegistrationDomain(ctx, root, mw)
	if err != nil {
		return err
	}
	if err := srv.setupWebhookDomain(ctx, root, registrationUC); err != nil {
		return err
	}

	return nil
}
