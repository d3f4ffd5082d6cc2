package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"pr-review-relay/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "pr-review-relay"

	storeUp   = "up"
	storeDown = "down"

	pingTimeout = 2 * time.Second
)

// healthCheck pings the session and registration stores.
// @Summary Health Check
// @Description Reports store connectivity; 503 when a store is unreachable
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Failure 503 {object} map[string]interface{} "A store is unreachable"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	stores := gin.H{
		"sessions":      storeUp,
		"registrations": storeUp,
	}
	healthy := true

	if err := srv.sessionRepo.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "health: session store: %v", err)
		stores["sessions"] = storeDown
		healthy = false
	}
	if err := srv.registrationRepo.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "health: registration store: %v", err)
		stores["registrations"] = storeDown
		healthy = false
	}

	data := gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": srv.serviceName,
		"storage": stores,
	}
	if !healthy {
		data["status"] = "unhealthy"
		response.ServiceUnavailable(c, data)
		return
	}
	response.OK(c, data)
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": srv.serviceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": srv.serviceName,
	})
}
