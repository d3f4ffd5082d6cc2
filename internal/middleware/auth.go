package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"pr-review-relay/internal/model"
	"pr-review-relay/pkg/response"
)

// Auth resolves the session from the cookie or the X-Session-ID header and
// stores the caller scope in the request context. Requests without a live
// session are answered 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sessionID, err := c.Cookie(m.cookieName)
		if err != nil || sessionID == "" {
			sessionID = strings.TrimSpace(c.GetHeader(HeaderSessionID))
		}
		if sessionID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc, err := m.sessions.Resolve(ctx, sessionID)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(model.SetScopeToContext(ctx, sc))
		c.Next()
	}
}
