package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pr-review-relay/pkg/response"
)

// GitHubOAuth godoc
// @Summary     Sign in with GitHub
// @Description Exchanges an OAuth authorization code for an access token and opens a session. The session id is also set as a cookie.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body oauthReq true "OAuth code"
// @Success     200  {object} oauthResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Code rejected"
// @Failure     502  {object} response.Resp "GitHub unavailable"
// @Router      /github-oauth [POST]
func (h *handler) GitHubOAuth(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOAuthReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "auth.http.GitHubOAuth: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, output.SessionID, int(h.cookie.MaxAge.Seconds()), "/", "", h.cookie.Secure, true)
	response.OK(c, h.newOAuthResp(output))
}
