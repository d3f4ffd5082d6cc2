package http

import (
	"pr-review-relay/internal/auth"
)

type oauthReq struct {
	Code string `json:"code"`
}

func (r oauthReq) toInput() auth.LoginInput {
	return auth.LoginInput{Code: r.Code}
}

type oauthResp struct {
	AccessToken string `json:"access_token"`
	SessionID   string `json:"session_id"`
}

func (h *handler) newOAuthResp(o auth.LoginOutput) oauthResp {
	return oauthResp{AccessToken: o.AccessToken, SessionID: o.SessionID}
}
