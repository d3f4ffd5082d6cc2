package auth

import "errors"

var (
	ErrMissingCode    = errors.New("oauth code is required")
	ErrInvalidCode    = errors.New("oauth code was rejected by GitHub")
	ErrExchange       = errors.New("oauth exchange failed")
	ErrInvalidSession = errors.New("session is missing or expired")
	ErrStore          = errors.New("session store failed")
)
