package model

import "time"

// Session binds an opaque session id to the caller's GitHub token.
type Session struct {
	ID          string    `json:"id"`
	AccessToken string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// Scope returns the caller scope carried by the session.
func (s Session) Scope() Scope {
	return Scope{SessionID: s.ID, AccessToken: s.AccessToken}
}
