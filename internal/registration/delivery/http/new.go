package http

import (
	"pr-review-relay/internal/registration"
	"pr-review-relay/pkg/log"
)

type handler struct {
	l  log.Logger
	uc registration.UseCase
}

// New creates the HTTP handler for webhook registration.
func New(l log.Logger, uc registration.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
