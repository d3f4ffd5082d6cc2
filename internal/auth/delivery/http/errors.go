package http

import (
	"errors"
	"net/http"

	"pr-review-relay/internal/auth"
	pkgErrors "pr-review-relay/pkg/errors"
)

// mapError translates auth errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrMissingCode):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrInvalidCode), errors.Is(err, auth.ErrInvalidSession):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, auth.ErrExchange):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "GitHub sign-in is unavailable")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
