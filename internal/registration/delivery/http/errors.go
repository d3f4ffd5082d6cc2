package http

import (
	"errors"
	"net/http"

	"pr-review-relay/internal/registration"
	pkgErrors "pr-review-relay/pkg/errors"
)

// mapError translates registration errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, registration.ErrInvalidRepository):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, registration.ErrMissingCredential):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, registration.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, registration.ErrGitHub):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "GitHub rejected the request")
	case errors.Is(err, registration.ErrWebhookURLNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
