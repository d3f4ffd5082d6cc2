package registration

import "errors"

var (
	ErrNotFound                = errors.New("webhook registration not found")
	ErrInvalidRepository       = errors.New("owner and repo are required")
	ErrMissingCredential       = errors.New("caller has no GitHub credential")
	ErrWebhookURLNotConfigured = errors.New("public webhook URL is not configured")
	ErrGitHub                  = errors.New("github request failed")
	ErrStore                   = errors.New("registration store failed")
)
