package webhook

import "errors"

var (
	ErrNotFound         = errors.New("repository has no webhook registration")
	ErrUnauthorized     = errors.New("webhook signature verification failed")
	ErrMalformedPayload = errors.New("malformed pull_request payload")
	ErrRateLimited      = errors.New("webhook rate limit exceeded")
	ErrForbiddenIP      = errors.New("source address is not allowed")
)
