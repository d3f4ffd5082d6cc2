package review

import "errors"

var (
	ErrInvalidEvent      = errors.New("pull_request event is missing repository or number")
	ErrMissingCredential = errors.New("no GitHub credential for repository")
	ErrFetchDiff         = errors.New("failed to fetch pull request diff")
	ErrGenerate          = errors.New("review generation failed")
	ErrPublishFailed     = errors.New("failed to publish review")
)
