package repository

import "errors"

var (
	ErrFailedToCreate = errors.New("failed to create session")
	ErrFailedToGet    = errors.New("failed to get session")
)
