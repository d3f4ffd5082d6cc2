package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get registration")
	ErrFailedToUpsert = errors.New("failed to upsert registration")
)
