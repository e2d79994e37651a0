package services

import "errors"

// Sentinel errors returned across the service layer. Handlers translate these
// to HTTP statuses; anything else is an internal error.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrInvalidInput = errors.New("invalid input")
)
