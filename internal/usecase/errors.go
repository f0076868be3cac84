package usecase

import "errors"

var (
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")

	ErrProfileNotFound = errors.New("profile not found")
	ErrListingNotFound = errors.New("listing not found")
	ErrDraftNotFound   = errors.New("draft not found")
)
