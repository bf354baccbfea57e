package service

import "errors"

var (
	// ErrMissingUser is returned when an operation that needs a signed-in
	// user is called with an empty or anonymous identity.
	ErrMissingUser = errors.New("user is missing or anonymous")

	// ErrEmptyBatch is returned when none of the scanned codes survives
	// normalization.
	ErrEmptyBatch = errors.New("no valid codes in batch")

	// ErrNotAuthenticated is returned by session operations that require an
	// authenticated session.
	ErrNotAuthenticated = errors.New("not authenticated")

	ErrInvalidDataProvided = errors.New("invalid data provided")
)
