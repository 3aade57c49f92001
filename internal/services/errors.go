package services

import "errors"

// Sentinel errors for the failure classes the handlers translate into HTTP
// statuses. Wrapped with detail via fmt.Errorf and %w.
var (
	// ErrInvalidInput marks a request rejected by input validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrAlreadyExists marks a uniqueness conflict (email, username).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCredentials marks a failed credential check.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
