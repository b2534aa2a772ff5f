package credstore

import "errors"

// Sentinel errors surfaced to the UI. The messages double as the
// user-facing strings, matching earlier CareMate clients.
var (
	// ErrValidation is returned when a required field is empty.
	ErrValidation = errors.New("all fields are required")

	// ErrDuplicateAccount is returned when a signup email collides with an
	// existing record (case-insensitive).
	ErrDuplicateAccount = errors.New("an account with this email already exists")

	// ErrInvalidCredentials is returned on any login mismatch. It is
	// deliberately generic so callers cannot tell which field was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
