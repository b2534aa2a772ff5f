package api

import "errors"

var (
	// ErrUnavailable marks transport-level failures: the backend could not
	// be reached at all. Services fall back to mocks on this error.
	ErrUnavailable = errors.New("backend unavailable")

	// ErrNotFound is returned for 404 responses, e.g. an unknown report id.
	ErrNotFound = errors.New("not found")
)
