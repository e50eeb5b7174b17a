// Package errs holds the sentinel errors the business layer returns and
// the handlers translate into status codes.
package errs

import "errors"

var (
	// ErrValidation malformed input, rejected before any mutation
	ErrValidation = errors.New("validation error")
	// ErrConflict the resource already exists
	ErrConflict = errors.New("already exists")
	// ErrUnauthorized missing, invalid or expired credentials
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden authenticated but not allowed
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound absent, or not owned by the caller
	ErrNotFound = errors.New("not found")
	// ErrUnavailable a dependency could not be reached
	ErrUnavailable = errors.New("unavailable")
)
