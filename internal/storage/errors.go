// ABOUTME: Typed error values for the storage layer.
// ABOUTME: Callers branch on these with errors.Is instead of parsing messages.
package storage

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a referenced id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when a user create or email update
	// collides with an existing user's email.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrInvalid is returned when a required field is missing or out of range.
	ErrInvalid = errors.New("invalid input")
)

// isUniqueConstraint reports whether err is a SQLite unique constraint
// violation. modernc.org/sqlite does not export a typed error for this,
// so the driver message is the only signal available.
func isUniqueConstraint(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
