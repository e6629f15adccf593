package application

import "errors"

var (
	// ErrUserNotFound signals a lookup for a user id that has no row.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserIDRequired signals an edit with no resolvable target id.
	ErrUserIDRequired = errors.New("user id is required")
)
