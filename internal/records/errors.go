package records

import "errors"

var (
	// ErrEmailRequired is returned by Add when no user email is supplied.
	ErrEmailRequired = errors.New("user email is required")
)
