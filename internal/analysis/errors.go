package analysis

import "errors"

var (
	// ErrDescriptionRequired rejects an analyze request with no text.
	ErrDescriptionRequired = errors.New("job description is required")
	// ErrNotLoggedIn rejects an analyze request without a user identity.
	ErrNotLoggedIn = errors.New("login required")
	// ErrRemoteCall wraps classifier/scorer failures. The flow reports them
	// as one generic failure and abandons the operation without persisting.
	ErrRemoteCall = errors.New("analysis failed, please try again")
)
