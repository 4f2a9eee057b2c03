package service

import "errors"

// Shared error taxonomy for the service layer. Handlers map these onto
// HTTP statuses; nothing else should leak outward.
var (
	// ErrNotFound means the requested resource does not exist. It always
	// takes precedence over ownership checks.
	ErrNotFound = errors.New("resource not found")

	// ErrNotAuthorized means the resource exists but is owned by someone
	// else. Distinct from the role-level rejection the middleware issues.
	ErrNotAuthorized = errors.New("not authorized to access this resource")

	// ErrInvalidReference means a document points at a user that does not
	// exist or does not hold the expected role.
	ErrInvalidReference = errors.New("invalid reference")
)
