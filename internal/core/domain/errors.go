package domain

import "errors"

// Sentinel errors shared across the core. The HTTP boundary maps each one to
// a deterministic status code; everything else surfaces as a 500.
var (
	// ErrInvalidCredentials covers every authentication failure: unknown
	// username, wrong password, deactivated account, and bad or expired
	// tokens. The shape is identical on purpose so callers cannot probe
	// which part failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrForbidden    = errors.New("access forbidden")
	ErrUserNotFound = errors.New("user not found")
	ErrTaskNotFound = errors.New("task not found")
	ErrUserExists   = errors.New("username or email already exists")

	// ErrSelfDelete guards account deletion: no user may delete their own
	// account, regardless of role.
	ErrSelfDelete = errors.New("cannot delete your own account")

	ErrUnknownRole    = errors.New("unknown role")
	ErrUnknownStatus  = errors.New("unknown task status")
	ErrUnknownUrgency = errors.New("unknown task urgency")
)
