package model

import "errors"

var (
	// ErrNotFound is returned when a note or stored object does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when the caller carries no valid identity.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrMissingDisplayName is returned when a settings update omits the
	// displayName field required by the remote contract.
	ErrMissingDisplayName = errors.New("displayName is required")
)
