package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports that the requested note does not exist.
	ErrNotFound = errors.New("note not found")
	// ErrUnauthorized reports a missing or rejected credential; the UI
	// should prompt for re-authentication.
	ErrUnauthorized = errors.New("unauthorized - please sign in again")
	// ErrServer reports an unexpected backend failure; retry is a manual
	// user action, nothing is retried here.
	ErrServer = errors.New("server error")
)

// ValidationError carries a user-facing rejection message for a display
// name, surfaced verbatim to the UI. Err holds the underlying rule
// failure when the validation ran locally.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

// NetworkError wraps a transport-level failure (connectivity, DNS,
// timeout) as distinct from a response the server actually sent.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network failure: %v", e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }
