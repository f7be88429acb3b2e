package search

import (
	"errors"
	"fmt"
)

// ErrForbidden is matched by every AuthorizationError.
var ErrForbidden = errors.New("search: forbidden (check API key)")

// AuthorizationError reports that the provider rejected the API key.
type AuthorizationError struct {
	Status int
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("search: unauthorized access (status=%d)", e.Status)
}

func (e *AuthorizationError) Unwrap() error { return ErrForbidden }

// RequestError covers transport, status and decoding failures other than
// authorization.
type RequestError struct {
	Status int
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("search: request failed (status=%d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("search: request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }
