package domain

import (
	"errors"
	"fmt"
)

var ErrUnauthenticated = errors.New("session is not authenticated")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnknownRole = errors.New("could not determine the user role")
var ErrUserNotFound = errors.New("user not found")
var ErrServiceNotFound = errors.New("service not found")
var ErrContactLocked = errors.New("contact is locked for this service")
var ErrCooldownActive = errors.New("resend cooldown still active")
var ErrBackendUnavailable = errors.New("backend unavailable")

// ValidationError is a gateway-side form rejection. The message is already
// user-facing (pt-BR, like every form string the backend emits).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Invalid builds a ValidationError.
func Invalid(message string) error {
	return &ValidationError{Message: message}
}

// UpstreamError carries a backend-produced failure whose message is safe to
// show to the user (the backend already localises it).
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream returned status %d", e.StatusCode)
	}
	return e.Message
}

// AsUpstream unwraps err into an UpstreamError when one is present.
func AsUpstream(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
