package services

import (
	"errors"
	"fmt"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/facades"
)

// Error variables shared across services.
var (
	ErrUserNotFound        = errors.New("user does not exist")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid user or password")
	ErrInvalidImage        = errors.New("uploaded payload is not a decodable image")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)

// ValidationError reports a malformed or out-of-range input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Reason)
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// mapUpstreamErr translates a facade-level outage into the service-level
// sentinel so handlers never import the facade package.
func mapUpstreamErr(err error) error {
	if errors.Is(err, facades.ErrUnavailable) {
		return fmt.Errorf("%v: %w", err, ErrUpstreamUnavailable)
	}
	return err
}
