package apiclient

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means the bearer token was missing, expired or
	// rejected by the backend. Callers log the session out.
	ErrUnauthorized = errors.New("apiclient: unauthorized")
	// ErrNotFound is returned by lookups of a single resource.
	ErrNotFound = errors.New("apiclient: not found")
)

// Fallback texts used when the backend gives no message.
const (
	FallbackRegistration = "Registration failed"
	FallbackLogin        = "Invalid credentials. Please try again."
	FallbackCreate       = "Failed to submit"
	FallbackUpdate       = "Failed to update"
	FallbackRequest      = "Something went wrong. Please try again."
)

// RegistrationFailedError is a non-2xx answer to a registration.
type RegistrationFailedError struct{ Reason string }

func (e *RegistrationFailedError) Error() string {
	return "registration failed: " + orDefault(e.Reason, FallbackRegistration)
}

// AuthFailedError is a non-2xx login answer or a 2xx without a token.
type AuthFailedError struct{ Reason string }

func (e *AuthFailedError) Error() string {
	return "auth failed: " + orDefault(e.Reason, FallbackLogin)
}

// ValidationFailedError is a 4xx answer to a document create or update.
type ValidationFailedError struct {
	Reason string
	Update bool
}

func (e *ValidationFailedError) Error() string {
	return "document rejected: " + e.message()
}

func (e *ValidationFailedError) message() string {
	if e.Update {
		return orDefault(e.Reason, FallbackUpdate)
	}
	return orDefault(e.Reason, FallbackCreate)
}

// RequestError is a transport failure, a timeout or a 5xx.
type RequestError struct {
	Op     string
	Status int
	Reason string
	Err    error
}

func (e *RequestError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Reason != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Reason)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.Status)
}

func (e *RequestError) Unwrap() error { return e.Err }

// UserMessage turns any client error into the single banner text shown to
// the user: the backend's message when it gave one, a fixed fallback
// otherwise.
func UserMessage(err error) string {
	var (
		regErr  *RegistrationFailedError
		authErr *AuthFailedError
		valErr  *ValidationFailedError
		reqErr  *RequestError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &regErr):
		return orDefault(regErr.Reason, FallbackRegistration)
	case errors.As(err, &authErr):
		return orDefault(authErr.Reason, FallbackLogin)
	case errors.As(err, &valErr):
		return valErr.message()
	case errors.As(err, &reqErr) && reqErr.Err == nil:
		return orDefault(reqErr.Reason, FallbackRequest)
	}
	return FallbackRequest
}

func orDefault(s, d string) string {
	if s == "" {
		return d
	}
	return s
}
