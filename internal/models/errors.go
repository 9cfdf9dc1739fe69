package models

import (
	"errors"
	"fmt"
)

// Error classes surfaced to callers.
var (
	ErrValidation   = errors.New("validation error")
	ErrForbidden    = errors.New("authorization error")
	ErrNotFound     = errors.New("not found")
	ErrBackend      = errors.New("backend error")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports a missing or malformed field.
type ValidationError struct {
	Kind   string // creation or asset kind the input was meant for
	Field  string // offending field
	Reason string
}

// NewValidationError builds a *ValidationError.
func NewValidationError(kind, field, reason string) error {
	return &ValidationError{Kind: kind, Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// AuthorizationError is returned when a non-owner tries to mutate a record.
type AuthorizationError struct {
	ResourceID string
	Requester  UserID
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("user %q is not allowed to modify %s", e.Requester, e.ResourceID)
}

func (e *AuthorizationError) Is(target error) bool {
	return target == ErrForbidden
}

// BackendError wraps a persistence failure.
type BackendError struct {
	Op  string
	Err error
}

// NewBackendError wraps err unless it is nil or already a domain error.
func NewBackendError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrValidation) || errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrBackend) {
		return err
	}
	return &BackendError{Op: op, Err: err}
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func (e *BackendError) Is(target error) bool {
	return target == ErrBackend
}

// ErrorClass names the taxonomy bucket of err, as reported in API error payloads.
func ErrorClass(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "ValidationError"
	case errors.Is(err, ErrForbidden):
		return "AuthorizationError"
	case errors.Is(err, ErrNotFound):
		return "NotFoundError"
	case errors.Is(err, ErrConflict):
		return "ConflictError"
	case errors.Is(err, ErrUnauthorized):
		return "AuthenticationError"
	default:
		return "BackendError"
	}
}
