package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound signals a missing record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID signals a client-supplied identifier that is not in the
	// store's identifier format.
	ErrInvalidID = errors.New("invalid id format")
	// ErrValidation signals a payload that failed field-level validation.
	ErrValidation = errors.New("validation failed")
	// ErrStoreUnavailable signals a connectivity or operational failure of the
	// document store.
	ErrStoreUnavailable = errors.New("document store unavailable")
	// ErrStoreNotConfigured signals that no document store was configured and
	// the service runs in degraded mode.
	ErrStoreNotConfigured = errors.New("document store not configured")
	// ErrAuthFailed signals a failed identity verification.
	ErrAuthFailed = errors.New("authentication failed")
)

// FieldError names one invalid field and the reason.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries field-level causes for a rejected payload.
// It unwraps to ErrValidation so transport can match it with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Message
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Addf records one field violation.
func (e *ValidationError) Addf(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// OrNil returns nil when no field failed, so callers can return it directly.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func checkNonNegative(v *ValidationError, field string, val *float64) {
	if val != nil && *val < 0 {
		v.Addf(field, "must be >= 0")
	}
}
