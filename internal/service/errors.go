package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDeviceMismatch means the payload's device binding disagrees with
	// the station's registered device.
	ErrDeviceMismatch = errors.New("device id mismatch")
	// ErrStationUnavailable rejects reservations on MAINTENANCE/FAULT stations.
	ErrStationUnavailable = errors.New("station is not available for reservation")
	// ErrInvalidCredentials covers unknown email or wrong password on login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken rejects duplicate registrations.
	ErrEmailTaken = errors.New("email already registered")
)

// FieldError describes one rejected payload field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError aggregates field-level problems. A validation failure
// guarantees no side effects occurred.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}
