package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a QR, event, destination or order does not exist
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the caller lacks the role or ownership for an action
	ErrForbidden = errors.New("forbidden")
)

// ValidationError is a malformed request with per-field detail
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// UpstreamError is a failed call to the database or an external API
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError wraps err as an upstream failure of op
func NewUpstreamError(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}

// StepFailure is a single failed provisioning step
type StepFailure struct {
	Step string
	Err  error
}

// PartialProvisioningError reports non-critical provisioning steps that failed
// after the event and its membership were committed
type PartialProvisioningError struct {
	EventID string
	Steps   []StepFailure
}

func (e *PartialProvisioningError) Error() string {
	parts := make([]string, 0, len(e.Steps))
	for _, s := range e.Steps {
		parts = append(parts, fmt.Sprintf("%s: %v", s.Step, s.Err))
	}
	return fmt.Sprintf("partial provisioning of event %s: %s", e.EventID, strings.Join(parts, "; "))
}

func (e *PartialProvisioningError) Unwrap() []error {
	errs := make([]error, 0, len(e.Steps))
	for _, s := range e.Steps {
		errs = append(errs, s.Err)
	}
	return errs
}
