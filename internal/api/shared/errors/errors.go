package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/partyqr/qr-router/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeRateLimited      ErrorCode = "rate_limited"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeUpstreamError ErrorCode = "upstream_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	// Fields holds per-field validation messages keyed by JSON field path
	Fields map[string]string `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(fields map[string]string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Fields:  fields,
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewRateLimitedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeRateLimited,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewUpstreamError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUpstreamError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// FromDomain maps a domain error to an HTTP status and API error.
// Server errors carry a generic message, the cause is only logged.
func FromDomain(err error) (int, *APIError) {
	var validationErr *domain.ValidationError
	var upstreamErr *domain.UpstreamError
	var partialErr *domain.PartialProvisioningError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, NewValidationError(validationErr.Fields)
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, NewNotFoundError("Resource not found")
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, NewForbiddenError("You do not have access to this resource")
	case errors.As(err, &partialErr):
		return http.StatusInternalServerError, NewUpstreamError("Provisioning incomplete, retry later")
	case errors.As(err, &upstreamErr):
		return http.StatusInternalServerError, NewUpstreamError("Upstream service failed")
	default:
		return http.StatusInternalServerError, NewInternalError("Internal server error")
	}
}
