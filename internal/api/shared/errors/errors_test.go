package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apierrors "github.com/partyqr/qr-router/internal/api/shared/errors"
	"github.com/partyqr/qr-router/internal/domain"
)

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   apierrors.ErrorCode
	}{
		{
			name:   "validation",
			err:    domain.NewValidationError("priority", "must not be negative"),
			status: http.StatusBadRequest,
			code:   apierrors.ErrCodeValidationFailed,
		},
		{
			name:   "wrapped not found",
			err:    fmt.Errorf("destination d1: %w", domain.ErrNotFound),
			status: http.StatusNotFound,
			code:   apierrors.ErrCodeNotFound,
		},
		{
			name:   "forbidden",
			err:    domain.ErrForbidden,
			status: http.StatusForbidden,
			code:   apierrors.ErrCodeForbidden,
		},
		{
			name:   "upstream",
			err:    domain.NewUpstreamError("create order", errors.New("db down")),
			status: http.StatusInternalServerError,
			code:   apierrors.ErrCodeUpstreamError,
		},
		{
			name: "partial provisioning",
			err: &domain.PartialProvisioningError{
				EventID: "evt-1",
				Steps:   []domain.StepFailure{{Step: "modules", Err: errors.New("locked")}},
			},
			status: http.StatusInternalServerError,
			code:   apierrors.ErrCodeUpstreamError,
		},
		{
			name:   "unknown",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			code:   apierrors.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, apiErr := apierrors.FromDomain(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.NotContains(t, apiErr.Message, "db down")
		})
	}

	_, apiErr := apierrors.FromDomain(domain.NewValidationError("priority", "must not be negative"))
	assert.Equal(t, map[string]string{"priority": "must not be negative"}, apiErr.Fields)
}
