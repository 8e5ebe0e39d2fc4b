package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEventState(t *testing.T) {
	expiresAt := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		status    EventStatus
		expiresAt *time.Time
		now       time.Time
		expected  EventState
	}{
		{"live before expiry", EventStatusLive, &expiresAt, expiresAt.Add(-time.Second), EventStateLive},
		{"live at expiry instant", EventStatusLive, &expiresAt, expiresAt, EventStateExpired},
		{"live after expiry", EventStatusLive, &expiresAt, expiresAt.Add(time.Second), EventStateExpired},
		{"live without expiry", EventStatusLive, nil, expiresAt.Add(1000 * time.Hour), EventStateLive},
		{"draft before expiry", EventStatusDraft, &expiresAt, expiresAt.Add(-time.Hour), EventStateDraft},
		{"draft after expiry", EventStatusDraft, &expiresAt, expiresAt.Add(time.Hour), EventStateExpired},
		{"persisted expired", EventStatusExpired, nil, expiresAt, EventStateExpired},
		{"archived wins over expiry", EventStatusArchived, &expiresAt, expiresAt.Add(time.Hour), EventStateArchived},
		{"unknown status is live", EventStatus(""), nil, expiresAt, EventStateLive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeEventState(tt.status, tt.expiresAt, tt.now))
		})
	}
}

func TestEventStateRoutable(t *testing.T) {
	assert.True(t, EventStateDraft.Routable())
	assert.True(t, EventStateLive.Routable())
	assert.False(t, EventStateExpired.Routable())
	assert.False(t, EventStateArchived.Routable())
}

func TestExpiresAt(t *testing.T) {
	assert.Nil(t, ExpiresAt(nil, 30))

	eventDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	expiresAt := ExpiresAt(&eventDate, 9)
	require.NotNil(t, expiresAt)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), *expiresAt)
}

func TestMemberRoleCanEditDestinations(t *testing.T) {
	assert.True(t, MemberRoleOwner.CanEditDestinations())
	assert.True(t, MemberRoleEditor.CanEditDestinations())
	assert.False(t, MemberRoleViewer.CanEditDestinations())
}

func TestIsValidDestinationType(t *testing.T) {
	assert.True(t, IsValidDestinationType(DestinationTypePrueba))
	assert.False(t, IsValidDestinationType(DestinationType("popup")))
}

func TestErrors(t *testing.T) {
	t.Run("validation error lists fields in order", func(t *testing.T) {
		err := &ValidationError{Fields: map[string]string{"target_url": "must be a url", "end_at": "must be after start_at"}}
		assert.Equal(t, "validation failed: end_at: must be after start_at, target_url: must be a url", err.Error())
	})

	t.Run("upstream error unwraps", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := fmt.Errorf("provision: %w", NewUpstreamError("upsert event", cause))

		var upstream *UpstreamError
		require.True(t, errors.As(err, &upstream))
		assert.Equal(t, "upsert event", upstream.Op)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("partial provisioning error unwraps every step", func(t *testing.T) {
		first := errors.New("destinations down")
		second := errors.New("modules down")
		err := &PartialProvisioningError{EventID: "evt", Steps: []StepFailure{
			{Step: "default_destinations", Err: first},
			{Step: "modules", Err: second},
		}}

		assert.ErrorIs(t, err, first)
		assert.ErrorIs(t, err, second)
		assert.Contains(t, err.Error(), "default_destinations: destinations down")
	})
}
