package registry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/registry"
	"github.com/partyqr/qr-router/internal/store"
	"github.com/partyqr/qr-router/internal/store/schema"
	"github.com/partyqr/qr-router/internal/store/storetest"
)

func seedEvent(t *testing.T, st store.Store, session string, expiresAt *time.Time) *schema.Event {
	t.Helper()
	event, _, err := st.UpsertEventBySession(context.Background(), &schema.Event{
		OwnerID:          "owner",
		Status:           domain.EventStatusLive,
		Timezone:         "UTC",
		ContentTTLDays:   30,
		ExpiresAt:        expiresAt,
		PaymentSessionID: ptr(session),
	})
	require.NoError(t, err)
	return event
}

func TestEventRegistry_GetAndRole(t *testing.T) {
	ctx := context.Background()
	st, _ := storetest.NewStore(t)
	event := seedEvent(t, st, "cs_1", nil)
	require.NoError(t, st.UpsertEventMember(ctx, &schema.EventMember{EventID: event.ID, UserID: "editor", Role: domain.MemberRoleEditor}))

	reg := registry.NewEventRegistry(st)

	got, err := reg.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.ID, got.ID)

	_, err = reg.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	role, err := reg.Role(ctx, event.ID, "editor")
	require.NoError(t, err)
	assert.Equal(t, domain.MemberRoleEditor, role)

	_, err = reg.Role(ctx, event.ID, "stranger")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventRegistry_Status(t *testing.T) {
	ctx := context.Background()
	st, _ := storetest.NewStore(t)

	expiresAt := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	event := seedEvent(t, st, "cs_status", &expiresAt)
	a := seedQR(t, st, "aaa", "owner")
	b := seedQR(t, st, "bbb", "owner")

	start := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	_, err := st.ReplaceEventRules(ctx, store.ReplaceEventRulesInput{
		EventID: event.ID,
		Destinations: []*schema.Destination{
			{ID: "a-default", EventID: event.ID, QRID: a.ID, Type: domain.DestinationTypeMicrosite, TargetURL: "https://x/m", IsActive: true, IsDefault: true},
			{ID: "a-timed", EventID: event.ID, QRID: a.ID, Type: domain.DestinationTypePrueba, TargetURL: "https://x/p", IsActive: true, Priority: 5, StartAt: &start, EndAt: &end},
		},
	})
	require.NoError(t, err)
	require.NoError(t, st.LinkQRCodeToEvent(ctx, a.ID, event.ID, ptr("a-default")))
	require.NoError(t, st.LinkQRCodeToEvent(ctx, b.ID, event.ID, nil))

	reg := registry.NewEventRegistry(st)

	status, err := reg.Status(ctx, event.ID, start.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, domain.EventStateLive, status.State)
	require.Len(t, status.QRs, 2)

	assert.Equal(t, "aaa", status.QRs[0].QR.Code)
	require.NotNil(t, status.QRs[0].Resolved)
	assert.Equal(t, "a-timed", status.QRs[0].Resolved.ID)
	assert.True(t, status.QRs[0].HintStale)

	assert.Equal(t, "bbb", status.QRs[1].QR.Code)
	assert.Nil(t, status.QRs[1].Resolved)
	assert.False(t, status.QRs[1].HintStale)

	status, err = reg.Status(ctx, event.ID, start.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "a-default", status.QRs[0].Resolved.ID)
	assert.False(t, status.QRs[0].HintStale)

	status, err = reg.Status(ctx, event.ID, expiresAt)
	require.NoError(t, err)
	assert.Equal(t, domain.EventStateExpired, status.State)

	_, err = reg.Status(ctx, "missing", start)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRegistry_ExpireDue(t *testing.T) {
	ctx := context.Background()
	st, _ := storetest.NewStore(t)

	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	event := seedEvent(t, st, "cs_past", &past)
	seedEvent(t, st, "cs_none", nil)

	reg := registry.NewEventRegistry(st)
	expired, err := reg.ExpireDue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), expired)

	reloaded, err := reg.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusExpired, reloaded.Status)

	expired, err = reg.ExpireDue(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, expired)
}
