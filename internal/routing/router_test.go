package routing_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/mocks"
	"github.com/partyqr/qr-router/internal/registry"
	"github.com/partyqr/qr-router/internal/routing"
	"github.com/partyqr/qr-router/internal/store"
	"github.com/partyqr/qr-router/internal/store/schema"
	"github.com/partyqr/qr-router/internal/store/storetest"
)

const (
	siteURL    = "https://party.example.com"
	expiredURL = "https://party.example.com/expired"
)

var routingConfig = routing.Config{SiteURL: siteURL, DefaultExpiredURL: expiredURL}

func ptr[T any](v T) *T {
	return &v
}

type fixture struct {
	store  store.Store
	router routing.Router
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st, _ := storetest.NewStore(t)
	return &fixture{
		store:  st,
		router: routing.NewRouter(routingConfig, registry.NewQRRegistry(st, nil, 0), st),
	}
}

func (f *fixture) qr(t *testing.T, qr *schema.QRCode) *schema.QRCode {
	t.Helper()
	if qr.OwnerID == "" {
		qr.OwnerID = "owner"
	}
	require.NoError(t, f.store.CreateQRCodes(context.Background(), []*schema.QRCode{qr}))
	return qr
}

func (f *fixture) event(t *testing.T, event *schema.Event) *schema.Event {
	t.Helper()
	event.OwnerID = "owner"
	event.Timezone = "UTC"
	event.ContentTTLDays = 30
	event.PaymentSessionID = ptr("cs_" + t.Name())
	created, _, err := f.store.UpsertEventBySession(context.Background(), event)
	require.NoError(t, err)
	return created
}

func (f *fixture) link(t *testing.T, qr *schema.QRCode, event *schema.Event, hint *string, destinations ...*schema.Destination) {
	t.Helper()
	ctx := context.Background()
	for _, d := range destinations {
		d.EventID = event.ID
		d.QRID = qr.ID
	}
	_, err := f.store.ReplaceEventRules(ctx, store.ReplaceEventRulesInput{EventID: event.ID, Destinations: destinations})
	require.NoError(t, err)
	require.NoError(t, f.store.LinkQRCodeToEvent(ctx, qr.ID, event.ID, hint))
}

func TestRouter_UnknownAndInactive(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	qr := f.qr(t, &schema.QRCode{Code: "off", IsActive: true})
	_, err := f.store.UpdateQRCode(ctx, qr.ID, store.QRCodeUpdate{IsActive: ptr(false)})
	require.NoError(t, err)

	_, err = f.router.Resolve(ctx, "nope", time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.router.Resolve(ctx, "off", time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRouter_Unlinked(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.qr(t, &schema.QRCode{Code: "static", IsActive: true, DestinationURL: "https://example.com/menu"})
	f.qr(t, &schema.QRCode{Code: "blank", IsActive: true})

	outcome, err := f.router.Resolve(ctx, "static", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/menu", outcome.URL)
	assert.Nil(t, outcome.Event)

	outcome, err = f.router.Resolve(ctx, "blank", time.Now())
	require.NoError(t, err)
	assert.Equal(t, siteURL, outcome.URL)
}

// A is the default microsite on priority 0, B a timed rule on priority 5
func TestRouter_TimedDestinationScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	start := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)
	qr := f.qr(t, &schema.QRCode{Code: "abc123", IsActive: true})
	event := f.event(t, &schema.Event{Status: domain.EventStatusLive})
	f.link(t, qr, event, ptr("A"),
		&schema.Destination{ID: "A", Type: domain.DestinationTypeMicrosite, TargetURL: "https://x/a", IsActive: true, IsDefault: true},
		&schema.Destination{ID: "B", Type: domain.DestinationTypePrueba, TargetURL: "https://x/b", IsActive: true, Priority: 5, StartAt: &start, EndAt: &end},
	)

	tests := []struct {
		name      string
		now       time.Time
		url       string
		hintStale bool
	}{
		{"before window", start.Add(-time.Minute), "https://x/a", false},
		{"inside window", time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC), "https://x/b", true},
		{"end is exclusive", end, "https://x/a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := f.router.Resolve(ctx, "abc123", tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.url, outcome.URL)
			assert.Equal(t, tt.hintStale, outcome.HintStale)
			assert.False(t, outcome.WasExpired)
			require.NotNil(t, outcome.Destination)
		})
	}
}

func TestRouter_ExpiryScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	expiresAt := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	withOverride := f.qr(t, &schema.QRCode{Code: "custom", IsActive: true})
	withDefault := f.qr(t, &schema.QRCode{Code: "plain", IsActive: true})

	custom := f.event(t, &schema.Event{
		Status:    domain.EventStatusLive,
		ExpiresAt: &expiresAt,
		Config:    datatypes.NewJSONType(domain.EventConfig{ExpiredURL: "https://example.com/thanks"}),
	})
	f.link(t, withOverride, custom, nil,
		&schema.Destination{ID: "c-default", Type: domain.DestinationTypeMicrosite, TargetURL: "https://x/c", IsActive: true, IsDefault: true},
	)

	plain, _, err := f.store.UpsertEventBySession(ctx, &schema.Event{
		OwnerID: "owner", Status: domain.EventStatusLive, Timezone: "UTC", ContentTTLDays: 30,
		ExpiresAt: &expiresAt, PaymentSessionID: ptr("cs_plain"),
	})
	require.NoError(t, err)
	f.link(t, withDefault, plain, nil,
		&schema.Destination{ID: "p-default", Type: domain.DestinationTypeMicrosite, TargetURL: "https://x/p", IsActive: true, IsDefault: true},
	)

	outcome, err := f.router.Resolve(ctx, "custom", expiresAt.Add(-time.Second))
	require.NoError(t, err)
	assert.Equal(t, "https://x/c", outcome.URL)
	assert.False(t, outcome.WasExpired)

	outcome, err = f.router.Resolve(ctx, "custom", expiresAt)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/thanks", outcome.URL)
	assert.True(t, outcome.WasExpired)
	assert.Nil(t, outcome.Destination)

	outcome, err = f.router.Resolve(ctx, "plain", expiresAt.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, expiredURL, outcome.URL)
	assert.True(t, outcome.WasExpired)
}

func TestRouter_ArchivedAndDraft(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	archivedQR := f.qr(t, &schema.QRCode{Code: "archived", IsActive: true})
	archived := f.event(t, &schema.Event{Status: domain.EventStatusArchived})
	f.link(t, archivedQR, archived, nil,
		&schema.Destination{ID: "a-default", Type: domain.DestinationTypeMicrosite, TargetURL: "https://x/a", IsActive: true, IsDefault: true},
	)

	draftQR := f.qr(t, &schema.QRCode{Code: "draft", IsActive: true})
	draft, _, err := f.store.UpsertEventBySession(ctx, &schema.Event{
		OwnerID: "owner", Status: domain.EventStatusDraft, Timezone: "UTC", ContentTTLDays: 30,
		PaymentSessionID: ptr("cs_draft"),
	})
	require.NoError(t, err)
	f.link(t, draftQR, draft, nil,
		&schema.Destination{ID: "d-default", Type: domain.DestinationTypeMicrosite, TargetURL: "https://x/d", IsActive: true, IsDefault: true},
	)

	outcome, err := f.router.Resolve(ctx, "archived", time.Now())
	require.NoError(t, err)
	assert.Equal(t, expiredURL, outcome.URL)
	assert.True(t, outcome.WasExpired)

	outcome, err = f.router.Resolve(ctx, "draft", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "https://x/d", outcome.URL)
	assert.False(t, outcome.WasExpired)
	assert.True(t, outcome.HintStale)
}

func TestRouter_FallbackChain(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	event := f.event(t, &schema.Event{
		Status: domain.EventStatusLive,
		Config: datatypes.NewJSONType(domain.EventConfig{FallbackURL: "https://example.com/event-fallback"}),
	})

	static := f.qr(t, &schema.QRCode{Code: "static", IsActive: true, DestinationURL: "https://example.com/static"})
	bare := f.qr(t, &schema.QRCode{Code: "bare", IsActive: true})

	for _, qr := range []*schema.QRCode{static, bare} {
		require.NoError(t, f.store.LinkQRCodeToEvent(ctx, qr.ID, event.ID, ptr("gone")))
	}
	_, err := f.store.ReplaceEventRules(ctx, store.ReplaceEventRulesInput{
		EventID: event.ID,
		Destinations: []*schema.Destination{
			{ID: "future", EventID: event.ID, QRID: bare.ID, Type: domain.DestinationTypePrueba, TargetURL: "https://x/f", IsActive: true, Priority: 1, StartAt: &later},
			{ID: "disabled", EventID: event.ID, QRID: static.ID, Type: domain.DestinationTypeMicrosite, TargetURL: "https://x/d", IsActive: false, IsDefault: true},
		},
	})
	require.NoError(t, err)

	outcome, err := f.router.Resolve(ctx, "static", now)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/static", outcome.URL)
	assert.Nil(t, outcome.Destination)

	outcome, err = f.router.Resolve(ctx, "bare", now)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/event-fallback", outcome.URL)
	assert.False(t, outcome.HintStale)
}

func TestRouter_StoreErrorsFailClosed(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	r := routing.NewRouter(routingConfig, registry.NewQRRegistry(mockStore, nil, 0), mockStore)

	qr := &schema.QRCode{ID: "qr-1", Code: "abc123", IsActive: true, EventID: ptr("event-1"), DestinationURL: "https://example.com/static"}
	event := &schema.Event{ID: "event-1", Status: domain.EventStatusLive}

	mockStore.EXPECT().GetQRCodeByCode(gomock.Any(), "abc123").Return(qr, nil).Times(3)
	gomock.InOrder(
		mockStore.EXPECT().GetEventByID(gomock.Any(), "event-1").Return(nil, assert.AnError),
		mockStore.EXPECT().GetEventByID(gomock.Any(), "event-1").Return(event, nil),
		mockStore.EXPECT().GetEventByID(gomock.Any(), "event-1").Return(nil, nil),
	)
	mockStore.EXPECT().GetDestinationsByQR(gomock.Any(), "event-1", "qr-1").Return(nil, assert.AnError)

	for range 3 {
		outcome, err := r.Resolve(ctx, "abc123", time.Now())
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/static", outcome.URL)
	}

	mockStore.EXPECT().GetQRCodeByCode(gomock.Any(), "broken").Return(nil, assert.AnError)
	_, err := r.Resolve(ctx, "broken", time.Now())
	assert.ErrorIs(t, err, assert.AnError)
}
