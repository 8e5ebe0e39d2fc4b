package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/store"
	"github.com/partyqr/qr-router/internal/store/schema"
)

// newStoreFunc creates an isolated store for a single test
type newStoreFunc func(t *testing.T) (store.Store, *gorm.DB)

// runStoreTests runs every store test against the given backend
func runStoreTests(t *testing.T, newStore newStoreFunc) {
	t.Run("QRCodes", func(t *testing.T) { testQRCodes(t, newStore) })
	t.Run("ScanCount", func(t *testing.T) { testScanCount(t, newStore) })
	t.Run("Events", func(t *testing.T) { testEvents(t, newStore) })
	t.Run("Destinations", func(t *testing.T) { testDestinations(t, newStore) })
	t.Run("ReplaceEventRules", func(t *testing.T) { testReplaceEventRules(t, newStore) })
	t.Run("Modules", func(t *testing.T) { testModules(t, newStore) })
	t.Run("Orders", func(t *testing.T) { testOrders(t, newStore) })
	t.Run("AuditAndWebhooks", func(t *testing.T) { testAuditAndWebhooks(t, newStore) })
}

func ptr[T any](v T) *T {
	return &v
}

func seedQR(t *testing.T, s store.Store, code string) *schema.QRCode {
	t.Helper()
	qr := &schema.QRCode{Code: code, OwnerID: "user-1", IsActive: true}
	require.NoError(t, s.CreateQRCodes(context.Background(), []*schema.QRCode{qr}))
	return qr
}

func seedEvent(t *testing.T, s store.Store, session string) *schema.Event {
	t.Helper()
	event, _, err := s.UpsertEventBySession(context.Background(), &schema.Event{
		OwnerID:          "user-1",
		Status:           domain.EventStatusLive,
		Timezone:         "UTC",
		ContentTTLDays:   30,
		PaymentSessionID: ptr(session),
	})
	require.NoError(t, err)
	return event
}

func testQRCodes(t *testing.T, newStore newStoreFunc) {
	ctx := context.Background()

	t.Run("lookup by code", func(t *testing.T) {
		s, _ := newStore(t)
		created := seedQR(t, s, "abc123")

		qr, err := s.GetQRCodeByCode(ctx, "abc123")
		require.NoError(t, err)
		require.NotNil(t, qr)
		assert.Equal(t, created.ID, qr.ID)
		assert.True(t, qr.IsActive)
		assert.Zero(t, qr.ScanCount)

		missing, err := s.GetQRCodeByCode(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("update applies only provided fields", func(t *testing.T) {
		s, _ := newStore(t)
		qr := seedQR(t, s, "upd")

		updated, err := s.UpdateQRCode(ctx, qr.ID, store.QRCodeUpdate{
			DestinationURL: ptr("https://example.com/static"),
			IsActive:       ptr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/static", updated.DestinationURL)
		assert.False(t, updated.IsActive)
		assert.Empty(t, updated.Title)

		_, err = s.UpdateQRCode(ctx, "missing", store.QRCodeUpdate{Title: ptr("x")})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("deleted codes are not found", func(t *testing.T) {
		s, _ := newStore(t)
		qr := seedQR(t, s, "gone")

		require.NoError(t, s.DeleteQRCode(ctx, qr.ID))
		found, err := s.GetQRCodeByCode(ctx, "gone")
		require.NoError(t, err)
		assert.Nil(t, found)

		assert.ErrorIs(t, s.DeleteQRCode(ctx, qr.ID), domain.ErrNotFound)
	})

	t.Run("link to event is idempotent", func(t *testing.T) {
		s, _ := newStore(t)
		qr := seedQR(t, s, "link")
		event := seedEvent(t, s, "sess-link")

		require.NoError(t, s.LinkQRCodeToEvent(ctx, qr.ID, event.ID, ptr("dest-1")))
		require.NoError(t, s.LinkQRCodeToEvent(ctx, qr.ID, event.ID, ptr("dest-1")))

		linked, err := s.GetQRCodesByEventID(ctx, event.ID)
		require.NoError(t, err)
		require.Len(t, linked, 1)
		assert.Equal(t, "dest-1", *linked[0].ActiveDestinationID)

		assert.ErrorIs(t, s.LinkQRCodeToEvent(ctx, "missing", event.ID, nil), domain.ErrNotFound)
	})

	t.Run("groups", func(t *testing.T) {
		s, _ := newStore(t)
		a := seedQR(t, s, "aaa")
		b := seedQR(t, s, "bbb")
		seedQR(t, s, "ccc")

		group := &schema.QRGroup{OwnerID: "user-1"}
		require.NoError(t, s.CreateQRGroup(ctx, group))
		require.NotEmpty(t, group.ID)
		require.NoError(t, s.AssignQRCodesToGroup(ctx, []string{a.ID, b.ID}, group.ID))

		grouped, err := s.GetQRCodesByGroupID(ctx, group.ID)
		require.NoError(t, err)
		require.Len(t, grouped, 2)
		assert.Equal(t, "aaa", grouped[0].Code)
		assert.Equal(t, "bbb", grouped[1].Code)

		byCode, err := s.GetQRCodesByCodes(ctx, []string{"ccc", "zzz"})
		require.NoError(t, err)
		require.Len(t, byCode, 1)
		assert.Nil(t, byCode[0].GroupID)
	})

	t.Run("grouping race keeps the first group", func(t *testing.T) {
		s, db := newStore(t)
		a := seedQR(t, s, "r1")

		first := &schema.QRGroup{OwnerID: "user-1"}
		second := &schema.QRGroup{OwnerID: "user-1"}
		require.NoError(t, s.CreateQRGroup(ctx, first))
		require.NoError(t, s.CreateQRGroup(ctx, second))
		require.NoError(t, s.AssignQRCodesToGroup(ctx, []string{a.ID}, first.ID))
		require.NoError(t, s.AssignQRCodesToGroup(ctx, []string{a.ID}, second.ID))

		qr, err := s.GetQRCodeByCode(ctx, "r1")
		require.NoError(t, err)
		require.NotNil(t, qr.GroupID)
		assert.Equal(t, first.ID, *qr.GroupID)

		require.NoError(t, s.DeleteQRGroupIfUnused(ctx, first.ID))
		require.NoError(t, s.DeleteQRGroupIfUnused(ctx, second.ID))

		var remaining int64
		require.NoError(t, db.Model(&schema.QRGroup{}).Where("id IN ?", []string{first.ID, second.ID}).Count(&remaining).Error)
		assert.Equal(t, int64(1), remaining)
		grouped, err := s.GetQRCodesByGroupID(ctx, first.ID)
		require.NoError(t, err)
		assert.Len(t, grouped, 1)
	})

	t.Run("groups referenced by an event are kept", func(t *testing.T) {
		s, db := newStore(t)
		event := seedEvent(t, s, "sess-group")
		group := &schema.QRGroup{OwnerID: "user-1"}
		require.NoError(t, s.CreateQRGroup(ctx, group))
		require.NoError(t, s.SetEventQRGroup(ctx, event.ID, group.ID))

		require.NoError(t, s.DeleteQRGroupIfUnused(ctx, group.ID))

		var remaining int64
		require.NoError(t, db.Model(&schema.QRGroup{}).Where("id = ?", group.ID).Count(&remaining).Error)
		assert.Equal(t, int64(1), remaining)
	})

	t.Run("clear active destination references", func(t *testing.T) {
		s, _ := newStore(t)
		event := seedEvent(t, s, "sess-clear")
		a := seedQR(t, s, "c1")
		b := seedQR(t, s, "c2")
		require.NoError(t, s.LinkQRCodeToEvent(ctx, a.ID, event.ID, ptr("dest-x")))
		require.NoError(t, s.LinkQRCodeToEvent(ctx, b.ID, event.ID, ptr("dest-y")))

		codes, err := s.ClearActiveDestinationReferences(ctx, "dest-x")
		require.NoError(t, err)
		assert.Equal(t, []string{"c1"}, codes)

		cleared, err := s.GetQRCodeByCode(ctx, "c1")
		require.NoError(t, err)
		assert.Nil(t, cleared.ActiveDestinationID)
		kept, err := s.GetQRCodeByCode(ctx, "c2")
		require.NoError(t, err)
		assert.Equal(t, "dest-y", *kept.ActiveDestinationID)
	})
}

func testScanCount(t *testing.T, newStore newStoreFunc) {
	ctx := context.Background()
	s, _ := newStore(t)
	qr := seedQR(t, s, "busy")

	const scans = 25
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	errs := make(chan error, scans)
	for range scans {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.IncrementQRScanCount(ctx, qr.ID, at)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	reloaded, err := s.GetQRCodeByCode(ctx, "busy")
	require.NoError(t, err)
	assert.Equal(t, int64(scans), reloaded.ScanCount)
	require.NotNil(t, reloaded.LastActiveAt)
	assert.True(t, at.Equal(*reloaded.LastActiveAt))

	assert.ErrorIs(t, s.IncrementQRScanCount(ctx, "missing", at), domain.ErrNotFound)
}

func testEvents(t *testing.T, newStore newStoreFunc) {
	ctx := context.Background()

	t.Run("upsert by session is idempotent", func(t *testing.T) {
		s, _ := newStore(t)
		first, created, err := s.UpsertEventBySession(ctx, &schema.Event{
			OwnerID:          "user-1",
			Title:            "Despedida",
			Status:           domain.EventStatusLive,
			Timezone:         "UTC",
			ContentTTLDays:   30,
			Config:           datatypes.NewJSONType(domain.EventConfig{FallbackURL: "https://example.com/fb"}),
			PaymentSessionID: ptr("cs_1"),
		})
		require.NoError(t, err)
		assert.True(t, created)

		second, created, err := s.UpsertEventBySession(ctx, &schema.Event{
			OwnerID:          "user-1",
			Title:            "Changed",
			Status:           domain.EventStatusLive,
			Timezone:         "UTC",
			ContentTTLDays:   30,
			PaymentSessionID: ptr("cs_1"),
		})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Despedida", second.Title)
		assert.Equal(t, "https://example.com/fb", second.Config.Data().FallbackURL)

		_, _, err = s.UpsertEventBySession(ctx, &schema.Event{OwnerID: "user-1"})
		assert.Error(t, err)
	})

	t.Run("qr group backfill", func(t *testing.T) {
		s, _ := newStore(t)
		event := seedEvent(t, s, "cs_group")
		require.NoError(t, s.SetEventQRGroup(ctx, event.ID, "group-1"))

		reloaded, err := s.GetEventByID(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, "group-1", *reloaded.QRGroupID)
		assert.ErrorIs(t, s.SetEventQRGroup(ctx, "missing", "group-1"), domain.ErrNotFound)
	})

	t.Run("expire due events", func(t *testing.T) {
		s, _ := newStore(t)
		now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

		open := seedEvent(t, s, "cs_open")
		_, _, err := s.UpsertEventBySession(ctx, &schema.Event{
			OwnerID: "user-1", Status: domain.EventStatusLive, Timezone: "UTC", ContentTTLDays: 30,
			ExpiresAt: ptr(now.Add(time.Hour)), PaymentSessionID: ptr("cs_future"),
		})
		require.NoError(t, err)
		archived, _, err := s.UpsertEventBySession(ctx, &schema.Event{
			OwnerID: "user-1", Status: domain.EventStatusArchived, Timezone: "UTC", ContentTTLDays: 30,
			ExpiresAt: ptr(now.Add(-time.Hour)), PaymentSessionID: ptr("cs_archived"),
		})
		require.NoError(t, err)

		_, _, err = s.UpsertEventBySession(ctx, &schema.Event{
			OwnerID: "user-1", Status: domain.EventStatusLive, Timezone: "UTC", ContentTTLDays: 30,
			ExpiresAt: ptr(now), PaymentSessionID: ptr("cs_exact"),
		})
		require.NoError(t, err)

		expired, err := s.ExpireDueEvents(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), expired)

		reloaded, err := s.GetEventByID(ctx, archived.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusArchived, reloaded.Status)

		reloaded, err = s.GetEventByID(ctx, open.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusLive, reloaded.Status)
	})

	t.Run("membership upsert", func(t *testing.T) {
		s, _ := newStore(t)
		event := seedEvent(t, s, "cs_member")

		require.NoError(t, s.UpsertEventMember(ctx, &schema.EventMember{EventID: event.ID, UserID: "user-1", Role: domain.MemberRoleEditor}))
		require.NoError(t, s.UpsertEventMember(ctx, &schema.EventMember{EventID: event.ID, UserID: "user-1", Role: domain.MemberRoleOwner}))

		member, err := s.GetEventMember(ctx, event.ID, "user-1")
		require.NoError(t, err)
		require.NotNil(t, member)
		assert.Equal(t, domain.MemberRoleOwner, member.Role)

		missing, err := s.GetEventMember(ctx, event.ID, "user-2")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func testDestinations(t *testing.T, newStore newStoreFunc) {
	ctx := context.Background()

	t.Run("default destinations are unique per qr", func(t *testing.T) {
		s, db := newStore(t)
		event := seedEvent(t, s, "cs_dest")
		qr := seedQR(t, s, "d1")

		newDefault := func() *schema.Destination {
			return &schema.Destination{
				EventID: event.ID, QRID: qr.ID, Type: domain.DestinationTypeMicrosite,
				TargetURL: "https://example.com/e", IsActive: true, IsDefault: true,
			}
		}
		require.NoError(t, s.CreateDefaultDestinations(ctx, []*schema.Destination{newDefault()}))
		require.NoError(t, s.CreateDefaultDestinations(ctx, []*schema.Destination{newDefault()}))

		var count int64
		require.NoError(t, db.Model(&schema.Destination{}).Where("qr_id = ?", qr.ID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("default destinations are scoped per event", func(t *testing.T) {
		s, _ := newStore(t)
		first := seedEvent(t, s, "cs_scope_1")
		second := seedEvent(t, s, "cs_scope_2")
		qr := seedQR(t, s, "d4")

		for _, event := range []*schema.Event{first, second} {
			require.NoError(t, s.CreateDefaultDestinations(ctx, []*schema.Destination{{
				EventID: event.ID, QRID: qr.ID, Type: domain.DestinationTypeMicrosite,
				TargetURL: "https://example.com/e/" + event.ID, IsActive: true, IsDefault: true,
			}}))
		}

		for _, event := range []*schema.Event{first, second} {
			destinations, err := s.GetDestinationsByQR(ctx, event.ID, qr.ID)
			require.NoError(t, err)
			require.Len(t, destinations, 1)
			assert.True(t, destinations[0].IsDefault)
			assert.Equal(t, "https://example.com/e/"+event.ID, destinations[0].TargetURL)
		}

		_, err := s.ReplaceEventRules(ctx, store.ReplaceEventRulesInput{
			EventID: second.ID,
			Destinations: []*schema.Destination{{
				EventID: second.ID, QRID: qr.ID, Type: domain.DestinationTypeMicrosite,
				TargetURL: "https://example.com/quick", IsActive: true, IsDefault: true,
			}},
		})
		require.NoError(t, err)
	})

	t.Run("non default destinations may repeat", func(t *testing.T) {
		s, _ := newStore(t)
		event := seedEvent(t, s, "cs_multi")
		qr := seedQR(t, s, "d2")

		_, err := s.ReplaceEventRules(ctx, store.ReplaceEventRulesInput{
			EventID: event.ID,
			Destinations: []*schema.Destination{
				{ID: "b", EventID: event.ID, QRID: qr.ID, Type: domain.DestinationTypePrueba, TargetURL: "https://example.com/2", IsActive: true, Priority: 2},
				{ID: "a", EventID: event.ID, QRID: qr.ID, Type: domain.DestinationTypePrueba, TargetURL: "https://example.com/1", IsActive: true, Priority: 1},
				{ID: "c", EventID: event.ID, QRID: qr.ID, Type: domain.DestinationTypePrueba, TargetURL: "https://example.com/3", IsActive: false, Priority: 1},
			},
		})
		require.NoError(t, err)

		destinations, err := s.GetDestinationsByQR(ctx, event.ID, qr.ID)
		require.NoError(t, err)
		require.Len(t, destinations, 3)
		assert.Equal(t, "a", destinations[0].ID)
		assert.Equal(t, "c", destinations[1].ID)
		assert.False(t, destinations[1].IsActive)
		assert.Equal(t, "b", destinations[2].ID)

		other, err := s.GetDestinationsByQR(ctx, "other-event", qr.ID)
		require.NoError(t, err)
		assert.Empty(t, other)
	})

	t.Run("update and delete", func(t *testing.T) {
		s, _ := newStore(t)
		event := seedEvent(t, s, "cs_upd")
		qr := seedQR(t, s, "d3")
		start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

		_, err := s.ReplaceEventRules(ctx, store.ReplaceEventRulesInput{
			EventID: event.ID,
			Destinations: []*schema.Destination{{
				ID: "dest", EventID: event.ID, QRID: qr.ID, Type: domain.DestinationTypeExternal,
				TargetURL: "https://example.com/old", IsActive: true, Priority: 3, StartAt: &start,
			}},
		})
		require.NoError(t, err)

		end := start.Add(2 * time.Hour)
		updated, err := s.UpdateDestination(ctx, "dest", store.DestinationUpdate{
			TargetURL:    ptr("https://example.com/new"),
			Priority:     ptr(1),
			Payload:      []byte(`{"k":"v"}`),
			EndAt:        &end,
			ClearStartAt: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/new", updated.TargetURL)
		assert.Equal(t, 1, updated.Priority)
		assert.Nil(t, updated.StartAt)
		require.NotNil(t, updated.EndAt)
		assert.True(t, end.Equal(*updated.EndAt))
		assert.JSONEq(t, `{"k":"v"}`, string(updated.Payload))

		_, err = s.UpdateDestination(ctx, "missing", store.DestinationUpdate{Priority: ptr(1)})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		require.NoError(t, s.DeleteDestination(ctx, "dest"))
		gone, err := s.GetDestinationByID(ctx, "dest")
		require.NoError(t, err)
		assert.Nil(t, gone)
		assert.ErrorIs(t, s.DeleteDestination(ctx, "dest"), domain.ErrNotFound)
	})
}

func testReplaceEventRules(t *testing.T, newStore newStoreFunc) {
	ctx := context.Background()
	s, _ := newStore(t)
	event := seedEvent(t, s, "cs_replace")
	qr := seedQR(t, s, "r1")
	start := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)

	rules := func(prefix string) store.ReplaceEventRulesInput {
		return store.ReplaceEventRulesInput{
			EventID: event.ID,
			Challenges: []*schema.Challenge{
				{ID: prefix + "-c0", EventID: event.ID, Position: 0, Title: "one", StartAt: start, EndAt: start.Add(time.Hour)},
			},
			Destinations: []*schema.Destination{
				{ID: prefix + "-m", EventID: event.ID, QRID: qr.ID, Type: domain.DestinationTypeMicrosite, TargetURL: "https://example.com/m", IsActive: true, IsDefault: true},
				{ID: prefix + "-p0", EventID: event.ID, QRID: qr.ID, Type: domain.DestinationTypePrueba, TargetURL: "https://example.com/p", IsActive: true, Priority: 1, StartAt: &start},
			},
		}
	}

	result, err := s.ReplaceEventRules(ctx, rules("one"))
	require.NoError(t, err)
	assert.Zero(t, result.DeletedDestinations)
	require.NoError(t, s.LinkQRCodeToEvent(ctx, qr.ID, event.ID, ptr("one-m")))

	result, err = s.ReplaceEventRules(ctx, rules("two"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.DeletedDestinations)
	assert.Equal(t, int64(1), result.DeletedChallenges)

	destinations, err := s.GetDestinationsByQR(ctx, event.ID, qr.ID)
	require.NoError(t, err)
	require.Len(t, destinations, 2)
	assert.Equal(t, "two-m", destinations[0].ID)

	challenges, err := s.GetChallengesByEventID(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, challenges, 1)
	assert.Equal(t, "two-c0", challenges[0].ID)

	reloaded, err := s.GetQRCodeByCode(ctx, "r1")
	require.NoError(t, err)
	assert.Nil(t, reloaded.ActiveDestinationID)
}

func testModules(t *testing.T, newStore newStoreFunc) {
	ctx := context.Background()
	s, _ := newStore(t)
	event := seedEvent(t, s, "cs_modules")

	modules := func(status domain.ModuleStatus) []*schema.Module {
		var out []*schema.Module
		for _, moduleType := range domain.DefaultModuleTypes {
			out = append(out, &schema.Module{EventID: event.ID, Type: moduleType, Status: status})
		}
		return out
	}
	require.NoError(t, s.CreateModulesIfAbsent(ctx, modules(domain.ModuleStatusDraft)))
	require.NoError(t, s.CreateModulesIfAbsent(ctx, modules(domain.ModuleStatusActive)))

	stored, err := s.GetModulesByEventID(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, stored, 4)
	for _, module := range stored {
		assert.Equal(t, domain.ModuleStatusDraft, module.Status)
	}

	require.NoError(t, s.UpsertModuleStatus(ctx, event.ID, domain.ModuleTypeChallengeBoard, domain.ModuleStatusActive))
	stored, err = s.GetModulesByEventID(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, stored, 4)
	for _, module := range stored {
		if module.Type == domain.ModuleTypeChallengeBoard {
			assert.Equal(t, domain.ModuleStatusActive, module.Status)
		}
	}

	require.NoError(t, s.EnsureAlbum(ctx, &schema.Album{EventID: event.ID, Slug: "default", Title: "Album", IsDefault: true}))
	require.NoError(t, s.EnsureAlbum(ctx, &schema.Album{EventID: event.ID, Slug: "default", Title: "Other", IsDefault: true}))
}

func testOrders(t *testing.T, newStore newStoreFunc) {
	ctx := context.Background()
	s, _ := newStore(t)

	newOrder := func() *schema.Order {
		return &schema.Order{
			PaymentReference:  "cs_order",
			UserID:            "user-1",
			AmountTotal:       4500,
			Currency:          "eur",
			Recipient:         datatypes.NewJSONType(&domain.Address{Name: "Ana", Line1: "Calle 1", City: "Madrid", PostalCode: "28001", CountryCode: "ES"}),
			Items:             datatypes.NewJSONSlice([]domain.OrderItem{{VariantID: "4012", Quantity: 2, ArtworkURL: "https://cdn.example.com/a.png"}}),
			FulfillmentStatus: domain.FulfillmentStatusPending,
		}
	}

	order, created, err := s.CreateOrderIfAbsent(ctx, newOrder())
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := s.CreateOrderIfAbsent(ctx, newOrder())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, order.ID, again.ID)
	assert.Equal(t, "Madrid", again.Recipient.Data().City)
	require.Len(t, again.Items, 1)
	assert.Equal(t, 2, again.Items[0].Quantity)

	require.NoError(t, s.SetOrderEventID(ctx, order.ID, "event-1"))

	retry, err := s.GetOrdersForFulfillmentRetry(ctx, time.Now().Add(time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, retry, 1)

	require.NoError(t, s.UpdateOrderFulfillment(ctx, order.ID, domain.FulfillmentStatusSubmitted, "pf-1", ""))
	retry, err = s.GetOrdersForFulfillmentRetry(ctx, time.Now().Add(time.Hour), 10)
	require.NoError(t, err)
	assert.Empty(t, retry)

	reloaded, err := s.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "pf-1", reloaded.FulfillmentRef)
	assert.Equal(t, "event-1", *reloaded.EventID)

	assert.ErrorIs(t, s.UpdateOrderFulfillment(ctx, "missing", domain.FulfillmentStatusFailed, "", "x"), domain.ErrNotFound)
}

func testAuditAndWebhooks(t *testing.T, newStore newStoreFunc) {
	ctx := context.Background()
	s, _ := newStore(t)

	require.NoError(t, s.CreateAuditLog(ctx, &schema.AuditLog{EventID: "event-1", ActorID: "system", Action: domain.AUDIT_ACTION_EVENT_ACTIVATED}))
	require.NoError(t, s.CreateAuditLog(ctx, &schema.AuditLog{EventID: "event-1", ActorID: "system", Action: domain.AUDIT_ACTION_EVENT_ACTIVATED}))
	entries, err := s.GetAuditLogsByEventID(ctx, "event-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Len(t, entries[0].ID, 26)

	require.NoError(t, s.CreateScanRecord(ctx, &schema.ScanRecord{QRID: "qr-1", DeviceClass: domain.DeviceClassMobile, ResolvedURL: "https://example.com", ScannedAt: time.Now()}))

	delivery := func() *schema.PaymentWebhookEvent {
		return &schema.PaymentWebhookEvent{Provider: "stripe", EventID: "evt_1", EventType: "checkout.session.completed", Payload: datatypes.JSON(`{}`)}
	}
	recorded, err := s.RecordPaymentWebhookEvent(ctx, delivery())
	require.NoError(t, err)
	assert.Equal(t, 1, recorded.Attempts)
	assert.Nil(t, recorded.ProcessedAt)

	require.NoError(t, s.CompletePaymentWebhookEvent(ctx, "stripe", "evt_1", errors.New("boom")))
	recorded, err = s.RecordPaymentWebhookEvent(ctx, delivery())
	require.NoError(t, err)
	assert.Equal(t, 2, recorded.Attempts)
	assert.Equal(t, "boom", recorded.LastError)

	require.NoError(t, s.CompletePaymentWebhookEvent(ctx, "stripe", "evt_1", nil))
	recorded, err = s.RecordPaymentWebhookEvent(ctx, delivery())
	require.NoError(t, err)
	assert.NotNil(t, recorded.ProcessedAt)
	assert.Empty(t, recorded.LastError)
}
