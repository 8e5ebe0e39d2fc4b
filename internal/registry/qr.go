package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/partyqr/qr-router/internal/adapter"
	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/logger"
	"github.com/partyqr/qr-router/internal/store"
	"github.com/partyqr/qr-router/internal/store/schema"
)

const (
	qrCacheKeyPrefix = "qr:code:"

	// qrInvalidationHold is how long an invalidated code refuses read-through fills.
	// A lookup that read the row before the write must finish its fill within it.
	qrInvalidationHold = 5 * time.Second
)

// qrCacheTombstone marks an invalidated code, lookups treat it as a miss
var qrCacheTombstone = []byte("-")

// QRRegistry defines the interface for QR code operations
//
//go:generate mockgen -source=qr.go -destination=../mocks/qr_registry.go -package=mocks -mock_names=QRRegistry=MockQRRegistry
type QRRegistry interface {
	// Lookup returns the QR with the given code, domain.ErrNotFound if unknown or deleted
	Lookup(ctx context.Context, code string) (*schema.QRCode, error)

	// RecordScan atomically increments the scan counter of a QR
	RecordScan(ctx context.Context, qrID string, at time.Time) error

	// LinkToEvent links a QR to an event with an optional active destination hint
	LinkToEvent(ctx context.Context, qr *schema.QRCode, eventID string, activeDestinationID *string) error

	// SettleActiveDestination refreshes the active destination hint of a QR
	SettleActiveDestination(ctx context.Context, qr *schema.QRCode, destinationID *string) error

	// Invalidate evicts cached QRs by code and holds off read-through fills briefly
	Invalidate(ctx context.Context, codes ...string)

	// Update applies owner edits, domain.ErrForbidden if ownerID does not own the QR
	Update(ctx context.Context, code string, ownerID string, update store.QRCodeUpdate) (*schema.QRCode, error)

	// Delete soft deletes a QR, domain.ErrForbidden if ownerID does not own the QR
	Delete(ctx context.Context, code string, ownerID string) error
}

type qrRegistry struct {
	store store.Store
	cache adapter.RedisClient
	ttl   time.Duration
}

// NewQRRegistry creates a QR registry. A nil cache or zero ttl disables caching.
func NewQRRegistry(st store.Store, cache adapter.RedisClient, ttl time.Duration) QRRegistry {
	if ttl <= 0 {
		cache = nil
	}
	return &qrRegistry{store: st, cache: cache, ttl: ttl}
}

func qrCacheKey(code string) string {
	return qrCacheKeyPrefix + code
}

// Lookup returns the QR with the given code, reading through the cache.
// Fills only land on an absent key, so a row read before a concurrent write
// cannot overwrite the tombstone that write's invalidation left behind.
func (r *qrRegistry) Lookup(ctx context.Context, code string) (*schema.QRCode, error) {
	if qr := r.cached(ctx, code); qr != nil {
		return qr, nil
	}

	qr, err := r.store.GetQRCodeByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if qr == nil {
		return nil, fmt.Errorf("qr code %s: %w", code, domain.ErrNotFound)
	}

	r.fill(ctx, qr)
	return qr, nil
}

// cached returns the cached QR, nil on a miss or any cache failure
func (r *qrRegistry) cached(ctx context.Context, code string) *schema.QRCode {
	if r.cache == nil {
		return nil
	}

	data, err := r.cache.Get(ctx, qrCacheKey(code))
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read qr cache", logger.QRCode(code), zap.Error(err))
		return nil
	}
	if data == nil || bytes.Equal(data, qrCacheTombstone) {
		return nil
	}

	var qr schema.QRCode
	if err := json.Unmarshal(data, &qr); err != nil {
		logger.WarnCtx(ctx, "Dropping undecodable qr cache entry", logger.QRCode(code), zap.Error(err))
		if err := r.cache.Del(ctx, qrCacheKey(code)); err != nil {
			logger.WarnCtx(ctx, "Failed to drop qr cache entry", logger.QRCode(code), zap.Error(err))
		}
		return nil
	}
	return &qr
}

func (r *qrRegistry) fill(ctx context.Context, qr *schema.QRCode) {
	if r.cache == nil {
		return
	}

	data, err := json.Marshal(qr)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to encode qr for cache", logger.QRCode(qr.Code), zap.Error(err))
		return
	}
	stored, err := r.cache.SetNX(ctx, qrCacheKey(qr.Code), data, r.ttl)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to write qr cache", logger.QRCode(qr.Code), zap.Error(err))
		return
	}
	if !stored {
		logger.DebugCtx(ctx, "Skipped qr cache fill, code recently invalidated", logger.QRCode(qr.Code))
	}
}

// Invalidate replaces cached QRs with a short lived tombstone
func (r *qrRegistry) Invalidate(ctx context.Context, codes ...string) {
	if r.cache == nil {
		return
	}

	for _, code := range codes {
		if err := r.cache.Set(ctx, qrCacheKey(code), qrCacheTombstone, qrInvalidationHold); err != nil {
			logger.WarnCtx(ctx, "Failed to invalidate qr cache", logger.QRCode(code), zap.Error(err))
		}
	}
}

// RecordScan atomically increments the scan counter of a QR.
// The cached row is left alone, scan_count is not used for routing.
func (r *qrRegistry) RecordScan(ctx context.Context, qrID string, at time.Time) error {
	return r.store.IncrementQRScanCount(ctx, qrID, at)
}

// LinkToEvent links a QR to an event
func (r *qrRegistry) LinkToEvent(ctx context.Context, qr *schema.QRCode, eventID string, activeDestinationID *string) error {
	if err := r.store.LinkQRCodeToEvent(ctx, qr.ID, eventID, activeDestinationID); err != nil {
		return err
	}
	r.Invalidate(ctx, qr.Code)
	return nil
}

// SettleActiveDestination refreshes the active destination hint of a QR
func (r *qrRegistry) SettleActiveDestination(ctx context.Context, qr *schema.QRCode, destinationID *string) error {
	if err := r.store.SetQRCodeActiveDestination(ctx, qr.ID, destinationID); err != nil {
		return err
	}
	r.Invalidate(ctx, qr.Code)
	return nil
}

// Update applies owner edits to a QR
func (r *qrRegistry) Update(ctx context.Context, code string, ownerID string, update store.QRCodeUpdate) (*schema.QRCode, error) {
	qr, err := r.owned(ctx, code, ownerID)
	if err != nil {
		return nil, err
	}

	updated, err := r.store.UpdateQRCode(ctx, qr.ID, update)
	if err != nil {
		return nil, err
	}
	r.Invalidate(ctx, code)

	if updated == nil {
		return nil, fmt.Errorf("qr code %s: %w", code, domain.ErrNotFound)
	}
	return updated, nil
}

// Delete soft deletes a QR
func (r *qrRegistry) Delete(ctx context.Context, code string, ownerID string) error {
	qr, err := r.owned(ctx, code, ownerID)
	if err != nil {
		return err
	}

	if err := r.store.DeleteQRCode(ctx, qr.ID); err != nil {
		return err
	}
	r.Invalidate(ctx, code)
	return nil
}

// owned loads a QR from the store, bypassing the cache, and checks ownership
func (r *qrRegistry) owned(ctx context.Context, code string, ownerID string) (*schema.QRCode, error) {
	qr, err := r.store.GetQRCodeByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if qr == nil {
		return nil, fmt.Errorf("qr code %s: %w", code, domain.ErrNotFound)
	}
	if qr.OwnerID != ownerID {
		return nil, fmt.Errorf("qr code %s: %w", code, domain.ErrForbidden)
	}
	return qr, nil
}
