package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm/clause"

	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/store/schema"
)

// GetEventByID retrieves an event
func (s *pgStore) GetEventByID(ctx context.Context, eventID string) (*schema.Event, error) {
	return first[schema.Event](ctx, s.db, "event", "id = ?", eventID)
}

// UpsertEventBySession inserts the event unless one exists for its payment session.
// An existing event is returned unchanged so redelivered payments never clobber owner edits.
func (s *pgStore) UpsertEventBySession(ctx context.Context, event *schema.Event) (*schema.Event, bool, error) {
	if event.PaymentSessionID == nil || *event.PaymentSessionID == "" {
		return nil, false, errors.New("payment session id is required")
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "payment_session_id"}},
			DoNothing: true,
		}).
		Create(event)
	if result.Error != nil {
		return nil, false, fmt.Errorf("failed to upsert event: %w", result.Error)
	}

	persisted, err := first[schema.Event](ctx, s.db, "event", "payment_session_id = ?", *event.PaymentSessionID)
	if err != nil {
		return nil, false, err
	}
	if persisted == nil {
		return nil, false, fmt.Errorf("event for session %s vanished after upsert", *event.PaymentSessionID)
	}

	return persisted, result.RowsAffected > 0, nil
}

// SetEventQRGroup backfills the QR group of an event
func (s *pgStore) SetEventQRGroup(ctx context.Context, eventID string, groupID string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Event{}).
		Where("id = ?", eventID).
		Update("qr_group_id", groupID)
	if result.Error != nil {
		return fmt.Errorf("failed to set event qr group: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to set qr group of event %s: %w", eventID, domain.ErrNotFound)
	}
	return nil
}

// ExpireDueEvents persists the expired status of events whose expiry has passed
func (s *pgStore) ExpireDueEvents(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Event{}).
		Where("status IN ?", []domain.EventStatus{domain.EventStatusDraft, domain.EventStatusLive}).
		Where("expires_at IS NOT NULL AND expires_at <= ?", now).
		Update("status", domain.EventStatusExpired)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to expire events: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// UpsertEventMember inserts or updates the role of a user on an event
func (s *pgStore) UpsertEventMember(ctx context.Context, member *schema.EventMember) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
		}).
		Create(member).Error
	if err != nil {
		return fmt.Errorf("failed to upsert event member: %w", err)
	}
	return nil
}

// GetEventMember retrieves the membership of a user on an event
func (s *pgStore) GetEventMember(ctx context.Context, eventID string, userID string) (*schema.EventMember, error) {
	return first[schema.EventMember](ctx, s.db, "event member", "event_id = ? AND user_id = ?", eventID, userID)
}
