package store

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/partyqr/qr-router/internal/store/schema"
)

// CreateScanRecord appends a scan record
func (s *pgStore) CreateScanRecord(ctx context.Context, record *schema.ScanRecord) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create scan record: %w", err)
	}
	return nil
}

// CreateAuditLog appends an audit log entry
func (s *pgStore) CreateAuditLog(ctx context.Context, entry *schema.AuditLog) error {
	if entry.ID == "" {
		entry.ID = ulid.Make().String()
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// GetAuditLogsByEventID retrieves the audit history of an event, oldest first
func (s *pgStore) GetAuditLogsByEventID(ctx context.Context, eventID string) ([]schema.AuditLog, error) {
	var entries []schema.AuditLog
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Order("id ASC").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get audit logs: %w", err)
	}
	return entries, nil
}

// RecordPaymentWebhookEvent records a webhook delivery, incrementing attempts on redelivery
func (s *pgStore) RecordPaymentWebhookEvent(ctx context.Context, event *schema.PaymentWebhookEvent) (*schema.PaymentWebhookEvent, error) {
	event.Attempts = 1
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "provider"}, {Name: "event_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"attempts":   gorm.Expr("payment_webhook_events.attempts + 1"),
				"updated_at": time.Now(),
			}),
		}).
		Create(event).Error
	if err != nil {
		return nil, fmt.Errorf("failed to record payment webhook event: %w", err)
	}

	return first[schema.PaymentWebhookEvent](ctx, s.db, "payment webhook event", "provider = ? AND event_id = ?", event.Provider, event.EventID)
}

// CompletePaymentWebhookEvent marks a delivery processed, or stores the error of a failed attempt
func (s *pgStore) CompletePaymentWebhookEvent(ctx context.Context, provider string, eventID string, processErr error) error {
	values := map[string]any{"processed_at": time.Now(), "last_error": ""}
	if processErr != nil {
		values = map[string]any{"last_error": processErr.Error()}
	}

	err := s.db.WithContext(ctx).
		Model(&schema.PaymentWebhookEvent{}).
		Where("provider = ? AND event_id = ?", provider, eventID).
		Updates(values).Error
	if err != nil {
		return fmt.Errorf("failed to complete payment webhook event: %w", err)
	}
	return nil
}
