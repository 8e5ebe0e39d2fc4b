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

// CreateOrderIfAbsent inserts the order unless one exists for its payment reference
func (s *pgStore) CreateOrderIfAbsent(ctx context.Context, order *schema.Order) (*schema.Order, bool, error) {
	if order.PaymentReference == "" {
		return nil, false, errors.New("payment reference is required")
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "payment_reference"}},
			DoNothing: true,
		}).
		Create(order)
	if result.Error != nil {
		return nil, false, fmt.Errorf("failed to create order: %w", result.Error)
	}

	persisted, err := first[schema.Order](ctx, s.db, "order", "payment_reference = ?", order.PaymentReference)
	if err != nil {
		return nil, false, err
	}
	if persisted == nil {
		return nil, false, fmt.Errorf("order for payment %s vanished after insert", order.PaymentReference)
	}

	return persisted, result.RowsAffected > 0, nil
}

// GetOrderByID retrieves an order
func (s *pgStore) GetOrderByID(ctx context.Context, orderID string) (*schema.Order, error) {
	return first[schema.Order](ctx, s.db, "order", "id = ?", orderID)
}

// SetOrderEventID links an order to its provisioned event
func (s *pgStore) SetOrderEventID(ctx context.Context, orderID string, eventID string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Order{}).
		Where("id = ?", orderID).
		Update("event_id", eventID).Error
	if err != nil {
		return fmt.Errorf("failed to set order event: %w", err)
	}
	return nil
}

// UpdateOrderFulfillment records the outcome of a print order submission
func (s *pgStore) UpdateOrderFulfillment(ctx context.Context, orderID string, status domain.FulfillmentStatus, ref string, errMsg string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"fulfillment_status": status,
			"fulfillment_ref":    ref,
			"fulfillment_error":  errMsg,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update order fulfillment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update fulfillment of order %s: %w", orderID, domain.ErrNotFound)
	}
	return nil
}

// GetOrdersForFulfillmentRetry retrieves failed orders and pending orders not updated since before
func (s *pgStore) GetOrdersForFulfillmentRetry(ctx context.Context, before time.Time, limit int) ([]schema.Order, error) {
	var orders []schema.Order
	err := s.db.WithContext(ctx).
		Where("fulfillment_status IN ?", []domain.FulfillmentStatus{domain.FulfillmentStatusPending, domain.FulfillmentStatusFailed}).
		Where("updated_at < ?", before).
		Order("updated_at ASC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for fulfillment retry: %w", err)
	}
	return orders, nil
}
