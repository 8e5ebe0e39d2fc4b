package schema

import (
	"time"

	"gorm.io/datatypes"
)

// PaymentWebhookEvent represents the payment_webhook_events table - inbound payment webhook deliveries
type PaymentWebhookEvent struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Provider is the payment provider name (e.g., "stripe")
	Provider string `gorm:"column:provider;not null;uniqueIndex:idx_payment_webhook_events_provider_event;type:varchar(32)"`
	// EventID is the provider's delivery id
	EventID   string         `gorm:"column:event_id;not null;uniqueIndex:idx_payment_webhook_events_provider_event;type:varchar(255)"`
	EventType string         `gorm:"column:event_type;not null;type:varchar(64)"`
	Payload   datatypes.JSON `gorm:"column:payload"`
	// Attempts counts deliveries of the same event
	Attempts int `gorm:"column:attempts;not null;default:0"`
	// ProcessedAt is set once the delivery was handled without error
	ProcessedAt *time.Time `gorm:"column:processed_at"`
	// LastError is the error of the most recent failed attempt
	LastError string    `gorm:"column:last_error;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the PaymentWebhookEvent model
func (PaymentWebhookEvent) TableName() string {
	return "payment_webhook_events"
}
