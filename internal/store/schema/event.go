package schema

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/partyqr/qr-router/internal/domain"
)

// Event represents the events table - one party instance created per successful payment
type Event struct {
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// OwnerID is the paying user
	OwnerID string `gorm:"column:owner_id;not null;index;type:varchar(64)"`
	// Title is the display name of the event
	Title string `gorm:"column:title;type:varchar(255)"`
	// Status is the persisted lifecycle status (draft, live, expired, archived)
	Status domain.EventStatus `gorm:"column:status;not null;default:draft;type:varchar(20)"`
	// EventDate is when the party takes place
	EventDate *time.Time `gorm:"column:event_date"`
	// ExpiresAt is EventDate plus ContentTTLDays, after which scans are routed to the expired URL
	ExpiresAt *time.Time `gorm:"column:expires_at;index"`
	// ContentTTLDays is how long content stays reachable after the event date
	ContentTTLDays int `gorm:"column:content_ttl_days;not null;default:30"`
	// Timezone is the IANA timezone of the event
	Timezone string `gorm:"column:timezone;not null;default:UTC;type:varchar(64)"`
	// QRGroupID is the group of QRs that belong to the event
	QRGroupID *string `gorm:"column:qr_group_id;index;type:varchar(36)"`
	// Config holds fallback and expired URL overrides (domain.EventConfig)
	Config datatypes.JSONType[domain.EventConfig] `gorm:"column:config"`
	// PaymentSessionID is the checkout session that created the event, the provisioning idempotency key
	PaymentSessionID *string   `gorm:"column:payment_session_id;uniqueIndex:idx_events_payment_session;type:varchar(255)"`
	CreatedAt        time.Time `gorm:"column:created_at;not null"`
	UpdatedAt        time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the Event model
func (Event) TableName() string {
	return "events"
}

// BeforeCreate assigns the primary key
func (e *Event) BeforeCreate(*gorm.DB) error {
	ensureID(&e.ID)
	return nil
}

// State returns the effective lifecycle state of the event at now
func (e *Event) State(now time.Time) domain.EventState {
	return domain.ComputeEventState(e.Status, e.ExpiresAt, now)
}
