package schema

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/partyqr/qr-router/internal/domain"
)

// Destination represents the destinations table - a time-windowed, prioritized redirect rule of a QR within an event
type Destination struct {
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// EventID is the owning event
	EventID string `gorm:"column:event_id;not null;index;uniqueIndex:idx_destinations_event_qr_default,priority:1,where:is_default = true;type:varchar(36)"`
	// QRID is the QR the rule applies to
	QRID string `gorm:"column:qr_id;not null;index:idx_destinations_qr_id;uniqueIndex:idx_destinations_event_qr_default,priority:2;type:varchar(36)"`
	// Type tags the experience behind the target (microsite, prueba, external, album, challenge)
	Type domain.DestinationType `gorm:"column:type;not null;uniqueIndex:idx_destinations_event_qr_default,priority:3;type:varchar(32)"`
	// TargetURL is where the visitor is redirected
	TargetURL string `gorm:"column:target_url;not null;type:text"`
	// Payload is opaque JSON passed through to the target experience
	Payload datatypes.JSON `gorm:"column:payload"`
	// IsActive disables the rule without deleting it
	IsActive bool `gorm:"column:is_active;not null"`
	// Priority ranks eligible rules, the lowest value wins and 0 is reserved for the default rule
	Priority int `gorm:"column:priority;not null;default:0"`
	// StartAt is the inclusive lower bound of the window, nil means unbounded
	StartAt *time.Time `gorm:"column:start_at"`
	// EndAt is the exclusive upper bound of the window, nil means unbounded
	EndAt *time.Time `gorm:"column:end_at"`
	// IsDefault marks the fallback rule created by provisioning, at most one per event, QR and type
	IsDefault bool      `gorm:"column:is_default;not null;default:false;uniqueIndex:idx_destinations_event_qr_default,priority:4"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the Destination model
func (Destination) TableName() string {
	return "destinations"
}

// BeforeCreate assigns the primary key
func (d *Destination) BeforeCreate(*gorm.DB) error {
	ensureID(&d.ID)
	return nil
}

// HasWindow reports whether either bound of the time window is set
func (d *Destination) HasWindow() bool {
	return d.StartAt != nil || d.EndAt != nil
}
