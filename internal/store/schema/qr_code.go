package schema

import (
	"time"

	"gorm.io/gorm"
)

// QRCode represents the qr_codes table - a scannable code printed on a physical product
type QRCode struct {
	// ID is the internal identifier of the QR
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// Code is the short opaque string encoded in the printed QR (globally unique)
	Code string `gorm:"column:code;not null;uniqueIndex:idx_qr_codes_code;type:varchar(64)"`
	// OwnerID is the user who owns the QR
	OwnerID string `gorm:"column:owner_id;not null;index;type:varchar(64)"`
	// EventID is the event the QR is linked to, nil while unlinked
	EventID *string `gorm:"column:event_id;index;type:varchar(36)"`
	// GroupID is the fan-out group the QR belongs to
	GroupID *string `gorm:"column:group_id;index;type:varchar(36)"`
	// ActiveDestinationID is a cached pointer to the destination last resolved for this QR.
	// It is a hint only and may be stale relative to the destinations table
	ActiveDestinationID *string `gorm:"column:active_destination_id;type:varchar(36)"`
	// IsActive indicates whether scans of this QR are routed at all
	IsActive bool `gorm:"column:is_active;not null"`
	// ScanCount is the number of recorded scans, only ever incremented atomically
	ScanCount int64 `gorm:"column:scan_count;not null;default:0"`
	// LastActiveAt is the timestamp of the most recent scan
	LastActiveAt *time.Time `gorm:"column:last_active_at"`
	// DestinationURL is the static URL used when no destination rule resolves
	DestinationURL string `gorm:"column:destination_url;type:text"`
	// Title is the owner-facing label of the QR
	Title string `gorm:"column:title;type:varchar(255)"`
	// Description is the owner-facing description of the QR
	Description string `gorm:"column:description;type:text"`
	// CreatedAt is the timestamp when the QR was created
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	// UpdatedAt is the timestamp when the QR was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
	// DeletedAt marks a QR deleted by its owner
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

// TableName specifies the table name for the QRCode model
func (QRCode) TableName() string {
	return "qr_codes"
}

// BeforeCreate assigns the primary key
func (q *QRCode) BeforeCreate(*gorm.DB) error {
	ensureID(&q.ID)
	return nil
}
