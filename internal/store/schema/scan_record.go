package schema

import (
	"time"

	"gorm.io/gorm"

	"github.com/partyqr/qr-router/internal/domain"
)

// ScanRecord represents the scan_records table - append-only analytics of QR scans
type ScanRecord struct {
	ID            string             `gorm:"column:id;primaryKey;type:varchar(36)"`
	QRID          string             `gorm:"column:qr_id;not null;index;type:varchar(36)"`
	EventID       *string            `gorm:"column:event_id;index;type:varchar(36)"`
	DestinationID *string            `gorm:"column:destination_id;type:varchar(36)"`
	IP            string             `gorm:"column:ip;type:varchar(64)"`
	UserAgent     string             `gorm:"column:user_agent;type:text"`
	Referer       string             `gorm:"column:referer;type:text"`
	DeviceClass   domain.DeviceClass `gorm:"column:device_class;not null;type:varchar(16)"`
	// ResolvedURL is the URL the visitor was redirected to
	ResolvedURL string `gorm:"column:resolved_url;not null;type:text"`
	// WasExpired records whether the event was expired at scan time
	WasExpired bool      `gorm:"column:was_expired;not null;default:false"`
	ScannedAt  time.Time `gorm:"column:scanned_at;not null;index"`
}

// TableName specifies the table name for the ScanRecord model
func (ScanRecord) TableName() string {
	return "scan_records"
}

// BeforeCreate assigns the primary key
func (s *ScanRecord) BeforeCreate(*gorm.DB) error {
	ensureID(&s.ID)
	return nil
}
