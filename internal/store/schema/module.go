package schema

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/partyqr/qr-router/internal/domain"
)

// Module represents the modules table - a per-event feature toggle
type Module struct {
	ID       string              `gorm:"column:id;primaryKey;type:varchar(36)"`
	EventID  string              `gorm:"column:event_id;not null;uniqueIndex:idx_modules_event_type;type:varchar(36)"`
	Type     domain.ModuleType   `gorm:"column:type;not null;uniqueIndex:idx_modules_event_type;type:varchar(32)"`
	Status   domain.ModuleStatus `gorm:"column:status;not null;default:draft;type:varchar(16)"`
	Settings datatypes.JSON      `gorm:"column:settings"`
	// StartAt and EndAt bound when the module is shown, nil means unbounded
	StartAt   *time.Time `gorm:"column:start_at"`
	EndAt     *time.Time `gorm:"column:end_at"`
	CreatedAt time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt time.Time  `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the Module model
func (Module) TableName() string {
	return "modules"
}

// BeforeCreate assigns the primary key
func (m *Module) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)
	return nil
}
