package schema

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog represents the audit_logs table - append-only diagnostic history of event mutations
type AuditLog struct {
	// ID is a ULID so entries sort by creation time
	ID      string `gorm:"column:id;primaryKey;type:varchar(26)"`
	EventID string `gorm:"column:event_id;not null;index;type:varchar(36)"`
	// ActorID is the user who made the change, or "system"
	ActorID string `gorm:"column:actor_id;not null;type:varchar(64)"`
	// Action is the kind of change (e.g., "event_activated", "destination_updated")
	Action     string `gorm:"column:action;not null;type:varchar(64)"`
	EntityType string `gorm:"column:entity_type;type:varchar(32)"`
	EntityID   string `gorm:"column:entity_id;type:varchar(36)"`
	// Details is the canonical JSON description of the change
	Details   datatypes.JSON `gorm:"column:details"`
	CreatedAt time.Time      `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for the AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
