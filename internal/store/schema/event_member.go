package schema

import (
	"time"

	"github.com/partyqr/qr-router/internal/domain"
)

// EventMember represents the event_members table - a user's role on an event
type EventMember struct {
	EventID   string            `gorm:"column:event_id;primaryKey;type:varchar(36)"`
	UserID    string            `gorm:"column:user_id;primaryKey;type:varchar(64)"`
	Role      domain.MemberRole `gorm:"column:role;not null;type:varchar(20)"`
	CreatedAt time.Time         `gorm:"column:created_at;not null"`
	UpdatedAt time.Time         `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the EventMember model
func (EventMember) TableName() string {
	return "event_members"
}
