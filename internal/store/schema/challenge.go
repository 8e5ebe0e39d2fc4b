package schema

import (
	"time"

	"gorm.io/gorm"
)

// Challenge represents the challenges table - one timed challenge of an event's challenge board
type Challenge struct {
	ID      string `gorm:"column:id;primaryKey;type:varchar(36)"`
	EventID string `gorm:"column:event_id;not null;index;type:varchar(36)"`
	// Position is the zero-based order of the challenge
	Position    int       `gorm:"column:position;not null"`
	Title       string    `gorm:"column:title;not null;type:varchar(255)"`
	Description string    `gorm:"column:description;type:text"`
	StartAt     time.Time `gorm:"column:start_at;not null"`
	EndAt       time.Time `gorm:"column:end_at;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for the Challenge model
func (Challenge) TableName() string {
	return "challenges"
}

// BeforeCreate assigns the primary key
func (c *Challenge) BeforeCreate(*gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
