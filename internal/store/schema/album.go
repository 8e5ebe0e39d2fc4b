package schema

import (
	"time"

	"gorm.io/gorm"
)

// Album represents the albums table - a photo album of an event
type Album struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	EventID   string    `gorm:"column:event_id;not null;uniqueIndex:idx_albums_event_slug;type:varchar(36)"`
	Slug      string    `gorm:"column:slug;not null;uniqueIndex:idx_albums_event_slug;type:varchar(64)"`
	Title     string    `gorm:"column:title;type:varchar(255)"`
	IsDefault bool      `gorm:"column:is_default;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for the Album model
func (Album) TableName() string {
	return "albums"
}

// BeforeCreate assigns the primary key
func (a *Album) BeforeCreate(*gorm.DB) error {
	ensureID(&a.ID)
	return nil
}
