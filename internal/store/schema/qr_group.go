package schema

import (
	"time"

	"gorm.io/gorm"
)

// QRGroup represents the qr_groups table - a set of QRs provisioned together for one event
type QRGroup struct {
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// OwnerID is the user the group was created for
	OwnerID string `gorm:"column:owner_id;not null;index;type:varchar(64)"`
	// Name is a human readable label of the group
	Name      string    `gorm:"column:name;type:varchar(255)"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for the QRGroup model
func (QRGroup) TableName() string {
	return "qr_groups"
}

// BeforeCreate assigns the primary key
func (g *QRGroup) BeforeCreate(*gorm.DB) error {
	ensureID(&g.ID)
	return nil
}
