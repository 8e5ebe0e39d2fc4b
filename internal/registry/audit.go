package registry

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/partyqr/qr-router/internal/adapter"
	"github.com/partyqr/qr-router/internal/store/schema"
)

// AuditEntry describes one mutation of an event
type AuditEntry struct {
	EventID    string
	ActorID    string
	Action     string
	EntityType string
	EntityID   string
	Details    any
}

// NewAuditLog builds an audit log row with canonical JSON details
func NewAuditLog(canonical adapter.JCS, entry AuditEntry) (*schema.AuditLog, error) {
	log := &schema.AuditLog{
		EventID:    entry.EventID,
		ActorID:    entry.ActorID,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
	}

	if entry.Details != nil {
		details, err := canonical.Marshal(entry.Details)
		if err != nil {
			return nil, fmt.Errorf("failed to encode audit details: %w", err)
		}
		log.Details = datatypes.JSON(details)
	}

	return log, nil
}
