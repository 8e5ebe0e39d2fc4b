package registry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/partyqr/qr-router/internal/adapter"
	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/logger"
	"github.com/partyqr/qr-router/internal/store"
	"github.com/partyqr/qr-router/internal/store/schema"
)

// DestinationRegistry defines the interface for editing the destinations of an event
//
//go:generate mockgen -source=destinations.go -destination=../mocks/destination_registry.go -package=mocks -mock_names=DestinationRegistry=MockDestinationRegistry
type DestinationRegistry interface {
	// Update applies an edit to a destination of the event and records it in the audit log
	Update(ctx context.Context, eventID string, destinationID string, actorID string, update store.DestinationUpdate) (*schema.Destination, error)

	// Delete removes a destination of the event, clears QR hints pointing at it and records it in the audit log
	Delete(ctx context.Context, eventID string, destinationID string, actorID string) error
}

type destinationRegistry struct {
	store     store.Store
	qrs       QRRegistry
	canonical adapter.JCS
}

// NewDestinationRegistry creates a destination registry
func NewDestinationRegistry(st store.Store, qrs QRRegistry, canonical adapter.JCS) DestinationRegistry {
	return &destinationRegistry{store: st, qrs: qrs, canonical: canonical}
}

// Update applies an edit to a destination of the event
func (r *destinationRegistry) Update(ctx context.Context, eventID string, destinationID string, actorID string, update store.DestinationUpdate) (*schema.Destination, error) {
	current, err := r.load(ctx, eventID, destinationID)
	if err != nil {
		return nil, err
	}

	if err := validateUpdate(current, update); err != nil {
		return nil, err
	}

	updated, err := r.store.UpdateDestination(ctx, destinationID, update)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("destination %s: %w", destinationID, domain.ErrNotFound)
	}

	r.audit(ctx, AuditEntry{
		EventID:    eventID,
		ActorID:    actorID,
		Action:     domain.AUDIT_ACTION_DESTINATION_UPDATED,
		EntityType: "destination",
		EntityID:   destinationID,
		Details:    map[string]any{"qr_id": updated.QRID, "changes": describeUpdate(update)},
	})

	return updated, nil
}

// Delete removes a destination of the event
func (r *destinationRegistry) Delete(ctx context.Context, eventID string, destinationID string, actorID string) error {
	current, err := r.load(ctx, eventID, destinationID)
	if err != nil {
		return err
	}

	codes, err := r.store.ClearActiveDestinationReferences(ctx, destinationID)
	if err != nil {
		return err
	}
	r.qrs.Invalidate(ctx, codes...)

	if err := r.store.DeleteDestination(ctx, destinationID); err != nil {
		return err
	}

	r.audit(ctx, AuditEntry{
		EventID:    eventID,
		ActorID:    actorID,
		Action:     domain.AUDIT_ACTION_DESTINATION_DELETED,
		EntityType: "destination",
		EntityID:   destinationID,
		Details: map[string]any{
			"qr_id":         current.QRID,
			"type":          current.Type,
			"target_url":    current.TargetURL,
			"cleared_hints": len(codes),
		},
	})

	return nil
}

// load returns the destination when it belongs to the event
func (r *destinationRegistry) load(ctx context.Context, eventID string, destinationID string) (*schema.Destination, error) {
	destination, err := r.store.GetDestinationByID(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	if destination == nil || destination.EventID != eventID {
		return nil, fmt.Errorf("destination %s: %w", destinationID, domain.ErrNotFound)
	}
	return destination, nil
}

// audit appends an audit entry, a failure is logged since the mutation already happened
func (r *destinationRegistry) audit(ctx context.Context, entry AuditEntry) {
	log, err := NewAuditLog(r.canonical, entry)
	if err == nil {
		err = r.store.CreateAuditLog(ctx, log)
	}
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to append audit log: %w", err),
			logger.EventID(entry.EventID),
			zap.String("action", entry.Action))
	}
}

// validateUpdate checks the fields that depend on the stored row
func validateUpdate(current *schema.Destination, update store.DestinationUpdate) error {
	if update.Type != nil && !domain.IsValidDestinationType(*update.Type) {
		return domain.NewValidationError("type", "unsupported destination type")
	}
	if update.Priority != nil && *update.Priority < 0 {
		return domain.NewValidationError("priority", "must not be negative")
	}

	start := current.StartAt
	if update.ClearStartAt {
		start = nil
	} else if update.StartAt != nil {
		start = update.StartAt
	}
	end := current.EndAt
	if update.ClearEndAt {
		end = nil
	} else if update.EndAt != nil {
		end = update.EndAt
	}
	if start != nil && end != nil && !start.Before(*end) {
		return domain.NewValidationError("end_at", "must be after start_at")
	}

	return nil
}

func describeUpdate(update store.DestinationUpdate) map[string]any {
	changes := map[string]any{}
	if update.Type != nil {
		changes["type"] = *update.Type
	}
	if update.TargetURL != nil {
		changes["target_url"] = *update.TargetURL
	}
	if update.Payload != nil {
		changes["payload"] = true
	}
	if update.IsActive != nil {
		changes["is_active"] = *update.IsActive
	}
	if update.Priority != nil {
		changes["priority"] = *update.Priority
	}
	if update.ClearStartAt {
		changes["start_at"] = nil
	} else if update.StartAt != nil {
		changes["start_at"] = update.StartAt.UTC().Format(time.RFC3339)
	}
	if update.ClearEndAt {
		changes["end_at"] = nil
	} else if update.EndAt != nil {
		changes["end_at"] = update.EndAt.UTC().Format(time.RFC3339)
	}
	return changes
}
