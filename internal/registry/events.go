package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/resolver"
	"github.com/partyqr/qr-router/internal/store"
	"github.com/partyqr/qr-router/internal/store/schema"
)

// QRStatus is the routing view of one QR of an event
type QRStatus struct {
	QR *schema.QRCode
	// Resolved is the destination a scan would be sent to now, nil if none applies
	Resolved *schema.Destination
	// HintStale reports whether the active destination hint differs from Resolved
	HintStale bool
}

// EventStatus is the computed state of an event and its QRs
type EventStatus struct {
	Event   *schema.Event
	State   domain.EventState
	QRs     []QRStatus
	Modules []schema.Module
}

// EventRegistry defines the interface for event lifecycle operations
//
//go:generate mockgen -source=events.go -destination=../mocks/event_registry.go -package=mocks -mock_names=EventRegistry=MockEventRegistry
type EventRegistry interface {
	// Get returns an event, domain.ErrNotFound if unknown
	Get(ctx context.Context, eventID string) (*schema.Event, error)

	// Role returns the role of a user on an event, domain.ErrForbidden if the user is not a member
	Role(ctx context.Context, eventID string, userID string) (domain.MemberRole, error)

	// Status computes the state of an event and the destination each of its QRs resolves to at now
	Status(ctx context.Context, eventID string, now time.Time) (*EventStatus, error)

	// ExpireDue persists the expired status of events past their expiry
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}

type eventRegistry struct {
	store store.Store
}

// NewEventRegistry creates an event registry
func NewEventRegistry(st store.Store) EventRegistry {
	return &eventRegistry{store: st}
}

// Get returns an event
func (r *eventRegistry) Get(ctx context.Context, eventID string) (*schema.Event, error) {
	event, err := r.store.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
	}
	return event, nil
}

// Role returns the role of a user on an event
func (r *eventRegistry) Role(ctx context.Context, eventID string, userID string) (domain.MemberRole, error) {
	member, err := r.store.GetEventMember(ctx, eventID, userID)
	if err != nil {
		return "", err
	}
	if member == nil {
		return "", fmt.Errorf("user is not a member of event %s: %w", eventID, domain.ErrForbidden)
	}
	return member.Role, nil
}

// Status computes the state of an event and the destination each of its QRs resolves to
func (r *eventRegistry) Status(ctx context.Context, eventID string, now time.Time) (*EventStatus, error) {
	event, err := r.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}

	qrs, err := r.store.GetQRCodesByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	qrIDs := make([]string, len(qrs))
	for i := range qrs {
		qrIDs[i] = qrs[i].ID
	}
	destinations, err := r.store.GetDestinationsByQRIDs(ctx, eventID, qrIDs)
	if err != nil {
		return nil, err
	}
	byQR := make(map[string][]schema.Destination, len(qrs))
	for _, d := range destinations {
		byQR[d.QRID] = append(byQR[d.QRID], d)
	}

	modules, err := r.store.GetModulesByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	status := &EventStatus{
		Event:   event,
		State:   event.State(now),
		QRs:     make([]QRStatus, len(qrs)),
		Modules: modules,
	}
	for i := range qrs {
		qr := &qrs[i]
		resolved := resolver.Resolve(byQR[qr.ID], now)
		status.QRs[i] = QRStatus{
			QR:        qr,
			Resolved:  resolved,
			HintStale: !resolver.HintMatches(qr.ActiveDestinationID, resolved),
		}
	}

	return status, nil
}

// ExpireDue persists the expired status of events past their expiry
func (r *eventRegistry) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	return r.store.ExpireDueEvents(ctx, now)
}
