package domain

import "time"

// EventState is the effective lifecycle state of an event at a given instant
type EventState string

const (
	EventStateDraft    EventState = "draft"
	EventStateLive     EventState = "live"
	EventStateExpired  EventState = "expired"
	EventStateArchived EventState = "archived"
)

// ComputeEventState is the single definition of an event's lifecycle state.
// A persisted terminal status wins; otherwise an event whose expiresAt has been
// reached is expired even if the sweeper has not persisted that yet.
func ComputeEventState(status EventStatus, expiresAt *time.Time, now time.Time) EventState {
	switch status {
	case EventStatusArchived:
		return EventStateArchived
	case EventStatusExpired:
		return EventStateExpired
	}

	if expiresAt != nil && !now.Before(*expiresAt) {
		return EventStateExpired
	}

	if status == EventStatusDraft {
		return EventStateDraft
	}

	return EventStateLive
}

// Routable reports whether scans of the event's QRs follow destination rules
func (s EventState) Routable() bool {
	return s == EventStateDraft || s == EventStateLive
}

// ExpiresAt derives the content expiry of an event from its date
// Returns nil when the event has no date yet
func ExpiresAt(eventDate *time.Time, contentTTLDays int) *time.Time {
	if eventDate == nil {
		return nil
	}
	expiresAt := eventDate.Add(time.Duration(contentTTLDays) * 24 * time.Hour)
	return &expiresAt
}
