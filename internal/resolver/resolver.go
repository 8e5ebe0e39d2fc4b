// Package resolver picks the destination a scan is redirected to
package resolver

import (
	"time"

	"github.com/partyqr/qr-router/internal/store/schema"
)

// Resolve returns the destination that wins at now, or nil when none applies.
//
// Active destinations whose window contains now take precedence over windowless ones.
// Within each set the lowest priority wins and ties go to the lowest id, so the
// result does not depend on the order of the input.
func Resolve(destinations []schema.Destination, now time.Time) *schema.Destination {
	var windowed, windowless *schema.Destination

	for i := range destinations {
		d := &destinations[i]
		if !d.IsActive {
			continue
		}

		if d.HasWindow() {
			if InWindow(d, now) && better(d, windowed) {
				windowed = d
			}
			continue
		}

		if better(d, windowless) {
			windowless = d
		}
	}

	if windowed != nil {
		return windowed
	}
	return windowless
}

// InWindow reports whether now lies in [StartAt, EndAt), a nil bound is unbounded
func InWindow(d *schema.Destination, now time.Time) bool {
	if d.StartAt != nil && now.Before(*d.StartAt) {
		return false
	}
	if d.EndAt != nil && !now.Before(*d.EndAt) {
		return false
	}
	return true
}

func better(candidate, current *schema.Destination) bool {
	if current == nil {
		return true
	}
	if candidate.Priority != current.Priority {
		return candidate.Priority < current.Priority
	}
	return candidate.ID < current.ID
}

// HintMatches reports whether a cached active destination id points at the resolved destination
func HintMatches(hint *string, resolved *schema.Destination) bool {
	if resolved == nil {
		return hint == nil
	}
	return hint != nil && *hint == resolved.ID
}
