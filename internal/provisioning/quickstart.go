package provisioning

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/logger"
	"github.com/partyqr/qr-router/internal/registry"
	"github.com/partyqr/qr-router/internal/store"
	"github.com/partyqr/qr-router/internal/store/schema"
)

// ChallengeSpec is one challenge of a quick start package
type ChallengeSpec struct {
	Title       string
	Description string
}

// QuickStartPackage is a complete set of challenges laid out over the event
type QuickStartPackage struct {
	// MicrositeURL overrides the default microsite target
	MicrositeURL  string
	Challenges    []ChallengeSpec
	TotalDuration time.Duration
	// StartAt defaults to the event date, else now
	StartAt *time.Time
}

// QuickStartResult reports what a quick apply replaced
type QuickStartResult struct {
	// Destructive is always true, every previous destination and challenge is gone
	Destructive         bool   `json:"destructive"`
	EventID             string `json:"event_id"`
	DeletedDestinations int64  `json:"deleted_destinations"`
	DeletedChallenges   int64  `json:"deleted_challenges"`
	CreatedDestinations int    `json:"created_destinations"`
	CreatedChallenges   int    `json:"created_challenges"`
	QRCount             int    `json:"qr_count"`
}

// ChallengeSlot is the window of one challenge
type ChallengeSlot struct {
	StartAt time.Time
	EndAt   time.Time
}

// ChallengeSlots splits total into n consecutive windows starting at start.
// The last window absorbs the remainder so it ends exactly at start+total.
func ChallengeSlots(start time.Time, total time.Duration, n int) []ChallengeSlot {
	if n <= 0 {
		return nil
	}
	slot := total / time.Duration(n)
	slots := make([]ChallengeSlot, n)
	for i := 0; i < n; i++ {
		slots[i] = ChallengeSlot{
			StartAt: start.Add(time.Duration(i) * slot),
			EndAt:   start.Add(time.Duration(i+1) * slot),
		}
	}
	slots[n-1].EndAt = start.Add(total)
	return slots
}

func (o *orchestrator) validatePackage(pkg QuickStartPackage) error {
	fields := map[string]string{}
	switch {
	case len(pkg.Challenges) == 0:
		fields["challenges"] = "at least one challenge is required"
	case len(pkg.Challenges) > o.cfg.MaxChallenges:
		fields["challenges"] = "at most " + strconv.Itoa(o.cfg.MaxChallenges) + " challenges are allowed"
	}
	for i, c := range pkg.Challenges {
		if strings.TrimSpace(c.Title) == "" {
			fields[fmt.Sprintf("challenges[%d].title", i)] = "is required"
		}
	}
	if pkg.TotalDuration <= 0 {
		fields["total_duration"] = "must be positive"
	} else if len(pkg.Challenges) > 0 && pkg.TotalDuration < time.Duration(len(pkg.Challenges)) {
		fields["total_duration"] = "is too short for the number of challenges"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// QuickApply replaces all destinations and challenges of an event with a quick start package
func (o *orchestrator) QuickApply(ctx context.Context, eventID string, actorID string, pkg QuickStartPackage) (*QuickStartResult, error) {
	if err := o.validatePackage(pkg); err != nil {
		return nil, err
	}

	event, err := o.store.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, domain.NewUpstreamError("load event", err)
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	if event.Status == domain.EventStatusArchived {
		return nil, domain.NewValidationError("event", "archived events cannot be changed")
	}

	qrs, err := o.store.GetQRCodesByEventID(ctx, eventID)
	if err != nil {
		return nil, domain.NewUpstreamError("load event qr codes", err)
	}

	start := o.clock.Now()
	if pkg.StartAt != nil {
		start = *pkg.StartAt
	} else if event.EventDate != nil {
		start = *event.EventDate
	}

	micrositeURL := pkg.MicrositeURL
	if micrositeURL == "" {
		micrositeURL = o.micrositeURL(eventID)
	}

	slots := ChallengeSlots(start, pkg.TotalDuration, len(pkg.Challenges))
	challenges := make([]*schema.Challenge, len(pkg.Challenges))
	for i, c := range pkg.Challenges {
		challenges[i] = &schema.Challenge{
			ID:          uuid.NewString(),
			EventID:     eventID,
			Position:    i,
			Title:       strings.TrimSpace(c.Title),
			Description: c.Description,
			StartAt:     slots[i].StartAt,
			EndAt:       slots[i].EndAt,
		}
	}

	destinations := make([]*schema.Destination, 0, len(qrs)*(len(challenges)+1))
	microsites := make(map[string]string, len(qrs))
	for _, qr := range qrs {
		microsite := &schema.Destination{
			ID:        uuid.NewString(),
			EventID:   eventID,
			QRID:      qr.ID,
			Type:      domain.DestinationTypeMicrosite,
			TargetURL: micrositeURL,
			IsActive:  true,
			Priority:  domain.DEFAULT_DESTINATION_PRIORITY,
			IsDefault: true,
		}
		microsites[qr.ID] = microsite.ID
		destinations = append(destinations, microsite)

		for i, c := range challenges {
			startAt, endAt := c.StartAt, c.EndAt
			destinations = append(destinations, &schema.Destination{
				ID:        uuid.NewString(),
				EventID:   eventID,
				QRID:      qr.ID,
				Type:      domain.DestinationTypePrueba,
				TargetURL: fmt.Sprintf("%s/e/%s/challenges/%s", o.cfg.SiteURL, eventID, c.ID),
				IsActive:  true,
				Priority:  i + 1,
				StartAt:   &startAt,
				EndAt:     &endAt,
			})
		}
	}

	replaced, err := o.store.ReplaceEventRules(ctx, store.ReplaceEventRulesInput{
		EventID:      eventID,
		Challenges:   challenges,
		Destinations: destinations,
	})
	if err != nil {
		return nil, domain.NewUpstreamError("replace event rules", err)
	}

	for i := range qrs {
		hint := microsites[qrs[i].ID]
		if err := o.qrs.LinkToEvent(ctx, &qrs[i], eventID, &hint); err != nil {
			return nil, domain.NewUpstreamError("link qr "+qrs[i].Code, err)
		}
	}

	if err := o.store.UpsertModuleStatus(ctx, eventID, domain.ModuleTypeChallengeBoard, domain.ModuleStatusActive); err != nil {
		return nil, domain.NewUpstreamError("activate challenge board", err)
	}

	result := &QuickStartResult{
		Destructive:         true,
		EventID:             eventID,
		DeletedDestinations: replaced.DeletedDestinations,
		DeletedChallenges:   replaced.DeletedChallenges,
		CreatedDestinations: len(destinations),
		CreatedChallenges:   len(challenges),
		QRCount:             len(qrs),
	}

	err = o.appendAudit(ctx, registry.AuditEntry{
		EventID:    eventID,
		ActorID:    actorID,
		Action:     domain.AUDIT_ACTION_QUICK_START_APPLIED,
		EntityType: "event",
		EntityID:   eventID,
		Details: map[string]any{
			"challenges":           len(challenges),
			"total_duration":       pkg.TotalDuration.String(),
			"start_at":             start.UTC().Format(time.RFC3339),
			"deleted_destinations": replaced.DeletedDestinations,
			"deleted_challenges":   replaced.DeletedChallenges,
			"created_destinations": len(destinations),
		},
	})
	if err != nil {
		// Rules are already replaced
		logger.ErrorCtx(ctx, fmt.Errorf("failed to append quick start audit: %w", err), logger.EventID(eventID))
	}

	logger.InfoCtx(ctx, "Quick start applied",
		logger.EventID(eventID),
		zap.String("actorID", actorID),
		zap.Int("qrCount", len(qrs)),
		zap.Int("challenges", len(challenges)),
		zap.Int64("deletedDestinations", replaced.DeletedDestinations))

	return result, nil
}
