package dto

import (
	"encoding/json"
	"time"

	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/provisioning"
	"github.com/partyqr/qr-router/internal/store"
)

// UpdateQRRequest is the body of POST /qr/:code
type UpdateQRRequest struct {
	DestinationURL *string `json:"destination_url" binding:"omitempty,url,max=2048"`
	Title          *string `json:"title" binding:"omitempty,max=255"`
	Description    *string `json:"description" binding:"omitempty,max=2000"`
	IsActive       *bool   `json:"is_active"`
}

// ToUpdate converts the request to a store update
func (r UpdateQRRequest) ToUpdate() store.QRCodeUpdate {
	return store.QRCodeUpdate{
		DestinationURL: r.DestinationURL,
		Title:          r.Title,
		Description:    r.Description,
		IsActive:       r.IsActive,
	}
}

// UpdateDestinationRequest is the body of PATCH /api/v1/events/:eventId/destinations/:destinationId
type UpdateDestinationRequest struct {
	TargetURL *string          `json:"target_url" binding:"omitempty,url,max=2048"`
	Type      *string          `json:"type" binding:"omitempty,oneof=microsite prueba external album challenge"`
	Payload   *json.RawMessage `json:"payload"`
	IsActive  *bool            `json:"is_active"`
	Priority  *int             `json:"priority" binding:"omitempty,min=0,max=10000"`
	StartAt   *time.Time       `json:"start_at"`
	EndAt     *time.Time       `json:"end_at"`
	// ClearWindow removes both bounds of the time window
	ClearWindow bool `json:"clear_window"`
}

// ToUpdate converts the request to a store update
func (r UpdateDestinationRequest) ToUpdate() (store.DestinationUpdate, error) {
	update := store.DestinationUpdate{
		TargetURL: r.TargetURL,
		IsActive:  r.IsActive,
		Priority:  r.Priority,
	}
	if r.Type != nil {
		t := domain.DestinationType(*r.Type)
		update.Type = &t
	}
	if r.Payload != nil {
		if !json.Valid(*r.Payload) {
			return update, domain.NewValidationError("payload", "must be valid JSON")
		}
		update.Payload = []byte(*r.Payload)
	}

	if r.ClearWindow {
		if r.StartAt != nil || r.EndAt != nil {
			return update, domain.NewValidationError("clear_window", "cannot be combined with start_at or end_at")
		}
		update.ClearStartAt = true
		update.ClearEndAt = true
	} else {
		update.StartAt = utc(r.StartAt)
		update.EndAt = utc(r.EndAt)
	}

	return update, nil
}

// IsEmpty reports whether the request changes nothing
func (r UpdateDestinationRequest) IsEmpty() bool {
	return r.TargetURL == nil && r.Type == nil && r.Payload == nil && r.IsActive == nil &&
		r.Priority == nil && r.StartAt == nil && r.EndAt == nil && !r.ClearWindow
}

// ChallengeRequest is one challenge of a quick start request
type ChallengeRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
}

// QuickStartRequest is the body of POST /api/v1/events/:eventId/quick-start
type QuickStartRequest struct {
	MicrositeURL string             `json:"microsite_url" binding:"omitempty,url,max=2048"`
	Challenges   []ChallengeRequest `json:"challenges" binding:"required,min=1,dive"`
	// TotalDuration is a duration string such as "3h" or "90m"
	TotalDuration string     `json:"total_duration"`
	StartAt       *time.Time `json:"start_at"`
}

// ToPackage converts the request to a quick start package, falling back to defaultDuration
func (r QuickStartRequest) ToPackage(defaultDuration time.Duration) (provisioning.QuickStartPackage, error) {
	total := defaultDuration
	if r.TotalDuration != "" {
		d, err := time.ParseDuration(r.TotalDuration)
		if err != nil {
			return provisioning.QuickStartPackage{}, domain.NewValidationError("total_duration", "must be a duration such as 3h or 90m")
		}
		total = d
	}

	challenges := make([]provisioning.ChallengeSpec, len(r.Challenges))
	for i, c := range r.Challenges {
		challenges[i] = provisioning.ChallengeSpec{Title: c.Title, Description: c.Description}
	}

	return provisioning.QuickStartPackage{
		MicrositeURL:  r.MicrositeURL,
		Challenges:    challenges,
		TotalDuration: total,
		StartAt:       utc(r.StartAt),
	}, nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
