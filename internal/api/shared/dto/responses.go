package dto

import (
	"encoding/json"
	"time"

	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/provisioning"
	"github.com/partyqr/qr-router/internal/registry"
	"github.com/partyqr/qr-router/internal/store/schema"
)

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// QRResponse is the owner view of a QR
type QRResponse struct {
	Code                string     `json:"code"`
	EventID             *string    `json:"event_id,omitempty"`
	GroupID             *string    `json:"group_id,omitempty"`
	ActiveDestinationID *string    `json:"active_destination_id,omitempty"`
	DestinationURL      string     `json:"destination_url,omitempty"`
	Title               string     `json:"title,omitempty"`
	Description         string     `json:"description,omitempty"`
	IsActive            bool       `json:"is_active"`
	ScanCount           int64      `json:"scan_count"`
	LastActiveAt        *time.Time `json:"last_active_at,omitempty"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// NewQRResponse maps a QR row
func NewQRResponse(qr *schema.QRCode) *QRResponse {
	return &QRResponse{
		Code:                qr.Code,
		EventID:             qr.EventID,
		GroupID:             qr.GroupID,
		ActiveDestinationID: qr.ActiveDestinationID,
		DestinationURL:      qr.DestinationURL,
		Title:               qr.Title,
		Description:         qr.Description,
		IsActive:            qr.IsActive,
		ScanCount:           qr.ScanCount,
		LastActiveAt:        qr.LastActiveAt,
		UpdatedAt:           qr.UpdatedAt,
	}
}

// DestinationResponse is the public view of a destination
type DestinationResponse struct {
	ID        string                 `json:"id"`
	EventID   string                 `json:"event_id"`
	QRID      string                 `json:"qr_id"`
	Type      domain.DestinationType `json:"type"`
	TargetURL string                 `json:"target_url"`
	Payload   json.RawMessage        `json:"payload,omitempty"`
	IsActive  bool                   `json:"is_active"`
	Priority  int                    `json:"priority"`
	StartAt   *time.Time             `json:"start_at,omitempty"`
	EndAt     *time.Time             `json:"end_at,omitempty"`
	IsDefault bool                   `json:"is_default"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// NewDestinationResponse maps a destination row, nil for nil
func NewDestinationResponse(d *schema.Destination) *DestinationResponse {
	if d == nil {
		return nil
	}
	resp := &DestinationResponse{
		ID:        d.ID,
		EventID:   d.EventID,
		QRID:      d.QRID,
		Type:      d.Type,
		TargetURL: d.TargetURL,
		IsActive:  d.IsActive,
		Priority:  d.Priority,
		StartAt:   d.StartAt,
		EndAt:     d.EndAt,
		IsDefault: d.IsDefault,
		UpdatedAt: d.UpdatedAt,
	}
	if len(d.Payload) > 0 {
		resp.Payload = json.RawMessage(d.Payload)
	}
	return resp
}

// QRStatusResponse is the routing view of one QR
type QRStatusResponse struct {
	Code                string               `json:"code"`
	IsActive            bool                 `json:"is_active"`
	ScanCount           int64                `json:"scan_count"`
	ActiveDestinationID *string              `json:"active_destination_id,omitempty"`
	Resolved            *DestinationResponse `json:"resolved"`
	HintStale           bool                 `json:"hint_stale"`
}

// ModuleResponse is one module of an event
type ModuleResponse struct {
	Type   domain.ModuleType   `json:"type"`
	Status domain.ModuleStatus `json:"status"`
}

// EventStatusResponse is the body of GET /api/v1/events/:eventId/status
type EventStatusResponse struct {
	EventID   string             `json:"event_id"`
	Title     string             `json:"title"`
	Status    domain.EventStatus `json:"status"`
	State     domain.EventState  `json:"state"`
	EventDate *time.Time         `json:"event_date,omitempty"`
	ExpiresAt *time.Time         `json:"expires_at,omitempty"`
	Timezone  string             `json:"timezone"`
	QRs       []QRStatusResponse `json:"qrs"`
	Modules   []ModuleResponse   `json:"modules"`
}

// NewEventStatusResponse maps a computed event status
func NewEventStatusResponse(s *registry.EventStatus) *EventStatusResponse {
	resp := &EventStatusResponse{
		EventID:   s.Event.ID,
		Title:     s.Event.Title,
		Status:    s.Event.Status,
		State:     s.State,
		EventDate: s.Event.EventDate,
		ExpiresAt: s.Event.ExpiresAt,
		Timezone:  s.Event.Timezone,
		QRs:       make([]QRStatusResponse, 0, len(s.QRs)),
		Modules:   make([]ModuleResponse, 0, len(s.Modules)),
	}
	for _, q := range s.QRs {
		resp.QRs = append(resp.QRs, QRStatusResponse{
			Code:                q.QR.Code,
			IsActive:            q.QR.IsActive,
			ScanCount:           q.QR.ScanCount,
			ActiveDestinationID: q.QR.ActiveDestinationID,
			Resolved:            NewDestinationResponse(q.Resolved),
			HintStale:           q.HintStale,
		})
	}
	for _, m := range s.Modules {
		resp.Modules = append(resp.Modules, ModuleResponse{Type: m.Type, Status: m.Status})
	}
	return resp
}

// QuickStartResponse is the body of POST /api/v1/events/:eventId/quick-start
type QuickStartResponse struct {
	*provisioning.QuickStartResult
}

// WebhookResponse acknowledges a payment webhook delivery
type WebhookResponse struct {
	Received  bool   `json:"received"`
	Duplicate bool   `json:"duplicate,omitempty"`
	Ignored   bool   `json:"ignored,omitempty"`
	EventID   string `json:"event_id,omitempty"`
}
