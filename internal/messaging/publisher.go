package messaging

import (
	"context"
	"time"
)

const (
	// SubjectQRScanned carries one message per recorded scan
	SubjectQRScanned = "qr.scanned"
	// SubjectEventActivated carries one message per provisioned event
	SubjectEventActivated = "event.activated"
)

// ScanMessage describes a recorded scan
type ScanMessage struct {
	MessageID     string    `json:"message_id"`
	QRID          string    `json:"qr_id"`
	Code          string    `json:"code"`
	EventID       string    `json:"event_id,omitempty"`
	DestinationID string    `json:"destination_id,omitempty"`
	DeviceClass   string    `json:"device_class"`
	WasExpired    bool      `json:"was_expired"`
	ScannedAt     time.Time `json:"scanned_at"`
}

// EventActivatedMessage describes a provisioned event
type EventActivatedMessage struct {
	MessageID   string    `json:"message_id"`
	EventID     string    `json:"event_id"`
	OwnerID     string    `json:"owner_id"`
	OrderID     string    `json:"order_id"`
	QRCount     int       `json:"qr_count"`
	ActivatedAt time.Time `json:"activated_at"`
}

// Publisher defines the interface for publishing domain events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishScan publishes a recorded scan
	PublishScan(ctx context.Context, msg *ScanMessage) error
	// PublishEventActivated publishes a provisioned event
	PublishEventActivated(ctx context.Context, msg *EventActivatedMessage) error
	// Close closes the connection
	Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every message, used when no broker is configured
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishScan(context.Context, *ScanMessage) error { return nil }

func (noopPublisher) PublishEventActivated(context.Context, *EventActivatedMessage) error {
	return nil
}

func (noopPublisher) Close() {}
