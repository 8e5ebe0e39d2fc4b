package store

import (
	"context"
	"time"

	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/store/schema"
)

// QRCodeUpdate holds the owner-editable fields of a QR, nil fields are left unchanged
type QRCodeUpdate struct {
	DestinationURL *string
	Title          *string
	Description    *string
	IsActive       *bool
}

// IsEmpty reports whether the update changes nothing
func (u QRCodeUpdate) IsEmpty() bool {
	return u.DestinationURL == nil && u.Title == nil && u.Description == nil && u.IsActive == nil
}

// DestinationUpdate holds the editable fields of a destination, nil fields are left unchanged
type DestinationUpdate struct {
	Type      *domain.DestinationType
	TargetURL *string
	Payload   []byte
	IsActive  *bool
	Priority  *int
	StartAt   *time.Time
	EndAt     *time.Time
	// ClearStartAt and ClearEndAt remove the corresponding window bound
	ClearStartAt bool
	ClearEndAt   bool
}

// ReplaceEventRulesInput is the package of rules that replaces all destinations and challenges of an event
type ReplaceEventRulesInput struct {
	EventID      string
	Challenges   []*schema.Challenge
	Destinations []*schema.Destination
}

// ReplaceEventRulesResult reports what a replacement removed
type ReplaceEventRulesResult struct {
	DeletedDestinations int64
	DeletedChallenges   int64
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// =============================================================================
	// QR codes
	// =============================================================================

	// GetQRCodeByCode retrieves a QR by its unique code in a single query, nil if unknown or deleted
	GetQRCodeByCode(ctx context.Context, code string) (*schema.QRCode, error)
	// GetQRCodesByGroupID retrieves all QRs tagged with a group
	GetQRCodesByGroupID(ctx context.Context, groupID string) ([]schema.QRCode, error)
	// GetQRCodesByCodes retrieves the QRs matching any of the codes
	GetQRCodesByCodes(ctx context.Context, codes []string) ([]schema.QRCode, error)
	// GetQRCodesByEventID retrieves all QRs linked to an event
	GetQRCodesByEventID(ctx context.Context, eventID string) ([]schema.QRCode, error)
	// CreateQRCodes inserts new QRs
	CreateQRCodes(ctx context.Context, qrs []*schema.QRCode) error
	// IncrementQRScanCount atomically increments the scan counter and sets last_active_at
	IncrementQRScanCount(ctx context.Context, qrID string, at time.Time) error
	// LinkQRCodeToEvent sets the event and active destination hint of a QR, safe to repeat
	LinkQRCodeToEvent(ctx context.Context, qrID string, eventID string, activeDestinationID *string) error
	// SetQRCodeActiveDestination replaces the active destination hint of a QR
	SetQRCodeActiveDestination(ctx context.Context, qrID string, destinationID *string) error
	// ClearActiveDestinationReferences unsets the hint on QRs pointing at a destination, returns their codes
	ClearActiveDestinationReferences(ctx context.Context, destinationID string) ([]string, error)
	// AssignQRCodesToGroup tags QRs that have no group yet, QRs already grouped are left untouched
	AssignQRCodesToGroup(ctx context.Context, qrIDs []string, groupID string) error
	// UpdateQRCode applies owner edits to a QR and returns the updated row
	UpdateQRCode(ctx context.Context, qrID string, update QRCodeUpdate) (*schema.QRCode, error)
	// DeleteQRCode soft deletes a QR
	DeleteQRCode(ctx context.Context, qrID string) error
	// CreateQRGroup inserts a new QR group
	CreateQRGroup(ctx context.Context, group *schema.QRGroup) error
	// DeleteQRGroupIfUnused removes a group no QR or event refers to
	DeleteQRGroupIfUnused(ctx context.Context, groupID string) error

	// =============================================================================
	// Events and membership
	// =============================================================================

	// GetEventByID retrieves an event, nil if unknown
	GetEventByID(ctx context.Context, eventID string) (*schema.Event, error)
	// UpsertEventBySession inserts the event unless one exists for its payment session,
	// returns the persisted event and whether it was created by this call
	UpsertEventBySession(ctx context.Context, event *schema.Event) (*schema.Event, bool, error)
	// SetEventQRGroup backfills the QR group of an event
	SetEventQRGroup(ctx context.Context, eventID string, groupID string) error
	// ExpireDueEvents persists the expired status of draft and live events whose expiry has passed
	ExpireDueEvents(ctx context.Context, now time.Time) (int64, error)
	// UpsertEventMember inserts or updates the role of a user on an event
	UpsertEventMember(ctx context.Context, member *schema.EventMember) error
	// GetEventMember retrieves the membership of a user, nil if the user is not a member
	GetEventMember(ctx context.Context, eventID string, userID string) (*schema.EventMember, error)

	// =============================================================================
	// Destinations
	// =============================================================================

	// GetDestinationByID retrieves a destination, nil if unknown
	GetDestinationByID(ctx context.Context, destinationID string) (*schema.Destination, error)
	// GetDestinationsByQR retrieves every destination of a QR within an event
	GetDestinationsByQR(ctx context.Context, eventID string, qrID string) ([]schema.Destination, error)
	// GetDestinationsByQRIDs retrieves every destination of the given QRs within an event
	GetDestinationsByQRIDs(ctx context.Context, eventID string, qrIDs []string) ([]schema.Destination, error)
	// CreateDefaultDestinations inserts default destinations, skipping QRs that already have one
	CreateDefaultDestinations(ctx context.Context, destinations []*schema.Destination) error
	// UpdateDestination applies an update and returns the updated row
	UpdateDestination(ctx context.Context, destinationID string, update DestinationUpdate) (*schema.Destination, error)
	// DeleteDestination deletes a destination
	DeleteDestination(ctx context.Context, destinationID string) error
	// ReplaceEventRules deletes all destinations and challenges of an event and inserts the new ones in one transaction
	ReplaceEventRules(ctx context.Context, input ReplaceEventRulesInput) (*ReplaceEventRulesResult, error)

	// =============================================================================
	// Modules, albums and challenges
	// =============================================================================

	// CreateModulesIfAbsent inserts modules, leaving existing (event, type) pairs untouched
	CreateModulesIfAbsent(ctx context.Context, modules []*schema.Module) error
	// UpsertModuleStatus sets the status of a module, creating it if missing
	UpsertModuleStatus(ctx context.Context, eventID string, moduleType domain.ModuleType, status domain.ModuleStatus) error
	// GetModulesByEventID retrieves the modules of an event
	GetModulesByEventID(ctx context.Context, eventID string) ([]schema.Module, error)
	// EnsureAlbum inserts an album unless one with the same slug exists for the event
	EnsureAlbum(ctx context.Context, album *schema.Album) error
	// GetChallengesByEventID retrieves the challenges of an event in order
	GetChallengesByEventID(ctx context.Context, eventID string) ([]schema.Challenge, error)

	// =============================================================================
	// Orders
	// =============================================================================

	// CreateOrderIfAbsent inserts the order unless one exists for its payment reference,
	// returns the persisted order and whether it was created by this call
	CreateOrderIfAbsent(ctx context.Context, order *schema.Order) (*schema.Order, bool, error)
	// GetOrderByID retrieves an order, nil if unknown
	GetOrderByID(ctx context.Context, orderID string) (*schema.Order, error)
	// SetOrderEventID links an order to its provisioned event
	SetOrderEventID(ctx context.Context, orderID string, eventID string) error
	// UpdateOrderFulfillment records the outcome of a print order submission
	UpdateOrderFulfillment(ctx context.Context, orderID string, status domain.FulfillmentStatus, ref string, errMsg string) error
	// GetOrdersForFulfillmentRetry retrieves failed orders and pending orders not updated since before
	GetOrdersForFulfillmentRetry(ctx context.Context, before time.Time, limit int) ([]schema.Order, error)

	// =============================================================================
	// Scans, audit and webhooks
	// =============================================================================

	// CreateScanRecord appends a scan record
	CreateScanRecord(ctx context.Context, record *schema.ScanRecord) error
	// CreateAuditLog appends an audit log entry
	CreateAuditLog(ctx context.Context, entry *schema.AuditLog) error
	// GetAuditLogsByEventID retrieves the audit history of an event, oldest first
	GetAuditLogsByEventID(ctx context.Context, eventID string) ([]schema.AuditLog, error)
	// RecordPaymentWebhookEvent records a webhook delivery, incrementing attempts on redelivery
	RecordPaymentWebhookEvent(ctx context.Context, event *schema.PaymentWebhookEvent) (*schema.PaymentWebhookEvent, error)
	// CompletePaymentWebhookEvent marks a delivery processed, or stores the error of a failed attempt
	CompletePaymentWebhookEvent(ctx context.Context, provider string, eventID string, processErr error) error
}
