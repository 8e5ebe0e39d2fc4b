package domain

import (
	"slices"
	"time"
)

// EventStatus is the persisted status of an event
type EventStatus string

const (
	EventStatusDraft    EventStatus = "draft"
	EventStatusLive     EventStatus = "live"
	EventStatusExpired  EventStatus = "expired"
	EventStatusArchived EventStatus = "archived"
)

// DestinationType tags what kind of experience a destination leads to
type DestinationType string

const (
	DestinationTypeMicrosite DestinationType = "microsite"
	DestinationTypePrueba    DestinationType = "prueba"
	DestinationTypeExternal  DestinationType = "external"
	DestinationTypeAlbum     DestinationType = "album"
	DestinationTypeChallenge DestinationType = "challenge"
)

// IsValidDestinationType checks if a destination type is known
func IsValidDestinationType(t DestinationType) bool {
	return slices.Contains([]DestinationType{
		DestinationTypeMicrosite,
		DestinationTypePrueba,
		DestinationTypeExternal,
		DestinationTypeAlbum,
		DestinationTypeChallenge,
	}, t)
}

// ModuleType is a togglable feature area of an event
type ModuleType string

const (
	ModuleTypeAlbum          ModuleType = "album"
	ModuleTypeMessageWall    ModuleType = "message_wall"
	ModuleTypeMicrosite      ModuleType = "microsite"
	ModuleTypeChallengeBoard ModuleType = "challenge_board"
)

// DefaultModuleTypes are the modules every provisioned event starts with
var DefaultModuleTypes = []ModuleType{
	ModuleTypeAlbum,
	ModuleTypeMessageWall,
	ModuleTypeMicrosite,
	ModuleTypeChallengeBoard,
}

// ModuleStatus is the activation status of a module
type ModuleStatus string

const (
	ModuleStatusDraft  ModuleStatus = "draft"
	ModuleStatusActive ModuleStatus = "active"
)

// MemberRole is the role a user holds on an event
type MemberRole string

const (
	MemberRoleOwner  MemberRole = "owner"
	MemberRoleEditor MemberRole = "editor"
	MemberRoleViewer MemberRole = "viewer"
)

// CanEditDestinations reports whether the role may mutate destination rules
func (r MemberRole) CanEditDestinations() bool {
	return r == MemberRoleOwner || r == MemberRoleEditor
}

// FulfillmentStatus tracks the submission of an order to the print provider
type FulfillmentStatus string

const (
	FulfillmentStatusPending   FulfillmentStatus = "pending"
	FulfillmentStatusSubmitted FulfillmentStatus = "submitted"
	FulfillmentStatusFailed    FulfillmentStatus = "failed"
	// FulfillmentStatusNotRequired marks an order without printable items
	FulfillmentStatusNotRequired FulfillmentStatus = "not_required"
)

// DeviceClass is the coarse client category of a scan
type DeviceClass string

const (
	DeviceClassMobile  DeviceClass = "mobile"
	DeviceClassTablet  DeviceClass = "tablet"
	DeviceClassDesktop DeviceClass = "desktop"
	DeviceClassBot     DeviceClass = "bot"
	DeviceClassUnknown DeviceClass = "unknown"
)

// EventConfig holds per-event URL overrides stored on the event row
type EventConfig struct {
	FallbackURL string `json:"fallback_url,omitempty"`
	ExpiredURL  string `json:"expired_url,omitempty"`
}

// Address is a shipping recipient
type Address struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Line1       string `json:"address1"`
	Line2       string `json:"address2,omitempty"`
	City        string `json:"city"`
	State       string `json:"state_code,omitempty"`
	PostalCode  string `json:"zip"`
	CountryCode string `json:"country_code"`
}

// OrderItem is a single printed product of an order
type OrderItem struct {
	VariantID  string `json:"variant_id"`
	Quantity   int    `json:"quantity"`
	ArtworkURL string `json:"artwork_url"`
}

// PaymentConfirmation is a successful checkout as reported by the payment provider
type PaymentConfirmation struct {
	// PaymentReference is the checkout session id, the idempotency key of provisioning
	PaymentReference string
	UserID           string
	ProductType      string
	EventTitle       string
	QRGroupID        *string
	QRCodes          []string
	EventDate        *time.Time
	Timezone         string
	ContentTTLDays   int
	AmountTotal      int64
	Currency         string
	CustomerEmail    string
	Recipient        *Address
	Items            []OrderItem
}
