package webhook

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/partyqr/qr-router/internal/domain"
)

// Event type constants
const (
	// EventTypeCheckoutSessionCompleted is the only event that provisions an event
	EventTypeCheckoutSessionCompleted = "checkout.session.completed"
)

// Event is the envelope of a payment provider webhook delivery
type Event struct {
	// ID is the provider's delivery id, stable across redeliveries
	ID string `json:"id"`
	// Type is the kind of event (e.g., "checkout.session.completed")
	Type string `json:"type"`
	// Created is the unix time the event was generated
	Created int64 `json:"created"`
	Data    struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// CheckoutSession is the data object of a checkout.session.completed event
type CheckoutSession struct {
	ID              string            `json:"id"`
	PaymentStatus   string            `json:"payment_status"`
	AmountTotal     int64             `json:"amount_total"`
	Currency        string            `json:"currency"`
	CustomerDetails *CustomerDetails  `json:"customer_details"`
	ShippingDetails *ShippingDetails  `json:"shipping_details"`
	Metadata        map[string]string `json:"metadata"`
}

// CustomerDetails is the buyer of a checkout session
type CustomerDetails struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ShippingDetails is the shipping address collected at checkout
type ShippingDetails struct {
	Name    string `json:"name"`
	Address struct {
		Line1      string `json:"line1"`
		Line2      string `json:"line2"`
		City       string `json:"city"`
		State      string `json:"state"`
		PostalCode string `json:"postal_code"`
		Country    string `json:"country"`
	} `json:"address"`
}

// Checkout session metadata keys
const (
	MetadataUserID         = "user_id"
	MetadataProductType    = "product_type"
	MetadataEventTitle     = "event_title"
	MetadataQRGroupID      = "qr_group_id"
	MetadataQRCodes        = "qr_codes"
	MetadataEventDate      = "event_date"
	MetadataTimezone       = "timezone"
	MetadataContentTTLDays = "content_ttl_days"
	MetadataItems          = "items"
)

// ParseEvent decodes the webhook envelope
func ParseEvent(payload []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, domain.NewValidationError("body", "invalid webhook payload")
	}
	if event.ID == "" || event.Type == "" {
		return nil, domain.NewValidationError("body", "webhook event id and type are required")
	}
	return &event, nil
}

// CheckoutSession decodes the data object of a checkout event
func (e *Event) CheckoutSession() (*CheckoutSession, error) {
	if e.Type != EventTypeCheckoutSessionCompleted {
		return nil, fmt.Errorf("event %s is not a checkout session event", e.Type)
	}

	var session CheckoutSession
	if err := json.Unmarshal(e.Data.Object, &session); err != nil {
		return nil, domain.NewValidationError("data.object", "invalid checkout session")
	}
	if session.ID == "" {
		return nil, domain.NewValidationError("data.object.id", "checkout session id is required")
	}
	return &session, nil
}

// PaymentConfirmation converts the session and its metadata into the provisioning input
func (s *CheckoutSession) PaymentConfirmation() (*domain.PaymentConfirmation, error) {
	fields := map[string]string{}
	md := s.Metadata

	confirmation := &domain.PaymentConfirmation{
		PaymentReference: s.ID,
		UserID:           strings.TrimSpace(md[MetadataUserID]),
		ProductType:      md[MetadataProductType],
		EventTitle:       md[MetadataEventTitle],
		QRCodes:          parseCodes(md[MetadataQRCodes]),
		Timezone:         md[MetadataTimezone],
		AmountTotal:      s.AmountTotal,
		Currency:         s.Currency,
	}

	if confirmation.UserID == "" {
		fields["metadata.user_id"] = "is required"
	}

	if groupID := strings.TrimSpace(md[MetadataQRGroupID]); groupID != "" {
		confirmation.QRGroupID = &groupID
	}

	if raw := md[MetadataEventDate]; raw != "" {
		eventDate, err := parseEventDate(raw)
		if err != nil {
			fields["metadata.event_date"] = "must be RFC 3339 or YYYY-MM-DD"
		} else {
			confirmation.EventDate = &eventDate
		}
	}

	if raw := md[MetadataContentTTLDays]; raw != "" {
		ttl, err := strconv.Atoi(raw)
		if err != nil || ttl <= 0 {
			fields["metadata.content_ttl_days"] = "must be a positive integer"
		} else {
			confirmation.ContentTTLDays = ttl
		}
	}

	if raw := md[MetadataItems]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &confirmation.Items); err != nil {
			fields["metadata.items"] = "must be a JSON list of items"
		}
	}

	if s.CustomerDetails != nil {
		confirmation.CustomerEmail = s.CustomerDetails.Email
	}

	if s.ShippingDetails != nil {
		addr := s.ShippingDetails.Address
		confirmation.Recipient = &domain.Address{
			Name:        s.ShippingDetails.Name,
			Email:       confirmation.CustomerEmail,
			Line1:       addr.Line1,
			Line2:       addr.Line2,
			City:        addr.City,
			State:       addr.State,
			PostalCode:  addr.PostalCode,
			CountryCode: addr.Country,
		}
		if s.CustomerDetails != nil {
			confirmation.Recipient.Phone = s.CustomerDetails.Phone
		}
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	return confirmation, nil
}

// parseCodes accepts a JSON list or a comma separated list of QR codes
func parseCodes(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var codes []string
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &codes); err == nil {
			return compact(codes)
		}
	}

	return compact(strings.Split(raw, ","))
}

func compact(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	result := make([]string, 0, len(codes))
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		result = append(result, code)
	}
	return result
}

func parseEventDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, raw)
}
