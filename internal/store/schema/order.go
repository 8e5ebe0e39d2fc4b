package schema

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/partyqr/qr-router/internal/domain"
)

// Order represents the orders table - the financial record of a checkout, created once per payment reference
type Order struct {
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// PaymentReference is the checkout session id from the payment provider
	PaymentReference string `gorm:"column:payment_reference;not null;uniqueIndex:idx_orders_payment_reference;type:varchar(255)"`
	UserID           string `gorm:"column:user_id;not null;index;type:varchar(64)"`
	// EventID is the event provisioned for this order, set once the event exists
	EventID       *string `gorm:"column:event_id;type:varchar(36)"`
	AmountTotal   int64   `gorm:"column:amount_total;not null;default:0"`
	Currency      string  `gorm:"column:currency;type:varchar(8)"`
	CustomerEmail string  `gorm:"column:customer_email;type:varchar(255)"`
	// Recipient is the shipping address (domain.Address)
	Recipient datatypes.JSONType[*domain.Address] `gorm:"column:recipient"`
	// Items are the printed products (domain.OrderItem)
	Items datatypes.JSONSlice[domain.OrderItem] `gorm:"column:items"`
	// FulfillmentStatus tracks submission to the print provider
	FulfillmentStatus domain.FulfillmentStatus `gorm:"column:fulfillment_status;not null;default:pending;index;type:varchar(16)"`
	// FulfillmentRef is the print provider's order id
	FulfillmentRef string `gorm:"column:fulfillment_ref;type:varchar(255)"`
	// FulfillmentError is the last submission error
	FulfillmentError string    `gorm:"column:fulfillment_error;type:text"`
	CreatedAt        time.Time `gorm:"column:created_at;not null"`
	UpdatedAt        time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// BeforeCreate assigns the primary key
func (o *Order) BeforeCreate(*gorm.DB) error {
	ensureID(&o.ID)
	return nil
}
