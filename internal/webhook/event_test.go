package webhook_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/webhook"
)

const checkoutPayload = `{
  "id": "evt_123",
  "type": "checkout.session.completed",
  "created": 1700000000,
  "data": {
    "object": {
      "id": "cs_test_1",
      "payment_status": "paid",
      "amount_total": 4500,
      "currency": "eur",
      "customer_details": {"email": "ana@example.com", "name": "Ana", "phone": "+34600000000"},
      "shipping_details": {
        "name": "Ana",
        "address": {"line1": "Calle 1", "city": "Madrid", "postal_code": "28001", "country": "ES"}
      },
      "metadata": {
        "user_id": "user-1",
        "product_type": "tshirt",
        "event_title": "Ana's party",
        "qr_codes": "aaa, bbb,aaa",
        "event_date": "2024-01-01",
        "timezone": "Europe/Madrid",
        "content_ttl_days": "9",
        "items": "[{\"variant_id\":\"4012\",\"quantity\":2,\"artwork_url\":\"https://cdn.example.com/a.png\"}]"
      }
    }
  }
}`

func TestParseEvent(t *testing.T) {
	t.Run("checkout session", func(t *testing.T) {
		event, err := webhook.ParseEvent([]byte(checkoutPayload))
		require.NoError(t, err)
		assert.Equal(t, "evt_123", event.ID)
		assert.Equal(t, webhook.EventTypeCheckoutSessionCompleted, event.Type)

		session, err := event.CheckoutSession()
		require.NoError(t, err)

		confirmation, err := session.PaymentConfirmation()
		require.NoError(t, err)

		assert.Equal(t, "cs_test_1", confirmation.PaymentReference)
		assert.Equal(t, "user-1", confirmation.UserID)
		assert.Equal(t, "tshirt", confirmation.ProductType)
		assert.Equal(t, "Ana's party", confirmation.EventTitle)
		assert.Equal(t, []string{"aaa", "bbb"}, confirmation.QRCodes)
		assert.Nil(t, confirmation.QRGroupID)
		require.NotNil(t, confirmation.EventDate)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *confirmation.EventDate)
		assert.Equal(t, "Europe/Madrid", confirmation.Timezone)
		assert.Equal(t, 9, confirmation.ContentTTLDays)
		assert.Equal(t, int64(4500), confirmation.AmountTotal)
		assert.Equal(t, "eur", confirmation.Currency)
		assert.Equal(t, "ana@example.com", confirmation.CustomerEmail)
		require.NotNil(t, confirmation.Recipient)
		assert.Equal(t, "Madrid", confirmation.Recipient.City)
		assert.Equal(t, "ES", confirmation.Recipient.CountryCode)
		assert.Equal(t, "+34600000000", confirmation.Recipient.Phone)
		assert.Equal(t, []domain.OrderItem{{VariantID: "4012", Quantity: 2, ArtworkURL: "https://cdn.example.com/a.png"}}, confirmation.Items)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := webhook.ParseEvent([]byte(`{`))
		var validationErr *domain.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := webhook.ParseEvent([]byte(`{"type":"checkout.session.completed"}`))
		assert.Error(t, err)
	})

	t.Run("other event types are not checkout sessions", func(t *testing.T) {
		event, err := webhook.ParseEvent([]byte(`{"id":"evt_1","type":"charge.refunded","data":{"object":{}}}`))
		require.NoError(t, err)
		_, err = event.CheckoutSession()
		assert.Error(t, err)
	})
}

func TestPaymentConfirmation(t *testing.T) {
	t.Run("json code list and group id", func(t *testing.T) {
		session := &webhook.CheckoutSession{
			ID: "cs_1",
			Metadata: map[string]string{
				"user_id":     "user-1",
				"qr_codes":    `["aaa","bbb"]`,
				"qr_group_id": "group-1",
				"event_date":  "2024-01-01T18:00:00+01:00",
			},
		}

		confirmation, err := session.PaymentConfirmation()
		require.NoError(t, err)
		assert.Equal(t, []string{"aaa", "bbb"}, confirmation.QRCodes)
		require.NotNil(t, confirmation.QRGroupID)
		assert.Equal(t, "group-1", *confirmation.QRGroupID)
		assert.Equal(t, time.Date(2024, 1, 1, 17, 0, 0, 0, time.UTC), *confirmation.EventDate)
		assert.Nil(t, confirmation.Recipient)
		assert.Zero(t, confirmation.ContentTTLDays)
	})

	t.Run("field level validation", func(t *testing.T) {
		session := &webhook.CheckoutSession{
			ID: "cs_1",
			Metadata: map[string]string{
				"event_date":       "next friday",
				"content_ttl_days": "-3",
				"items":            "not json",
			},
		}

		_, err := session.PaymentConfirmation()
		var validationErr *domain.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Contains(t, validationErr.Fields, "metadata.user_id")
		assert.Contains(t, validationErr.Fields, "metadata.event_date")
		assert.Contains(t, validationErr.Fields, "metadata.content_ttl_days")
		assert.Contains(t, validationErr.Fields, "metadata.items")
	})
}
