package printful

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/partyqr/qr-router/internal/adapter"
	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/logger"
)

var (
	// ErrOrderRejected is returned when the provider refuses an order, retrying the same request cannot succeed
	ErrOrderRejected = errors.New("print order rejected")
)

// Config holds the print provider API settings
type Config struct {
	BaseURL string
	APIKey  string
	StoreID string
}

// PrintOrder is an order to be printed and shipped
type PrintOrder struct {
	// ExternalID is our order id, the provider deduplicates on it
	ExternalID string
	Recipient  domain.Address
	Items      []domain.OrderItem
}

// Order is the provider's view of a submitted order
type Order struct {
	ID         int64  `json:"id"`
	ExternalID string `json:"external_id"`
	Status     string `json:"status"`
}

// Ref returns the provider order id as stored on our order
func (o *Order) Ref() string {
	return strconv.FormatInt(o.ID, 10)
}

type orderRequest struct {
	ExternalID string         `json:"external_id"`
	Recipient  domain.Address `json:"recipient"`
	Items      []orderItem    `json:"items"`
}

type orderItem struct {
	VariantID         int64  `json:"variant_id,omitempty"`
	ExternalVariantID string `json:"external_variant_id,omitempty"`
	Quantity          int    `json:"quantity"`
	Files             []file `json:"files,omitempty"`
}

type file struct {
	URL string `json:"url"`
}

type orderResponse struct {
	Code   int    `json:"code"`
	Result *Order `json:"result"`
	Error  *struct {
		Reason  string `json:"reason"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client defines the interface for print-on-demand order operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/printful_client.go -package=mocks -mock_names=Client=MockPrintClient
type Client interface {
	// GetOrder retrieves an order by our external id, nil if the provider has none
	GetOrder(ctx context.Context, externalID string) (*Order, error)

	// SubmitOrder creates and confirms an order, returning the existing one if it was already submitted
	SubmitOrder(ctx context.Context, order PrintOrder) (*Order, error)
}

// PrintfulClient implements Client against the Printful orders API
type PrintfulClient struct {
	httpClient adapter.HTTPClient
	cfg        Config
}

// NewClient creates a new print provider client
func NewClient(httpClient adapter.HTTPClient, cfg Config) Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &PrintfulClient{
		httpClient: httpClient,
		cfg:        cfg,
	}
}

func (c *PrintfulClient) headers() map[string]string {
	headers := map[string]string{
		"Authorization": "Bearer " + c.cfg.APIKey,
	}
	if c.cfg.StoreID != "" {
		headers["X-PF-Store-Id"] = c.cfg.StoreID
	}
	return headers
}

// GetOrder retrieves an order by our external id
func (c *PrintfulClient) GetOrder(ctx context.Context, externalID string) (*Order, error) {
	endpoint := fmt.Sprintf("%s/orders/@%s", c.cfg.BaseURL, url.PathEscape(externalID))

	var response orderResponse
	if err := c.httpClient.GetJSON(ctx, endpoint, c.headers(), &response); err != nil {
		var statusErr *adapter.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get print order: %w", err)
	}

	return response.Result, nil
}

// SubmitOrder creates and confirms an order
func (c *PrintfulClient) SubmitOrder(ctx context.Context, order PrintOrder) (*Order, error) {
	if len(order.Items) == 0 {
		return nil, fmt.Errorf("%w: order %s has no items", ErrOrderRejected, order.ExternalID)
	}

	existing, err := c.GetOrder(ctx, order.ExternalID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.InfoCtx(ctx, "Print order already submitted",
			zap.String("externalID", order.ExternalID),
			zap.Int64("providerOrderID", existing.ID))
		return existing, nil
	}

	request := orderRequest{
		ExternalID: order.ExternalID,
		Recipient:  order.Recipient,
		Items:      make([]orderItem, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		oi := orderItem{Quantity: item.Quantity}
		if id, err := strconv.ParseInt(item.VariantID, 10, 64); err == nil {
			oi.VariantID = id
		} else {
			oi.ExternalVariantID = item.VariantID
		}
		if item.ArtworkURL != "" {
			oi.Files = []file{{URL: item.ArtworkURL}}
		}
		request.Items = append(request.Items, oi)
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal print order: %w", err)
	}

	respBody, err := c.httpClient.PostJSON(ctx, c.cfg.BaseURL+"/orders?confirm=true", c.headers(), body)
	if err != nil {
		var statusErr *adapter.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode < http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: %s", ErrOrderRejected, statusErr.Error())
		}
		return nil, fmt.Errorf("failed to submit print order: %w", err)
	}

	var response orderResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal print order response: %w", err)
	}
	if response.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrOrderRejected, response.Error.Message)
	}
	if response.Result == nil {
		return nil, fmt.Errorf("print order response for %s has no result", order.ExternalID)
	}

	return response.Result, nil
}
