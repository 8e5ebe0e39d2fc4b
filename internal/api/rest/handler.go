package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/partyqr/qr-router/internal/adapter"
	"github.com/partyqr/qr-router/internal/api/middleware"
	"github.com/partyqr/qr-router/internal/api/shared/dto"
	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/logger"
	"github.com/partyqr/qr-router/internal/provisioning"
	"github.com/partyqr/qr-router/internal/registry"
	"github.com/partyqr/qr-router/internal/routing"
	"github.com/partyqr/qr-router/internal/scan"
	"github.com/partyqr/qr-router/internal/store"
	"github.com/partyqr/qr-router/internal/store/schema"
	"github.com/partyqr/qr-router/internal/webhook"
)

const (
	defaultMaxWebhookBytes     = 1 << 20
	defaultQuickStartDuration  = 3 * time.Hour
	defaultPaymentProviderName = "stripe"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// Redirect sends a scan to the destination its QR resolves to now
	// GET /qr/:code
	Redirect(c *gin.Context)

	// UpdateQR applies owner edits to a QR
	// POST /qr/:code
	UpdateQR(c *gin.Context)

	// DeleteQR soft deletes a QR owned by the caller
	// DELETE /qr/:code
	DeleteQR(c *gin.Context)

	// UpdateDestination edits a destination of an event, owner or editor only
	// PATCH /api/v1/events/:eventId/destinations/:destinationId
	UpdateDestination(c *gin.Context)

	// DeleteDestination removes a destination of an event, owner or editor only
	// DELETE /api/v1/events/:eventId/destinations/:destinationId
	DeleteDestination(c *gin.Context)

	// QuickStart replaces every destination and challenge of an event, owner only
	// POST /api/v1/events/:eventId/quick-start
	QuickStart(c *gin.Context)

	// EventStatus returns the computed state of an event, any member
	// GET /api/v1/events/:eventId/status
	EventStatus(c *gin.Context)

	// PaymentWebhook receives signed payment provider deliveries
	// POST /api/v1/webhooks/payments
	PaymentWebhook(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// Config holds the handler settings
type Config struct {
	Debug bool
	// NotFoundURL receives scans of unknown, deleted or inactive codes
	NotFoundURL string
	// PaymentProvider names the provider deliveries are recorded under
	PaymentProvider    string
	WebhookSecret      string
	SignatureTolerance time.Duration
	MaxWebhookBytes    int64
	// QuickStartDuration is used when a quick start request omits total_duration
	QuickStartDuration time.Duration
}

// Dependencies holds the services the handler calls into
type Dependencies struct {
	Router       routing.Router
	Recorder     scan.Recorder
	QRs          registry.QRRegistry
	Events       registry.EventRegistry
	Destinations registry.DestinationRegistry
	Provisioning provisioning.Orchestrator
	Store        store.Store
	Clock        adapter.Clock
}

// handler implements the Handler interface
type handler struct {
	config Config
	deps   Dependencies
}

// NewHandler creates a new REST API handler
func NewHandler(cfg Config, deps Dependencies) Handler {
	if cfg.MaxWebhookBytes <= 0 {
		cfg.MaxWebhookBytes = defaultMaxWebhookBytes
	}
	if cfg.QuickStartDuration <= 0 {
		cfg.QuickStartDuration = defaultQuickStartDuration
	}
	if cfg.PaymentProvider == "" {
		cfg.PaymentProvider = defaultPaymentProviderName
	}
	return &handler{config: cfg, deps: deps}
}

// Redirect resolves a scan and answers with a 302
func (h *handler) Redirect(c *gin.Context) {
	ctx := c.Request.Context()
	code := c.Param("code")
	now := h.deps.Clock.Now()

	c.Header("Cache-Control", "no-store")

	outcome, err := h.deps.Router.Resolve(ctx, code, now)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to resolve scan: %w", err), logger.QRCode(code))
		}
		c.Redirect(http.StatusFound, h.config.NotFoundURL)
		return
	}

	h.deps.Recorder.Record(ctx, scan.Scan{
		Outcome:   outcome,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referer:   c.Request.Referer(),
		ScannedAt: now,
	})

	c.Redirect(http.StatusFound, outcome.URL)
}

// UpdateQR applies owner edits to a QR
func (h *handler) UpdateQR(c *gin.Context) {
	var req dto.UpdateQRRequest
	if !bindJSON(c, &req) {
		return
	}

	update := req.ToUpdate()
	if update.IsEmpty() {
		respondBadRequest(c, "Request body changes nothing")
		return
	}

	qr, err := h.deps.QRs.Update(c.Request.Context(), c.Param("code"), middleware.AuthSubject(c), update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQRResponse(qr))
}

// DeleteQR soft deletes a QR
func (h *handler) DeleteQR(c *gin.Context) {
	if err := h.deps.QRs.Delete(c.Request.Context(), c.Param("code"), middleware.AuthSubject(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateDestination edits a destination of an event
func (h *handler) UpdateDestination(c *gin.Context) {
	eventID := c.Param("eventId")
	actorID := middleware.AuthSubject(c)

	if !h.requireRole(c, eventID, actorID, domain.MemberRole.CanEditDestinations) {
		return
	}

	var req dto.UpdateDestinationRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.IsEmpty() {
		respondBadRequest(c, "Request body changes nothing")
		return
	}

	update, err := req.ToUpdate()
	if err != nil {
		respondError(c, err)
		return
	}

	destination, err := h.deps.Destinations.Update(c.Request.Context(), eventID, c.Param("destinationId"), actorID, update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDestinationResponse(destination))
}

// DeleteDestination removes a destination of an event
func (h *handler) DeleteDestination(c *gin.Context) {
	eventID := c.Param("eventId")
	actorID := middleware.AuthSubject(c)

	if !h.requireRole(c, eventID, actorID, domain.MemberRole.CanEditDestinations) {
		return
	}

	if err := h.deps.Destinations.Delete(c.Request.Context(), eventID, c.Param("destinationId"), actorID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// QuickStart applies a quick start package to an event
func (h *handler) QuickStart(c *gin.Context) {
	eventID := c.Param("eventId")
	actorID := middleware.AuthSubject(c)

	isOwner := func(r domain.MemberRole) bool { return r == domain.MemberRoleOwner }
	if !h.requireRole(c, eventID, actorID, isOwner) {
		return
	}

	var req dto.QuickStartRequest
	if !bindJSON(c, &req) {
		return
	}

	pkg, err := req.ToPackage(h.config.QuickStartDuration)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.deps.Provisioning.QuickApply(c.Request.Context(), eventID, actorID, pkg)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuickStartResponse{QuickStartResult: result})
}

// EventStatus returns the computed state of an event
func (h *handler) EventStatus(c *gin.Context) {
	eventID := c.Param("eventId")

	anyRole := func(domain.MemberRole) bool { return true }
	if !h.requireRole(c, eventID, middleware.AuthSubject(c), anyRole) {
		return
	}

	status, err := h.deps.Events.Status(c.Request.Context(), eventID, h.deps.Clock.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewEventStatusResponse(status))
}

// PaymentWebhook verifies a delivery, records it and provisions on checkout completion
func (h *handler) PaymentWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.config.MaxWebhookBytes)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondBadRequest(c, "Failed to read request body", err.Error())
		return
	}

	if err := webhook.Verify(c.GetHeader(webhook.SignatureHeader), payload,
		h.config.WebhookSecret, h.config.SignatureTolerance, h.deps.Clock.Now()); err != nil {
		logger.WarnCtx(ctx, "Rejected payment webhook", zap.Error(err), zap.String("client_ip", c.ClientIP()))
		respondBadRequest(c, "Invalid webhook signature")
		return
	}

	event, err := webhook.ParseEvent(payload)
	if err != nil {
		respondError(c, err)
		return
	}

	delivery, err := h.deps.Store.RecordPaymentWebhookEvent(ctx, &schema.PaymentWebhookEvent{
		Provider:  h.config.PaymentProvider,
		EventID:   event.ID,
		EventType: event.Type,
		Payload:   payload,
	})
	if err != nil {
		respondError(c, domain.NewUpstreamError("record webhook event", err))
		return
	}
	if delivery.ProcessedAt != nil {
		logger.InfoCtx(ctx, "Payment webhook already processed",
			logger.EventID(event.ID), zap.Int("attempts", delivery.Attempts))
		c.JSON(http.StatusOK, dto.WebhookResponse{Received: true, Duplicate: true})
		return
	}

	if event.Type != webhook.EventTypeCheckoutSessionCompleted {
		h.completeDelivery(c, event, nil)
		c.JSON(http.StatusOK, dto.WebhookResponse{Received: true, Ignored: true})
		return
	}

	result, err := h.provision(c, event)
	h.completeDelivery(c, event, err)
	if err != nil {
		var validationErr *domain.ValidationError
		if !errors.As(err, &validationErr) {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to provision event: %w", err), zap.String("webhookEventID", event.ID))
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WebhookResponse{Received: true, EventID: result.EventID})
}

func (h *handler) provision(c *gin.Context, event *webhook.Event) (*provisioning.Result, error) {
	session, err := event.CheckoutSession()
	if err != nil {
		return nil, err
	}

	confirmation, err := session.PaymentConfirmation()
	if err != nil {
		return nil, err
	}

	return h.deps.Provisioning.Provision(c.Request.Context(), *confirmation)
}

// completeDelivery records the outcome of a delivery. A failure here only costs a redundant redelivery.
func (h *handler) completeDelivery(c *gin.Context, event *webhook.Event, processErr error) {
	if err := h.deps.Store.CompletePaymentWebhookEvent(c.Request.Context(), h.config.PaymentProvider, event.ID, processErr); err != nil {
		logger.ErrorCtx(c.Request.Context(), fmt.Errorf("failed to complete webhook event: %w", err),
			zap.String("webhookEventID", event.ID))
	}
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "healthy",
		Service: "qr-router-api",
	})
}

// requireRole aborts with an error response unless the actor holds a role accepted by allowed
func (h *handler) requireRole(c *gin.Context, eventID string, actorID string, allowed func(domain.MemberRole) bool) bool {
	role, err := h.deps.Events.Role(c.Request.Context(), eventID, actorID)
	if err != nil {
		respondError(c, err)
		return false
	}
	if !allowed(role) {
		respondError(c, fmt.Errorf("role %s on event %s: %w", role, eventID, domain.ErrForbidden))
		return false
	}
	return true
}
