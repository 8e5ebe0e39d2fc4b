package provisioning

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/partyqr/qr-router/internal/adapter"
	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/fulfillment"
	"github.com/partyqr/qr-router/internal/logger"
	"github.com/partyqr/qr-router/internal/messaging"
	"github.com/partyqr/qr-router/internal/registry"
	"github.com/partyqr/qr-router/internal/store"
	"github.com/partyqr/qr-router/internal/store/schema"
)

// Step names reported in partial provisioning failures
const (
	StepDefaultDestinations = "default_destinations"
	StepLinkQRCodes         = "link_qr_codes"
	StepModules             = "modules"
	StepDefaultAlbum        = "default_album"
	StepAudit               = "audit"
)

const defaultEventTitle = "My party"

// Config holds provisioning defaults
type Config struct {
	// SiteURL is the public site root, microsite targets are built under it
	SiteURL               string
	DefaultContentTTLDays int
	DefaultTimezone       string
	// MaxChallenges bounds the challenges of a quick start package
	MaxChallenges int
}

// Result summarises a provisioning run
type Result struct {
	OrderID               string
	OrderCreated          bool
	EventID               string
	EventCreated          bool
	GroupID               *string
	GroupCreated          bool
	QRCount               int
	DestinationsCreated   int
	FulfillmentDispatched bool
}

// Orchestrator turns payments and operator actions into configured events
//
//go:generate mockgen -source=orchestrator.go -destination=../mocks/provisioning_orchestrator.go -package=mocks -mock_names=Orchestrator=MockProvisioningOrchestrator
type Orchestrator interface {
	// Provision creates or completes the event of a payment confirmation.
	// Every step is idempotent so redelivery of the same confirmation converges.
	// Failures before the QR set is resolved return a *domain.UpstreamError;
	// later failures are collected in a *domain.PartialProvisioningError.
	Provision(ctx context.Context, confirmation domain.PaymentConfirmation) (*Result, error)

	// QuickApply replaces all destinations and challenges of an event with a quick start package
	QuickApply(ctx context.Context, eventID string, actorID string, pkg QuickStartPackage) (*QuickStartResult, error)
}

type orchestrator struct {
	cfg        Config
	store      store.Store
	qrs        registry.QRRegistry
	dispatcher fulfillment.Dispatcher
	publisher  messaging.Publisher
	canonical  adapter.JCS
	clock      adapter.Clock
}

// NewOrchestrator creates a provisioning orchestrator
func NewOrchestrator(
	cfg Config,
	st store.Store,
	qrs registry.QRRegistry,
	dispatcher fulfillment.Dispatcher,
	publisher messaging.Publisher,
	canonical adapter.JCS,
	clock adapter.Clock,
) Orchestrator {
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")
	if cfg.DefaultContentTTLDays <= 0 {
		cfg.DefaultContentTTLDays = 30
	}
	if cfg.DefaultTimezone == "" {
		cfg.DefaultTimezone = "UTC"
	}
	if cfg.MaxChallenges <= 0 {
		cfg.MaxChallenges = 50
	}
	return &orchestrator{
		cfg:        cfg,
		store:      st,
		qrs:        qrs,
		dispatcher: dispatcher,
		publisher:  publisher,
		canonical:  canonical,
		clock:      clock,
	}
}

// micrositeURL is the default landing page of an event
func (o *orchestrator) micrositeURL(eventID string) string {
	return fmt.Sprintf("%s/e/%s", o.cfg.SiteURL, eventID)
}

// Provision creates or completes the event of a payment confirmation
func (o *orchestrator) Provision(ctx context.Context, confirmation domain.PaymentConfirmation) (*Result, error) {
	if err := validateConfirmation(confirmation); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx).With(zap.String("paymentReference", confirmation.PaymentReference))
	now := o.clock.Now()
	result := &Result{}

	// 1. Order, keyed on the payment reference
	order, created, err := o.store.CreateOrderIfAbsent(ctx, newOrder(confirmation))
	if err != nil {
		return nil, domain.NewUpstreamError("create order", err)
	}
	result.OrderID = order.ID
	result.OrderCreated = created
	if !created {
		log.Info("Order already recorded for payment, reusing it", logger.OrderID(order.ID))
	}

	// 2. Event, keyed on the payment session
	event, created, err := o.store.UpsertEventBySession(ctx, o.newEvent(confirmation))
	if err != nil {
		return nil, domain.NewUpstreamError("upsert event", err)
	}
	result.EventID = event.ID
	result.EventCreated = created
	log = log.With(logger.EventID(event.ID))

	if order.EventID == nil || *order.EventID != event.ID {
		if err := o.store.SetOrderEventID(ctx, order.ID, event.ID); err != nil {
			return nil, domain.NewUpstreamError("link order to event", err)
		}
	}

	// 3. Owner membership
	err = o.store.UpsertEventMember(ctx, &schema.EventMember{
		EventID: event.ID,
		UserID:  confirmation.UserID,
		Role:    domain.MemberRoleOwner,
	})
	if err != nil {
		return nil, domain.NewUpstreamError("upsert owner membership", err)
	}

	// 4. QR set
	qrs, err := o.resolveQRSet(ctx, confirmation, event, result)
	if err != nil {
		return nil, domain.NewUpstreamError("resolve qr set", err)
	}
	result.QRCount = len(qrs)
	if len(qrs) == 0 {
		log.Warn("No QRs resolved for event, provisioning continues without linkage",
			zap.Strings("codes", confirmation.QRCodes))
	}

	partial := &domain.PartialProvisioningError{EventID: event.ID}
	fail := func(step string, err error) {
		log.Error("Provisioning step failed", zap.String("step", step), zap.Error(err))
		partial.Steps = append(partial.Steps, domain.StepFailure{Step: step, Err: err})
	}

	// 5. Default destinations
	hints, createdCount, err := o.ensureDefaultDestinations(ctx, event.ID, qrs)
	result.DestinationsCreated = createdCount
	if err != nil {
		fail(StepDefaultDestinations, err)
	}

	// 6. Link QRs
	for i := range qrs {
		qr := &qrs[i]
		if qr.EventID != nil && *qr.EventID != event.ID {
			log.Warn("Relinking QR from another event",
				logger.QRCode(qr.Code),
				zap.String("previousEventID", *qr.EventID))
		}
		hint, ok := hints[qr.ID]
		if !ok && qr.EventID != nil && *qr.EventID == event.ID {
			// step 5 failed, keep the hint from a previous delivery
			hint = qr.ActiveDestinationID
		}
		if err := o.qrs.LinkToEvent(ctx, qr, event.ID, hint); err != nil {
			fail(StepLinkQRCodes, fmt.Errorf("qr %s: %w", qr.Code, err))
		}
	}

	// 7. Modules, never clobbering existing settings
	modules := make([]*schema.Module, 0, len(domain.DefaultModuleTypes))
	for _, moduleType := range domain.DefaultModuleTypes {
		status := domain.ModuleStatusDraft
		if moduleType == domain.ModuleTypeAlbum {
			status = domain.ModuleStatusActive
		}
		modules = append(modules, &schema.Module{EventID: event.ID, Type: moduleType, Status: status})
	}
	if err := o.store.CreateModulesIfAbsent(ctx, modules); err != nil {
		fail(StepModules, err)
	}

	// 8. Default album
	err = o.store.EnsureAlbum(ctx, &schema.Album{
		EventID:   event.ID,
		Slug:      domain.DEFAULT_ALBUM_SLUG,
		Title:     domain.DEFAULT_ALBUM_TITLE,
		IsDefault: true,
	})
	if err != nil {
		fail(StepDefaultAlbum, err)
	}

	// 9. Audit
	if err := o.appendAudit(ctx, registry.AuditEntry{
		EventID:    event.ID,
		ActorID:    domain.SYSTEM_ACTOR,
		Action:     domain.AUDIT_ACTION_EVENT_ACTIVATED,
		EntityType: "event",
		EntityID:   event.ID,
		Details: map[string]any{
			"payment_reference":    confirmation.PaymentReference,
			"order_id":             order.ID,
			"qr_count":             len(qrs),
			"destinations_created": createdCount,
			"event_created":        result.EventCreated,
		},
	}); err != nil {
		fail(StepAudit, err)
	}

	// 10. Side effects, never part of the provisioning outcome
	result.FulfillmentDispatched = o.dispatchFulfillment(ctx, order)
	o.publishActivated(ctx, event, order, len(qrs), now)

	if len(partial.Steps) > 0 {
		return result, partial
	}

	log.Info("Event provisioned",
		zap.Bool("orderCreated", result.OrderCreated),
		zap.Bool("eventCreated", result.EventCreated),
		zap.Int("qrCount", result.QRCount),
		zap.Int("destinationsCreated", result.DestinationsCreated))

	return result, nil
}

func validateConfirmation(c domain.PaymentConfirmation) error {
	fields := map[string]string{}
	if c.PaymentReference == "" {
		fields["payment_reference"] = "is required"
	}
	if c.UserID == "" {
		fields["user_id"] = "is required"
	}
	if c.ContentTTLDays < 0 {
		fields["content_ttl_days"] = "must not be negative"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func newOrder(c domain.PaymentConfirmation) *schema.Order {
	status := domain.FulfillmentStatusPending
	if len(c.Items) == 0 {
		status = domain.FulfillmentStatusNotRequired
	}
	return &schema.Order{
		PaymentReference:  c.PaymentReference,
		UserID:            c.UserID,
		AmountTotal:       c.AmountTotal,
		Currency:          c.Currency,
		CustomerEmail:     c.CustomerEmail,
		Recipient:         datatypes.NewJSONType(c.Recipient),
		Items:             datatypes.NewJSONSlice(c.Items),
		FulfillmentStatus: status,
	}
}

func (o *orchestrator) newEvent(c domain.PaymentConfirmation) *schema.Event {
	ttl := c.ContentTTLDays
	if ttl == 0 {
		ttl = o.cfg.DefaultContentTTLDays
	}
	timezone := c.Timezone
	if timezone == "" {
		timezone = o.cfg.DefaultTimezone
	}
	title := c.EventTitle
	if title == "" {
		title = defaultEventTitle
	}
	session := c.PaymentReference

	return &schema.Event{
		OwnerID:          c.UserID,
		Title:            title,
		Status:           domain.EventStatusLive,
		EventDate:        c.EventDate,
		ExpiresAt:        domain.ExpiresAt(c.EventDate, ttl),
		ContentTTLDays:   ttl,
		Timezone:         timezone,
		QRGroupID:        c.QRGroupID,
		PaymentSessionID: &session,
	}
}

// resolveQRSet finds the QRs of the event by group, then by code, tagging them with one group
func (o *orchestrator) resolveQRSet(ctx context.Context, c domain.PaymentConfirmation, event *schema.Event, result *Result) ([]schema.QRCode, error) {
	groupID := c.QRGroupID
	if groupID == nil {
		groupID = event.QRGroupID
	}

	if groupID != nil {
		qrs, err := o.store.GetQRCodesByGroupID(ctx, *groupID)
		if err != nil {
			return nil, err
		}
		if len(qrs) > 0 {
			if err := o.backfillEventGroup(ctx, event, *groupID); err != nil {
				return nil, err
			}
			result.GroupID = groupID
			return qrs, nil
		}
	}

	if len(c.QRCodes) == 0 {
		return nil, nil
	}

	qrs, err := o.store.GetQRCodesByCodes(ctx, c.QRCodes)
	if err != nil {
		return nil, err
	}
	if len(qrs) == 0 {
		return nil, nil
	}

	var existingGroup *string
	untagged := make([]string, 0, len(qrs))
	for i := range qrs {
		if qrs[i].GroupID == nil {
			untagged = append(untagged, qrs[i].ID)
		} else if existingGroup == nil {
			existingGroup = qrs[i].GroupID
		}
	}

	target := existingGroup
	if target == nil {
		group := &schema.QRGroup{OwnerID: c.UserID, Name: event.Title}
		if err := o.store.CreateQRGroup(ctx, group); err != nil {
			return nil, err
		}
		target = &group.ID
		result.GroupCreated = true
	}

	if len(untagged) > 0 {
		if err := o.store.AssignQRCodesToGroup(ctx, untagged, *target); err != nil {
			return nil, err
		}

		// A concurrent delivery may have grouped the same QRs first, its group wins
		qrs, err = o.store.GetQRCodesByCodes(ctx, c.QRCodes)
		if err != nil {
			return nil, err
		}
		winner := groupOf(qrs, untagged)
		if winner != nil && *winner != *target {
			logger.WarnCtx(ctx, "QRs grouped by a concurrent delivery, adopting its group",
				zap.String("groupID", *winner), zap.String("discardedGroupID", *target))
			if result.GroupCreated {
				if err := o.store.DeleteQRGroupIfUnused(ctx, *target); err != nil {
					logger.WarnCtx(ctx, "Failed to remove unused qr group", zap.String("groupID", *target), zap.Error(err))
				}
				result.GroupCreated = false
			}
			target = winner
		}
	}

	if err := o.backfillEventGroup(ctx, event, *target); err != nil {
		return nil, err
	}
	result.GroupID = target

	return qrs, nil
}

// groupOf returns the group carried by the first of ids found in qrs
func groupOf(qrs []schema.QRCode, ids []string) *string {
	for _, id := range ids {
		for i := range qrs {
			if qrs[i].ID == id && qrs[i].GroupID != nil {
				return qrs[i].GroupID
			}
		}
	}
	return nil
}

func (o *orchestrator) backfillEventGroup(ctx context.Context, event *schema.Event, groupID string) error {
	if event.QRGroupID != nil && *event.QRGroupID == groupID {
		return nil
	}
	if err := o.store.SetEventQRGroup(ctx, event.ID, groupID); err != nil {
		return err
	}
	event.QRGroupID = &groupID
	return nil
}

// ensureDefaultDestinations gives every QR without a destination a default microsite
// and returns the destination each QR should point at
func (o *orchestrator) ensureDefaultDestinations(ctx context.Context, eventID string, qrs []schema.QRCode) (map[string]*string, int, error) {
	hints := make(map[string]*string, len(qrs))
	if len(qrs) == 0 {
		return hints, 0, nil
	}

	qrIDs := make([]string, len(qrs))
	for i := range qrs {
		qrIDs[i] = qrs[i].ID
	}

	existing, err := o.store.GetDestinationsByQRIDs(ctx, eventID, qrIDs)
	if err != nil {
		return hints, 0, err
	}
	pickHints(hints, existing)

	missing := make([]*schema.Destination, 0)
	for _, id := range qrIDs {
		if _, ok := hints[id]; ok {
			continue
		}
		missing = append(missing, &schema.Destination{
			EventID:   eventID,
			QRID:      id,
			Type:      domain.DestinationTypeMicrosite,
			TargetURL: o.micrositeURL(eventID),
			IsActive:  true,
			Priority:  domain.DEFAULT_DESTINATION_PRIORITY,
			IsDefault: true,
		})
	}
	if len(missing) == 0 {
		return hints, 0, nil
	}

	if err := o.store.CreateDefaultDestinations(ctx, missing); err != nil {
		return hints, 0, err
	}

	// Re-read so a concurrent delivery that won the insert race supplies the hint
	existing, err = o.store.GetDestinationsByQRIDs(ctx, eventID, qrIDs)
	if err != nil {
		return hints, 0, err
	}
	pickHints(hints, existing)

	created := 0
	for _, d := range missing {
		if hint := hints[d.QRID]; hint != nil && *hint == d.ID {
			created++
		}
	}

	return hints, created, nil
}

// pickHints maps each QR to its first active destination, else its first destination.
// destinations are ordered by priority then id.
func pickHints(hints map[string]*string, destinations []schema.Destination) {
	for i := range destinations {
		d := &destinations[i]
		if current, ok := hints[d.QRID]; ok && current != nil {
			continue
		}
		if d.IsActive {
			id := d.ID
			hints[d.QRID] = &id
		}
	}
	for i := range destinations {
		d := &destinations[i]
		if _, ok := hints[d.QRID]; !ok {
			id := d.ID
			hints[d.QRID] = &id
		}
	}
}

func (o *orchestrator) appendAudit(ctx context.Context, entry registry.AuditEntry) error {
	auditLog, err := registry.NewAuditLog(o.canonical, entry)
	if err != nil {
		return err
	}
	return o.store.CreateAuditLog(ctx, auditLog)
}

// dispatchFulfillment starts the print order workflow unless the order was already submitted.
// A failure marks the order failed for the fulfillment sweeper.
func (o *orchestrator) dispatchFulfillment(ctx context.Context, order *schema.Order) bool {
	switch order.FulfillmentStatus {
	case domain.FulfillmentStatusSubmitted, domain.FulfillmentStatusNotRequired:
		return false
	}

	err := o.dispatcher.Dispatch(ctx, order.ID)
	if err == nil {
		return true
	}

	logger.ErrorCtx(ctx, errors.New("failed to dispatch print order"),
		zap.Error(err),
		logger.OrderID(order.ID))

	if ierr := o.store.UpdateOrderFulfillment(ctx, order.ID, domain.FulfillmentStatusFailed, "", err.Error()); ierr != nil {
		logger.ErrorCtx(ctx, errors.New("failed to mark order fulfillment failed"),
			zap.Error(ierr),
			logger.OrderID(order.ID))
	}
	return false
}

func (o *orchestrator) publishActivated(ctx context.Context, event *schema.Event, order *schema.Order, qrCount int, now time.Time) {
	err := o.publisher.PublishEventActivated(ctx, &messaging.EventActivatedMessage{
		EventID:     event.ID,
		OwnerID:     event.OwnerID,
		OrderID:     order.ID,
		QRCount:     qrCount,
		ActivatedAt: now,
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to publish event activated",
			logger.EventID(event.ID),
			zap.Error(err))
	}
}
