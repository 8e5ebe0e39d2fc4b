// Package routing turns a scanned code into the URL the visitor is redirected to
package routing

import (
	"context"
	"fmt"
	"time"

	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/logger"
	"github.com/partyqr/qr-router/internal/registry"
	"github.com/partyqr/qr-router/internal/resolver"
	"github.com/partyqr/qr-router/internal/store"
	"github.com/partyqr/qr-router/internal/store/schema"
)

// Config holds the URLs used when no destination applies
type Config struct {
	// SiteURL is the last fallback of every chain
	SiteURL string
	// DefaultExpiredURL is used for expired events without their own expired URL
	DefaultExpiredURL string
}

// Outcome is the routing decision for one scan
type Outcome struct {
	URL         string
	QR          *schema.QRCode
	Event       *schema.Event
	Destination *schema.Destination
	WasExpired  bool
	// HintStale is set when the QR's active destination hint should be settled to Destination
	HintStale bool
}

// errInactive is reported like an unknown code so scans of disabled QRs land on the not-found page
var errInactive = fmt.Errorf("inactive: %w", domain.ErrNotFound)

// Router defines the interface for scan resolution
//
//go:generate mockgen -source=router.go -destination=../mocks/router.go -package=mocks -mock_names=Router=MockRouter
type Router interface {
	// Resolve returns where a scan of code at now is redirected.
	// domain.ErrNotFound means the code is unknown, deleted or inactive.
	Resolve(ctx context.Context, code string, now time.Time) (*Outcome, error)
}

type router struct {
	cfg   Config
	qrs   registry.QRRegistry
	store store.Store
}

// NewRouter creates a router
func NewRouter(cfg Config, qrs registry.QRRegistry, st store.Store) Router {
	return &router{cfg: cfg, qrs: qrs, store: st}
}

// Resolve returns where a scan of code at now is redirected
func (r *router) Resolve(ctx context.Context, code string, now time.Time) (*Outcome, error) {
	qr, err := r.qrs.Lookup(ctx, code)
	if err != nil {
		return nil, err
	}
	if !qr.IsActive {
		return nil, fmt.Errorf("qr code %s is inactive: %w", code, errInactive)
	}

	outcome := &Outcome{QR: qr}

	if qr.EventID == nil {
		outcome.URL = r.fallback(qr, nil)
		return outcome, nil
	}

	event, err := r.store.GetEventByID(ctx, *qr.EventID)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to load event for scan: %w", err),
			logger.QRCode(code), logger.EventID(*qr.EventID))
		outcome.URL = r.fallback(qr, nil)
		return outcome, nil
	}
	if event == nil {
		logger.WarnCtx(ctx, "QR linked to a missing event", logger.QRCode(code), logger.EventID(*qr.EventID))
		outcome.URL = r.fallback(qr, nil)
		return outcome, nil
	}
	outcome.Event = event

	if !event.State(now).Routable() {
		outcome.WasExpired = true
		outcome.URL = r.expired(event)
		return outcome, nil
	}

	destinations, err := r.store.GetDestinationsByQR(ctx, event.ID, qr.ID)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to load destinations for scan: %w", err),
			logger.QRCode(code), logger.EventID(event.ID))
		outcome.URL = r.fallback(qr, event)
		return outcome, nil
	}

	resolved := resolver.Resolve(destinations, now)
	outcome.HintStale = !resolver.HintMatches(qr.ActiveDestinationID, resolved)
	if resolved == nil {
		outcome.URL = r.fallback(qr, event)
		return outcome, nil
	}

	outcome.Destination = resolved
	outcome.URL = resolved.TargetURL
	return outcome, nil
}

// fallback walks the QR static URL, the event fallback URL, then the site root
func (r *router) fallback(qr *schema.QRCode, event *schema.Event) string {
	if qr.DestinationURL != "" {
		return qr.DestinationURL
	}
	if event != nil {
		if url := event.Config.Data().FallbackURL; url != "" {
			return url
		}
	}
	return r.cfg.SiteURL
}

// expired returns the expired URL of the event, or the default one
func (r *router) expired(event *schema.Event) string {
	if url := event.Config.Data().ExpiredURL; url != "" {
		return url
	}
	return r.cfg.DefaultExpiredURL
}
