package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/partyqr/qr-router/internal/adapter"
	"github.com/partyqr/qr-router/internal/logger"
	"github.com/partyqr/qr-router/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type publisher struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	streamName string
	canonical  adapter.JCS
}

// NewPublisher connects to NATS, ensures the stream exists and returns a publisher
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, canonical adapter.JCS) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	err = js.EnsureStream(ctx, natsjs.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{messaging.SubjectQRScanned, messaging.SubjectEventActivated},
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
	}

	return &publisher{
		nc:         nc,
		js:         js,
		streamName: cfg.StreamName,
		canonical:  canonical,
	}, nil
}

// PublishScan publishes a recorded scan
func (p *publisher) PublishScan(ctx context.Context, msg *messaging.ScanMessage) error {
	if msg.MessageID == "" {
		msg.MessageID = ulid.Make().String()
	}
	return p.publish(ctx, messaging.SubjectQRScanned, msg.MessageID, msg)
}

// PublishEventActivated publishes a provisioned event.
// The message id is derived from the event so redelivered payments are deduplicated by the stream.
func (p *publisher) PublishEventActivated(ctx context.Context, msg *messaging.EventActivatedMessage) error {
	if msg.MessageID == "" {
		msg.MessageID = "event-activated-" + msg.EventID
	}
	return p.publish(ctx, messaging.SubjectEventActivated, msg.MessageID, msg)
}

func (p *publisher) publish(ctx context.Context, subject string, msgID string, msg any) error {
	data, err := p.canonical.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal %s message: %w", subject, err)
	}

	logger.DebugCtx(ctx, "Publishing NATS message", zap.String("subject", subject), zap.String("msgID", msgID))

	if _, err := p.js.Publish(ctx, subject, data, natsjs.WithMsgID(msgID)); err != nil {
		return fmt.Errorf("failed to publish %s message: %w", subject, err)
	}
	return nil
}

// Close drains and closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}
	if err := p.nc.Drain(); err != nil {
		logger.Warn("Failed to drain NATS connection", zap.Error(err))
		p.nc.Close()
	}
}
