// Package scan records scans off the request path
package scan

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/partyqr/qr-router/internal/logger"
	"github.com/partyqr/qr-router/internal/messaging"
	"github.com/partyqr/qr-router/internal/registry"
	"github.com/partyqr/qr-router/internal/routing"
	"github.com/partyqr/qr-router/internal/store"
	"github.com/partyqr/qr-router/internal/store/schema"
)

// Scan is one redirect served to a visitor
type Scan struct {
	Outcome   *routing.Outcome
	IP        string
	UserAgent string
	Referer   string
	ScannedAt time.Time
}

// Config holds the worker pool limits of the recorder
type Config struct {
	WorkerPoolSize int
	QueueSize      int
}

// Recorder defines the interface for recording scans
//
//go:generate mockgen -source=recorder.go -destination=../mocks/scan_recorder.go -package=mocks -mock_names=Recorder=MockScanRecorder
type Recorder interface {
	// Record queues a scan without blocking, returns false when the scan was dropped
	Record(ctx context.Context, scan Scan) bool

	// Close waits for queued scans to finish or ctx to expire
	Close(ctx context.Context) error
}

type recorder struct {
	store     store.Store
	qrs       registry.QRRegistry
	publisher messaging.Publisher
	pool      pond.Pool
	capacity  int64
	inflight  atomic.Int64
	closed    atomic.Bool
}

// NewRecorder creates a scan recorder backed by a bounded worker pool
func NewRecorder(cfg Config, st store.Store, qrs registry.QRRegistry, publisher messaging.Publisher) Recorder {
	workers := max(cfg.WorkerPoolSize, 1)
	queue := max(cfg.QueueSize, 1)

	return &recorder{
		store:     st,
		qrs:       qrs,
		publisher: publisher,
		pool:      pond.NewPool(workers, pond.WithQueueSize(queue)),
		capacity:  int64(workers + queue),
	}
}

// Record queues a scan without blocking
func (r *recorder) Record(ctx context.Context, scan Scan) bool {
	if scan.Outcome == nil || scan.Outcome.QR == nil {
		return false
	}
	if r.closed.Load() {
		logger.WarnCtx(ctx, "Dropping scan, recorder is closed", logger.QRCode(scan.Outcome.QR.Code))
		return false
	}

	// Admission is counted before submitting so the pool never blocks the request
	if r.inflight.Add(1) > r.capacity {
		r.inflight.Add(-1)
		logger.WarnCtx(ctx, "Dropping scan, recorder is saturated",
			logger.QRCode(scan.Outcome.QR.Code),
			zap.Int64("capacity", r.capacity))
		return false
	}

	taskCtx := context.WithoutCancel(ctx)
	r.pool.Submit(func() {
		defer r.inflight.Add(-1)
		r.process(taskCtx, scan)
	})
	return true
}

// process persists one scan, each step is independent and best-effort
func (r *recorder) process(ctx context.Context, scan Scan) {
	outcome := scan.Outcome
	qr := outcome.QR
	deviceClass := ClassifyDevice(scan.UserAgent)

	record := &schema.ScanRecord{
		QRID:        qr.ID,
		IP:          scan.IP,
		UserAgent:   scan.UserAgent,
		Referer:     scan.Referer,
		DeviceClass: deviceClass,
		ResolvedURL: outcome.URL,
		WasExpired:  outcome.WasExpired,
		ScannedAt:   scan.ScannedAt,
	}
	if outcome.Event != nil {
		record.EventID = &outcome.Event.ID
	}
	if outcome.Destination != nil {
		record.DestinationID = &outcome.Destination.ID
	}

	if err := r.store.CreateScanRecord(ctx, record); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to store scan record: %w", err), logger.QRCode(qr.Code))
	}

	if err := r.qrs.RecordScan(ctx, qr.ID, scan.ScannedAt); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to increment scan count: %w", err), logger.QRCode(qr.Code))
	}

	if outcome.HintStale {
		var destinationID *string
		if outcome.Destination != nil {
			destinationID = &outcome.Destination.ID
		}
		if err := r.qrs.SettleActiveDestination(ctx, qr, destinationID); err != nil {
			logger.WarnCtx(ctx, "Failed to settle active destination", logger.QRCode(qr.Code), zap.Error(err))
		}
	}

	msg := &messaging.ScanMessage{
		QRID:        qr.ID,
		Code:        qr.Code,
		DeviceClass: string(deviceClass),
		WasExpired:  outcome.WasExpired,
		ScannedAt:   scan.ScannedAt,
	}
	if record.EventID != nil {
		msg.EventID = *record.EventID
	}
	if record.DestinationID != nil {
		msg.DestinationID = *record.DestinationID
	}
	if err := r.publisher.PublishScan(ctx, msg); err != nil {
		logger.WarnCtx(ctx, "Failed to publish scan", logger.QRCode(qr.Code), zap.Error(err))
	}
}

// Close waits for queued scans to finish or ctx to expire
func (r *recorder) Close(ctx context.Context) error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}

	done := make(chan struct{})
	go func() {
		r.pool.StopAndWait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Scan recorder close interrupted, queued scans may be lost",
			zap.Int64("inflight", r.inflight.Load()))
		return ctx.Err()
	}
}
