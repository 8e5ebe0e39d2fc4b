package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/partyqr/qr-router/internal/adapter"
	"github.com/partyqr/qr-router/internal/config"
	"github.com/partyqr/qr-router/internal/fulfillment"
	"github.com/partyqr/qr-router/internal/logger"
	temporal "github.com/partyqr/qr-router/internal/providers/temporal"
	"github.com/partyqr/qr-router/internal/registry"
	"github.com/partyqr/qr-router/internal/store"
	"github.com/partyqr/qr-router/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		Service:         "sweeper",
		Environment:     cfg.Environment,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sweeper")

	db, err := store.Open(ctx, cfg.Database.DSN(), store.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()

	// Connect to Temporal to redispatch print orders
	temporalLogger := temporal.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	dispatcher := fulfillment.NewDispatcher(temporalClient, cfg.Temporal.FulfillmentTaskQueue)

	sweepers := []sweeper.Sweeper{
		sweeper.NewFulfillmentRetrySweeper(&sweeper.FulfillmentRetrySweeperConfig{
			Interval:       cfg.FulfillmentSweeper.Interval,
			BatchSize:      cfg.FulfillmentSweeper.BatchSize,
			WorkerPoolSize: cfg.FulfillmentSweeper.Worker.WorkerPoolSize,
			RetryAfter:     cfg.FulfillmentSweeper.RetryAfter,
		}, dataStore, dispatcher, clock),
		sweeper.NewExpirySweeper(&sweeper.ExpirySweeperConfig{
			Interval: cfg.ExpirySweeper.Interval,
		}, registry.NewEventRegistry(dataStore), clock),
	}

	logger.InfoCtx(ctx, "Initialized sweepers",
		zap.Int("fulfillment_batch_size", cfg.FulfillmentSweeper.BatchSize),
		zap.Duration("fulfillment_retry_after", cfg.FulfillmentSweeper.RetryAfter),
		zap.Duration("expiry_interval", cfg.ExpirySweeper.Interval),
	)

	// Start each sweeper in its own goroutine
	errChan := make(chan error, len(sweepers))
	var wg sync.WaitGroup
	for _, s := range sweepers {
		wg.Add(1)
		go func(s sweeper.Sweeper) {
			defer wg.Done()
			if err := s.Start(ctx); err != nil {
				errChan <- fmt.Errorf("%s: %w", s.Name(), err)
			}
		}(s)
	}

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweepers
	cancel()

	// Give the sweepers time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	for _, s := range sweepers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err, zap.String("sweeper", s.Name()))
		}
	}
	wg.Wait()

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
