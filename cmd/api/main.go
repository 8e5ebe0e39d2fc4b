package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/partyqr/qr-router/internal/adapter"
	"github.com/partyqr/qr-router/internal/api/middleware"
	"github.com/partyqr/qr-router/internal/api/rest"
	"github.com/partyqr/qr-router/internal/api/server"
	"github.com/partyqr/qr-router/internal/config"
	"github.com/partyqr/qr-router/internal/fulfillment"
	"github.com/partyqr/qr-router/internal/logger"
	"github.com/partyqr/qr-router/internal/messaging"
	"github.com/partyqr/qr-router/internal/providers/jetstream"
	temporal "github.com/partyqr/qr-router/internal/providers/temporal"
	"github.com/partyqr/qr-router/internal/provisioning"
	"github.com/partyqr/qr-router/internal/ratelimit"
	"github.com/partyqr/qr-router/internal/registry"
	"github.com/partyqr/qr-router/internal/routing"
	"github.com/partyqr/qr-router/internal/scan"
	"github.com/partyqr/qr-router/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	migrate    = flag.Bool("migrate", false, "Migrate the database schema before serving")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		Service:         "api-server",
		Environment:     cfg.Environment,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting QR Router API")

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

	if *migrate {
		if err := store.Migrate(db); err != nil {
			logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Migrated database schema")
	}

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	canonical := adapter.NewJCS()

	// Connect to Redis for the routing cache and scan rate limiting
	var redisClient adapter.RedisClient
	var distributedLimiter adapter.RedisRateLimiter
	if cfg.Redis.Addr != "" {
		redisClient = adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Error(err)
			}
		}()
		if err := redisClient.Ping(ctx); err != nil {
			logger.WarnCtx(ctx, "Redis is not reachable, continuing with degraded cache", zap.Error(err))
		}
		distributedLimiter = redisClient.NewRateLimiter()
		logger.InfoCtx(ctx, "Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		logger.WarnCtx(ctx, "Redis address not configured, routing cache and scan rate limiting are disabled")
	}

	// Connect to NATS JetStream for scan and activation events
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), canonical)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))
	} else {
		publisher = messaging.NewNoopPublisher()
		logger.WarnCtx(ctx, "NATS URL not configured, scan and activation events are not published")
	}
	defer publisher.Close()

	// Connect to Temporal with logger integration
	temporalLogger := temporal.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("host_port", cfg.Temporal.HostPort))

	// Wire registries and services
	qrRegistry := registry.NewQRRegistry(dataStore, redisClient, cfg.Redis.CacheTTL)
	eventRegistry := registry.NewEventRegistry(dataStore)
	destinationRegistry := registry.NewDestinationRegistry(dataStore, qrRegistry, canonical)

	router := routing.NewRouter(routing.Config{
		SiteURL:           cfg.Routing.SiteURL,
		DefaultExpiredURL: cfg.Routing.DefaultExpiredURL,
	}, qrRegistry, dataStore)

	recorder := scan.NewRecorder(scan.Config{
		WorkerPoolSize: cfg.ScanRecorder.WorkerPoolSize,
		QueueSize:      cfg.ScanRecorder.WorkerQueueSize,
	}, dataStore, qrRegistry, publisher)

	dispatcher := fulfillment.NewDispatcher(temporalClient, cfg.Temporal.FulfillmentTaskQueue)

	orchestrator := provisioning.NewOrchestrator(provisioning.Config{
		SiteURL:               cfg.Routing.SiteURL,
		DefaultContentTTLDays: cfg.Provisioning.DefaultContentTTLDays,
		DefaultTimezone:       cfg.Provisioning.DefaultTimezone,
		MaxChallenges:         cfg.QuickStart.MaxChallenges,
	}, dataStore, qrRegistry, dispatcher, publisher, canonical, clock)

	scanLimiter := ratelimit.NewLimiter(ratelimit.Config{
		PerMinute:     cfg.Redis.ScanRatePerMinute,
		LocalFallback: cfg.Redis.ScanRateLocalFallback,
	}, distributedLimiter)

	handler := rest.NewHandler(rest.Config{
		Debug:              cfg.Debug,
		NotFoundURL:        cfg.Routing.NotFoundURL,
		PaymentProvider:    cfg.Payments.Provider,
		WebhookSecret:      cfg.Payments.WebhookSecret,
		SignatureTolerance: cfg.Payments.SignatureTolerance,
		QuickStartDuration: cfg.QuickStart.DefaultTotalDuration,
	}, rest.Dependencies{
		Router:       router,
		Recorder:     recorder,
		QRs:          qrRegistry,
		Events:       eventRegistry,
		Destinations: destinationRegistry,
		Provisioning: orchestrator,
		Store:        dataStore,
		Clock:        clock,
	})

	srv := server.New(server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
		},
	}, handler, scanLimiter)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	// Drain queued scans after the server stops accepting redirects
	if err := recorder.Close(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "scan-recorder"))
	}

	logger.Info("API server stopped")
}
