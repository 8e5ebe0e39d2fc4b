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
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/partyqr/qr-router/internal/adapter"
	"github.com/partyqr/qr-router/internal/config"
	"github.com/partyqr/qr-router/internal/logger"
	"github.com/partyqr/qr-router/internal/providers/printful"
	temporal "github.com/partyqr/qr-router/internal/providers/temporal"
	"github.com/partyqr/qr-router/internal/store"
	"github.com/partyqr/qr-router/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerFulfillmentConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		Service:         "worker-fulfillment",
		Environment:     cfg.Environment,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Worker Fulfillment")

	db, err := store.Open(ctx, cfg.Database.DSN(), store.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	logger.InfoCtx(ctx, "Connected to database")

	dataStore := store.NewPGStore(db)

	// Initialize print provider client
	httpClient := adapter.NewHTTPClient(cfg.PrintProvider.Timeout)
	printClient := printful.NewClient(httpClient, printful.Config{
		BaseURL: cfg.PrintProvider.BaseURL,
		APIKey:  cfg.PrintProvider.APIKey,
		StoreID: cfg.PrintProvider.StoreID,
	})

	// Initialize executor for activities
	executor := workflows.NewExecutor(dataStore, printClient, adapter.NewActivity())

	// Connect to Temporal with logger integration
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

	logger.InfoCtx(ctx, "Connected to Temporal",
		zap.String("host_port", cfg.Temporal.HostPort),
		zap.String("namespace", cfg.Temporal.Namespace),
	)

	// Create Temporal worker with Sentry interceptor
	temporalWorker := worker.New(temporalClient,
		cfg.Temporal.FulfillmentTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			Interceptors: []interceptor.WorkerInterceptor{
				temporal.NewSentryActivityInterceptor(),
			},
		})

	workerFulfillment := workflows.NewWorkerFulfillment(executor, workflows.WorkerFulfillmentConfig{})

	// Register workflows
	temporalWorker.RegisterWorkflow(workerFulfillment.SubmitPrintOrder)
	logger.InfoCtx(ctx, "Registered fulfillment workflows")

	// Register activities
	temporalWorker.RegisterActivity(executor.LoadPrintOrder)
	temporalWorker.RegisterActivity(executor.SubmitPrintOrder)
	temporalWorker.RegisterActivity(executor.MarkOrderSubmitted)
	temporalWorker.RegisterActivity(executor.MarkOrderFailed)
	logger.InfoCtx(ctx, "Registered fulfillment activities")

	if err := temporalWorker.Start(); err != nil {
		logger.FatalCtx(ctx, "Failed to start Temporal worker", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Worker Fulfillment started successfully",
		zap.String("task_queue", cfg.Temporal.FulfillmentTaskQueue),
	)

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.InfoCtx(ctx, "Shutting down Worker Fulfillment...")
	temporalWorker.Stop()
	logger.InfoCtx(ctx, "Worker Fulfillment stopped")
}
