package workflows

import (
	"go.temporal.io/sdk/workflow"
)

// WorkerFulfillment defines the workflows that hand paid orders to the print provider
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_fulfillment.go -package=mocks -mock_names=WorkerFulfillment=MockWorkerFulfillment
type WorkerFulfillment interface {
	// SubmitPrintOrder submits the print order of a paid order exactly once
	SubmitPrintOrder(ctx workflow.Context, orderID string) error
}

// WorkerFulfillmentConfig holds the retry settings of the fulfillment workflows
type WorkerFulfillmentConfig struct {
	// SubmitMaxAttempts bounds the provider submission retries, 0 means the default
	SubmitMaxAttempts int32
}

// workerFulfillment is the concrete implementation of WorkerFulfillment
type workerFulfillment struct {
	config   WorkerFulfillmentConfig
	executor Executor
}

// NewWorkerFulfillment creates a new fulfillment worker instance
func NewWorkerFulfillment(executor Executor, config WorkerFulfillmentConfig) WorkerFulfillment {
	if config.SubmitMaxAttempts <= 0 {
		config.SubmitMaxAttempts = 6
	}
	return &workerFulfillment{
		executor: executor,
		config:   config,
	}
}
