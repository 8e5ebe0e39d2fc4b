package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/partyqr/qr-router/internal/logger"
	"github.com/partyqr/qr-router/internal/providers/temporal"
	"github.com/partyqr/qr-router/internal/workflows"
)

// WorkflowID returns the id of the print order workflow of an order.
// The id is stable so concurrent or repeated dispatches collapse onto one execution.
func WorkflowID(orderID string) string {
	return "print-order-" + orderID
}

// Dispatcher hands paid orders to the fulfillment worker
//
//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher.go -package=mocks -mock_names=Dispatcher=MockDispatcher
type Dispatcher interface {
	// Dispatch starts the print order workflow of an order.
	// A workflow already running or completed for the order counts as dispatched.
	Dispatch(ctx context.Context, orderID string) error
}

type dispatcher struct {
	orchestrator temporal.TemporalOrchestrator
	taskQueue    string
}

// NewDispatcher creates a dispatcher starting workflows on the fulfillment task queue
func NewDispatcher(orchestrator temporal.TemporalOrchestrator, taskQueue string) Dispatcher {
	return &dispatcher{
		orchestrator: orchestrator,
		taskQueue:    taskQueue,
	}
}

// Dispatch starts the print order workflow of an order
func (d *dispatcher) Dispatch(ctx context.Context, orderID string) error {
	w := workflows.NewWorkerFulfillment(nil, workflows.WorkerFulfillmentConfig{})

	options := client.StartWorkflowOptions{
		ID:                       WorkflowID(orderID),
		TaskQueue:                d.taskQueue,
		WorkflowExecutionTimeout: 24 * time.Hour,
		// Only a failed run may be started again, by the fulfillment sweeper
		WorkflowIDReusePolicy:    enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
		WorkflowIDConflictPolicy: enums.WORKFLOW_ID_CONFLICT_POLICY_FAIL,
	}

	run, err := d.orchestrator.ExecuteWorkflow(ctx, options, w.SubmitPrintOrder, orderID)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			logger.InfoCtx(ctx, "Print order workflow already started",
				logger.OrderID(orderID),
				zap.String("workflowID", options.ID))
			return nil
		}
		return fmt.Errorf("failed to start print order workflow: %w", err)
	}

	fields := []zap.Field{logger.OrderID(orderID), zap.String("workflowID", options.ID)}
	if run != nil {
		fields = append(fields, zap.String("runID", run.GetRunID()))
	}
	logger.InfoCtx(ctx, "Print order workflow started", fields...)

	return nil
}
