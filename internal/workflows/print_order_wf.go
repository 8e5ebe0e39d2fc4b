package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/logger"
)

// SubmitPrintOrder loads the order, submits it to the print provider and records the outcome.
// An order already marked submitted is left alone; a failed submission is recorded and the
// workflow fails so the fulfillment sweeper can start it again.
func (w *workerFulfillment) SubmitPrintOrder(ctx workflow.Context, orderID string) error {
	logger.InfoWf(ctx, "Starting print order submission", logger.OrderID(orderID))

	storeCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 15 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        2 * time.Second,
			BackoffCoefficient:     2.0,
			MaximumAttempts:        5,
			NonRetryableErrorTypes: []string{ErrTypeOrderInvalid},
		},
	})

	var loaded LoadedOrder
	if err := workflow.ExecuteActivity(storeCtx, w.executor.LoadPrintOrder, orderID).Get(storeCtx, &loaded); err != nil {
		logger.ErrorWf(ctx, err, logger.OrderID(orderID))
		return err
	}

	if loaded.Status == domain.FulfillmentStatusSubmitted {
		logger.InfoWf(ctx, "Print order already submitted, skipping",
			logger.OrderID(orderID),
			zap.String("ref", loaded.Ref))
		return nil
	}

	// Provider retries: 10s, 20s, 40s, ... capped at 5m
	submitCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        10 * time.Second,
			BackoffCoefficient:     2.0,
			MaximumInterval:        5 * time.Minute,
			MaximumAttempts:        w.config.SubmitMaxAttempts,
			NonRetryableErrorTypes: []string{ErrTypeOrderRejected},
		},
	})

	var ref string
	if err := workflow.ExecuteActivity(submitCtx, w.executor.SubmitPrintOrder, loaded.Order).Get(submitCtx, &ref); err != nil {
		logger.ErrorWf(ctx, err, logger.OrderID(orderID))

		if markErr := workflow.ExecuteActivity(storeCtx, w.executor.MarkOrderFailed, orderID, err.Error()).Get(storeCtx, nil); markErr != nil {
			logger.WarnWf(ctx, "Failed to mark print order as failed",
				logger.OrderID(orderID),
				zap.Error(markErr))
		}
		return err
	}

	if err := workflow.ExecuteActivity(storeCtx, w.executor.MarkOrderSubmitted, orderID, ref).Get(storeCtx, nil); err != nil {
		logger.ErrorWf(ctx, err, logger.OrderID(orderID), zap.String("ref", ref))
		return err
	}

	logger.InfoWf(ctx, "Print order submission completed",
		logger.OrderID(orderID),
		zap.String("ref", ref))

	return nil
}
