package workflows

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/partyqr/qr-router/internal/adapter"
	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/logger"
	"github.com/partyqr/qr-router/internal/providers/printful"
	"github.com/partyqr/qr-router/internal/store"
)

const (
	// ErrTypeOrderRejected marks activity errors the print provider will never accept
	ErrTypeOrderRejected = "PrintOrderRejected"
	// ErrTypeOrderInvalid marks orders that cannot be turned into a print order
	ErrTypeOrderInvalid = "PrintOrderInvalid"
)

// LoadedOrder is the persisted state of an order needed to submit it
type LoadedOrder struct {
	Status domain.FulfillmentStatus
	Ref    string
	Order  printful.PrintOrder
}

// Executor defines the interface for executing fulfillment activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_fulfillment.go -package=mocks -mock_names=Executor=MockFulfillmentExecutor
type Executor interface {
	// LoadPrintOrder loads an order and converts it into a print order
	LoadPrintOrder(ctx context.Context, orderID string) (*LoadedOrder, error)

	// SubmitPrintOrder submits a print order to the provider and returns the provider reference
	SubmitPrintOrder(ctx context.Context, order printful.PrintOrder) (string, error)

	// MarkOrderSubmitted records a successful submission
	MarkOrderSubmitted(ctx context.Context, orderID string, ref string) error

	// MarkOrderFailed records a submission that failed after all retries
	MarkOrderFailed(ctx context.Context, orderID string, reason string) error
}

// executor is the concrete implementation of Executor
type executor struct {
	store            store.Store
	printClient      printful.Client
	temporalActivity adapter.Activity
}

// NewExecutor creates a new executor instance
func NewExecutor(store store.Store, printClient printful.Client, temporalActivity adapter.Activity) Executor {
	return &executor{
		store:            store,
		printClient:      printClient,
		temporalActivity: temporalActivity,
	}
}

// LoadPrintOrder loads an order and converts it into a print order
func (e *executor) LoadPrintOrder(ctx context.Context, orderID string) (*LoadedOrder, error) {
	order, err := e.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		err := fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
		return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeOrderInvalid, err)
	}

	recipient := order.Recipient.Data()
	if recipient == nil {
		err := fmt.Errorf("order %s has no shipping recipient", orderID)
		return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeOrderInvalid, err)
	}

	return &LoadedOrder{
		Status: order.FulfillmentStatus,
		Ref:    order.FulfillmentRef,
		Order: printful.PrintOrder{
			ExternalID: order.ID,
			Recipient:  *recipient,
			Items:      order.Items,
		},
	}, nil
}

// SubmitPrintOrder submits a print order to the provider
// Retried by Temporal unless the provider rejected the order
func (e *executor) SubmitPrintOrder(ctx context.Context, order printful.PrintOrder) (string, error) {
	attempt := e.temporalActivity.GetInfo(ctx).Attempt

	logger.InfoCtx(ctx, "Submitting print order",
		logger.OrderID(order.ExternalID),
		zap.Int("items", len(order.Items)),
		zap.Int32("attempt", attempt))

	submitted, err := e.printClient.SubmitOrder(ctx, order)
	if err != nil {
		if errors.Is(err, printful.ErrOrderRejected) {
			logger.ErrorCtx(ctx, errors.New("print order rejected"),
				zap.Error(err),
				logger.OrderID(order.ExternalID))
			return "", temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeOrderRejected, err)
		}
		return "", err
	}

	logger.InfoCtx(ctx, "Print order submitted",
		logger.OrderID(order.ExternalID),
		zap.String("ref", submitted.Ref()))

	return submitted.Ref(), nil
}

// MarkOrderSubmitted records a successful submission
func (e *executor) MarkOrderSubmitted(ctx context.Context, orderID string, ref string) error {
	return e.store.UpdateOrderFulfillment(ctx, orderID, domain.FulfillmentStatusSubmitted, ref, "")
}

// MarkOrderFailed records a submission that failed after all retries
func (e *executor) MarkOrderFailed(ctx context.Context, orderID string, reason string) error {
	return e.store.UpdateOrderFulfillment(ctx, orderID, domain.FulfillmentStatusFailed, "", reason)
}
