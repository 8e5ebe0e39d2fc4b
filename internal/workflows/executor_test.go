package workflows_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
	"gorm.io/datatypes"

	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/logger"
	"github.com/partyqr/qr-router/internal/mocks"
	"github.com/partyqr/qr-router/internal/providers/printful"
	"github.com/partyqr/qr-router/internal/store/schema"
	"github.com/partyqr/qr-router/internal/workflows"
)

// testExecutorMocks contains all the mocks needed for testing the executor
type testExecutorMocks struct {
	ctrl             *gomock.Controller
	store            *mocks.MockStore
	printClient      *mocks.MockPrintClient
	temporalActivity *mocks.MockActivity
	executor         workflows.Executor
}

// setupTestExecutor creates all the mocks and executor for testing
func setupTestExecutor(t *testing.T) *testExecutorMocks {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)
	tm := &testExecutorMocks{
		ctrl:             ctrl,
		store:            mocks.NewMockStore(ctrl),
		printClient:      mocks.NewMockPrintClient(ctrl),
		temporalActivity: mocks.NewMockActivity(ctrl),
	}
	tm.executor = workflows.NewExecutor(tm.store, tm.printClient, tm.temporalActivity)
	return tm
}

func testOrder() *schema.Order {
	recipient := &domain.Address{Name: "Ana", Line1: "Calle 1", City: "Madrid", PostalCode: "28001", CountryCode: "ES"}
	return &schema.Order{
		ID:                "order-1",
		PaymentReference:  "cs_1",
		UserID:            "user-1",
		Recipient:         datatypes.NewJSONType(recipient),
		Items:             datatypes.NewJSONSlice([]domain.OrderItem{{VariantID: "4012", Quantity: 1}}),
		FulfillmentStatus: domain.FulfillmentStatusPending,
	}
}

func TestLoadPrintOrder_Success(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.store.EXPECT().GetOrderByID(ctx, "order-1").Return(testOrder(), nil)

	loaded, err := m.executor.LoadPrintOrder(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.FulfillmentStatusPending, loaded.Status)
	assert.Equal(t, "order-1", loaded.Order.ExternalID)
	assert.Equal(t, "Madrid", loaded.Order.Recipient.City)
	assert.Equal(t, []domain.OrderItem{{VariantID: "4012", Quantity: 1}}, loaded.Order.Items)
}

func TestLoadPrintOrder_NotFound(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.store.EXPECT().GetOrderByID(ctx, "order-1").Return(nil, nil)

	_, err := m.executor.LoadPrintOrder(ctx, "order-1")
	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.True(t, appErr.NonRetryable())
	assert.Equal(t, workflows.ErrTypeOrderInvalid, appErr.Type())
}

func TestLoadPrintOrder_MissingRecipient(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	order := testOrder()
	order.Recipient = datatypes.NewJSONType[*domain.Address](nil)
	m.store.EXPECT().GetOrderByID(ctx, "order-1").Return(order, nil)

	_, err := m.executor.LoadPrintOrder(ctx, "order-1")
	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.True(t, appErr.NonRetryable())
}

func TestLoadPrintOrder_StoreError(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.store.EXPECT().GetOrderByID(ctx, "order-1").Return(nil, errors.New("database error"))

	_, err := m.executor.LoadPrintOrder(ctx, "order-1")
	require.Error(t, err)
	var appErr *temporal.ApplicationError
	assert.False(t, errors.As(err, &appErr))
}

func TestSubmitPrintOrder_Success(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	order := printful.PrintOrder{ExternalID: "order-1"}

	m.temporalActivity.EXPECT().GetInfo(ctx).Return(activity.Info{Attempt: 1})
	m.printClient.EXPECT().SubmitOrder(ctx, order).Return(&printful.Order{ID: 987}, nil)

	ref, err := m.executor.SubmitPrintOrder(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, "987", ref)
}

func TestSubmitPrintOrder_Rejected(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	order := printful.PrintOrder{ExternalID: "order-1"}

	m.temporalActivity.EXPECT().GetInfo(ctx).Return(activity.Info{Attempt: 2})
	m.printClient.EXPECT().SubmitOrder(ctx, order).Return(nil, printful.ErrOrderRejected)

	_, err := m.executor.SubmitPrintOrder(ctx, order)
	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.True(t, appErr.NonRetryable())
	assert.Equal(t, workflows.ErrTypeOrderRejected, appErr.Type())
}

func TestSubmitPrintOrder_TransientError(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	order := printful.PrintOrder{ExternalID: "order-1"}
	cause := errors.New("connection reset")

	m.temporalActivity.EXPECT().GetInfo(ctx).Return(activity.Info{Attempt: 1})
	m.printClient.EXPECT().SubmitOrder(ctx, order).Return(nil, cause)

	_, err := m.executor.SubmitPrintOrder(ctx, order)
	assert.Equal(t, cause, err)
}

func TestMarkOrder(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.store.EXPECT().UpdateOrderFulfillment(ctx, "order-1", domain.FulfillmentStatusSubmitted, "987", "").Return(nil)
	m.store.EXPECT().UpdateOrderFulfillment(ctx, "order-2", domain.FulfillmentStatusFailed, "", "rejected").Return(nil)

	assert.NoError(t, m.executor.MarkOrderSubmitted(ctx, "order-1", "987"))
	assert.NoError(t, m.executor.MarkOrderFailed(ctx, "order-2", "rejected"))
}
