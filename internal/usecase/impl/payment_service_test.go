package impl

import (
	"context"
	"testing"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/service"
	mockService "cakes/internal/mocks/service"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPaymentService(t *testing.T) (usecase.PaymentUsecase, *orderDeps, *mockService.MockPaymentGateway) {
	deps := newOrderDeps(t)
	gateway := mockService.NewMockPaymentGateway(t)

	return NewPaymentService(PaymentServiceParams{
		Lifecycle: deps.lifecycleParams(),
		OrderRepo: deps.orderRepo,
		Gateway:   gateway,
	}), deps, gateway
}

func successResult(order *entity.Order) *service.PaymentResult {
	return &service.PaymentResult{
		MerchantTransactionID: order.OrderNumber + "-1760500000",
		TransactionID:         "T2610151200",
		State:                 service.PaymentStateSuccess,
		Amount:                order.Total,
	}
}

func TestOrderNumberFromTransaction(t *testing.T) {
	assert.Equal(t, "CK261015123456", orderNumberFromTransaction("CK261015123456-1760500000"))
	assert.Equal(t, "CK261015123456", orderNumberFromTransaction("CK261015123456"))
}

func TestPaymentService_InitiatePayment(t *testing.T) {
	t.Run("starts a gateway session", func(t *testing.T) {
		svc, deps, gateway := createTestPaymentService(t)
		ctx := context.Background()
		userID := uuid.New()
		order := placedOrder(userID, entity.OrderStatusPending, entity.PaymentMethodOnline)

		deps.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)
		gateway.EXPECT().Initiate(ctx, mock.MatchedBy(func(req *service.PaymentRequest) bool {
			return req.Amount.Equal(order.Total) && req.MerchantUserID == userID.String()
		})).RunAndReturn(func(_ context.Context, req *service.PaymentRequest) (*service.PaymentSession, error) {
			return &service.PaymentSession{MerchantTransactionID: req.MerchantTransactionID, RedirectURL: "https://pay.example.com/r/1"}, nil
		})
		deps.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		deps.tx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

		initiation, err := svc.InitiatePayment(ctx, userID, order.OrderNumber)

		require.NoError(t, err)
		assert.Equal(t, "https://pay.example.com/r/1", initiation.RedirectURL)
		assert.Equal(t, initiation.MerchantTransactionID, order.PaymentTransactionID)
		assert.Equal(t, order.OrderNumber, orderNumberFromTransaction(initiation.MerchantTransactionID))
	})

	t.Run("cod order cannot be paid online", func(t *testing.T) {
		svc, deps, _ := createTestPaymentService(t)
		ctx := context.Background()
		userID := uuid.New()
		order := placedOrder(userID, entity.OrderStatusPending, entity.PaymentMethodCOD)

		deps.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)

		_, err := svc.InitiatePayment(ctx, userID, order.OrderNumber)

		assert.True(t, errors.Is(err, domainerrors.ErrPaymentNotApplicable))
	})

	t.Run("gateway failure", func(t *testing.T) {
		svc, deps, gateway := createTestPaymentService(t)
		ctx := context.Background()
		userID := uuid.New()
		order := placedOrder(userID, entity.OrderStatusPending, entity.PaymentMethodOnline)

		deps.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)
		gateway.EXPECT().Initiate(ctx, mock.Anything).Return(nil, errors.New("503 from gateway"))

		_, err := svc.InitiatePayment(ctx, userID, order.OrderNumber)

		assert.True(t, errors.Is(err, domainerrors.ErrPaymentGateway))
	})
}

func TestPaymentService_HandleCallback(t *testing.T) {
	t.Run("success confirms a pending order", func(t *testing.T) {
		svc, deps, gateway := createTestPaymentService(t)
		ctx := context.Background()
		order := placedOrder(uuid.New(), entity.OrderStatusPending, entity.PaymentMethodOnline)
		result := successResult(order)

		gateway.EXPECT().VerifyCallback("sig###1", "payload").Return(result, nil)
		deps.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)
		deps.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		deps.tx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

		paid, err := svc.HandleCallback(ctx, "sig###1", "payload")

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusPaid, paid.PaymentStatus)
		assert.Equal(t, entity.OrderStatusConfirmed, paid.Status)
		assert.Equal(t, result.MerchantTransactionID, paid.PaymentTransactionID)
		assert.NotNil(t, paid.ConfirmedAt)
	})

	t.Run("repeated success changes nothing", func(t *testing.T) {
		svc, deps, gateway := createTestPaymentService(t)
		ctx := context.Background()
		order := placedOrder(uuid.New(), entity.OrderStatusConfirmed, entity.PaymentMethodOnline)
		order.PaymentStatus = entity.PaymentStatusPaid

		gateway.EXPECT().VerifyCallback(mock.Anything, mock.Anything).Return(successResult(order), nil)
		deps.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)
		deps.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

		got, err := svc.HandleCallback(ctx, "sig", "payload")

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusPaid, got.PaymentStatus)
		deps.tx.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("late payment on cancelled order is refunded", func(t *testing.T) {
		svc, deps, gateway := createTestPaymentService(t)
		ctx := context.Background()
		userID := uuid.New()
		order := placedOrder(userID, entity.OrderStatusCancelled, entity.PaymentMethodOnline)

		gateway.EXPECT().VerifyCallback(mock.Anything, mock.Anything).Return(successResult(order), nil)
		deps.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)
		deps.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		deps.tx.walletRepo.EXPECT().AdjustBalance(ctx, userID, decimalEq(900)).Return(decimal.NewFromInt(900), nil)
		deps.tx.walletRepo.EXPECT().CreateTransaction(ctx, mock.Anything).Return(nil)
		deps.tx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

		got, err := svc.HandleCallback(ctx, "sig", "payload")

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCancelled, got.Status)
		assert.Equal(t, entity.PaymentStatusRefunded, got.PaymentStatus)
	})

	t.Run("payment after delivery earns loyalty", func(t *testing.T) {
		svc, deps, gateway := createTestPaymentService(t)
		ctx := context.Background()
		userID := uuid.New()
		order := placedOrder(userID, entity.OrderStatusDelivered, entity.PaymentMethodOnline)

		gateway.EXPECT().VerifyCallback(mock.Anything, mock.Anything).Return(successResult(order), nil)
		deps.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)
		deps.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		deps.tx.walletRepo.EXPECT().AddLoyaltyPoints(ctx, userID, 9).Return(nil)
		deps.tx.walletRepo.EXPECT().AdjustBalance(ctx, userID, decimalEq(18)).Return(decimal.NewFromInt(18), nil)
		deps.tx.walletRepo.EXPECT().CreateTransaction(ctx, mock.Anything).Return(nil)
		deps.tx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

		got, err := svc.HandleCallback(ctx, "sig", "payload")

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusDelivered, got.Status)
		assert.Equal(t, entity.PaymentStatusPaid, got.PaymentStatus)
	})

	t.Run("declined payment marks failure", func(t *testing.T) {
		svc, deps, gateway := createTestPaymentService(t)
		ctx := context.Background()
		order := placedOrder(uuid.New(), entity.OrderStatusPending, entity.PaymentMethodOnline)
		result := successResult(order)
		result.State = service.PaymentStateDecline

		gateway.EXPECT().VerifyCallback(mock.Anything, mock.Anything).Return(result, nil)
		deps.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)
		deps.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		deps.tx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

		got, err := svc.HandleCallback(ctx, "sig", "payload")

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusFailed, got.PaymentStatus)
		assert.Equal(t, entity.OrderStatusPending, got.Status)
	})

	t.Run("amount mismatch is rejected", func(t *testing.T) {
		svc, deps, gateway := createTestPaymentService(t)
		ctx := context.Background()
		order := placedOrder(uuid.New(), entity.OrderStatusPending, entity.PaymentMethodOnline)
		result := successResult(order)
		result.Amount = decimal.NewFromInt(1)

		gateway.EXPECT().VerifyCallback(mock.Anything, mock.Anything).Return(result, nil)
		deps.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)

		_, err := svc.HandleCallback(ctx, "sig", "payload")

		assert.True(t, errors.Is(err, domainerrors.ErrPaymentGateway))
	})

	t.Run("bad checksum", func(t *testing.T) {
		svc, _, gateway := createTestPaymentService(t)

		gateway.EXPECT().VerifyCallback("forged", "payload").Return(nil, errors.New("checksum mismatch"))

		_, err := svc.HandleCallback(context.Background(), "forged", "payload")

		assert.True(t, errors.Is(err, domainerrors.ErrPaymentChecksum))
	})
}

func TestPaymentService_CheckStatus(t *testing.T) {
	t.Run("settled order skips the gateway", func(t *testing.T) {
		svc, deps, _ := createTestPaymentService(t)
		ctx := context.Background()
		userID := uuid.New()
		order := placedOrder(userID, entity.OrderStatusConfirmed, entity.PaymentMethodOnline)
		order.PaymentStatus = entity.PaymentStatusPaid
		order.PaymentTransactionID = order.OrderNumber + "-1"

		deps.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)

		got, err := svc.CheckStatus(ctx, usecase.Caller{UserID: userID}, order.OrderNumber)

		require.NoError(t, err)
		assert.Equal(t, order, got)
	})

	t.Run("polls the last attempt", func(t *testing.T) {
		svc, deps, gateway := createTestPaymentService(t)
		ctx := context.Background()
		userID := uuid.New()
		order := placedOrder(userID, entity.OrderStatusPending, entity.PaymentMethodOnline)
		order.PaymentTransactionID = order.OrderNumber + "-1760500000"

		deps.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)
		gateway.EXPECT().Status(ctx, order.PaymentTransactionID).Return(successResult(order), nil)
		deps.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		deps.tx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

		got, err := svc.CheckStatus(ctx, usecase.Caller{UserID: userID}, order.OrderNumber)

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusPaid, got.PaymentStatus)
	})

	t.Run("other customer's order", func(t *testing.T) {
		svc, deps, _ := createTestPaymentService(t)
		ctx := context.Background()
		order := placedOrder(uuid.New(), entity.OrderStatusPending, entity.PaymentMethodOnline)

		deps.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)

		_, err := svc.CheckStatus(ctx, usecase.Caller{UserID: uuid.New()}, order.OrderNumber)

		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	})
}
