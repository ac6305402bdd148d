package impl

import (
	"bytes"
	"context"
	"io"
	"testing"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	mockService "cakes/internal/mocks/service"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixture struct {
	*orderDeps
	qr       *mockService.MockQRCodeService
	exporter *mockService.MockOrderExporter
	service  usecase.OrderUsecase
}

func newOrderServiceFixture(t *testing.T) *orderServiceFixture {
	deps := newOrderDeps(t)
	f := &orderServiceFixture{
		orderDeps: deps,
		qr:        mockService.NewMockQRCodeService(t),
		exporter:  mockService.NewMockOrderExporter(t),
	}
	f.service = NewOrderService(OrderServiceParams{
		Pricer:    deps.pricerParams(),
		Lifecycle: deps.lifecycleParams(),
		OrderRepo: deps.orderRepo,
		QRService: f.qr,
		Exporter:  f.exporter,
	})

	return f
}

// expectPricing stubs the catalog and area lookups for a single 1kg cake line.
func (f *orderServiceFixture) expectPricing(ctx context.Context, cake *entity.Cake) {
	f.cakeRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{cake.ID}).Return([]*entity.Cake{cake}, nil)
	f.areaRepo.EXPECT().FindByPincode(ctx, "560001").Return(testArea(), nil)
}

func placeInput(cake *entity.Cake, method entity.PaymentMethod) *usecase.PlaceOrderInput {
	return &usecase.PlaceOrderInput{
		Cart: usecase.Cart{
			Items:   []usecase.CartItem{{CakeID: cake.ID, Weight: "1kg", Quantity: 1}},
			Address: testAddress(),
		},
		Delivery:      entity.DeliveryOptions{Date: tomorrow(), Slot: "18:00-21:00"},
		PaymentMethod: method,
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	t.Run("consumes promo and debits wallet", func(t *testing.T) {
		f := newOrderServiceFixture(t)
		ctx := context.Background()
		userID := uuid.New()
		cake := testCake()
		promo := &entity.PromoCode{
			ID:            uuid.New(),
			Code:          "FLAT100",
			DiscountType:  entity.DiscountTypeFixed,
			DiscountValue: decimal.NewFromInt(100),
			IsActive:      true,
		}
		input := placeInput(cake, entity.PaymentMethodOnline)
		input.Cart.PromoCode = "FLAT100"
		input.Cart.UseWallet = true

		f.expectPricing(ctx, cake)
		f.promoRepo.EXPECT().FindByCode(ctx, "FLAT100").Return(promo, nil)
		f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, WalletBalance: decimal.NewFromInt(200)}, nil)

		f.tx.promoRepo.EXPECT().ConsumeUsage(ctx, promo.ID).Return(nil)
		f.tx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
		f.tx.walletRepo.EXPECT().AdjustBalance(ctx, userID, decimalEq(-200)).Return(decimal.Zero, nil)
		f.tx.walletRepo.EXPECT().CreateTransaction(ctx, mock.MatchedBy(func(txn *entity.WalletTransaction) bool {
			return txn.Type == entity.WalletDebit && txn.Amount.Equal(decimal.NewFromInt(200))
		})).Return(nil)

		order, err := f.service.PlaceOrder(ctx, userID, input)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusPending, order.Status)
		assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
		assert.Equal(t, "FLAT100", order.PromoCode)
		assert.Regexp(t, `^CK\d{12}$`, order.OrderNumber)
		// 850 + 50 delivery - 100 promo - 200 wallet.
		assert.True(t, decimal.NewFromInt(600).Equal(order.Total))
		assert.NotEmpty(t, order.Delivery.AreaID)
	})

	t.Run("wallet payment covers everything", func(t *testing.T) {
		f := newOrderServiceFixture(t)
		ctx := context.Background()
		userID := uuid.New()
		cake := testCake()

		f.expectPricing(ctx, cake)
		f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, WalletBalance: decimal.NewFromInt(5000)}, nil)
		f.tx.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		f.tx.walletRepo.EXPECT().AdjustBalance(ctx, userID, decimalEq(-900)).Return(decimal.NewFromInt(4100), nil)
		f.tx.walletRepo.EXPECT().CreateTransaction(ctx, mock.Anything).Return(nil)

		order, err := f.service.PlaceOrder(ctx, userID, placeInput(cake, entity.PaymentMethodWallet))

		require.NoError(t, err)
		assert.True(t, order.Total.IsZero())
		assert.Equal(t, entity.PaymentStatusPaid, order.PaymentStatus)
	})

	t.Run("wallet payment short of total", func(t *testing.T) {
		f := newOrderServiceFixture(t)
		ctx := context.Background()
		userID := uuid.New()
		cake := testCake()

		f.expectPricing(ctx, cake)
		f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, WalletBalance: decimal.NewFromInt(100)}, nil)

		_, err := f.service.PlaceOrder(ctx, userID, placeInput(cake, entity.PaymentMethodWallet))

		assert.True(t, errors.Is(err, domainerrors.ErrWalletNotCoveringOrder))
	})

	t.Run("retries on order number collision", func(t *testing.T) {
		f := newOrderServiceFixture(t)
		ctx := context.Background()
		cake := testCake()

		f.expectPricing(ctx, cake)
		f.tx.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateOrderNumber).Once()
		f.tx.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()

		order, err := f.service.PlaceOrder(ctx, uuid.New(), placeInput(cake, entity.PaymentMethodCOD))

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentMethodCOD, order.PaymentMethod)
	})

	t.Run("delivery date in the past", func(t *testing.T) {
		f := newOrderServiceFixture(t)
		input := placeInput(testCake(), entity.PaymentMethodCOD)
		input.Delivery.Date = "2020-01-01"

		_, err := f.service.PlaceOrder(context.Background(), uuid.New(), input)

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("unknown payment method", func(t *testing.T) {
		f := newOrderServiceFixture(t)

		_, err := f.service.PlaceOrder(context.Background(), uuid.New(), placeInput(testCake(), "cheque"))

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidPaymentMethod))
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()
	order := placedOrder(ownerID, entity.OrderStatusPending, entity.PaymentMethodCOD)

	f.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)

	got, err := f.service.GetOrder(ctx, usecase.Caller{UserID: ownerID, Roles: entity.Roles{entity.RoleCustomer}}, order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, order, got)

	_, err = f.service.GetOrder(ctx, usecase.Caller{UserID: uuid.New(), Roles: entity.Roles{entity.RoleCustomer}}, order.OrderNumber)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))

	got, err = f.service.GetOrder(ctx, usecase.Caller{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}, order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestOrderService_TrackingQR(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	order := placedOrder(uuid.New(), entity.OrderStatusConfirmed, entity.PaymentMethodCOD)

	f.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)
	f.qr.EXPECT().GenerateTrackingQR(order.OrderNumber).Return([]byte("png"), nil)

	png, err := f.service.TrackingQR(ctx, order.OrderNumber)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestOrderService_CancelOrder(t *testing.T) {
	t.Run("refunds paid online order and releases promo", func(t *testing.T) {
		f := newOrderServiceFixture(t)
		ctx := context.Background()
		userID := uuid.New()
		order := placedOrder(userID, entity.OrderStatusConfirmed, entity.PaymentMethodOnline)
		order.PaymentStatus = entity.PaymentStatusPaid
		order.WalletUsed = decimal.NewFromInt(100)
		order.PromoCode = "SWEET10"
		promo := percentPromo(10, 0)

		f.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)
		f.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		f.tx.walletRepo.EXPECT().AdjustBalance(ctx, userID, decimalEq(1000)).Return(decimal.NewFromInt(1000), nil)
		f.tx.walletRepo.EXPECT().CreateTransaction(ctx, mock.MatchedBy(func(txn *entity.WalletTransaction) bool {
			return txn.Type == entity.WalletCredit && *txn.OrderID == order.ID
		})).Return(nil)
		f.tx.promoRepo.EXPECT().FindByCode(ctx, "SWEET10").Return(promo, nil)
		f.tx.promoRepo.EXPECT().ReleaseUsage(ctx, promo.ID).Return(nil)
		f.tx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

		cancelled, err := f.service.CancelOrder(ctx, userID, order.OrderNumber, " changed plans ")

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
		assert.Equal(t, entity.PaymentStatusRefunded, cancelled.PaymentStatus)
		assert.Equal(t, "changed plans", cancelled.CancelReason)
		assert.NotNil(t, cancelled.CancelledAt)
	})

	t.Run("unpaid cod order has nothing to refund", func(t *testing.T) {
		f := newOrderServiceFixture(t)
		ctx := context.Background()
		userID := uuid.New()
		order := placedOrder(userID, entity.OrderStatusPending, entity.PaymentMethodCOD)

		f.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)
		f.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		f.tx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

		cancelled, err := f.service.CancelOrder(ctx, userID, order.OrderNumber, "")

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusPending, cancelled.PaymentStatus)
	})

	t.Run("too late to cancel", func(t *testing.T) {
		f := newOrderServiceFixture(t)
		ctx := context.Background()
		userID := uuid.New()
		order := placedOrder(userID, entity.OrderStatusPreparing, entity.PaymentMethodCOD)

		f.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)
		f.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

		_, err := f.service.CancelOrder(ctx, userID, order.OrderNumber, "")

		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotCancellable))
	})

	t.Run("someone else's order", func(t *testing.T) {
		f := newOrderServiceFixture(t)
		ctx := context.Background()
		order := placedOrder(uuid.New(), entity.OrderStatusPending, entity.PaymentMethodCOD)

		f.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)
		f.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

		_, err := f.service.CancelOrder(ctx, uuid.New(), order.OrderNumber, "")

		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	t.Run("delivered cod order is paid and earns loyalty", func(t *testing.T) {
		f := newOrderServiceFixture(t)
		ctx := context.Background()
		userID := uuid.New()
		order := placedOrder(userID, entity.OrderStatusOutForDelivery, entity.PaymentMethodCOD)

		f.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		// 900 earns 9 points at 1 per hundred and 18.00 cashback at 2%.
		f.tx.walletRepo.EXPECT().AddLoyaltyPoints(ctx, userID, 9).Return(nil)
		f.tx.walletRepo.EXPECT().AdjustBalance(ctx, userID, decimalEq(18)).Return(decimal.NewFromInt(18), nil)
		f.tx.walletRepo.EXPECT().CreateTransaction(ctx, mock.Anything).Return(nil)
		f.tx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

		delivered, err := f.service.UpdateStatus(ctx, order.ID, entity.OrderStatusDelivered, "")

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusDelivered, delivered.Status)
		assert.Equal(t, entity.PaymentStatusPaid, delivered.PaymentStatus)
		assert.NotNil(t, delivered.DeliveredAt)
	})

	t.Run("unpaid online order is delivered without loyalty", func(t *testing.T) {
		f := newOrderServiceFixture(t)
		ctx := context.Background()
		order := placedOrder(uuid.New(), entity.OrderStatusOutForDelivery, entity.PaymentMethodOnline)

		f.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		f.tx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

		delivered, err := f.service.UpdateStatus(ctx, order.ID, entity.OrderStatusDelivered, "")

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusDelivered, delivered.Status)
		assert.Equal(t, entity.PaymentStatusPending, delivered.PaymentStatus)
		f.tx.walletRepo.AssertNotCalled(t, "AddLoyaltyPoints", mock.Anything, mock.Anything, mock.Anything)
		f.tx.walletRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid transition", func(t *testing.T) {
		f := newOrderServiceFixture(t)
		ctx := context.Background()
		order := placedOrder(uuid.New(), entity.OrderStatusPending, entity.PaymentMethodCOD)

		f.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

		_, err := f.service.UpdateStatus(ctx, order.ID, entity.OrderStatusDelivered, "")

		assert.True(t, errors.Is(err, domainerrors.ErrOrderInvalidTransition))
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newOrderServiceFixture(t)

		_, err := f.service.UpdateStatus(context.Background(), uuid.New(), "baking", "")

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestOrderService_ExportOrders(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	orders := []*entity.Order{
		placedOrder(uuid.New(), entity.OrderStatusPending, entity.PaymentMethodCOD),
		placedOrder(uuid.New(), entity.OrderStatusDelivered, entity.PaymentMethodOnline),
	}

	f.orderRepo.EXPECT().List(ctx, mock.MatchedBy(func(filter repository.OrderFilter) bool {
		return filter.Page.Page == 1 && filter.Page.Limit == repository.MaxPageSize
	})).Return(orders, int64(2), nil)
	f.exporter.EXPECT().ExportOrders(mock.Anything, orders).RunAndReturn(func(w io.Writer, _ []*entity.Order) error {
		_, err := w.Write([]byte("xlsx"))

		return err
	})

	var buf bytes.Buffer
	err := f.service.ExportOrders(ctx, repository.OrderFilter{}, &buf)

	require.NoError(t, err)
	assert.Equal(t, "xlsx", buf.String())
}
