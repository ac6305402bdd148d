package impl

import (
	"context"
	"testing"

	"cakes/internal/domain/constants"
	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/domain/service"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDispatchService(t *testing.T) (usecase.DispatchUsecase, *orderDeps) {
	deps := newOrderDeps(t)

	return NewDispatchService(DispatchServiceParams{
		Lifecycle: deps.lifecycleParams(),
		OrderRepo: deps.orderRepo,
	}), deps
}

func staffUser(role entity.Role) *entity.User {
	return &entity.User{ID: uuid.New(), Name: "Ravi", Roles: entity.Roles{role}, IsActive: true}
}

func TestDispatchService_AssignDeliveryBoy(t *testing.T) {
	t.Run("assigns and notifies the rider", func(t *testing.T) {
		deps := newOrderDeps(t)
		svc := NewDispatchService(DispatchServiceParams{Lifecycle: deps.lifecycleParams(), OrderRepo: deps.orderRepo})
		ctx := context.Background()
		order := placedOrder(uuid.New(), entity.OrderStatusConfirmed, entity.PaymentMethodCOD)
		rider := staffUser(entity.RoleDeliveryBoy)

		deps.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		deps.tx.userRepo.EXPECT().FindByID(ctx, rider.ID).Return(rider, nil)
		deps.tx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

		assigned, err := svc.AssignDeliveryBoy(ctx, order.ID, rider.ID)

		require.NoError(t, err)
		require.NotNil(t, assigned.DeliveryBoyID)
		assert.Equal(t, rider.ID, *assigned.DeliveryBoyID)
		assert.NotNil(t, assigned.AssignedAt)
		deps.publisher.AssertCalled(t, "PublishOrderEvent", ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == service.OrderEventDeliveryAssigned && e.DeliveryBoyID == rider.ID.String()
		}))
		deps.broadcaster.AssertCalled(t, "SendToUser", constants.ChannelDelivery, rider.ID, mock.Anything)
	})

	t.Run("pending order is not assignable", func(t *testing.T) {
		svc, deps := createTestDispatchService(t)
		ctx := context.Background()
		order := placedOrder(uuid.New(), entity.OrderStatusPending, entity.PaymentMethodCOD)

		deps.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

		_, err := svc.AssignDeliveryBoy(ctx, order.ID, uuid.New())

		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotAssignable))
	})

	t.Run("assignee lacks the role", func(t *testing.T) {
		svc, deps := createTestDispatchService(t)
		ctx := context.Background()
		order := placedOrder(uuid.New(), entity.OrderStatusPreparing, entity.PaymentMethodCOD)
		vendor := staffUser(entity.RoleVendor)

		deps.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		deps.tx.userRepo.EXPECT().FindByID(ctx, vendor.ID).Return(vendor, nil)

		_, err := svc.AssignDeliveryBoy(ctx, order.ID, vendor.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrAssigneeRoleMismatch))
	})
}

func TestDispatchService_AssignVendor(t *testing.T) {
	svc, deps := createTestDispatchService(t)
	ctx := context.Background()
	order := placedOrder(uuid.New(), entity.OrderStatusPending, entity.PaymentMethodOnline)
	vendor := staffUser(entity.RoleVendor)

	deps.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	deps.tx.userRepo.EXPECT().FindByID(ctx, vendor.ID).Return(vendor, nil)
	deps.tx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

	assigned, err := svc.AssignVendor(ctx, order.ID, vendor.ID)

	require.NoError(t, err)
	assert.Equal(t, vendor.ID, *assigned.VendorID)
}

func TestDispatchService_Steps(t *testing.T) {
	t.Run("vendor accepts a confirmed order", func(t *testing.T) {
		svc, deps := createTestDispatchService(t)
		ctx := context.Background()
		vendorID := uuid.New()
		order := placedOrder(uuid.New(), entity.OrderStatusConfirmed, entity.PaymentMethodCOD)
		order.VendorID = &vendorID

		deps.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		deps.tx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

		accepted, err := svc.AcceptOrder(ctx, vendorID, order.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusPreparing, accepted.Status)
	})

	t.Run("rider picks up a prepared order", func(t *testing.T) {
		svc, deps := createTestDispatchService(t)
		ctx := context.Background()
		riderID := uuid.New()
		order := placedOrder(uuid.New(), entity.OrderStatusPreparing, entity.PaymentMethodCOD)
		order.DeliveryBoyID = &riderID

		deps.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		deps.tx.orderRepo.EXPECT().Update(ctx, order).Return(nil)

		picked, err := svc.PickupOrder(ctx, riderID, order.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusOutForDelivery, picked.Status)
		assert.NotNil(t, picked.OutForDeliveryAt)
	})

	t.Run("another rider cannot deliver", func(t *testing.T) {
		svc, deps := createTestDispatchService(t)
		ctx := context.Background()
		riderID := uuid.New()
		order := placedOrder(uuid.New(), entity.OrderStatusOutForDelivery, entity.PaymentMethodCOD)
		order.DeliveryBoyID = &riderID

		deps.tx.orderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

		_, err := svc.DeliverOrder(ctx, uuid.New(), order.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotAssignedToCaller))
	})
}

func TestDispatchService_ListDeliveryOrders(t *testing.T) {
	svc, deps := createTestDispatchService(t)
	ctx := context.Background()
	riderID := uuid.New()
	orders := []*entity.Order{placedOrder(uuid.New(), entity.OrderStatusOutForDelivery, entity.PaymentMethodCOD)}

	deps.orderRepo.EXPECT().List(ctx, mock.MatchedBy(func(f repository.OrderFilter) bool {
		return f.DeliveryBoyID != nil && *f.DeliveryBoyID == riderID && f.Page.Limit == repository.DefaultPageSize
	})).Return(orders, int64(1), nil)

	page, err := svc.ListDeliveryOrders(ctx, riderID, "", repository.Pagination{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.Orders, 1)

	_, err = svc.ListDeliveryOrders(ctx, riderID, "lost", repository.Pagination{})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
