package usecase

import (
	"context"

	"cakes/internal/domain/entity"
	"cakes/internal/domain/repository"

	"github.com/google/uuid"
)

// DispatchUsecase assigns orders to delivery boys and vendors and drives their steps.
type DispatchUsecase interface {
	AssignDeliveryBoy(ctx context.Context, orderID, deliveryBoyID uuid.UUID) (*entity.Order, error)
	AssignVendor(ctx context.Context, orderID, vendorID uuid.UUID) (*entity.Order, error)

	ListDeliveryOrders(ctx context.Context, deliveryBoyID uuid.UUID, status entity.OrderStatus, page repository.Pagination) (*OrderPage, error)
	PickupOrder(ctx context.Context, deliveryBoyID, orderID uuid.UUID) (*entity.Order, error)
	DeliverOrder(ctx context.Context, deliveryBoyID, orderID uuid.UUID) (*entity.Order, error)

	ListVendorOrders(ctx context.Context, vendorID uuid.UUID, status entity.OrderStatus, page repository.Pagination) (*OrderPage, error)
	AcceptOrder(ctx context.Context, vendorID, orderID uuid.UUID) (*entity.Order, error)
}
