package usecase

import (
	"context"
	"io"

	"cakes/internal/domain/entity"
	"cakes/internal/domain/repository"

	"github.com/google/uuid"
)

// PlaceOrderInput is a checkout request.
type PlaceOrderInput struct {
	Cart          Cart
	Delivery      entity.DeliveryOptions
	PaymentMethod entity.PaymentMethod
}

// Caller identifies who performs an order operation.
type Caller struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// IsStaff reports whether the caller works for the shop.
func (c Caller) IsStaff() bool {
	return c.Roles.HasStaffRole()
}

// OrderPage is one page of orders.
type OrderPage struct {
	Orders []*entity.Order
	Total  int64
	Page   repository.Pagination
}

// OrderUsecase covers the customer and back-office order flows.
type OrderUsecase interface {
	// PlaceOrder re-prices the cart and creates the order with its promo, wallet and number side effects.
	PlaceOrder(ctx context.Context, userID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)
	ListMyOrders(ctx context.Context, userID uuid.UUID, page repository.Pagination) (*OrderPage, error)
	// GetOrder returns the order to its owner or to staff.
	GetOrder(ctx context.Context, caller Caller, orderNumber string) (*entity.Order, error)
	TrackOrder(ctx context.Context, orderNumber string) (*entity.TrackingView, error)
	TrackingQR(ctx context.Context, orderNumber string) ([]byte, error)
	CancelOrder(ctx context.Context, userID uuid.UUID, orderNumber, reason string) (*entity.Order, error)

	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus, reason string) (*entity.Order, error)
	ListOrders(ctx context.Context, filter repository.OrderFilter) (*OrderPage, error)
	ExportOrders(ctx context.Context, filter repository.OrderFilter, w io.Writer) error
}
