package repository

import (
	"context"
	"errors"
	"time"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrderNumber is returned when the generated order number is already used.
	ErrDuplicateOrderNumber = errors.New("order number already exists")
)

// OrderFilter narrows an order listing. Zero values mean "any".
type OrderFilter struct {
	UserID        *uuid.UUID
	DeliveryBoyID *uuid.UUID
	VendorID      *uuid.UUID
	Status        entity.OrderStatus
	From          *time.Time
	To            *time.Time
	Page          Pagination
}

// OrderRepository persists orders.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// Update saves the mutable state of an order: status, timeline, payment and assignment.
	Update(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
	// FindByIDForUpdate loads an order and locks its row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// List returns one page of orders, newest first, together with the total match count.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, int64, error)
}
