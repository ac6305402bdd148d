package repository

import (
	"context"
	"errors"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeliveryAreaNotFound is returned when a delivery area is not found.
var ErrDeliveryAreaNotFound = errors.New("delivery area not found")

// DeliveryAreaRepository persists serviceable zones.
type DeliveryAreaRepository interface {
	Create(ctx context.Context, area *entity.DeliveryArea) error
	Update(ctx context.Context, area *entity.DeliveryArea) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryArea, error)
	// FindByPincode returns the active area listing pincode.
	FindByPincode(ctx context.Context, pincode string) (*entity.DeliveryArea, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.DeliveryArea, error)
}
