package usecase

import (
	"context"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryAreaInput is the writable part of a delivery area.
type DeliveryAreaInput struct {
	Name                  string
	Pincodes              []string
	DeliveryFee           decimal.Decimal
	FreeDeliveryThreshold decimal.Decimal
	CenterLatitude        float64
	CenterLongitude       float64
	RadiusKm              float64
	Boundary              [][2]float64
	IsActive              bool
}

// LocationQuery identifies where an order would be delivered. Coordinates are optional.
type LocationQuery struct {
	Pincode   string
	Latitude  *float64
	Longitude *float64
}

// DeliveryAreaUsecase manages serviceable zones and answers coverage checks.
type DeliveryAreaUsecase interface {
	CreateArea(ctx context.Context, input *DeliveryAreaInput) (*entity.DeliveryArea, error)
	UpdateArea(ctx context.Context, id uuid.UUID, input *DeliveryAreaInput) (*entity.DeliveryArea, error)
	DeleteArea(ctx context.Context, id uuid.UUID) error
	ListAreas(ctx context.Context, activeOnly bool) ([]*entity.DeliveryArea, error)
	// CheckServiceability finds the active area covering the location: exact pincode first,
	// then boundary polygon, then radius.
	CheckServiceability(ctx context.Context, query *LocationQuery) (*entity.DeliveryArea, error)
}
