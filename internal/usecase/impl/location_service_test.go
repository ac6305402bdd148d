package impl

import (
	"context"
	"testing"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	mockRepo "cakes/internal/mocks/repository"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestLocationService(t *testing.T) (usecase.DeliveryAreaUsecase, *mockRepo.MockDeliveryAreaRepository) {
	areaRepo := mockRepo.NewMockDeliveryAreaRepository(t)

	return NewLocationService(areaRepo, newDiscardLogger()), areaRepo
}

func ptr[T any](v T) *T {
	return &v
}

// Central Bengaluru, 5 km around MG Road.
func radiusArea() *entity.DeliveryArea {
	return &entity.DeliveryArea{
		ID:              uuid.New(),
		Name:            "Central",
		CenterLatitude:  12.9756,
		CenterLongitude: 77.6066,
		RadiusKm:        5,
		DeliveryFee:     decimal.NewFromInt(49),
		IsActive:        true,
	}
}

// A small square around Koramangala, which also lies inside the central radius.
func boundaryArea() *entity.DeliveryArea {
	return &entity.DeliveryArea{
		ID:   uuid.New(),
		Name: "Koramangala",
		Boundary: [][2]float64{
			{77.610, 12.925}, {77.640, 12.925}, {77.640, 12.945}, {77.610, 12.945},
		},
		DeliveryFee: decimal.NewFromInt(29),
		IsActive:    true,
	}
}

func TestLocationService_CreateArea(t *testing.T) {
	t.Run("normalises pincodes", func(t *testing.T) {
		service, areaRepo := createTestLocationService(t)
		ctx := context.Background()

		areaRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.DeliveryArea")).Return(nil)

		area, err := service.CreateArea(ctx, &usecase.DeliveryAreaInput{
			Name:        " Central ",
			Pincodes:    []string{"560001", " 560001", "", "560025"},
			DeliveryFee: decimal.NewFromInt(49),
			IsActive:    true,
		})

		require.NoError(t, err)
		assert.Equal(t, "Central", area.Name)
		assert.Equal(t, []string{"560001", "560025"}, area.Pincodes)
	})

	invalid := map[string]*usecase.DeliveryAreaInput{
		"missing name":     {Name: " "},
		"negative fee":     {Name: "A", DeliveryFee: decimal.NewFromInt(-1)},
		"negative radius":  {Name: "A", RadiusKm: -2},
		"two point ring":   {Name: "A", Boundary: [][2]float64{{77.6, 12.9}, {77.7, 12.9}}},
		"latitude too big": {Name: "A", Boundary: [][2]float64{{77.6, 91}, {77.7, 12.9}, {77.7, 13}}},
	}
	for name, input := range invalid {
		t.Run(name, func(t *testing.T) {
			service, _ := createTestLocationService(t)

			area, err := service.CreateArea(context.Background(), input)

			assert.Nil(t, area)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestLocationService_CheckServiceability(t *testing.T) {
	t.Run("pincode match", func(t *testing.T) {
		service, areaRepo := createTestLocationService(t)
		ctx := context.Background()
		area := radiusArea()

		areaRepo.EXPECT().FindByPincode(ctx, "560001").Return(area, nil)

		found, err := service.CheckServiceability(ctx, &usecase.LocationQuery{Pincode: " 560001 "})

		require.NoError(t, err)
		assert.Equal(t, area.ID, found.ID)
	})

	t.Run("boundary preferred over radius", func(t *testing.T) {
		service, areaRepo := createTestLocationService(t)
		ctx := context.Background()
		central, koramangala := radiusArea(), boundaryArea()

		areaRepo.EXPECT().FindByPincode(ctx, "560095").Return(nil, repository.ErrDeliveryAreaNotFound)
		areaRepo.EXPECT().List(ctx, true).Return([]*entity.DeliveryArea{central, koramangala}, nil)

		found, err := service.CheckServiceability(ctx, &usecase.LocationQuery{
			Pincode:   "560095",
			Latitude:  ptr(12.935),
			Longitude: ptr(77.625),
		})

		require.NoError(t, err)
		assert.Equal(t, koramangala.ID, found.ID)
	})

	t.Run("radius match", func(t *testing.T) {
		service, areaRepo := createTestLocationService(t)
		ctx := context.Background()
		central := radiusArea()

		areaRepo.EXPECT().List(ctx, true).Return([]*entity.DeliveryArea{central, boundaryArea()}, nil)

		found, err := service.CheckServiceability(ctx, &usecase.LocationQuery{Latitude: ptr(12.9716), Longitude: ptr(77.5946)})

		require.NoError(t, err)
		assert.Equal(t, central.ID, found.ID)
	})

	t.Run("outside every area", func(t *testing.T) {
		service, areaRepo := createTestLocationService(t)
		ctx := context.Background()

		areaRepo.EXPECT().List(ctx, true).Return([]*entity.DeliveryArea{radiusArea()}, nil)

		found, err := service.CheckServiceability(ctx, &usecase.LocationQuery{Latitude: ptr(13.2), Longitude: ptr(77.7)})

		assert.Nil(t, found)
		assert.True(t, errors.Is(err, domainerrors.ErrDeliveryAreaNotServiceable))
	})

	t.Run("unknown pincode without point", func(t *testing.T) {
		service, areaRepo := createTestLocationService(t)
		ctx := context.Background()

		areaRepo.EXPECT().FindByPincode(ctx, "110001").Return(nil, repository.ErrDeliveryAreaNotFound)

		_, err := service.CheckServiceability(ctx, &usecase.LocationQuery{Pincode: "110001"})

		assert.True(t, errors.Is(err, domainerrors.ErrDeliveryAreaNotServiceable))
	})

	t.Run("nothing to match", func(t *testing.T) {
		service, _ := createTestLocationService(t)

		_, err := service.CheckServiceability(context.Background(), &usecase.LocationQuery{})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}
