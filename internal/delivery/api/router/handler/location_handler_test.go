package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	mockUsecase "cakes/internal/mocks/usecase"
	"cakes/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLocationHandler(t *testing.T) (*LocationHandler, *mockUsecase.MockDeliveryAreaUsecase) {
	areaUC := mockUsecase.NewMockDeliveryAreaUsecase(t)

	return NewLocationHandler(LocationHandlerParams{AreaUC: areaUC, Logger: slog.Default()}), areaUC
}

func TestLocationHandler_CheckServiceability(t *testing.T) {
	h, areaUC := newLocationHandler(t)

	areaUC.EXPECT().CheckServiceability(mock.Anything, mock.MatchedBy(func(q *usecase.LocationQuery) bool {
		return q.Pincode == "" &&
			q.Latitude != nil && *q.Latitude == 12.9716 &&
			q.Longitude != nil && *q.Longitude == 77.5946
	})).Return(&entity.DeliveryArea{Name: "Central"}, nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodGet,
		target: "/api/delivery-areas/check?lat=12.9716&lng=77.5946",
	})

	require.NoError(t, h.CheckServiceability(c))

	var area entity.DeliveryArea
	decodeData(t, rec, &area)
	assert.Equal(t, "Central", area.Name)
}

func TestLocationHandler_CheckServiceability_BadCoordinate(t *testing.T) {
	h, _ := newLocationHandler(t)
	c, _ := newTestContext(t, testRequest{
		method: http.MethodGet,
		target: "/api/delivery-areas/check?lat=north&lng=77.5",
	})

	err := h.CheckServiceability(c)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestLocationHandler_CheckServiceability_NotServiceable(t *testing.T) {
	h, areaUC := newLocationHandler(t)
	areaUC.EXPECT().CheckServiceability(mock.Anything, &usecase.LocationQuery{Pincode: "110001"}).
		Return(nil, domainerrors.ErrDeliveryAreaNotServiceable)

	c, _ := newTestContext(t, testRequest{
		method: http.MethodGet,
		target: "/api/delivery-areas/check?pincode=110001",
	})

	err := h.CheckServiceability(c)

	assert.True(t, errors.Is(err, domainerrors.ErrDeliveryAreaNotServiceable))
}
