package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"cakes/internal/delivery/api/response"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	AreaUC usecase.DeliveryAreaUsecase
	Logger *slog.Logger
}

// LocationHandler serves delivery areas and coverage checks.
type LocationHandler struct {
	areaUC usecase.DeliveryAreaUsecase
	logger *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler.
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		areaUC: params.AreaUC,
		logger: params.Logger,
	}
}

// DeliveryAreaRequest is the body of delivery area create and update.
type DeliveryAreaRequest struct {
	Name                  string          `json:"name" validate:"required,max=100"`
	Pincodes              []string        `json:"pincodes" validate:"dive,len=6,numeric"`
	DeliveryFee           decimal.Decimal `json:"delivery_fee"`
	FreeDeliveryThreshold decimal.Decimal `json:"free_delivery_threshold"`
	CenterLatitude        float64         `json:"center_latitude" validate:"latitude"`
	CenterLongitude       float64         `json:"center_longitude" validate:"longitude"`
	RadiusKm              float64         `json:"radius_km" validate:"gte=0"`
	Boundary              [][2]float64    `json:"boundary"`
	IsActive              *bool           `json:"is_active"`
}

func (r *DeliveryAreaRequest) toInput() *usecase.DeliveryAreaInput {
	return &usecase.DeliveryAreaInput{
		Name:                  r.Name,
		Pincodes:              r.Pincodes,
		DeliveryFee:           r.DeliveryFee,
		FreeDeliveryThreshold: r.FreeDeliveryThreshold,
		CenterLatitude:        r.CenterLatitude,
		CenterLongitude:       r.CenterLongitude,
		RadiusKm:              r.RadiusKm,
		Boundary:              r.Boundary,
		IsActive:              flagOrTrue(r.IsActive),
	}
}

// floatQuery reads an optional coordinate. A present but malformed value is an error.
func floatQuery(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be a number"))
	}

	return &v, nil
}

// CheckServiceability answers whether the shop delivers to a pincode or point.
func (h *LocationHandler) CheckServiceability(c echo.Context) error {
	lat, err := floatQuery(c, "lat")
	if err != nil {
		return err
	}
	lng, err := floatQuery(c, "lng")
	if err != nil {
		return err
	}

	area, err := h.areaUC.CheckServiceability(c.Request().Context(), &usecase.LocationQuery{
		Pincode:   c.QueryParam("pincode"),
		Latitude:  lat,
		Longitude: lng,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, area)
}

// ListAreas returns every delivery area.
func (h *LocationHandler) ListAreas(c echo.Context) error {
	areas, err := h.areaUC.ListAreas(c.Request().Context(), false)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, areas)
}

// CreateArea adds a delivery area.
func (h *LocationHandler) CreateArea(c echo.Context) error {
	var req DeliveryAreaRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	area, err := h.areaUC.CreateArea(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, area)
}

// UpdateArea replaces a delivery area.
func (h *LocationHandler) UpdateArea(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req DeliveryAreaRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	area, err := h.areaUC.UpdateArea(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, area)
}

// DeleteArea removes a delivery area.
func (h *LocationHandler) DeleteArea(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.areaUC.DeleteArea(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Delivery area deleted"})
}
