package handler

import (
	"context"
	"log/slog"
	"net/http"

	"cakes/internal/delivery/api/response"
	"cakes/internal/domain/entity"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DispatchHandlerParams holds dependencies for DispatchHandler, injected by Fx.
type DispatchHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
	Logger     *slog.Logger
}

// DispatchHandler serves assignments and the delivery boy and vendor work queues.
type DispatchHandler struct {
	dispatchUC usecase.DispatchUsecase
	logger     *slog.Logger
}

// NewDispatchHandler is the constructor for DispatchHandler.
func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: params.DispatchUC,
		logger:     params.Logger,
	}
}

// AssignDeliveryRequest names the delivery boy for an order.
type AssignDeliveryRequest struct {
	DeliveryBoyID uuid.UUID `json:"delivery_boy_id" validate:"required"`
}

// AssignVendorRequest names the vendor for an order.
type AssignVendorRequest struct {
	VendorID uuid.UUID `json:"vendor_id" validate:"required"`
}

// AssignDeliveryBoy hands an order to a delivery boy.
func (h *DispatchHandler) AssignDeliveryBoy(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req AssignDeliveryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.dispatchUC.AssignDeliveryBoy(c.Request().Context(), orderID, req.DeliveryBoyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// AssignVendor hands an order to a vendor.
func (h *DispatchHandler) AssignVendor(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req AssignVendorRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.dispatchUC.AssignVendor(c.Request().Context(), orderID, req.VendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ListDeliveryOrders lists the orders assigned to the calling delivery boy.
func (h *DispatchHandler) ListDeliveryOrders(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	page, err := h.dispatchUC.ListDeliveryOrders(c.Request().Context(), userID,
		entity.OrderStatus(c.QueryParam("status")), paginationFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newListResponse(page.Orders, page.Total, page.Page))
}

// PickupOrder marks an order out for delivery.
func (h *DispatchHandler) PickupOrder(c echo.Context) error {
	return h.assigneeStep(c, h.dispatchUC.PickupOrder)
}

// DeliverOrder marks an order delivered.
func (h *DispatchHandler) DeliverOrder(c echo.Context) error {
	return h.assigneeStep(c, h.dispatchUC.DeliverOrder)
}

// ListVendorOrders lists the orders assigned to the calling vendor.
func (h *DispatchHandler) ListVendorOrders(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	page, err := h.dispatchUC.ListVendorOrders(c.Request().Context(), userID,
		entity.OrderStatus(c.QueryParam("status")), paginationFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newListResponse(page.Orders, page.Total, page.Page))
}

// AcceptOrder lets the assigned vendor start preparing an order.
func (h *DispatchHandler) AcceptOrder(c echo.Context) error {
	return h.assigneeStep(c, h.dispatchUC.AcceptOrder)
}

// assigneeStep runs an assignee action on the order in the path.
func (h *DispatchHandler) assigneeStep(c echo.Context, step func(ctx context.Context, assigneeID, orderID uuid.UUID) (*entity.Order, error)) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	order, err := step(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}
