package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	mockUsecase "cakes/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDispatchHandler(t *testing.T) (*DispatchHandler, *mockUsecase.MockDispatchUsecase) {
	dispatchUC := mockUsecase.NewMockDispatchUsecase(t)

	return NewDispatchHandler(DispatchHandlerParams{DispatchUC: dispatchUC, Logger: slog.Default()}), dispatchUC
}

func TestDispatchHandler_AssignDeliveryBoy(t *testing.T) {
	h, dispatchUC := newDispatchHandler(t)
	orderID := uuid.New()
	riderID := uuid.New()

	dispatchUC.EXPECT().AssignDeliveryBoy(mock.Anything, orderID, riderID).
		Return(&entity.Order{ID: orderID, DeliveryBoyID: &riderID}, nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodPatch,
		target: "/api/admin/orders/" + orderID.String() + "/assign-delivery",
		userID: uuid.New(),
		roles:  entity.Roles{entity.RoleAdmin},
		params: map[string]string{"id": orderID.String()},
		body:   AssignDeliveryRequest{DeliveryBoyID: riderID},
	})

	require.NoError(t, h.AssignDeliveryBoy(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDispatchHandler_AssignVendor_MissingVendor(t *testing.T) {
	h, _ := newDispatchHandler(t)
	orderID := uuid.New()

	c, _ := newTestContext(t, testRequest{
		method: http.MethodPatch,
		target: "/api/admin/orders/" + orderID.String() + "/assign-vendor",
		params: map[string]string{"id": orderID.String()},
		body:   AssignVendorRequest{},
	})

	assert.Error(t, h.AssignVendor(c))
}

func TestDispatchHandler_AssigneeSteps(t *testing.T) {
	assigneeID := uuid.New()
	orderID := uuid.New()

	tests := []struct {
		name   string
		role   entity.Role
		setup  func(uc *mockUsecase.MockDispatchUsecase)
		action func(h *DispatchHandler, c echo.Context) error
		status entity.OrderStatus
	}{
		{
			name: "pickup",
			role: entity.RoleDeliveryBoy,
			setup: func(uc *mockUsecase.MockDispatchUsecase) {
				uc.EXPECT().PickupOrder(mock.Anything, assigneeID, orderID).
					Return(&entity.Order{ID: orderID, Status: entity.OrderStatusOutForDelivery}, nil)
			},
			action: func(h *DispatchHandler, c echo.Context) error { return h.PickupOrder(c) },
			status: entity.OrderStatusOutForDelivery,
		},
		{
			name: "deliver",
			role: entity.RoleDeliveryBoy,
			setup: func(uc *mockUsecase.MockDispatchUsecase) {
				uc.EXPECT().DeliverOrder(mock.Anything, assigneeID, orderID).
					Return(&entity.Order{ID: orderID, Status: entity.OrderStatusDelivered}, nil)
			},
			action: func(h *DispatchHandler, c echo.Context) error { return h.DeliverOrder(c) },
			status: entity.OrderStatusDelivered,
		},
		{
			name: "accept",
			role: entity.RoleVendor,
			setup: func(uc *mockUsecase.MockDispatchUsecase) {
				uc.EXPECT().AcceptOrder(mock.Anything, assigneeID, orderID).
					Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPreparing}, nil)
			},
			action: func(h *DispatchHandler, c echo.Context) error { return h.AcceptOrder(c) },
			status: entity.OrderStatusPreparing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, dispatchUC := newDispatchHandler(t)
			tt.setup(dispatchUC)

			c, rec := newTestContext(t, testRequest{
				method: http.MethodPost,
				target: "/api/orders/" + orderID.String(),
				userID: assigneeID,
				roles:  entity.Roles{tt.role},
				params: map[string]string{"id": orderID.String()},
			})

			require.NoError(t, tt.action(h, c))

			var order entity.Order
			decodeData(t, rec, &order)
			assert.Equal(t, tt.status, order.Status)
		})
	}
}

func TestDispatchHandler_DeliverOrder_NotAssigned(t *testing.T) {
	h, dispatchUC := newDispatchHandler(t)
	riderID := uuid.New()
	orderID := uuid.New()

	dispatchUC.EXPECT().DeliverOrder(mock.Anything, riderID, orderID).Return(nil, domainerrors.ErrOrderNotAssignedToCaller)

	c, _ := newTestContext(t, testRequest{
		method: http.MethodPost,
		target: "/api/delivery/orders/" + orderID.String() + "/deliver",
		userID: riderID,
		roles:  entity.Roles{entity.RoleDeliveryBoy},
		params: map[string]string{"id": orderID.String()},
	})

	err := h.DeliverOrder(c)

	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotAssignedToCaller))
}
