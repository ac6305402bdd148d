package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"cakes/internal/delivery/api/response"
	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	dateLayout       = "2006-01-02"
	xlsxContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pngContentType   = "image/png"
	exportFileFormat = "orders-20060102.xlsx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	OrderUC    usecase.OrderUsecase
	Logger     *slog.Logger
}

// OrderHandler serves checkout, customer orders and the back-office order desk.
type OrderHandler struct {
	checkoutUC usecase.CheckoutUsecase
	orderUC    usecase.OrderUsecase
	logger     *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		checkoutUC: params.CheckoutUC,
		orderUC:    params.OrderUC,
		logger:     params.Logger,
	}
}

// CartAddonRequest is an addon line of a cart.
type CartAddonRequest struct {
	AddonID  uuid.UUID `json:"addon_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"gte=1"`
}

// CartItemRequest is a cake line of a cart.
type CartItemRequest struct {
	CakeID   uuid.UUID          `json:"cake_id" validate:"required"`
	Weight   string             `json:"weight"`
	Flavor   string             `json:"flavor"`
	Message  string             `json:"message" validate:"max=100"`
	Quantity int                `json:"quantity" validate:"gte=1"`
	Addons   []CartAddonRequest `json:"addons" validate:"dive"`
}

// QuoteRequest prices a cart for a location.
type QuoteRequest struct {
	Items     []CartItemRequest `json:"items" validate:"required,min=1,dive"`
	Pincode   string            `json:"pincode" validate:"required,len=6,numeric"`
	Latitude  float64           `json:"latitude" validate:"latitude"`
	Longitude float64           `json:"longitude" validate:"longitude"`
	PromoCode string            `json:"promo_code"`
	UseWallet bool              `json:"use_wallet"`
}

// PlaceOrderRequest is the checkout body.
type PlaceOrderRequest struct {
	Items         []CartItemRequest      `json:"items" validate:"required,min=1,dive"`
	Address       entity.Address         `json:"address"`
	Delivery      entity.DeliveryOptions `json:"delivery"`
	PaymentMethod entity.PaymentMethod   `json:"payment_method" validate:"required,oneof=online cod wallet"`
	PromoCode     string                 `json:"promo_code"`
	UseWallet     bool                   `json:"use_wallet"`
}

// CancelOrderRequest explains a customer cancellation.
type CancelOrderRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// UpdateStatusRequest moves an order along the status machine.
type UpdateStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
	Reason string             `json:"reason" validate:"max=500"`
}

// QuoteResponse is a priced cart.
type QuoteResponse struct {
	Items       []entity.OrderItem   `json:"items"`
	Area        *entity.DeliveryArea `json:"area"`
	PromoCode   string               `json:"promo_code,omitempty"`
	Subtotal    decimal.Decimal      `json:"subtotal"`
	DeliveryFee decimal.Decimal      `json:"delivery_fee"`
	Discount    decimal.Decimal      `json:"discount"`
	WalletUsed  decimal.Decimal      `json:"wallet_used"`
	Total       decimal.Decimal      `json:"total"`
}

func cartItems(items []CartItemRequest) []usecase.CartItem {
	out := make([]usecase.CartItem, 0, len(items))
	for _, item := range items {
		addons := make([]usecase.CartAddon, 0, len(item.Addons))
		for _, addon := range item.Addons {
			addons = append(addons, usecase.CartAddon{AddonID: addon.AddonID, Quantity: addon.Quantity})
		}
		out = append(out, usecase.CartItem{
			CakeID:   item.CakeID,
			Weight:   item.Weight,
			Flavor:   item.Flavor,
			Message:  item.Message,
			Quantity: item.Quantity,
			Addons:   addons,
		})
	}

	return out
}

func newQuoteResponse(quote *usecase.Quote) *QuoteResponse {
	resp := &QuoteResponse{
		Items:       quote.Items,
		Area:        quote.Area,
		Subtotal:    quote.Subtotal,
		DeliveryFee: quote.DeliveryFee,
		Discount:    quote.Discount,
		WalletUsed:  quote.WalletUsed,
		Total:       quote.Total,
	}
	if quote.Promo != nil {
		resp.PromoCode = quote.Promo.Code
	}

	return resp
}

// Quote prices a cart without placing it.
func (h *OrderHandler) Quote(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req QuoteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	quote, err := h.checkoutUC.Quote(c.Request().Context(), userID, &usecase.Cart{
		Items: cartItems(req.Items),
		Address: entity.Address{
			Pincode:   req.Pincode,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
		PromoCode: req.PromoCode,
		UseWallet: req.UseWallet,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newQuoteResponse(quote))
}

// PlaceOrder re-prices the cart and creates the order.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req PlaceOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), userID, &usecase.PlaceOrderInput{
		Cart: usecase.Cart{
			Items:     cartItems(req.Items),
			Address:   req.Address,
			PromoCode: req.PromoCode,
			UseWallet: req.UseWallet,
		},
		Delivery:      req.Delivery,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// ListMyOrders lists the caller's orders, newest first.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	page, err := h.orderUC.ListMyOrders(c.Request().Context(), userID, paginationFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newListResponse(page.Orders, page.Total, page.Page))
}

// GetOrder returns an order to its owner or to staff.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), caller, c.Param("orderNumber"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// TrackOrder returns the public tracking view.
func (h *OrderHandler) TrackOrder(c echo.Context) error {
	view, err := h.orderUC.TrackOrder(c.Request().Context(), c.Param("orderNumber"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// TrackingQR returns a PNG QR code pointing at the tracking page.
func (h *OrderHandler) TrackingQR(c echo.Context) error {
	png, err := h.orderUC.TrackingQR(c.Request().Context(), c.Param("orderNumber"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, pngContentType, png)
}

// CancelOrder lets the owner cancel an order that is not being prepared yet.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CancelOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.CancelOrder(c.Request().Context(), userID, c.Param("orderNumber"), req.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateStatus moves an order to a new status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), id, req.Status, req.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// orderFilterFrom reads status and an inclusive from/to date range from the query.
func orderFilterFrom(c echo.Context) (repository.OrderFilter, error) {
	filter := repository.OrderFilter{
		Status: entity.OrderStatus(c.QueryParam("status")),
		Page:   paginationFromQuery(c),
	}

	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("from must be YYYY-MM-DD"))
		}
		filter.From = &from
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("to must be YYYY-MM-DD"))
		}
		end := to.AddDate(0, 0, 1)
		filter.To = &end
	}

	return filter, nil
}

// ListOrders is the back-office order listing.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	filter, err := orderFilterFrom(c)
	if err != nil {
		return err
	}

	page, err := h.orderUC.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newListResponse(page.Orders, page.Total, page.Page))
}

// ExportOrders downloads the filtered orders as a spreadsheet.
func (h *OrderHandler) ExportOrders(c echo.Context) error {
	filter, err := orderFilterFrom(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := h.orderUC.ExportOrders(c.Request().Context(), filter, &buf); err != nil {
		return errors.WithStack(err)
	}

	filename := time.Now().Format(exportFileFormat)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
