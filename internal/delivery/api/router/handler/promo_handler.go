package handler

import (
	"log/slog"
	"net/http"
	"time"

	"cakes/internal/delivery/api/response"
	"cakes/internal/domain/entity"
	"cakes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// PromoHandlerParams holds dependencies for PromoHandler, injected by Fx.
type PromoHandlerParams struct {
	fx.In

	PromoUC usecase.PromoUsecase
	Logger  *slog.Logger
}

// PromoHandler serves promo code management and checks.
type PromoHandler struct {
	promoUC usecase.PromoUsecase
	logger  *slog.Logger
}

// NewPromoHandler is the constructor for PromoHandler.
func NewPromoHandler(params PromoHandlerParams) *PromoHandler {
	return &PromoHandler{
		promoUC: params.PromoUC,
		logger:  params.Logger,
	}
}

// PromoCodeRequest is the body of promo code create and update.
type PromoCodeRequest struct {
	Code          string              `json:"code" validate:"required,max=50"`
	Description   string              `json:"description"`
	DiscountType  entity.DiscountType `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue decimal.Decimal     `json:"discount_value"`
	MinOrderValue decimal.Decimal     `json:"min_order_value"`
	MaxDiscount   decimal.Decimal     `json:"max_discount"`
	UsageLimit    int                 `json:"usage_limit" validate:"gte=0"`
	ValidFrom     *time.Time          `json:"valid_from"`
	ValidUntil    *time.Time          `json:"valid_until"`
	IsActive      *bool               `json:"is_active"`
}

// ValidatePromoRequest checks a code against a cart subtotal.
type ValidatePromoRequest struct {
	Code     string          `json:"code" validate:"required"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// PromoValidationResponse is a successful promo check.
type PromoValidationResponse struct {
	Code         string              `json:"code"`
	Description  string              `json:"description"`
	DiscountType entity.DiscountType `json:"discount_type"`
	Discount     decimal.Decimal     `json:"discount"`
}

func (r *PromoCodeRequest) toInput() *usecase.PromoCodeInput {
	return &usecase.PromoCodeInput{
		Code:          r.Code,
		Description:   r.Description,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		MinOrderValue: r.MinOrderValue,
		MaxDiscount:   r.MaxDiscount,
		UsageLimit:    r.UsageLimit,
		ValidFrom:     r.ValidFrom,
		ValidUntil:    r.ValidUntil,
		IsActive:      flagOrTrue(r.IsActive),
	}
}

// ValidatePromoCode returns the discount a code grants on a subtotal.
func (h *PromoHandler) ValidatePromoCode(c echo.Context) error {
	var req ValidatePromoRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	result, err := h.promoUC.ValidatePromoCode(c.Request().Context(), req.Code, req.Subtotal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, PromoValidationResponse{
		Code:         result.PromoCode.Code,
		Description:  result.PromoCode.Description,
		DiscountType: result.PromoCode.DiscountType,
		Discount:     result.Discount,
	})
}

// ListPromoCodes returns every promo code.
func (h *PromoHandler) ListPromoCodes(c echo.Context) error {
	promos, err := h.promoUC.ListPromoCodes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promos)
}

// CreatePromoCode adds a promo code.
func (h *PromoHandler) CreatePromoCode(c echo.Context) error {
	var req PromoCodeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	promo, err := h.promoUC.CreatePromoCode(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, promo)
}

// UpdatePromoCode replaces a promo code.
func (h *PromoHandler) UpdatePromoCode(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req PromoCodeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	promo, err := h.promoUC.UpdatePromoCode(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promo)
}

// DeletePromoCode removes a promo code.
func (h *PromoHandler) DeletePromoCode(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.promoUC.DeletePromoCode(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Promo code deleted"})
}
