package usecase

import (
	"context"
	"time"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromoCodeInput is the writable part of a promo code.
type PromoCodeInput struct {
	Code          string
	Description   string
	DiscountType  entity.DiscountType
	DiscountValue decimal.Decimal
	MinOrderValue decimal.Decimal
	MaxDiscount   decimal.Decimal
	UsageLimit    int
	ValidFrom     *time.Time
	ValidUntil    *time.Time
	IsActive      bool
}

// PromoValidation is a successful promo check.
type PromoValidation struct {
	PromoCode *entity.PromoCode
	Discount  decimal.Decimal
}

// PromoUsecase manages promo codes.
type PromoUsecase interface {
	CreatePromoCode(ctx context.Context, input *PromoCodeInput) (*entity.PromoCode, error)
	UpdatePromoCode(ctx context.Context, id uuid.UUID, input *PromoCodeInput) (*entity.PromoCode, error)
	DeletePromoCode(ctx context.Context, id uuid.UUID) error
	ListPromoCodes(ctx context.Context) ([]*entity.PromoCode, error)
	// ValidatePromoCode checks code against subtotal and returns the discount it grants.
	ValidatePromoCode(ctx context.Context, code string, subtotal decimal.Decimal) (*PromoValidation, error)
}
