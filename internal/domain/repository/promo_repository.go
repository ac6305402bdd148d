package repository

import (
	"context"
	"errors"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for promo code persistence.
var (
	ErrPromoCodeNotFound  = errors.New("promo code not found")
	ErrDuplicatePromoCode = errors.New("promo code already exists")
	// ErrPromoUsageExhausted is returned when a conditional usage increment matched no row.
	ErrPromoUsageExhausted = errors.New("promo code usage limit reached")
)

// PromoCodeRepository persists promo codes.
type PromoCodeRepository interface {
	Create(ctx context.Context, promo *entity.PromoCode) error
	Update(ctx context.Context, promo *entity.PromoCode) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PromoCode, error)
	// FindByCode looks a code up case-insensitively.
	FindByCode(ctx context.Context, code string) (*entity.PromoCode, error)
	List(ctx context.Context) ([]*entity.PromoCode, error)
	// ConsumeUsage increments used_count only while the usage limit allows it.
	ConsumeUsage(ctx context.Context, id uuid.UUID) error
	// ReleaseUsage gives back one usage, e.g. when an order is cancelled.
	ReleaseUsage(ctx context.Context, id uuid.UUID) error
}
