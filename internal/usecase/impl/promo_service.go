package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type promoService struct {
	promoRepo repository.PromoCodeRepository
	logger    *slog.Logger
}

// NewPromoService creates the promo code service.
func NewPromoService(promoRepo repository.PromoCodeRepository, logger *slog.Logger) usecase.PromoUsecase {
	return &promoService{
		promoRepo: promoRepo,
		logger:    logger,
	}
}

func (s *promoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// promoError turns a failed rule check into the error shown to the customer.
func promoError(check entity.PromoCheck) error {
	switch check {
	case entity.PromoOK:
		return nil
	case entity.PromoExpired:
		return domainerrors.ErrPromoCodeExpired
	case entity.PromoUsageExceeded:
		return domainerrors.ErrPromoCodeUsageExceeded
	case entity.PromoMinOrderNotMet:
		return domainerrors.ErrPromoMinOrderNotMet
	default:
		return domainerrors.ErrPromoCodeInvalid
	}
}

// lookupPromo finds a code and checks it against subtotal. Unknown codes are invalid, not missing.
func lookupPromo(ctx context.Context, promoRepo repository.PromoCodeRepository, code string, subtotal decimal.Decimal, now time.Time) (*entity.PromoCode, error) {
	promo, err := promoRepo.FindByCode(ctx, code)
	if errors.Is(err, repository.ErrPromoCodeNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrPromoCodeInvalid, "promo code %q", code)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find promo code")
	}

	if err := promoError(promo.Check(now, subtotal)); err != nil {
		return nil, errors.Wrapf(err, "promo code %q", promo.Code)
	}

	return promo, nil
}

func validatePromoInput(input *usecase.PromoCodeInput) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "code is required")
	}
	if !input.DiscountValue.IsPositive() {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "discount value must be positive")
	}

	switch input.DiscountType {
	case entity.DiscountTypePercentage:
		if input.DiscountValue.GreaterThan(hundred) {
			return "", errors.Wrap(domainerrors.ErrValidationFailed, "percentage discount cannot exceed 100")
		}
	case entity.DiscountTypeFixed:
	default:
		return "", errors.Wrapf(domainerrors.ErrValidationFailed, "unknown discount type %q", input.DiscountType)
	}

	if input.MinOrderValue.IsNegative() || input.MaxDiscount.IsNegative() || input.UsageLimit < 0 {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "limits must not be negative")
	}
	if input.ValidFrom != nil && input.ValidUntil != nil && input.ValidUntil.Before(*input.ValidFrom) {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "validity window ends before it starts")
	}

	return code, nil
}

func applyPromoInput(promo *entity.PromoCode, code string, input *usecase.PromoCodeInput) {
	promo.Code = code
	promo.Description = input.Description
	promo.DiscountType = input.DiscountType
	promo.DiscountValue = input.DiscountValue
	promo.MinOrderValue = input.MinOrderValue
	promo.MaxDiscount = input.MaxDiscount
	promo.UsageLimit = input.UsageLimit
	promo.ValidFrom = input.ValidFrom
	promo.ValidUntil = input.ValidUntil
	promo.IsActive = input.IsActive
}

func (s *promoService) CreatePromoCode(ctx context.Context, input *usecase.PromoCodeInput) (*entity.PromoCode, error) {
	code, err := validatePromoInput(input)
	if err != nil {
		return nil, err
	}

	promo := &entity.PromoCode{ID: uuid.New()}
	applyPromoInput(promo, code, input)

	if err := s.promoRepo.Create(ctx, promo); err != nil {
		return nil, toAppError(err, "failed to create promo code")
	}
	s.log(ctx).Info("Created promo code", slog.String("code", promo.Code))

	return promo, nil
}

// UpdatePromoCode edits the rules; the usage counter is left alone.
func (s *promoService) UpdatePromoCode(ctx context.Context, id uuid.UUID, input *usecase.PromoCodeInput) (*entity.PromoCode, error) {
	code, err := validatePromoInput(input)
	if err != nil {
		return nil, err
	}

	promo, err := s.promoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, toAppError(err, "failed to find promo code")
	}
	applyPromoInput(promo, code, input)

	if err := s.promoRepo.Update(ctx, promo); err != nil {
		return nil, toAppError(err, "failed to update promo code")
	}

	return promo, nil
}

func (s *promoService) DeletePromoCode(ctx context.Context, id uuid.UUID) error {
	if err := s.promoRepo.Delete(ctx, id); err != nil {
		return toAppError(err, "failed to delete promo code")
	}

	return nil
}

func (s *promoService) ListPromoCodes(ctx context.Context) ([]*entity.PromoCode, error) {
	promos, err := s.promoRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promo codes")
	}

	return promos, nil
}

// ValidatePromoCode reports the discount a code would grant without consuming it.
func (s *promoService) ValidatePromoCode(ctx context.Context, code string, subtotal decimal.Decimal) (*usecase.PromoValidation, error) {
	if subtotal.IsNegative() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "subtotal must not be negative")
	}

	promo, err := lookupPromo(ctx, s.promoRepo, code, subtotal, time.Now())
	if err != nil {
		s.log(ctx).Debug("Promo code rejected", slog.String("code", code), slog.Any("error", err))

		return nil, err
	}

	return &usecase.PromoValidation{
		PromoCode: promo,
		Discount:  promo.DiscountFor(subtotal),
	}, nil
}
