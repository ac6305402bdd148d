package impl

import (
	"context"
	"testing"
	"time"

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

func createTestPromoService(t *testing.T) (usecase.PromoUsecase, *mockRepo.MockPromoCodeRepository) {
	promoRepo := mockRepo.NewMockPromoCodeRepository(t)

	return NewPromoService(promoRepo, newDiscardLogger()), promoRepo
}

func percentPromo(value, maxDiscount int64) *entity.PromoCode {
	return &entity.PromoCode{
		ID:            uuid.New(),
		Code:          "SWEET10",
		DiscountType:  entity.DiscountTypePercentage,
		DiscountValue: decimal.NewFromInt(value),
		MaxDiscount:   decimal.NewFromInt(maxDiscount),
		MinOrderValue: decimal.NewFromInt(300),
		IsActive:      true,
	}
}

func TestPromoService_CreatePromoCode(t *testing.T) {
	t.Run("uppercases the code", func(t *testing.T) {
		service, promoRepo := createTestPromoService(t)
		ctx := context.Background()

		promoRepo.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.PromoCode) bool {
			return p.Code == "SWEET10"
		})).Return(nil)

		promo, err := service.CreatePromoCode(ctx, &usecase.PromoCodeInput{
			Code:          " sweet10 ",
			DiscountType:  entity.DiscountTypePercentage,
			DiscountValue: decimal.NewFromInt(10),
			IsActive:      true,
		})

		require.NoError(t, err)
		assert.Equal(t, "SWEET10", promo.Code)
	})

	t.Run("duplicate code", func(t *testing.T) {
		service, promoRepo := createTestPromoService(t)
		ctx := context.Background()

		promoRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicatePromoCode)

		_, err := service.CreatePromoCode(ctx, &usecase.PromoCodeInput{
			Code:          "FLAT50",
			DiscountType:  entity.DiscountTypeFixed,
			DiscountValue: decimal.NewFromInt(50),
		})

		assert.True(t, errors.Is(err, domainerrors.ErrPromoCodeExists))
	})

	now := time.Now()
	earlier := now.Add(-time.Hour)
	invalid := map[string]*usecase.PromoCodeInput{
		"blank code":       {Code: " ", DiscountType: entity.DiscountTypeFixed, DiscountValue: decimal.NewFromInt(1)},
		"zero discount":    {Code: "A", DiscountType: entity.DiscountTypeFixed},
		"over 100 percent": {Code: "A", DiscountType: entity.DiscountTypePercentage, DiscountValue: decimal.NewFromInt(101)},
		"unknown type":     {Code: "A", DiscountType: "bogo", DiscountValue: decimal.NewFromInt(1)},
		"negative limit":   {Code: "A", DiscountType: entity.DiscountTypeFixed, DiscountValue: decimal.NewFromInt(1), UsageLimit: -1},
		"inverted window":  {Code: "A", DiscountType: entity.DiscountTypeFixed, DiscountValue: decimal.NewFromInt(1), ValidFrom: &now, ValidUntil: &earlier},
	}
	for name, input := range invalid {
		t.Run(name, func(t *testing.T) {
			service, _ := createTestPromoService(t)

			_, err := service.CreatePromoCode(context.Background(), input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestPromoService_ValidatePromoCode(t *testing.T) {
	t.Run("percentage capped by max discount", func(t *testing.T) {
		service, promoRepo := createTestPromoService(t)
		ctx := context.Background()
		promo := percentPromo(20, 100)

		promoRepo.EXPECT().FindByCode(ctx, "SWEET10").Return(promo, nil)

		result, err := service.ValidatePromoCode(ctx, "SWEET10", decimal.NewFromInt(1000))

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(100).Equal(result.Discount))
		assert.Equal(t, promo, result.PromoCode)
	})

	t.Run("fixed discount never exceeds subtotal", func(t *testing.T) {
		service, promoRepo := createTestPromoService(t)
		ctx := context.Background()
		promo := &entity.PromoCode{
			ID:            uuid.New(),
			Code:          "FLAT500",
			DiscountType:  entity.DiscountTypeFixed,
			DiscountValue: decimal.NewFromInt(500),
			IsActive:      true,
		}

		promoRepo.EXPECT().FindByCode(ctx, "FLAT500").Return(promo, nil)

		result, err := service.ValidatePromoCode(ctx, "FLAT500", decimal.NewFromInt(350))

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(350).Equal(result.Discount))
	})

	yesterday := time.Now().Add(-24 * time.Hour)
	rejected := []struct {
		name    string
		promo   func() *entity.PromoCode
		wantErr error
	}{
		{
			name:    "inactive",
			promo:   func() *entity.PromoCode { p := percentPromo(10, 0); p.IsActive = false; return p },
			wantErr: domainerrors.ErrPromoCodeInvalid,
		},
		{
			name:    "expired",
			promo:   func() *entity.PromoCode { p := percentPromo(10, 0); p.ValidUntil = &yesterday; return p },
			wantErr: domainerrors.ErrPromoCodeExpired,
		},
		{
			name:    "usage exhausted",
			promo:   func() *entity.PromoCode { p := percentPromo(10, 0); p.UsageLimit, p.UsedCount = 5, 5; return p },
			wantErr: domainerrors.ErrPromoCodeUsageExceeded,
		},
		{
			name:    "below minimum order",
			promo:   func() *entity.PromoCode { p := percentPromo(10, 0); p.MinOrderValue = decimal.NewFromInt(2000); return p },
			wantErr: domainerrors.ErrPromoMinOrderNotMet,
		},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			service, promoRepo := createTestPromoService(t)
			ctx := context.Background()

			promoRepo.EXPECT().FindByCode(ctx, "SWEET10").Return(tt.promo(), nil)

			result, err := service.ValidatePromoCode(ctx, "SWEET10", decimal.NewFromInt(1000))

			assert.Nil(t, result)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}

	t.Run("unknown code", func(t *testing.T) {
		service, promoRepo := createTestPromoService(t)
		ctx := context.Background()

		promoRepo.EXPECT().FindByCode(ctx, "NOPE").Return(nil, repository.ErrPromoCodeNotFound)

		_, err := service.ValidatePromoCode(ctx, "NOPE", decimal.NewFromInt(1000))

		assert.True(t, errors.Is(err, domainerrors.ErrPromoCodeInvalid))
	})
}
