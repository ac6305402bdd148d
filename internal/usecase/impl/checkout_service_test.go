package impl

import (
	"context"
	"testing"

	"cakes/config"
	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_Quote(t *testing.T) {
	t.Run("prices lines, fee, promo and wallet", func(t *testing.T) {
		deps := newOrderDeps(t)
		service := NewCheckoutService(deps.pricerParams(), newDiscardLogger())
		ctx := context.Background()
		userID := uuid.New()
		cake, addon, area := testCake(), testAddon(), testArea()
		promo := percentPromo(10, 100)

		deps.cakeRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{cake.ID}).Return([]*entity.Cake{cake}, nil)
		deps.addonRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{addon.ID}).Return([]*entity.Addon{addon}, nil)
		deps.areaRepo.EXPECT().FindByPincode(ctx, "560001").Return(area, nil)
		deps.promoRepo.EXPECT().FindByCode(ctx, "SWEET10").Return(promo, nil)
		deps.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, WalletBalance: decimal.NewFromInt(300)}, nil)

		quote, err := service.Quote(ctx, userID, &usecase.Cart{
			Items: []usecase.CartItem{{
				CakeID:   cake.ID,
				Weight:   "1KG",
				Flavor:   "chocolate",
				Message:  " Happy Birthday ",
				Quantity: 2,
				Addons:   []usecase.CartAddon{{AddonID: addon.ID, Quantity: 2}},
			}},
			Address:   testAddress(),
			PromoCode: "SWEET10",
			UseWallet: true,
		})

		require.NoError(t, err)
		require.Len(t, quote.Items, 1)
		item := quote.Items[0]
		assert.Equal(t, "Happy Birthday", item.Message)
		assert.True(t, decimal.NewFromInt(850).Equal(item.UnitPrice))
		assert.True(t, decimal.NewFromInt(1750).Equal(item.LineTotal))
		assert.Equal(t, cake.Images[0], item.CakeImage)

		assert.True(t, decimal.NewFromInt(1750).Equal(quote.Subtotal))
		assert.True(t, decimal.NewFromInt(50).Equal(quote.DeliveryFee))
		assert.True(t, decimal.NewFromInt(100).Equal(quote.Discount))
		assert.True(t, decimal.NewFromInt(300).Equal(quote.WalletUsed))
		assert.True(t, decimal.NewFromInt(1400).Equal(quote.Total))
		assert.Equal(t, area, quote.Area)
	})

	t.Run("free delivery above threshold", func(t *testing.T) {
		deps := newOrderDeps(t)
		service := NewCheckoutService(deps.pricerParams(), newDiscardLogger())
		ctx := context.Background()
		cake := testCake()

		deps.cakeRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{cake.ID}).Return([]*entity.Cake{cake}, nil)
		deps.areaRepo.EXPECT().FindByPincode(ctx, "560001").Return(testArea(), nil)

		quote, err := service.Quote(ctx, uuid.New(), &usecase.Cart{
			Items:   []usecase.CartItem{{CakeID: cake.ID, Weight: "1kg", Quantity: 3}},
			Address: testAddress(),
		})

		require.NoError(t, err)
		assert.True(t, quote.DeliveryFee.IsZero())
		assert.True(t, decimal.NewFromInt(2550).Equal(quote.Total))
	})

	t.Run("empty cart", func(t *testing.T) {
		deps := newOrderDeps(t)
		service := NewCheckoutService(deps.pricerParams(), newDiscardLogger())

		_, err := service.Quote(context.Background(), uuid.New(), &usecase.Cart{Address: testAddress()})

		assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
	})

	t.Run("below minimum order value", func(t *testing.T) {
		deps := newOrderDeps(t)
		deps.config.Order = &config.OrderConfig{MinimumOrderValue: 500}
		service := NewCheckoutService(deps.pricerParams(), newDiscardLogger())
		ctx := context.Background()
		cake := testCake()

		deps.cakeRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.Cake{cake}, nil)

		_, err := service.Quote(ctx, uuid.New(), &usecase.Cart{
			Items:   []usecase.CartItem{{CakeID: cake.ID, Weight: "500g", Quantity: 1}},
			Address: testAddress(),
		})

		assert.True(t, errors.Is(err, domainerrors.ErrMinimumOrderNotMet))
	})

	t.Run("pincode not serviceable", func(t *testing.T) {
		deps := newOrderDeps(t)
		service := NewCheckoutService(deps.pricerParams(), newDiscardLogger())
		ctx := context.Background()
		cake := testCake()

		deps.cakeRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.Cake{cake}, nil)
		deps.areaRepo.EXPECT().FindByPincode(ctx, "560001").Return(nil, repository.ErrDeliveryAreaNotFound)

		_, err := service.Quote(ctx, uuid.New(), &usecase.Cart{
			Items:   []usecase.CartItem{{CakeID: cake.ID, Quantity: 1}},
			Address: testAddress(),
		})

		assert.True(t, errors.Is(err, domainerrors.ErrDeliveryAreaNotServiceable))
	})

	lineErrors := []struct {
		name    string
		mutate  func(cake *entity.Cake, item *usecase.CartItem)
		wantErr error
	}{
		{"unknown cake", func(_ *entity.Cake, item *usecase.CartItem) { item.CakeID = uuid.New() }, domainerrors.ErrCakeNotFound},
		{"unavailable cake", func(cake *entity.Cake, _ *usecase.CartItem) { cake.IsAvailable = false }, domainerrors.ErrCakeUnavailable},
		{"unknown weight", func(_ *entity.Cake, item *usecase.CartItem) { item.Weight = "3kg" }, domainerrors.ErrInvalidWeight},
		{"unknown flavor", func(_ *entity.Cake, item *usecase.CartItem) { item.Flavor = "durian" }, domainerrors.ErrInvalidFlavor},
		{"zero quantity", func(_ *entity.Cake, item *usecase.CartItem) { item.Quantity = 0 }, domainerrors.ErrInvalidQuantity},
	}
	for _, tt := range lineErrors {
		t.Run(tt.name, func(t *testing.T) {
			deps := newOrderDeps(t)
			service := NewCheckoutService(deps.pricerParams(), newDiscardLogger())
			ctx := context.Background()
			cake := testCake()
			item := usecase.CartItem{CakeID: cake.ID, Weight: "500g", Flavor: "vanilla", Quantity: 1}
			tt.mutate(cake, &item)

			deps.cakeRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.Cake{cake}, nil)

			quote, err := service.Quote(ctx, uuid.New(), &usecase.Cart{Items: []usecase.CartItem{item}, Address: testAddress()})

			assert.Nil(t, quote)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}
