package usecase

import (
	"context"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartAddon is an addon line in a cart.
type CartAddon struct {
	AddonID  uuid.UUID
	Quantity int
}

// CartItem is a cake line in a cart.
type CartItem struct {
	CakeID   uuid.UUID
	Weight   string
	Flavor   string
	Message  string
	Quantity int
	Addons   []CartAddon
}

// Cart is what the customer wants to buy and where.
type Cart struct {
	Items     []CartItem
	Address   entity.Address
	PromoCode string
	UseWallet bool
}

// Quote is a fully priced cart. It is never persisted on its own.
type Quote struct {
	Items       []entity.OrderItem
	Area        *entity.DeliveryArea
	Promo       *entity.PromoCode
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Discount    decimal.Decimal
	WalletUsed  decimal.Decimal
	Total       decimal.Decimal
}

// CheckoutUsecase prices carts.
type CheckoutUsecase interface {
	Quote(ctx context.Context, userID uuid.UUID, cart *Cart) (*Quote, error)
}
