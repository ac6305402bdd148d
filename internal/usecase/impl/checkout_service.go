package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"cakes/config"
	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// cartPricer turns a cart into a priced quote from current catalog data.
// Checkout uses it for previews; order placement uses it again so client totals are never trusted.
type cartPricer struct {
	userRepo          repository.UserRepository
	cakeRepo          repository.CakeRepository
	addonRepo         repository.AddonRepository
	areaRepo          repository.DeliveryAreaRepository
	promoRepo         repository.PromoCodeRepository
	minimumOrderValue decimal.Decimal
}

// CartPricerParams holds dependencies for the cart pricer, injected by Fx.
type CartPricerParams struct {
	fx.In

	UserRepo  repository.UserRepository
	CakeRepo  repository.CakeRepository
	AddonRepo repository.AddonRepository
	AreaRepo  repository.DeliveryAreaRepository
	PromoRepo repository.PromoCodeRepository
	Config    *config.Config
}

func newCartPricer(params CartPricerParams) *cartPricer {
	minimum := decimal.Zero
	if params.Config != nil && params.Config.Order != nil {
		minimum = decimal.NewFromFloat(params.Config.Order.MinimumOrderValue)
	}

	return &cartPricer{
		userRepo:          params.UserRepo,
		cakeRepo:          params.CakeRepo,
		addonRepo:         params.AddonRepo,
		areaRepo:          params.AreaRepo,
		promoRepo:         params.PromoRepo,
		minimumOrderValue: minimum,
	}
}

// Quote runs the pricing pipeline: lines, delivery fee, promo discount, wallet, total.
func (p *cartPricer) Quote(ctx context.Context, userID uuid.UUID, cart *usecase.Cart) (*usecase.Quote, error) {
	return p.quoteAt(ctx, userID, cart, time.Now())
}

func (p *cartPricer) quoteAt(ctx context.Context, userID uuid.UUID, cart *usecase.Cart, now time.Time) (*usecase.Quote, error) {
	if len(cart.Items) == 0 {
		return nil, errors.WithStack(domainerrors.ErrEmptyCart)
	}

	items, subtotal, err := p.priceItems(ctx, cart.Items)
	if err != nil {
		return nil, err
	}

	if subtotal.LessThan(p.minimumOrderValue) {
		return nil, errors.Wrapf(domainerrors.ErrMinimumOrderNotMet, "subtotal %s is below %s", subtotal.StringFixed(2), p.minimumOrderValue.StringFixed(2))
	}

	query := &usecase.LocationQuery{Pincode: cart.Address.Pincode}
	if cart.Address.HasCoordinates() {
		lat, lng := cart.Address.Latitude, cart.Address.Longitude
		query.Latitude, query.Longitude = &lat, &lng
	}
	area, err := findServiceableArea(ctx, p.areaRepo, query)
	if err != nil {
		return nil, err
	}

	quote := &usecase.Quote{
		Items:       items,
		Area:        area,
		Subtotal:    subtotal,
		DeliveryFee: area.FeeFor(subtotal),
		Discount:    decimal.Zero,
		WalletUsed:  decimal.Zero,
	}

	if code := strings.TrimSpace(cart.PromoCode); code != "" {
		promo, err := lookupPromo(ctx, p.promoRepo, code, subtotal, now)
		if err != nil {
			return nil, err
		}
		quote.Promo = promo
		quote.Discount = promo.DiscountFor(subtotal)
	}

	payable := subtotal.Add(quote.DeliveryFee).Sub(quote.Discount)
	if cart.UseWallet && payable.IsPositive() {
		user, err := p.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, toAppError(err, "failed to load wallet")
		}
		if user.WalletBalance.IsPositive() {
			quote.WalletUsed = decimal.Min(user.WalletBalance, payable)
		}
	}
	quote.Total = payable.Sub(quote.WalletUsed)

	return quote, nil
}

// priceItems freezes every cart line at today's catalog prices.
func (p *cartPricer) priceItems(ctx context.Context, lines []usecase.CartItem) ([]entity.OrderItem, decimal.Decimal, error) {
	cakeIDs := make([]uuid.UUID, 0, len(lines))
	var addonIDs []uuid.UUID
	for _, line := range lines {
		cakeIDs = append(cakeIDs, line.CakeID)
		for _, a := range line.Addons {
			addonIDs = append(addonIDs, a.AddonID)
		}
	}

	cakes, err := p.cakeRepo.FindByIDs(ctx, cakeIDs)
	if err != nil {
		return nil, decimal.Zero, errors.Wrap(err, "failed to load cakes")
	}
	cakeByID := make(map[uuid.UUID]*entity.Cake, len(cakes))
	for _, c := range cakes {
		cakeByID[c.ID] = c
	}

	addonByID := map[uuid.UUID]*entity.Addon{}
	if len(addonIDs) > 0 {
		addons, err := p.addonRepo.FindByIDs(ctx, addonIDs)
		if err != nil {
			return nil, decimal.Zero, errors.Wrap(err, "failed to load addons")
		}
		for _, a := range addons {
			addonByID[a.ID] = a
		}
	}

	items := make([]entity.OrderItem, 0, len(lines))
	subtotal := decimal.Zero
	for i, line := range lines {
		item, err := priceLine(line, cakeByID, addonByID)
		if err != nil {
			return nil, decimal.Zero, errors.Wrapf(err, "item %d", i+1)
		}
		items = append(items, item)
		subtotal = subtotal.Add(item.LineTotal)
	}

	return items, subtotal, nil
}

func priceLine(line usecase.CartItem, cakes map[uuid.UUID]*entity.Cake, addons map[uuid.UUID]*entity.Addon) (entity.OrderItem, error) {
	if line.Quantity < 1 {
		return entity.OrderItem{}, errors.WithStack(domainerrors.ErrInvalidQuantity)
	}

	cake, ok := cakes[line.CakeID]
	if !ok {
		return entity.OrderItem{}, errors.WithStack(domainerrors.ErrCakeNotFound)
	}
	if !cake.IsAvailable {
		return entity.OrderItem{}, errors.Wrapf(domainerrors.ErrCakeUnavailable, "cake %q", cake.Name)
	}

	unitPrice, ok := cake.PriceFor(line.Weight)
	if !ok {
		return entity.OrderItem{}, errors.Wrapf(domainerrors.ErrInvalidWeight, "weight %q for %q", line.Weight, cake.Name)
	}
	if !cake.HasFlavor(line.Flavor) {
		return entity.OrderItem{}, errors.Wrapf(domainerrors.ErrInvalidFlavor, "flavor %q for %q", line.Flavor, cake.Name)
	}

	item := entity.OrderItem{
		CakeID:    cake.ID,
		CakeName:  cake.Name,
		Weight:    strings.TrimSpace(line.Weight),
		Flavor:    strings.TrimSpace(line.Flavor),
		Message:   strings.TrimSpace(line.Message),
		Quantity:  line.Quantity,
		UnitPrice: unitPrice,
		LineTotal: unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
	}
	if len(cake.Images) > 0 {
		item.CakeImage = cake.Images[0]
	}

	for _, a := range line.Addons {
		if a.Quantity < 1 {
			return entity.OrderItem{}, errors.WithStack(domainerrors.ErrInvalidQuantity)
		}
		addon, ok := addons[a.AddonID]
		if !ok {
			return entity.OrderItem{}, errors.WithStack(domainerrors.ErrAddonNotFound)
		}
		if !addon.IsAvailable {
			return entity.OrderItem{}, errors.Wrapf(domainerrors.ErrAddonUnavailable, "addon %q", addon.Name)
		}

		item.Addons = append(item.Addons, entity.OrderAddon{
			AddonID:  addon.ID,
			Name:     addon.Name,
			Price:    addon.Price,
			Quantity: a.Quantity,
		})
		item.LineTotal = item.LineTotal.Add(addon.Price.Mul(decimal.NewFromInt(int64(a.Quantity))))
	}

	return item, nil
}

type checkoutService struct {
	pricer *cartPricer
	logger *slog.Logger
}

// NewCheckoutService creates the cart quoting service.
func NewCheckoutService(params CartPricerParams, logger *slog.Logger) usecase.CheckoutUsecase {
	return &checkoutService{
		pricer: newCartPricer(params),
		logger: logger,
	}
}

func (s *checkoutService) Quote(ctx context.Context, userID uuid.UUID, cart *usecase.Cart) (*usecase.Quote, error) {
	quote, err := s.pricer.Quote(ctx, userID, cart)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Cart could not be priced", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return quote, nil
}
