package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/domain/service"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// orderNumberAttempts bounds retries when a generated order number is already taken.
	orderNumberAttempts = 5
	// maxExportRows caps a single spreadsheet export.
	maxExportRows       = 5000
	deliveryDateLayout  = "2006-01-02"
)

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	pricer    *cartPricer
	lifecycle *orderLifecycle
	qrService service.QRCodeService
	exporter  service.OrderExporter
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Pricer    CartPricerParams
	Lifecycle OrderLifecycleParams
	OrderRepo repository.OrderRepository
	QRService service.QRCodeService
	Exporter  service.OrderExporter
}

// NewOrderService creates the order service.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.Lifecycle.TxManager,
		orderRepo: params.OrderRepo,
		pricer:    newCartPricer(params.Pricer),
		lifecycle: newOrderLifecycle(params.Lifecycle),
		qrService: params.QRService,
		exporter:  params.Exporter,
		logger:    params.Lifecycle.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder prices the cart again and stores the order, consuming the promo and debiting the wallet
// in the same transaction.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if !input.PaymentMethod.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidPaymentMethod, "payment method %q", input.PaymentMethod)
	}
	if err := validateDeliveryDate(input.Delivery.Date, srv.lifecycle.now()); err != nil {
		return nil, err
	}

	cart := input.Cart
	if input.PaymentMethod == entity.PaymentMethodWallet {
		cart.UseWallet = true
	}

	quote, err := srv.pricer.quoteAt(ctx, userID, &cart, srv.lifecycle.now())
	if err != nil {
		return nil, err
	}
	if input.PaymentMethod == entity.PaymentMethodWallet && quote.Total.IsPositive() {
		return nil, errors.Wrapf(domainerrors.ErrWalletNotCoveringOrder, "%s still due", quote.Total.StringFixed(2))
	}

	order := newOrder(userID, input, quote)

	for attempt := 1; ; attempt++ {
		order.OrderNumber, err = entity.NewOrderNumber(srv.lifecycle.now())
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate order number")
		}

		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return createOrder(ctx, repoFactory, order, quote.Promo)
		})
		if err == nil {
			break
		}
		if errors.Is(err, repository.ErrDuplicateOrderNumber) && attempt < orderNumberAttempts {
			srv.log(ctx).Warn("Order number collision, retrying", slog.String("orderNumber", order.OrderNumber))

			continue
		}
		srv.log(ctx).Warn("Failed to place order", slog.Any("userID", userID), slog.Any("error", err))

		return nil, toAppError(err, "failed to place order")
	}

	srv.log(ctx).Info("Order placed",
		slog.String("orderNumber", order.OrderNumber),
		slog.String("total", order.Total.StringFixed(2)),
		slog.String("paymentMethod", string(order.PaymentMethod)))
	srv.lifecycle.announce(ctx, service.OrderEventPlaced, order)

	return order, nil
}

func validateDeliveryDate(date string, now time.Time) error {
	day, err := time.ParseInLocation(deliveryDateLayout, strings.TrimSpace(date), now.Location())
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "delivery date must be YYYY-MM-DD")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return errors.Wrap(domainerrors.ErrValidationFailed, "delivery date is in the past")
	}

	return nil
}

func newOrder(userID uuid.UUID, input *usecase.PlaceOrderInput, quote *usecase.Quote) *entity.Order {
	delivery := input.Delivery
	delivery.Date = strings.TrimSpace(delivery.Date)
	delivery.AreaID = quote.Area.ID.String()

	order := &entity.Order{
		ID:              uuid.New(),
		UserID:          userID,
		Items:           quote.Items,
		DeliveryAddress: input.Cart.Address,
		Delivery:        delivery,
		Subtotal:        quote.Subtotal,
		DeliveryFee:     quote.DeliveryFee,
		Discount:        quote.Discount,
		WalletUsed:      quote.WalletUsed,
		Total:           quote.Total,
		Status:          entity.OrderStatusPending,
		PaymentMethod:   input.PaymentMethod,
		PaymentStatus:   entity.PaymentStatusPending,
	}
	if quote.Promo != nil {
		order.PromoCode = quote.Promo.Code
	}
	// Nothing left to collect: the wallet covered it all.
	if !order.Total.IsPositive() {
		order.PaymentStatus = entity.PaymentStatusPaid
	}

	return order
}

func createOrder(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order, promo *entity.PromoCode) error {
	if promo != nil {
		if err := repoFactory.PromoCodeRepo().ConsumeUsage(ctx, promo.ID); err != nil {
			return errors.Wrap(err, "failed to consume promo usage")
		}
	}

	if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	if order.WalletUsed.IsPositive() {
		if err := debitWallet(ctx, repoFactory.WalletRepo(), order.UserID, &order.ID, order.WalletUsed, "Payment for order "+order.OrderNumber); err != nil {
			return err
		}
	}

	return nil
}

func (srv *orderService) ListMyOrders(ctx context.Context, userID uuid.UUID, page repository.Pagination) (*usecase.OrderPage, error) {
	return srv.ListOrders(ctx, repository.OrderFilter{UserID: &userID, Page: page})
}

// GetOrder hides other customers' orders behind a not-found error.
func (srv *orderService) GetOrder(ctx context.Context, caller usecase.Caller, orderNumber string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, toAppError(err, "failed to find order")
	}

	if order.UserID != caller.UserID && !caller.IsStaff() {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order belongs to another customer")
	}

	return order, nil
}

func (srv *orderService) TrackOrder(ctx context.Context, orderNumber string) (*entity.TrackingView, error) {
	order, err := srv.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, toAppError(err, "failed to find order")
	}

	return order.Tracking(), nil
}

func (srv *orderService) TrackingQR(ctx context.Context, orderNumber string) ([]byte, error) {
	if _, err := srv.orderRepo.FindByNumber(ctx, orderNumber); err != nil {
		return nil, toAppError(err, "failed to find order")
	}

	png, err := srv.qrService.GenerateTrackingQR(orderNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR")
	}

	return png, nil
}

// CancelOrder lets the owner cancel while the order is still pending or confirmed.
func (srv *orderService) CancelOrder(ctx context.Context, userID uuid.UUID, orderNumber, reason string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, toAppError(err, "failed to find order")
	}

	return srv.lifecycle.transition(ctx, order.ID, entity.OrderStatusCancelled, strings.TrimSpace(reason), func(locked *entity.Order) error {
		if locked.UserID != userID {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "order belongs to another customer")
		}
		if !locked.IsCancellableByCustomer() {
			return errors.Wrapf(domainerrors.ErrOrderNotCancellable, "order is %s", locked.Status)
		}

		return nil
	})
}

func (srv *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus, reason string) (*entity.Order, error) {
	return srv.lifecycle.transition(ctx, orderID, status, strings.TrimSpace(reason), nil)
}

func (srv *orderService) ListOrders(ctx context.Context, filter repository.OrderFilter) (*usecase.OrderPage, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown order status %q", filter.Status)
	}
	filter.Page = repository.NewPagination(filter.Page.Page, filter.Page.Limit)

	orders, total, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderPage{Orders: orders, Total: total, Page: filter.Page}, nil
}

// ExportOrders writes every matching order as a spreadsheet, newest first.
func (srv *orderService) ExportOrders(ctx context.Context, filter repository.OrderFilter, w io.Writer) error {
	if filter.Status != "" && !filter.Status.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown order status %q", filter.Status)
	}

	var all []*entity.Order
	for page := 1; len(all) < maxExportRows; page++ {
		filter.Page = repository.NewPagination(page, repository.MaxPageSize)

		orders, total, err := srv.orderRepo.List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list orders for export")
		}
		all = append(all, orders...)

		if len(orders) < filter.Page.Size() || int64(len(all)) >= total {
			break
		}
	}
	if len(all) > maxExportRows {
		all = all[:maxExportRows]
	}

	srv.log(ctx).Info("Exporting orders", slog.Int("count", len(all)))

	if err := srv.exporter.ExportOrders(w, all); err != nil {
		return errors.Wrap(err, "failed to export orders")
	}

	return nil
}
