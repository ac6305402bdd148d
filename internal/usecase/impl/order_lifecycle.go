package impl

import (
	"context"
	"log/slog"
	"time"

	"cakes/config"
	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/constants"
	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderLifecycle owns every state change of a placed order: status transitions, payment results
// and their money side effects. Order, dispatch and payment services share it.
type orderLifecycle struct {
	txManager        repository.TransactionManager
	publisher        service.EventPublisher
	broadcaster      service.RealtimeBroadcaster
	pointsPerHundred int
	cashbackPercent  decimal.Decimal
	now              func() time.Time
	logger           *slog.Logger
}

// OrderLifecycleParams holds dependencies for the order lifecycle, injected by Fx.
type OrderLifecycleParams struct {
	fx.In

	TxManager   repository.TransactionManager
	Publisher   service.EventPublisher
	Broadcaster service.RealtimeBroadcaster
	Config      *config.Config
	Logger      *slog.Logger
}

func newOrderLifecycle(params OrderLifecycleParams) *orderLifecycle {
	lc := &orderLifecycle{
		txManager:       params.TxManager,
		publisher:       params.Publisher,
		broadcaster:     params.Broadcaster,
		cashbackPercent: decimal.Zero,
		now:             time.Now,
		logger:          params.Logger,
	}
	if params.Config != nil && params.Config.Loyalty != nil {
		lc.pointsPerHundred = params.Config.Loyalty.PointsPerHundred
		lc.cashbackPercent = decimal.NewFromFloat(params.Config.Loyalty.CashbackPercent)
	}

	return lc
}

func (lc *orderLifecycle) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, lc.logger)
}

// orderGuard vets a locked order before it changes; returning an error aborts the change.
type orderGuard func(order *entity.Order) error

// transition moves an order to next inside a transaction, applying refunds, promo release and
// loyalty credit, then announces the change.
func (lc *orderLifecycle) transition(ctx context.Context, orderID uuid.UUID, next entity.OrderStatus, reason string, guard orderGuard) (*entity.Order, error) {
	if !next.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown order status %q", next)
	}

	var order *entity.Order
	err := lc.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, err = repoFactory.OrderRepo().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return toAppError(err, "failed to lock order")
		}

		if guard != nil {
			if err := guard(order); err != nil {
				return err
			}
		}

		if !order.Status.CanTransitionTo(next) {
			return errors.Wrapf(domainerrors.ErrOrderInvalidTransition, "%s to %s", order.Status, next)
		}

		previous := order.Status
		order.ApplyStatus(next, lc.now())

		switch next {
		case entity.OrderStatusCancelled:
			order.CancelReason = reason
			if err := lc.settleCancellation(ctx, repoFactory, order); err != nil {
				return err
			}
		case entity.OrderStatusDelivered:
			// Unpaid online orders earn their reward when the payment lands.
			if order.PaymentStatus == entity.PaymentStatusPaid {
				if err := lc.creditLoyalty(ctx, repoFactory, order); err != nil {
					return err
				}
			}
		}

		if err := repoFactory.OrderRepo().Update(ctx, order); err != nil {
			return toAppError(err, "failed to save order")
		}

		lc.log(ctx).Info("Order status changed",
			slog.String("orderNumber", order.OrderNumber),
			slog.String("from", string(previous)),
			slog.String("to", string(next)))

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to change order status")
	}

	lc.announce(ctx, service.OrderEventStatusChanged, order)

	return order, nil
}

// settleCancellation refunds the wallet and releases the promo usage. The refund is computed
// before the payment status flips to refunded.
func (lc *orderLifecycle) settleCancellation(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order) error {
	refund := order.RefundableAmount()
	if refund.IsPositive() {
		if err := creditWallet(ctx, repoFactory.WalletRepo(), order.UserID, &order.ID, refund, "Refund for cancelled order "+order.OrderNumber); err != nil {
			return errors.Wrap(err, "failed to refund order")
		}
	}
	if order.PaymentStatus == entity.PaymentStatusPaid {
		order.PaymentStatus = entity.PaymentStatusRefunded
	}

	if order.PromoCode == "" {
		return nil
	}

	promoRepo := repoFactory.PromoCodeRepo()
	promo, err := promoRepo.FindByCode(ctx, order.PromoCode)
	if errors.Is(err, repository.ErrPromoCodeNotFound) {
		// The code was deleted since; nothing to give back.
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find order promo code")
	}

	if err := promoRepo.ReleaseUsage(ctx, promo.ID); err != nil {
		return errors.Wrap(err, "failed to release promo usage")
	}

	return nil
}

// creditLoyalty rewards the customer for a delivered and paid order on its full value, wallet part included.
func (lc *orderLifecycle) creditLoyalty(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order) error {
	points, cashback := entity.LoyaltyReward(order.Total.Add(order.WalletUsed), lc.pointsPerHundred, lc.cashbackPercent)

	walletRepo := repoFactory.WalletRepo()
	if points > 0 {
		if err := walletRepo.AddLoyaltyPoints(ctx, order.UserID, points); err != nil {
			return toAppError(err, "failed to add loyalty points")
		}
	}
	if cashback.IsPositive() {
		if err := creditWallet(ctx, walletRepo, order.UserID, &order.ID, cashback, "Cashback for order "+order.OrderNumber); err != nil {
			return errors.Wrap(err, "failed to credit cashback")
		}
	}

	return nil
}

// applyPayment records a gateway result on an order. It is idempotent: a paid order stays paid and
// repeated results change nothing. A successful payment confirms a pending order.
func (lc *orderLifecycle) applyPayment(ctx context.Context, orderID uuid.UUID, result *service.PaymentResult) (*entity.Order, error) {
	var order *entity.Order
	changed := false

	err := lc.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, err = repoFactory.OrderRepo().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return toAppError(err, "failed to lock order")
		}

		if order.PaymentStatus == entity.PaymentStatusPaid || order.PaymentStatus == entity.PaymentStatusRefunded {
			return nil
		}

		switch result.State {
		case service.PaymentStateSuccess:
			order.PaymentStatus = entity.PaymentStatusPaid
			if result.MerchantTransactionID != "" {
				order.PaymentTransactionID = result.MerchantTransactionID
			}
			order.UpdatedAt = lc.now()
			switch order.Status {
			case entity.OrderStatusPending:
				order.ApplyStatus(entity.OrderStatusConfirmed, lc.now())
			case entity.OrderStatusCancelled:
				// Money arrived after the customer cancelled: it goes straight back to the wallet.
				if err := creditWallet(ctx, repoFactory.WalletRepo(), order.UserID, &order.ID, order.Total, "Refund for cancelled order "+order.OrderNumber); err != nil {
					return errors.Wrap(err, "failed to refund late payment")
				}
				order.PaymentStatus = entity.PaymentStatusRefunded
			case entity.OrderStatusDelivered:
				if err := lc.creditLoyalty(ctx, repoFactory, order); err != nil {
					return err
				}
			}
			changed = true
		case service.PaymentStateError, service.PaymentStateDecline:
			if order.PaymentStatus != entity.PaymentStatusFailed {
				order.PaymentStatus = entity.PaymentStatusFailed
				order.UpdatedAt = lc.now()
				changed = true
			}
		}

		if !changed {
			return nil
		}

		if err := repoFactory.OrderRepo().Update(ctx, order); err != nil {
			return toAppError(err, "failed to save payment result")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to apply payment result")
	}

	if changed {
		lc.log(ctx).Info("Payment result applied",
			slog.String("orderNumber", order.OrderNumber),
			slog.String("state", string(result.State)),
			slog.String("gatewayReference", result.TransactionID),
			slog.String("paymentStatus", string(order.PaymentStatus)))
		lc.announce(ctx, service.OrderEventPaymentUpdated, order)
	}

	return order, nil
}

// announce publishes the order event and pushes it to the back office. Failures are logged only;
// the change is already committed.
func (lc *orderLifecycle) announce(ctx context.Context, eventType service.OrderEventType, order *entity.Order) {
	event := orderEvent(ctx, eventType, order)

	if err := lc.publisher.PublishOrderEvent(ctx, event); err != nil {
		lc.log(ctx).Error("Failed to publish order event",
			slog.String("type", string(eventType)),
			slog.String("orderNumber", order.OrderNumber),
			slog.Any("error", err))
	}

	msg := &service.RealtimeMessage{Type: string(eventType), Payload: event}
	lc.broadcaster.Broadcast(constants.ChannelAdmin, msg)
	if order.DeliveryBoyID != nil {
		lc.broadcaster.SendToUser(constants.ChannelDelivery, *order.DeliveryBoyID, msg)
	}
}

func orderEvent(ctx context.Context, eventType service.OrderEventType, order *entity.Order) *service.OrderEvent {
	event := &service.OrderEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          eventType,
		OrderID:       order.ID.String(),
		OrderNumber:   order.OrderNumber,
		UserID:        order.UserID.String(),
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
	}
	if order.DeliveryBoyID != nil {
		event.DeliveryBoyID = order.DeliveryBoyID.String()
	}
	if order.VendorID != nil {
		event.VendorID = order.VendorID.String()
	}

	return event
}

// creditWallet adds amount to a wallet and writes the ledger line.
func creditWallet(ctx context.Context, walletRepo repository.WalletRepository, userID uuid.UUID, orderID *uuid.UUID, amount decimal.Decimal, reason string) error {
	_, err := moveWallet(ctx, walletRepo, userID, orderID, amount, reason)

	return err
}

// debitWallet takes amount from a wallet; it fails without side effects when the balance is short.
func debitWallet(ctx context.Context, walletRepo repository.WalletRepository, userID uuid.UUID, orderID *uuid.UUID, amount decimal.Decimal, reason string) error {
	_, err := moveWallet(ctx, walletRepo, userID, orderID, amount.Neg(), reason)

	return err
}

// moveWallet applies delta to a wallet and writes the matching ledger line.
func moveWallet(ctx context.Context, walletRepo repository.WalletRepository, userID uuid.UUID, orderID *uuid.UUID, delta decimal.Decimal, reason string) (*entity.WalletTransaction, error) {
	balance, err := walletRepo.AdjustBalance(ctx, userID, delta)
	if err != nil {
		return nil, toAppError(err, "failed to adjust wallet balance")
	}

	txn := &entity.WalletTransaction{
		ID:           uuid.New(),
		UserID:       userID,
		OrderID:      orderID,
		Type:         entity.WalletCredit,
		Amount:       delta.Abs(),
		BalanceAfter: balance,
		Reason:       reason,
	}
	if delta.IsNegative() {
		txn.Type = entity.WalletDebit
	}

	if err := walletRepo.CreateTransaction(ctx, txn); err != nil {
		return nil, toAppError(err, "failed to record wallet transaction")
	}

	return txn, nil
}
