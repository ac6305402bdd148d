package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

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

type paymentService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	gateway   service.PaymentGateway
	lifecycle *orderLifecycle
	logger    *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	Lifecycle OrderLifecycleParams
	OrderRepo repository.OrderRepository
	Gateway   service.PaymentGateway
}

// NewPaymentService creates the online payment service.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager: params.Lifecycle.TxManager,
		orderRepo: params.OrderRepo,
		gateway:   params.Gateway,
		lifecycle: newOrderLifecycle(params.Lifecycle),
		logger:    params.Lifecycle.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// merchantTransactionID is unique per attempt so a failed payment can be retried.
func (srv *paymentService) merchantTransactionID(orderNumber string) string {
	return orderNumber + "-" + strconv.FormatInt(srv.lifecycle.now().Unix(), 10)
}

// orderNumberFromTransaction strips the attempt suffix added by merchantTransactionID.
func orderNumberFromTransaction(merchantTransactionID string) string {
	if i := strings.LastIndex(merchantTransactionID, "-"); i > 0 {
		return merchantTransactionID[:i]
	}

	return merchantTransactionID
}

// InitiatePayment starts a gateway payment for the owner's unpaid online order.
func (srv *paymentService) InitiatePayment(ctx context.Context, userID uuid.UUID, orderNumber string) (*usecase.PaymentInitiation, error) {
	order, err := srv.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, toAppError(err, "failed to find order")
	}
	if order.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order belongs to another customer")
	}
	if order.PaymentMethod != entity.PaymentMethodOnline ||
		order.Status == entity.OrderStatusCancelled ||
		order.PaymentStatus == entity.PaymentStatusPaid ||
		order.PaymentStatus == entity.PaymentStatusRefunded ||
		!order.Total.IsPositive() {
		return nil, errors.Wrapf(domainerrors.ErrPaymentNotApplicable, "order %s is %s/%s", order.OrderNumber, order.PaymentMethod, order.PaymentStatus)
	}

	txnID := srv.merchantTransactionID(order.OrderNumber)
	session, err := srv.gateway.Initiate(ctx, &service.PaymentRequest{
		MerchantTransactionID: txnID,
		MerchantUserID:        userID.String(),
		Amount:                order.Total,
		Phone:                 order.DeliveryAddress.Phone,
	})
	if err != nil {
		srv.log(ctx).Error("Payment initiation failed", slog.String("orderNumber", order.OrderNumber), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPaymentGateway.WrapMessage(err.Error()), "failed to initiate payment")
	}

	// Remember the attempt so the status endpoint can poll it.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		locked, err := repoFactory.OrderRepo().FindByIDForUpdate(ctx, order.ID)
		if err != nil {
			return toAppError(err, "failed to lock order")
		}
		locked.PaymentTransactionID = txnID
		locked.UpdatedAt = srv.lifecycle.now()

		return toAppError(repoFactory.OrderRepo().Update(ctx, locked), "failed to save transaction id")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record payment attempt")
	}

	srv.log(ctx).Info("Payment initiated", slog.String("orderNumber", order.OrderNumber), slog.String("merchantTransactionId", txnID))

	return &usecase.PaymentInitiation{
		OrderNumber:           order.OrderNumber,
		MerchantTransactionID: session.MerchantTransactionID,
		RedirectURL:           session.RedirectURL,
	}, nil
}

// HandleCallback applies a verified server-to-server callback.
func (srv *paymentService) HandleCallback(ctx context.Context, xVerify, encodedResponse string) (*entity.Order, error) {
	result, err := srv.gateway.VerifyCallback(xVerify, encodedResponse)
	if err != nil {
		srv.log(ctx).Warn("Rejected payment callback", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPaymentChecksum, err.Error())
	}

	order, err := srv.orderRepo.FindByNumber(ctx, orderNumberFromTransaction(result.MerchantTransactionID))
	if err != nil {
		return nil, toAppError(err, "failed to find order for callback")
	}

	return srv.apply(ctx, order, result)
}

// CheckStatus polls the gateway for the order's last attempt.
func (srv *paymentService) CheckStatus(ctx context.Context, caller usecase.Caller, orderNumber string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, toAppError(err, "failed to find order")
	}
	if order.UserID != caller.UserID && !caller.IsStaff() {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order belongs to another customer")
	}

	if order.PaymentMethod != entity.PaymentMethodOnline || order.PaymentTransactionID == "" ||
		order.PaymentStatus == entity.PaymentStatusPaid || order.PaymentStatus == entity.PaymentStatusRefunded {
		return order, nil
	}

	result, err := srv.gateway.Status(ctx, order.PaymentTransactionID)
	if err != nil {
		srv.log(ctx).Error("Payment status check failed", slog.String("orderNumber", order.OrderNumber), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPaymentGateway.WrapMessage(err.Error()), "failed to check payment status")
	}

	return srv.apply(ctx, order, result)
}

func (srv *paymentService) apply(ctx context.Context, order *entity.Order, result *service.PaymentResult) (*entity.Order, error) {
	// A success for a different amount is not trusted.
	if result.State == service.PaymentStateSuccess && result.Amount.IsPositive() && !result.Amount.Equal(order.Total) {
		srv.log(ctx).Error("Payment amount mismatch",
			slog.String("orderNumber", order.OrderNumber),
			slog.String("expected", order.Total.StringFixed(2)),
			slog.String("received", result.Amount.StringFixed(2)))

		return nil, errors.Wrap(domainerrors.ErrPaymentGateway, "paid amount does not match the order total")
	}

	return srv.lifecycle.applyPayment(ctx, order.ID, result)
}
