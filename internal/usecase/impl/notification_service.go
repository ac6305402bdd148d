package impl

import (
	"cmp"
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/entity"
	"cakes/internal/domain/repository"
	"cakes/internal/domain/service"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	orderRepo  repository.OrderRepository
	userRepo   repository.UserRepository
	deviceRepo repository.DeviceRepository
	mailer     service.Mailer
	whatsApp   service.WhatsAppNotifier
	push       service.PushNotificationService
	logger     *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	OrderRepo  repository.OrderRepository
	UserRepo   repository.UserRepository
	DeviceRepo repository.DeviceRepository
	Mailer     service.Mailer
	WhatsApp   service.WhatsAppNotifier
	Push       service.PushNotificationService
	Logger     *slog.Logger
}

// NewNotificationService creates the order event notifier.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		orderRepo:  params.OrderRepo,
		userRepo:   params.UserRepo,
		deviceRepo: params.DeviceRepo,
		mailer:     params.Mailer,
		whatsApp:   params.WhatsApp,
		push:       params.Push,
		logger:     params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleOrderEvent notifies the customer about order progress and the assignee about new work.
// Events for orders or users that no longer exist are dropped.
func (srv *notificationService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	logger := srv.log(ctx).With(slog.String("eventType", string(event.Type)), slog.String("orderNumber", event.OrderNumber))

	switch event.Type {
	case service.OrderEventPlaced, service.OrderEventStatusChanged, service.OrderEventPaymentUpdated:
		return srv.notifyCustomer(ctx, logger, event)
	case service.OrderEventDeliveryAssigned:
		return srv.notifyAssignee(ctx, logger, event, event.DeliveryBoyID)
	case service.OrderEventVendorAssigned:
		return srv.notifyAssignee(ctx, logger, event, event.VendorID)
	default:
		logger.Warn("Ignoring unknown order event")

		return nil
	}
}

func (srv *notificationService) notifyCustomer(ctx context.Context, logger *slog.Logger, event *service.OrderEvent) error {
	orderID, err := uuid.Parse(event.OrderID)
	if err != nil {
		logger.Warn("Dropping event with invalid order id", slog.String("orderID", event.OrderID))

		return nil
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		logger.Warn("Dropping event for missing order")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to load order")
	}

	user, err := srv.userRepo.FindByID(ctx, order.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		logger.Warn("Dropping event for missing customer", slog.Any("userID", order.UserID))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to load customer")
	}

	subject, line := customerMessage(event, order)
	total := order.Total.Add(order.WalletUsed).StringFixed(2)

	if err := srv.mailer.Send(ctx, &service.Email{
		ToAddress: user.Email,
		ToName:    user.Name,
		Subject:   subject,
		PlainText: fmt.Sprintf("Hi %s,\n\n%s\n\nTotal: Rs. %s\n", user.Name, line, total),
		HTML:      fmt.Sprintf("<p>Hi %s,</p><p>%s</p><p>Total: Rs. %s</p>", html.EscapeString(user.Name), html.EscapeString(line), total),
	}); err != nil {
		return errors.Wrap(err, "failed to email customer")
	}

	phone := order.DeliveryAddress.Phone
	if phone == "" {
		phone = user.Phone
	}
	if phone != "" {
		// WhatsApp is best effort; a retry would resend the email.
		if err := srv.whatsApp.SendMessage(ctx, phone, line); err != nil {
			logger.Error("Failed to send WhatsApp message", slog.Any("error", err))
		}
	}

	logger.Info("Customer notified", slog.Any("userID", user.ID))

	return nil
}

// customerMessage describes the change the event announces. The order row may already be further
// along, so statuses come from the event and the row only fills in what the event lacks.
func customerMessage(event *service.OrderEvent, order *entity.Order) (subject, line string) {
	switch event.Type {
	case service.OrderEventPlaced:
		return "Order " + order.OrderNumber + " received",
			fmt.Sprintf("We received your order %s for delivery on %s.", order.OrderNumber, order.Delivery.Date)
	case service.OrderEventPaymentUpdated:
		return "Payment update for order " + order.OrderNumber,
			fmt.Sprintf("Payment for order %s is now %s.", order.OrderNumber, cmp.Or(event.PaymentStatus, string(order.PaymentStatus)))
	default:
		status := strings.ReplaceAll(cmp.Or(event.Status, string(order.Status)), "_", " ")

		return "Order " + order.OrderNumber + " is " + status,
			fmt.Sprintf("Your order %s is now %s.", order.OrderNumber, status)
	}
}

// notifyAssignee pushes the new assignment to every active device of the staff member. Devices
// whose tokens FCM rejects are deactivated.
func (srv *notificationService) notifyAssignee(ctx context.Context, logger *slog.Logger, event *service.OrderEvent, assignee string) error {
	assigneeID, err := uuid.Parse(assignee)
	if err != nil {
		logger.Warn("Dropping assignment event without assignee", slog.String("assignee", assignee))

		return nil
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, assigneeID)
	if err != nil {
		return errors.Wrap(err, "failed to load assignee devices")
	}
	if len(devices) == 0 {
		logger.Info("Assignee has no registered devices", slog.Any("assigneeID", assigneeID))

		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	result, err := srv.push.Send(ctx, tokens, &service.PushMessage{
		Title: "New order assigned",
		Body:  fmt.Sprintf("Order %s has been assigned to you.", event.OrderNumber),
		Data: map[string]string{
			"type":         string(event.Type),
			"order_id":     event.OrderID,
			"order_number": event.OrderNumber,
		},
		Urgent: true,
	})
	if result != nil && len(result.InvalidTokens) > 0 {
		if err := srv.deviceRepo.DeactivateByTokens(ctx, result.InvalidTokens); err != nil {
			logger.Error("Failed to deactivate invalid devices", slog.Any("error", err))
		}
	}
	if err != nil {
		return errors.Wrap(err, "failed to send push notification")
	}

	logger.Info("Assignee notified",
		slog.Any("assigneeID", assigneeID),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalidTokens", len(result.InvalidTokens)))

	return nil
}
