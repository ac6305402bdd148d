package impl

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"cakes/internal/domain/entity"
	"cakes/internal/domain/repository"
	"cakes/internal/domain/service"
	mockRepo "cakes/internal/mocks/repository"
	mockService "cakes/internal/mocks/service"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationFixture struct {
	orderRepo  *mockRepo.MockOrderRepository
	userRepo   *mockRepo.MockUserRepository
	deviceRepo *mockRepo.MockDeviceRepository
	mailer     *mockService.MockMailer
	whatsApp   *mockService.MockWhatsAppNotifier
	push       *mockService.MockPushNotificationService
	svc        usecase.NotificationUsecase
}

func newNotificationFixture(t *testing.T) *notificationFixture {
	f := &notificationFixture{
		orderRepo:  mockRepo.NewMockOrderRepository(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		deviceRepo: mockRepo.NewMockDeviceRepository(t),
		mailer:     mockService.NewMockMailer(t),
		whatsApp:   mockService.NewMockWhatsAppNotifier(t),
		push:       mockService.NewMockPushNotificationService(t),
	}
	f.svc = NewNotificationService(NotificationServiceParams{
		OrderRepo:  f.orderRepo,
		UserRepo:   f.userRepo,
		DeviceRepo: f.deviceRepo,
		Mailer:     f.mailer,
		WhatsApp:   f.whatsApp,
		Push:       f.push,
		Logger:     newDiscardLogger(),
	})

	return f
}

func customerEvent(eventType service.OrderEventType, order *entity.Order) *service.OrderEvent {
	return &service.OrderEvent{
		Type:          eventType,
		OrderID:       order.ID.String(),
		OrderNumber:   order.OrderNumber,
		UserID:        order.UserID.String(),
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
	}
}

func TestNotificationService_CustomerEvents(t *testing.T) {
	t.Run("email and whatsapp on status change", func(t *testing.T) {
		f := newNotificationFixture(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Name: "Asha", Email: "asha@example.com", Phone: "9000000000"}
		order := placedOrder(user.ID, entity.OrderStatusOutForDelivery, entity.PaymentMethodCOD)
		order.DeliveryAddress = testAddress()

		f.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		f.mailer.EXPECT().Send(ctx, mock.MatchedBy(func(e *service.Email) bool {
			return e.ToAddress == user.Email && e.Subject == "Order "+order.OrderNumber+" is out for delivery"
		})).Return(nil)
		f.whatsApp.EXPECT().SendMessage(ctx, "9876543210", mock.AnythingOfType("string")).Return(nil)

		require.NoError(t, f.svc.HandleOrderEvent(ctx, customerEvent(service.OrderEventStatusChanged, order)))
	})

	t.Run("message follows the event when the order moved on", func(t *testing.T) {
		f := newNotificationFixture(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Name: "Asha", Email: "asha@example.com"}
		order := placedOrder(user.ID, entity.OrderStatusDelivered, entity.PaymentMethodCOD)
		event := customerEvent(service.OrderEventStatusChanged, order)
		event.Status = string(entity.OrderStatusConfirmed)

		f.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		f.mailer.EXPECT().Send(ctx, mock.MatchedBy(func(e *service.Email) bool {
			return e.Subject == "Order "+order.OrderNumber+" is confirmed" && strings.Contains(e.PlainText, "is now confirmed")
		})).Return(nil)

		require.NoError(t, f.svc.HandleOrderEvent(ctx, event))
	})

	t.Run("payment message uses the event payment status", func(t *testing.T) {
		f := newNotificationFixture(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Email: "asha@example.com"}
		order := placedOrder(user.ID, entity.OrderStatusConfirmed, entity.PaymentMethodOnline)
		order.PaymentStatus = entity.PaymentStatusRefunded
		event := customerEvent(service.OrderEventPaymentUpdated, order)
		event.PaymentStatus = string(entity.PaymentStatusPaid)

		f.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		f.mailer.EXPECT().Send(ctx, mock.MatchedBy(func(e *service.Email) bool {
			return strings.Contains(e.PlainText, "is now paid")
		})).Return(nil)

		require.NoError(t, f.svc.HandleOrderEvent(ctx, event))
	})

	t.Run("customer name is escaped in html", func(t *testing.T) {
		f := newNotificationFixture(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Name: `<img src=x onerror=alert(1)>`, Email: "asha@example.com"}
		order := placedOrder(user.ID, entity.OrderStatusPending, entity.PaymentMethodCOD)

		f.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		f.mailer.EXPECT().Send(ctx, mock.MatchedBy(func(e *service.Email) bool {
			return !strings.Contains(e.HTML, "<img") && strings.Contains(e.HTML, "&lt;img src=x onerror=alert(1)&gt;")
		})).Return(nil)

		require.NoError(t, f.svc.HandleOrderEvent(ctx, customerEvent(service.OrderEventPlaced, order)))
	})

	t.Run("whatsapp failure is not retried", func(t *testing.T) {
		f := newNotificationFixture(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Email: "asha@example.com", Phone: "9000000000"}
		order := placedOrder(user.ID, entity.OrderStatusPending, entity.PaymentMethodCOD)

		f.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		f.mailer.EXPECT().Send(ctx, mock.Anything).Return(nil)
		f.whatsApp.EXPECT().SendMessage(ctx, "9000000000", mock.Anything).Return(errors.New("twilio down"))

		assert.NoError(t, f.svc.HandleOrderEvent(ctx, customerEvent(service.OrderEventPlaced, order)))
	})

	t.Run("email failure is retryable", func(t *testing.T) {
		f := newNotificationFixture(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Email: "asha@example.com"}
		order := placedOrder(user.ID, entity.OrderStatusPending, entity.PaymentMethodCOD)

		f.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		f.mailer.EXPECT().Send(ctx, mock.Anything).Return(errors.New("sendgrid: 503"))

		assert.Error(t, f.svc.HandleOrderEvent(ctx, customerEvent(service.OrderEventPaymentUpdated, order)))
	})

	t.Run("missing order is dropped", func(t *testing.T) {
		f := newNotificationFixture(t)
		ctx := context.Background()
		order := placedOrder(uuid.New(), entity.OrderStatusPending, entity.PaymentMethodCOD)

		f.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(nil, repository.ErrOrderNotFound)

		assert.NoError(t, f.svc.HandleOrderEvent(ctx, customerEvent(service.OrderEventPlaced, order)))
	})

	t.Run("malformed order id is dropped", func(t *testing.T) {
		f := newNotificationFixture(t)

		assert.NoError(t, f.svc.HandleOrderEvent(context.Background(), &service.OrderEvent{Type: service.OrderEventPlaced, OrderID: "nope"}))
	})

	t.Run("unknown type is ignored", func(t *testing.T) {
		f := newNotificationFixture(t)

		assert.NoError(t, f.svc.HandleOrderEvent(context.Background(), &service.OrderEvent{Type: "order_teleported"}))
	})
}

func TestNotificationService_AssigneeEvents(t *testing.T) {
	t.Run("pushes urgently and deactivates invalid tokens", func(t *testing.T) {
		f := newNotificationFixture(t)
		ctx := context.Background()
		riderID := uuid.New()
		devices := make([]*entity.UserDevice, 0, 3)
		for i := range 3 {
			devices = append(devices, &entity.UserDevice{ID: uuid.New(), UserID: riderID, FCMToken: fmt.Sprintf("token-%d", i), IsActive: true})
		}
		event := &service.OrderEvent{
			Type:          service.OrderEventDeliveryAssigned,
			OrderID:       uuid.NewString(),
			OrderNumber:   "CK261015123456",
			DeliveryBoyID: riderID.String(),
		}

		f.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, riderID).Return(devices, nil)
		f.push.EXPECT().Send(ctx, []string{"token-0", "token-1", "token-2"}, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Urgent && msg.Title == "New order assigned" && msg.Data["order_number"] == "CK261015123456"
		})).Return(&service.PushResult{Sent: 2, Failed: 1, InvalidTokens: []string{"token-1"}}, nil)
		f.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"token-1"}).Return(nil)

		require.NoError(t, f.svc.HandleOrderEvent(ctx, event))
	})

	t.Run("vendor without devices", func(t *testing.T) {
		f := newNotificationFixture(t)
		ctx := context.Background()
		vendorID := uuid.New()

		f.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, vendorID).Return(nil, nil)

		assert.NoError(t, f.svc.HandleOrderEvent(ctx, &service.OrderEvent{Type: service.OrderEventVendorAssigned, VendorID: vendorID.String()}))
	})

	t.Run("push failure is retryable", func(t *testing.T) {
		f := newNotificationFixture(t)
		ctx := context.Background()
		riderID := uuid.New()

		f.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, riderID).Return([]*entity.UserDevice{{FCMToken: "t"}}, nil)
		f.push.EXPECT().Send(ctx, []string{"t"}, mock.Anything).
			Return(&service.PushResult{}, errors.New("fcm unavailable"))

		assert.Error(t, f.svc.HandleOrderEvent(ctx, &service.OrderEvent{Type: service.OrderEventDeliveryAssigned, DeliveryBoyID: riderID.String()}))
	})

	t.Run("partial failure still deactivates rejected tokens", func(t *testing.T) {
		f := newNotificationFixture(t)
		ctx := context.Background()
		riderID := uuid.New()

		f.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, riderID).Return([]*entity.UserDevice{{FCMToken: "a"}, {FCMToken: "b"}}, nil)
		f.push.EXPECT().Send(ctx, []string{"a", "b"}, mock.Anything).
			Return(&service.PushResult{Failed: 1, InvalidTokens: []string{"a"}}, errors.New("fcm unavailable"))
		f.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"a"}).Return(nil)

		assert.Error(t, f.svc.HandleOrderEvent(ctx, &service.OrderEvent{Type: service.OrderEventDeliveryAssigned, DeliveryBoyID: riderID.String()}))
	})
}
