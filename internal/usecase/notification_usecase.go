package usecase

import (
	"context"

	"cakes/internal/domain/service"
)

// NotificationUsecase fans an order event out to email, WhatsApp and staff push.
type NotificationUsecase interface {
	// HandleOrderEvent delivers the notifications for event. A returned error is retryable.
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error
}
