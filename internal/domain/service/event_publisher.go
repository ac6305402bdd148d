package service

import (
	"context"
)

// OrderEventType names what happened to an order.
type OrderEventType string

const (
	OrderEventPlaced           OrderEventType = "order_placed"
	OrderEventStatusChanged    OrderEventType = "status_changed"
	OrderEventPaymentUpdated   OrderEventType = "payment_updated"
	OrderEventDeliveryAssigned OrderEventType = "delivery_assigned"
	OrderEventVendorAssigned   OrderEventType = "vendor_assigned"
)

// OrderEvent is published after an order changes and consumed by the notifier worker.
type OrderEvent struct {
	RequestID     string         `json:"request_id,omitempty"` // For distributed tracing
	Type          OrderEventType `json:"type"`
	OrderID       string         `json:"order_id"`
	OrderNumber   string         `json:"order_number"`
	UserID        string         `json:"user_id"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"payment_status,omitempty"`
	DeliveryBoyID string         `json:"delivery_boy_id,omitempty"`
	VendorID      string         `json:"vendor_id,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
