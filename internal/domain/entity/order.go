// Package entity contains the core business objects of the project.
package entity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// orderTransitions lists, for each status, the statuses it may move to.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:        {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:      {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:      {OrderStatusOutForDelivery, OrderStatusCancelled},
	OrderStatusOutForDelivery: {OrderStatusDelivered},
}

// IsValid checks if the status is known.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// PaymentStatus is the money state of an order.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	PaymentMethodOnline PaymentMethod = "online"
	PaymentMethodCOD    PaymentMethod = "cod"
	PaymentMethodWallet PaymentMethod = "wallet"
)

// IsValid checks if the payment method is known.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodOnline || m == PaymentMethodCOD || m == PaymentMethodWallet
}

// OrderAddon is an addon line frozen at order time.
type OrderAddon struct {
	AddonID  uuid.UUID       `json:"addon_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// OrderItem is a cake line frozen at order time. Prices never follow later catalog edits.
type OrderItem struct {
	CakeID    uuid.UUID       `json:"cake_id"`
	CakeName  string          `json:"cake_name"`
	CakeImage string          `json:"cake_image,omitempty"`
	Weight    string          `json:"weight,omitempty"`
	Flavor    string          `json:"flavor,omitempty"`
	Message   string          `json:"message,omitempty"` // Text piped on the cake.
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Addons    []OrderAddon    `json:"addons,omitempty"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// DeliveryOptions captures when and how the customer wants the order delivered.
type DeliveryOptions struct {
	Date         string `json:"date"`                    // YYYY-MM-DD.
	Slot         string `json:"slot,omitempty"`          // e.g. "18:00-21:00".
	Occasion     string `json:"occasion,omitempty"`      // e.g. "birthday".
	Instructions string `json:"instructions,omitempty"`  // Free text for the rider.
	AreaID       string `json:"area_id,omitempty"`       // Matched delivery area.
	MidnightSlot bool   `json:"midnight_slot,omitempty"` // Delivered around midnight.
}

// Order is a customer purchase.
type Order struct {
	ID                   uuid.UUID       `json:"id"`
	OrderNumber          string          `json:"order_number"`
	UserID               uuid.UUID       `json:"user_id"`
	Items                []OrderItem     `json:"items"`
	DeliveryAddress      Address         `json:"delivery_address"`
	Delivery             DeliveryOptions `json:"delivery"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	DeliveryFee          decimal.Decimal `json:"delivery_fee"`
	Discount             decimal.Decimal `json:"discount"`
	WalletUsed           decimal.Decimal `json:"wallet_used"`
	Total                decimal.Decimal `json:"total"` // Amount still to collect after wallet.
	PromoCode            string          `json:"promo_code,omitempty"`
	Status               OrderStatus     `json:"status"`
	PaymentMethod        PaymentMethod   `json:"payment_method"`
	PaymentStatus        PaymentStatus   `json:"payment_status"`
	PaymentTransactionID string          `json:"payment_transaction_id,omitempty"`
	DeliveryBoyID        *uuid.UUID      `json:"delivery_boy_id,omitempty"`
	VendorID             *uuid.UUID      `json:"vendor_id,omitempty"`
	CancelReason         string          `json:"cancel_reason,omitempty"`
	ConfirmedAt          *time.Time      `json:"confirmed_at,omitempty"`
	PreparingAt          *time.Time      `json:"preparing_at,omitempty"`
	OutForDeliveryAt     *time.Time      `json:"out_for_delivery_at,omitempty"`
	DeliveredAt          *time.Time      `json:"delivered_at,omitempty"`
	CancelledAt          *time.Time      `json:"cancelled_at,omitempty"`
	AssignedAt           *time.Time      `json:"assigned_at,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// ApplyStatus moves the order to next and stamps the matching timeline field.
// Callers must check CanTransitionTo first.
func (o *Order) ApplyStatus(next OrderStatus, at time.Time) {
	o.Status = next
	switch next {
	case OrderStatusConfirmed:
		o.ConfirmedAt = &at
	case OrderStatusPreparing:
		o.PreparingAt = &at
	case OrderStatusOutForDelivery:
		o.OutForDeliveryAt = &at
	case OrderStatusDelivered:
		o.DeliveredAt = &at
		if o.PaymentMethod == PaymentMethodCOD {
			o.PaymentStatus = PaymentStatusPaid
		}
	case OrderStatusCancelled:
		o.CancelledAt = &at
	}
	o.UpdatedAt = at
}

// IsCancellableByCustomer reports whether the customer may still cancel.
func (o *Order) IsCancellableByCustomer() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusConfirmed
}

// RefundableAmount is what goes back to the wallet on cancellation: the wallet part,
// plus the collected part when it was already paid online.
func (o *Order) RefundableAmount() decimal.Decimal {
	refund := o.WalletUsed
	if o.PaymentStatus == PaymentStatusPaid && o.PaymentMethod == PaymentMethodOnline {
		refund = refund.Add(o.Total)
	}

	return refund
}

// ContainsCake reports whether any line is for cakeID.
func (o *Order) ContainsCake(cakeID uuid.UUID) bool {
	for _, item := range o.Items {
		if item.CakeID == cakeID {
			return true
		}
	}

	return false
}

// NewOrderNumber builds a human-friendly order number: "CK", the date as yyMMdd and six random digits.
func NewOrderNumber(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("CK%s%06d", now.Format("060102"), n.Int64()), nil
}

// TrackingView is the public, personal-data-free projection of an order.
type TrackingView struct {
	OrderNumber      string      `json:"order_number"`
	Status           OrderStatus `json:"status"`
	DeliveryDate     string      `json:"delivery_date"`
	DeliverySlot     string      `json:"delivery_slot,omitempty"`
	ItemCount        int         `json:"item_count"`
	PlacedAt         time.Time   `json:"placed_at"`
	ConfirmedAt      *time.Time  `json:"confirmed_at,omitempty"`
	PreparingAt      *time.Time  `json:"preparing_at,omitempty"`
	OutForDeliveryAt *time.Time  `json:"out_for_delivery_at,omitempty"`
	DeliveredAt      *time.Time  `json:"delivered_at,omitempty"`
	CancelledAt      *time.Time  `json:"cancelled_at,omitempty"`
}

// Tracking returns the public view of the order.
func (o *Order) Tracking() *TrackingView {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}

	return &TrackingView{
		OrderNumber:      o.OrderNumber,
		Status:           o.Status,
		DeliveryDate:     o.Delivery.Date,
		DeliverySlot:     o.Delivery.Slot,
		ItemCount:        count,
		PlacedAt:         o.CreatedAt,
		ConfirmedAt:      o.ConfirmedAt,
		PreparingAt:      o.PreparingAt,
		OutForDeliveryAt: o.OutForDeliveryAt,
		DeliveredAt:      o.DeliveredAt,
		CancelledAt:      o.CancelledAt,
	}
}
