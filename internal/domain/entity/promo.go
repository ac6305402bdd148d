// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountType is how a promo code reduces the subtotal.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// PromoCode is a discount rule applied at checkout.
type PromoCode struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"` // Stored uppercase.
	Description   string          `json:"description"`
	DiscountType  DiscountType    `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	MinOrderValue decimal.Decimal `json:"min_order_value"`
	MaxDiscount   decimal.Decimal `json:"max_discount"` // Zero means uncapped.
	UsageLimit    int             `json:"usage_limit"`  // Zero means unlimited.
	UsedCount     int             `json:"used_count"`
	ValidFrom     *time.Time      `json:"valid_from,omitempty"`
	ValidUntil    *time.Time      `json:"valid_until,omitempty"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PromoCheck is the outcome of checking a promo code against a cart.
type PromoCheck int

const (
	PromoOK PromoCheck = iota
	PromoInactive
	PromoExpired
	PromoUsageExceeded
	PromoMinOrderNotMet
)

// Check evaluates the code's rules at now for the given subtotal.
func (p *PromoCode) Check(now time.Time, subtotal decimal.Decimal) PromoCheck {
	if !p.IsActive {
		return PromoInactive
	}
	if p.ValidFrom != nil && now.Before(*p.ValidFrom) {
		return PromoExpired
	}
	if p.ValidUntil != nil && now.After(*p.ValidUntil) {
		return PromoExpired
	}
	if p.UsageLimit > 0 && p.UsedCount >= p.UsageLimit {
		return PromoUsageExceeded
	}
	if subtotal.LessThan(p.MinOrderValue) {
		return PromoMinOrderNotMet
	}

	return PromoOK
}

// DiscountFor computes the discount on subtotal, rounded to 2 decimals and never above subtotal.
func (p *PromoCode) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch p.DiscountType {
	case DiscountTypePercentage:
		discount = subtotal.Mul(p.DiscountValue).Div(decimal.NewFromInt(100))
		if p.MaxDiscount.IsPositive() && discount.GreaterThan(p.MaxDiscount) {
			discount = p.MaxDiscount
		}
	case DiscountTypeFixed:
		discount = p.DiscountValue
	default:
		return decimal.Zero
	}

	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	return discount.Round(2)
}
