// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is an account in the shop. Customers, admins, delivery boys and vendors are all users;
// what they may do is decided by Roles.
type User struct {
	ID            uuid.UUID       `json:"id"`
	Email         string          `json:"email"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Roles         Roles           `json:"roles"`
	Addresses     []Address       `json:"addresses"`      // Saved delivery addresses.
	WalletBalance decimal.Decimal `json:"wallet_balance"` // Never negative.
	LoyaltyPoints int             `json:"loyalty_points"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// HasRole reports whether the user holds role.
func (u *User) HasRole(role Role) bool {
	return u != nil && u.Roles.Contains(role)
}

// IsStaff reports whether the user works for the shop rather than buying from it.
func (u *User) IsStaff() bool {
	return u.HasRole(RoleAdmin) || u.HasRole(RoleDeliveryBoy) || u.HasRole(RoleVendor)
}
