// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer's rating of a cake they received.
type Review struct {
	ID         uuid.UUID `json:"id"`
	CakeID     uuid.UUID `json:"cake_id"`
	UserID     uuid.UUID `json:"user_id"`
	OrderID    uuid.UUID `json:"order_id"`
	UserName   string    `json:"user_name"`
	Rating     int       `json:"rating"` // 1..5.
	Comment    string    `json:"comment"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
