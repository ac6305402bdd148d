// Package repository declares the persistence ports of the shop. Implementations live in
// internal/infra/persistence/postgres; usecases only ever see these interfaces.
package repository

import (
	"context"
	"errors"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no live account matches.
var ErrUserNotFound = errors.New("user not found")

// UserRepository stores accounts of customers and staff alike.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail matches the normalized (trimmed, lower-cased) email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	Create(ctx context.Context, user *entity.User) error

	// Update writes profile fields, addresses and roles. Money fields belong to WalletRepository
	// and are left untouched.
	Update(ctx context.Context, user *entity.User) error

	// ListByRole pages through the holders of role, newest account first.
	ListByRole(ctx context.Context, role entity.Role, page Pagination) ([]*entity.User, int64, error)
}
