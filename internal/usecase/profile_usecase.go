// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"cakes/internal/domain/entity"
	"cakes/internal/domain/repository"

	"github.com/google/uuid"
)

// ProfileUsecase covers the caller's own profile and back-office staff accounts.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.User, error)
	ListStaff(ctx context.Context, role entity.Role, page repository.Pagination) ([]*entity.User, int64, error)
}

// --- Input DTOs ---

// UpdateProfileInput lists the fields a user may change. Nil leaves a field untouched.
type UpdateProfileInput struct {
	Name      *string
	Phone     *string
	Addresses []entity.Address // Nil keeps the saved addresses; an empty slice clears them.
}

// CreateStaffInput defines a back-office account created by an admin.
type CreateStaffInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     entity.Role
}
