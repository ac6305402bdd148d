package repository

import (
	"context"
	"errors"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCakeNotFound     = errors.New("cake not found")
	ErrAddonNotFound    = errors.New("addon not found")
	// ErrDuplicateSlug is returned when a slug is already taken.
	ErrDuplicateSlug = errors.New("slug already exists")
)

// CategoryRepository persists storefront categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
	// List returns categories ordered by display order, optionally only active ones.
	List(ctx context.Context, activeOnly bool) ([]*entity.Category, error)
}

// CakeFilter narrows a cake listing. Nil pointers mean "any".
type CakeFilter struct {
	CategoryID    *uuid.UUID
	IsEggless     *bool
	IsBestseller  *bool
	Search        string
	AvailableOnly bool
	Page          Pagination
}

// CakeRepository persists cakes.
type CakeRepository interface {
	Create(ctx context.Context, cake *entity.Cake) error
	Update(ctx context.Context, cake *entity.Cake) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cake, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Cake, error)
	// FindByIDs returns the cakes that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Cake, error)
	// List returns one page of cakes matching filter together with the total match count.
	List(ctx context.Context, filter CakeFilter) ([]*entity.Cake, int64, error)
	// UpdateRating stores the recomputed review aggregate for a cake.
	UpdateRating(ctx context.Context, id uuid.UUID, average float64, count int) error
}

// AddonRepository persists addons.
type AddonRepository interface {
	Create(ctx context.Context, addon *entity.Addon) error
	Update(ctx context.Context, addon *entity.Addon) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Addon, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Addon, error)
	List(ctx context.Context, availableOnly bool) ([]*entity.Addon, error)
}
