package repository

import (
	"context"
	"errors"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for CMS persistence.
var (
	ErrNavigationItemNotFound = errors.New("navigation item not found")
	ErrPageNotFound           = errors.New("page not found")
)

// NavigationRepository persists menu items as a flat list; the tree is built by the caller.
type NavigationRepository interface {
	Create(ctx context.Context, item *entity.NavigationItem) error
	Update(ctx context.Context, item *entity.NavigationItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.NavigationItem, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.NavigationItem, error)
}

// PageRepository persists CMS pages.
type PageRepository interface {
	Create(ctx context.Context, page *entity.Page) error
	Update(ctx context.Context, page *entity.Page) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Page, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Page, error)
	List(ctx context.Context) ([]*entity.Page, error)
}
