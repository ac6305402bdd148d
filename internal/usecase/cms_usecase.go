package usecase

import (
	"context"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
)

// NavigationItemInput is the writable part of a menu item.
type NavigationItemInput struct {
	Label    string
	URL      string
	ParentID *uuid.UUID
	Position int
	IsActive bool
}

// PageInput is the writable part of a CMS page. An empty Slug is derived from Title.
type PageInput struct {
	Slug            string
	Title           string
	Content         string
	MetaTitle       string
	MetaDescription string
	IsPublished     bool
}

// CMSUsecase manages storefront navigation and content pages.
type CMSUsecase interface {
	CreateNavigationItem(ctx context.Context, input *NavigationItemInput) (*entity.NavigationItem, error)
	UpdateNavigationItem(ctx context.Context, id uuid.UUID, input *NavigationItemInput) (*entity.NavigationItem, error)
	DeleteNavigationItem(ctx context.Context, id uuid.UUID) error
	ListNavigationItems(ctx context.Context) ([]*entity.NavigationItem, error)
	// NavigationTree returns the active items nested under their parents, ordered by position.
	NavigationTree(ctx context.Context) ([]*entity.NavigationItem, error)

	CreatePage(ctx context.Context, input *PageInput) (*entity.Page, error)
	UpdatePage(ctx context.Context, id uuid.UUID, input *PageInput) (*entity.Page, error)
	DeletePage(ctx context.Context, id uuid.UUID) error
	ListPages(ctx context.Context) ([]*entity.Page, error)
	// GetPublishedPage returns a page by slug, hiding drafts.
	GetPublishedPage(ctx context.Context, slug string) (*entity.Page, error)
}
