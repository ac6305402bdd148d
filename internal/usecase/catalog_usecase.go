package usecase

import (
	"context"

	"cakes/internal/domain/entity"
	"cakes/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryInput is the writable part of a category. An empty Slug is derived from Name.
type CategoryInput struct {
	Name         string
	Slug         string
	Description  string
	ImageURL     string
	ParentID     *uuid.UUID
	DisplayOrder int
	IsActive     bool
}

// CakeInput is the writable part of a cake. An empty Slug is derived from Name.
type CakeInput struct {
	CategoryID    uuid.UUID
	Name          string
	Slug          string
	Description   string
	BasePrice     decimal.Decimal
	WeightOptions []entity.WeightOption
	Flavors       []string
	Images        []string
	Tags          []string
	IsEggless     bool
	IsBestseller  bool
	IsAvailable   bool
}

// AddonInput is the writable part of an addon.
type AddonInput struct {
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	ImageURL    string
	IsAvailable bool
}

// CakeQuery is the public cake listing request.
type CakeQuery struct {
	CategorySlug string
	IsEggless    *bool
	IsBestseller *bool
	Search       string
	Page         repository.Pagination
}

// CakePage is one page of cakes.
type CakePage struct {
	Cakes []*entity.Cake
	Total int64
	Page  repository.Pagination
}

// CatalogUsecase manages categories, cakes and addons.
type CatalogUsecase interface {
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context, activeOnly bool) ([]*entity.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)

	CreateCake(ctx context.Context, input *CakeInput) (*entity.Cake, error)
	UpdateCake(ctx context.Context, id uuid.UUID, input *CakeInput) (*entity.Cake, error)
	DeleteCake(ctx context.Context, id uuid.UUID) error
	GetCake(ctx context.Context, id uuid.UUID) (*entity.Cake, error)
	GetCakeBySlug(ctx context.Context, slug string) (*entity.Cake, error)
	// ListCakes returns available cakes only; the back office passes includeUnavailable.
	ListCakes(ctx context.Context, query *CakeQuery, includeUnavailable bool) (*CakePage, error)

	CreateAddon(ctx context.Context, input *AddonInput) (*entity.Addon, error)
	UpdateAddon(ctx context.Context, id uuid.UUID, input *AddonInput) (*entity.Addon, error)
	DeleteAddon(ctx context.Context, id uuid.UUID) error
	ListAddons(ctx context.Context, availableOnly bool) ([]*entity.Addon, error)
}
