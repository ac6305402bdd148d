package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	categoryRepo repository.CategoryRepository
	cakeRepo     repository.CakeRepository
	addonRepo    repository.AddonRepository
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	CakeRepo     repository.CakeRepository
	AddonRepo    repository.AddonRepository
	Logger       *slog.Logger
}

// NewCatalogService creates the storefront catalog service.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		categoryRepo: params.CategoryRepo,
		cakeRepo:     params.CakeRepo,
		addonRepo:    params.AddonRepo,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// slugFor returns the explicit slug, normalised, or one derived from name.
func slugFor(slug, name string) (string, error) {
	if s := entity.Slugify(slug); s != "" {
		return s, nil
	}
	if s := entity.Slugify(name); s != "" {
		return s, nil
	}

	return "", errors.Wrap(domainerrors.ErrValidationFailed, "a slug cannot be derived from the name")
}

func (srv *catalogService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	slug, err := slugFor(input.Slug, input.Name)
	if err != nil {
		return nil, err
	}

	category := &entity.Category{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Slug:         slug,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		ParentID:     input.ParentID,
		DisplayOrder: input.DisplayOrder,
		IsActive:     input.IsActive,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, toAppError(err, "failed to create category")
	}
	srv.log(ctx).Info("Created category", slog.String("slug", category.Slug))

	return category, nil
}

func (srv *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, toAppError(err, "failed to find category")
	}

	slug, err := slugFor(input.Slug, input.Name)
	if err != nil {
		return nil, err
	}
	if input.ParentID != nil && *input.ParentID == id {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "a category cannot be its own parent")
	}

	category.Name = strings.TrimSpace(input.Name)
	category.Slug = slug
	category.Description = input.Description
	category.ImageURL = input.ImageURL
	category.ParentID = input.ParentID
	category.DisplayOrder = input.DisplayOrder
	category.IsActive = input.IsActive

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, toAppError(err, "failed to update category")
	}

	return category, nil
}

func (srv *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		return toAppError(err, "failed to delete category")
	}
	srv.log(ctx).Info("Deleted category", slog.Any("categoryID", id))

	return nil
}

func (srv *catalogService) ListCategories(ctx context.Context, activeOnly bool) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// GetCategoryBySlug hides inactive categories from the storefront.
func (srv *catalogService) GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, toAppError(err, "failed to find category")
	}
	if !category.IsActive {
		return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "category is inactive")
	}

	return category, nil
}

// validateCake enforces the price rules shared by create and update.
func validateCake(input *usecase.CakeInput) error {
	if input.BasePrice.IsNegative() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "base price must not be negative")
	}

	seen := make(map[string]struct{}, len(input.WeightOptions))
	for _, opt := range input.WeightOptions {
		weight := strings.ToLower(strings.TrimSpace(opt.Weight))
		if weight == "" || !opt.Price.IsPositive() {
			return errors.Wrap(domainerrors.ErrValidationFailed, "every weight option needs a weight and a positive price")
		}
		if _, dup := seen[weight]; dup {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "weight %q is listed twice", opt.Weight)
		}
		seen[weight] = struct{}{}
	}

	return nil
}

func (srv *catalogService) applyCakeInput(ctx context.Context, cake *entity.Cake, input *usecase.CakeInput) error {
	if err := validateCake(input); err != nil {
		return err
	}

	slug, err := slugFor(input.Slug, input.Name)
	if err != nil {
		return err
	}

	if _, err := srv.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return toAppError(err, "failed to find cake category")
	}

	cake.CategoryID = input.CategoryID
	cake.Name = strings.TrimSpace(input.Name)
	cake.Slug = slug
	cake.Description = input.Description
	cake.BasePrice = input.BasePrice
	cake.WeightOptions = nonNilSlice(input.WeightOptions)
	cake.Flavors = nonNilSlice(input.Flavors)
	cake.Images = nonNilSlice(input.Images)
	cake.Tags = nonNilSlice(input.Tags)
	cake.IsEggless = input.IsEggless
	cake.IsBestseller = input.IsBestseller
	cake.IsAvailable = input.IsAvailable

	return nil
}

func (srv *catalogService) CreateCake(ctx context.Context, input *usecase.CakeInput) (*entity.Cake, error) {
	cake := &entity.Cake{ID: uuid.New()}
	if err := srv.applyCakeInput(ctx, cake, input); err != nil {
		return nil, err
	}

	if err := srv.cakeRepo.Create(ctx, cake); err != nil {
		return nil, toAppError(err, "failed to create cake")
	}
	srv.log(ctx).Info("Created cake", slog.String("slug", cake.Slug))

	return cake, nil
}

// UpdateCake replaces the editable fields; the rating aggregate is kept.
func (srv *catalogService) UpdateCake(ctx context.Context, id uuid.UUID, input *usecase.CakeInput) (*entity.Cake, error) {
	cake, err := srv.cakeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, toAppError(err, "failed to find cake")
	}

	if err := srv.applyCakeInput(ctx, cake, input); err != nil {
		return nil, err
	}

	if err := srv.cakeRepo.Update(ctx, cake); err != nil {
		return nil, toAppError(err, "failed to update cake")
	}

	return cake, nil
}

func (srv *catalogService) DeleteCake(ctx context.Context, id uuid.UUID) error {
	if err := srv.cakeRepo.Delete(ctx, id); err != nil {
		return toAppError(err, "failed to delete cake")
	}
	srv.log(ctx).Info("Deleted cake", slog.Any("cakeID", id))

	return nil
}

func (srv *catalogService) GetCake(ctx context.Context, id uuid.UUID) (*entity.Cake, error) {
	cake, err := srv.cakeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, toAppError(err, "failed to find cake")
	}

	return cake, nil
}

func (srv *catalogService) GetCakeBySlug(ctx context.Context, slug string) (*entity.Cake, error) {
	cake, err := srv.cakeRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, toAppError(err, "failed to find cake")
	}

	return cake, nil
}

func (srv *catalogService) ListCakes(ctx context.Context, query *usecase.CakeQuery, includeUnavailable bool) (*usecase.CakePage, error) {
	filter := repository.CakeFilter{
		IsEggless:     query.IsEggless,
		IsBestseller:  query.IsBestseller,
		Search:        strings.TrimSpace(query.Search),
		AvailableOnly: !includeUnavailable,
		Page:          repository.NewPagination(query.Page.Page, query.Page.Limit),
	}

	if query.CategorySlug != "" {
		category, err := srv.categoryRepo.FindBySlug(ctx, query.CategorySlug)
		if err != nil {
			return nil, toAppError(err, "failed to resolve category filter")
		}
		filter.CategoryID = &category.ID
	}

	cakes, total, err := srv.cakeRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cakes")
	}

	return &usecase.CakePage{Cakes: cakes, Total: total, Page: filter.Page}, nil
}

func (srv *catalogService) CreateAddon(ctx context.Context, input *usecase.AddonInput) (*entity.Addon, error) {
	if input.Price.IsNegative() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must not be negative")
	}

	addon := &entity.Addon{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		IsAvailable: input.IsAvailable,
	}

	if err := srv.addonRepo.Create(ctx, addon); err != nil {
		return nil, toAppError(err, "failed to create addon")
	}

	return addon, nil
}

func (srv *catalogService) UpdateAddon(ctx context.Context, id uuid.UUID, input *usecase.AddonInput) (*entity.Addon, error) {
	if input.Price.IsNegative() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must not be negative")
	}

	addon, err := srv.addonRepo.FindByID(ctx, id)
	if err != nil {
		return nil, toAppError(err, "failed to find addon")
	}

	addon.Name = strings.TrimSpace(input.Name)
	addon.Description = input.Description
	addon.Category = input.Category
	addon.Price = input.Price
	addon.ImageURL = input.ImageURL
	addon.IsAvailable = input.IsAvailable

	if err := srv.addonRepo.Update(ctx, addon); err != nil {
		return nil, toAppError(err, "failed to update addon")
	}

	return addon, nil
}

func (srv *catalogService) DeleteAddon(ctx context.Context, id uuid.UUID) error {
	if err := srv.addonRepo.Delete(ctx, id); err != nil {
		return toAppError(err, "failed to delete addon")
	}

	return nil
}

func (srv *catalogService) ListAddons(ctx context.Context, availableOnly bool) ([]*entity.Addon, error) {
	addons, err := srv.addonRepo.List(ctx, availableOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addons")
	}

	return addons, nil
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
