package postgres

import (
	"context"
	"strings"
	"time"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// --- Categories ---

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)
	categoryM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{ID: category.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(categoryM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CategoryModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("category still has cakes")
		}

		return errors.Wrap(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *categoryRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

// List returns categories by display order.
func (repo *categoryRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Category, error) {
	query := repo.db.WithContext(ctx).Model(&model.CategoryModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var categoryModels []*model.CategoryModel
	if err := query.Order("display_order ASC, name ASC").Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// --- Cakes ---

type cakeRepository struct {
	db *gorm.DB
}

// NewCakeRepository is the constructor for cakeRepository.
func NewCakeRepository(db *gorm.DB) repository.CakeRepository {
	return &cakeRepository{db: db}
}

func (repo *cakeRepository) Create(ctx context.Context, cake *entity.Cake) error {
	cakeM := fromCakeDomain(cake)

	if err := repo.db.WithContext(ctx).Omit("Category").Create(cakeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cake")
	}

	cake.ID = cakeM.ID
	cake.CreatedAt = cakeM.CreatedAt
	cake.UpdatedAt = cakeM.UpdatedAt

	return nil
}

// Update writes the catalog fields. The rating columns are maintained by UpdateRating.
func (repo *cakeRepository) Update(ctx context.Context, cake *entity.Cake) error {
	cakeM := fromCakeDomain(cake)
	cakeM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.CakeModel{ID: cake.ID}).
		Select("*").
		Omit("id", "created_at", "average_rating", "review_count", "Category").
		Updates(cakeM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSlug
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cake")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCakeNotFound
	}

	cake.UpdatedAt = cakeM.UpdatedAt

	return nil
}

func (repo *cakeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CakeModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cake")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCakeNotFound
	}

	return nil
}

func (repo *cakeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cake, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *cakeRepository) FindBySlug(ctx context.Context, slug string) (*entity.Cake, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *cakeRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Cake, error) {
	var cakeM model.CakeModel

	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&cakeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCakeNotFound
		}

		return nil, errors.Wrap(err, "failed to find cake")
	}

	return toCakeDomain(&cakeM), nil
}

// FindByIDs returns the cakes that exist among ids, in no particular order.
func (repo *cakeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Cake, error) {
	if len(ids) == 0 {
		return []*entity.Cake{}, nil
	}

	var cakeModels []*model.CakeModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&cakeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cakes by ids")
	}

	cakes := make([]*entity.Cake, 0, len(cakeModels))
	for _, cakeM := range cakeModels {
		cakes = append(cakes, toCakeDomain(cakeM))
	}

	return cakes, nil
}

// List applies the storefront filters and returns one page plus the total match count.
func (repo *cakeRepository) List(ctx context.Context, filter repository.CakeFilter) ([]*entity.Cake, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.CakeModel{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.IsEggless != nil {
		query = query.Where("is_eggless = ?", *filter.IsEggless)
	}
	if filter.IsBestseller != nil {
		query = query.Where("is_bestseller = ?", *filter.IsBestseller)
	}
	if filter.AvailableOnly {
		query = query.Where("is_available = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where("(name ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count cakes")
	}

	var cakeModels []*model.CakeModel
	if err := query.
		Order("is_bestseller DESC, created_at DESC").
		Offset(filter.Page.Offset()).
		Limit(filter.Page.Size()).
		Find(&cakeModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list cakes")
	}

	cakes := make([]*entity.Cake, 0, len(cakeModels))
	for _, cakeM := range cakeModels {
		cakes = append(cakes, toCakeDomain(cakeM))
	}

	return cakes, total, nil
}

func (repo *cakeRepository) UpdateRating(ctx context.Context, id uuid.UUID, average float64, count int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CakeModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"average_rating": average, "review_count": count})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cake rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCakeNotFound
	}

	return nil
}

// --- Addons ---

type addonRepository struct {
	db *gorm.DB
}

// NewAddonRepository is the constructor for addonRepository.
func NewAddonRepository(db *gorm.DB) repository.AddonRepository {
	return &addonRepository{db: db}
}

func (repo *addonRepository) Create(ctx context.Context, addon *entity.Addon) error {
	addonM := fromAddonDomain(addon)

	if err := repo.db.WithContext(ctx).Create(addonM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create addon")
	}

	addon.ID = addonM.ID
	addon.CreatedAt = addonM.CreatedAt
	addon.UpdatedAt = addonM.UpdatedAt

	return nil
}

func (repo *addonRepository) Update(ctx context.Context, addon *entity.Addon) error {
	addonM := fromAddonDomain(addon)
	addonM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.AddonModel{ID: addon.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(addonM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update addon")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddonNotFound
	}

	addon.UpdatedAt = addonM.UpdatedAt

	return nil
}

func (repo *addonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AddonModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete addon")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddonNotFound
	}

	return nil
}

func (repo *addonRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Addon, error) {
	var addonM model.AddonModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&addonM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddonNotFound
		}

		return nil, errors.Wrap(err, "failed to find addon")
	}

	return toAddonDomain(&addonM), nil
}

func (repo *addonRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Addon, error) {
	if len(ids) == 0 {
		return []*entity.Addon{}, nil
	}

	var addonModels []*model.AddonModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&addonModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addons by ids")
	}

	addons := make([]*entity.Addon, 0, len(addonModels))
	for _, addonM := range addonModels {
		addons = append(addons, toAddonDomain(addonM))
	}

	return addons, nil
}

func (repo *addonRepository) List(ctx context.Context, availableOnly bool) ([]*entity.Addon, error) {
	query := repo.db.WithContext(ctx).Model(&model.AddonModel{})
	if availableOnly {
		query = query.Where("is_available = ?", true)
	}

	var addonModels []*model.AddonModel
	if err := query.Order("category ASC, name ASC").Find(&addonModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list addons")
	}

	addons := make([]*entity.Addon, 0, len(addonModels))
	for _, addonM := range addonModels {
		addons = append(addons, toAddonDomain(addonM))
	}

	return addons, nil
}

// escapeLike escapes LIKE wildcards in user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:           data.ID,
		Name:         data.Name,
		Slug:         data.Slug,
		Description:  data.Description,
		ImageURL:     data.ImageURL,
		ParentID:     data.ParentID,
		DisplayOrder: data.DisplayOrder,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:           data.ID,
		Name:         data.Name,
		Slug:         data.Slug,
		Description:  data.Description,
		ImageURL:     data.ImageURL,
		ParentID:     data.ParentID,
		DisplayOrder: data.DisplayOrder,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toCakeDomain(data *model.CakeModel) *entity.Cake {
	if data == nil {
		return nil
	}

	return &entity.Cake{
		ID:            data.ID,
		CategoryID:    data.CategoryID,
		Name:          data.Name,
		Slug:          data.Slug,
		Description:   data.Description,
		BasePrice:     data.BasePrice,
		WeightOptions: []entity.WeightOption(data.WeightOptions),
		Flavors:       []string(data.Flavors),
		Images:        []string(data.Images),
		Tags:          []string(data.Tags),
		IsEggless:     data.IsEggless,
		IsBestseller:  data.IsBestseller,
		IsAvailable:   data.IsAvailable,
		AverageRating: data.AverageRating,
		ReviewCount:   data.ReviewCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromCakeDomain(data *entity.Cake) *model.CakeModel {
	if data == nil {
		return nil
	}

	return &model.CakeModel{
		ID:            data.ID,
		CategoryID:    data.CategoryID,
		Name:          data.Name,
		Slug:          data.Slug,
		Description:   data.Description,
		BasePrice:     data.BasePrice,
		WeightOptions: datatypes.JSONSlice[entity.WeightOption](nonNil(data.WeightOptions)),
		Flavors:       datatypes.JSONSlice[string](nonNil(data.Flavors)),
		Images:        datatypes.JSONSlice[string](nonNil(data.Images)),
		Tags:          datatypes.JSONSlice[string](nonNil(data.Tags)),
		IsEggless:     data.IsEggless,
		IsBestseller:  data.IsBestseller,
		IsAvailable:   data.IsAvailable,
		AverageRating: data.AverageRating,
		ReviewCount:   data.ReviewCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toAddonDomain(data *model.AddonModel) *entity.Addon {
	if data == nil {
		return nil
	}

	return &entity.Addon{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromAddonDomain(data *entity.Addon) *model.AddonModel {
	if data == nil {
		return nil
	}

	return &model.AddonModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// nonNil keeps JSON columns as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
