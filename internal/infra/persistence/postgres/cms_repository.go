package postgres

import (
	"context"
	"time"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type navigationRepository struct {
	db *gorm.DB
}

// NewNavigationRepository is the constructor for navigationRepository.
func NewNavigationRepository(db *gorm.DB) repository.NavigationRepository {
	return &navigationRepository{db: db}
}

func (repo *navigationRepository) Create(ctx context.Context, item *entity.NavigationItem) error {
	itemM := fromNavigationItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create navigation item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *navigationRepository) Update(ctx context.Context, item *entity.NavigationItem) error {
	itemM := fromNavigationItemDomain(item)
	itemM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.NavigationItemModel{ID: item.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(itemM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update navigation item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNavigationItemNotFound
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Delete removes the item and detaches its children to the top level.
func (repo *navigationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.NavigationItemModel{}).
			Where("parent_id = ?", id).
			Update("parent_id", nil).Error; err != nil {
			return errors.Wrap(err, "failed to detach navigation children")
		}

		result := tx.Where("id = ?", id).Delete(&model.NavigationItemModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete navigation item")
		}
		if result.RowsAffected == 0 {
			return repository.ErrNavigationItemNotFound
		}

		return nil
	})
}

func (repo *navigationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.NavigationItem, error) {
	var itemM model.NavigationItemModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNavigationItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find navigation item")
	}

	return toNavigationItemDomain(&itemM), nil
}

func (repo *navigationRepository) List(ctx context.Context, activeOnly bool) ([]*entity.NavigationItem, error) {
	query := repo.db.WithContext(ctx).Model(&model.NavigationItemModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var itemModels []*model.NavigationItemModel
	if err := query.Order("position ASC, label ASC").Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list navigation items")
	}

	items := make([]*entity.NavigationItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toNavigationItemDomain(itemM))
	}

	return items, nil
}

type pageRepository struct {
	db *gorm.DB
}

// NewPageRepository is the constructor for pageRepository.
func NewPageRepository(db *gorm.DB) repository.PageRepository {
	return &pageRepository{db: db}
}

func (repo *pageRepository) Create(ctx context.Context, page *entity.Page) error {
	pageM := fromPageDomain(page)

	if err := repo.db.WithContext(ctx).Create(pageM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create page")
	}

	page.ID = pageM.ID
	page.CreatedAt = pageM.CreatedAt
	page.UpdatedAt = pageM.UpdatedAt

	return nil
}

func (repo *pageRepository) Update(ctx context.Context, page *entity.Page) error {
	pageM := fromPageDomain(page)
	pageM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.PageModel{ID: page.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(pageM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update page")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPageNotFound
	}

	page.UpdatedAt = pageM.UpdatedAt

	return nil
}

func (repo *pageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PageModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete page")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPageNotFound
	}

	return nil
}

func (repo *pageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Page, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *pageRepository) FindBySlug(ctx context.Context, slug string) (*entity.Page, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *pageRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Page, error) {
	var pageM model.PageModel

	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&pageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPageNotFound
		}

		return nil, errors.Wrap(err, "failed to find page")
	}

	return toPageDomain(&pageM), nil
}

func (repo *pageRepository) List(ctx context.Context) ([]*entity.Page, error) {
	var pageModels []*model.PageModel
	if err := repo.db.WithContext(ctx).Order("title ASC").Find(&pageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pages")
	}

	pages := make([]*entity.Page, 0, len(pageModels))
	for _, pageM := range pageModels {
		pages = append(pages, toPageDomain(pageM))
	}

	return pages, nil
}

// --- Mapper Functions ---

func toNavigationItemDomain(data *model.NavigationItemModel) *entity.NavigationItem {
	if data == nil {
		return nil
	}

	return &entity.NavigationItem{
		ID:        data.ID,
		Label:     data.Label,
		URL:       data.URL,
		ParentID:  data.ParentID,
		Position:  data.Position,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromNavigationItemDomain(data *entity.NavigationItem) *model.NavigationItemModel {
	if data == nil {
		return nil
	}

	return &model.NavigationItemModel{
		ID:        data.ID,
		Label:     data.Label,
		URL:       data.URL,
		ParentID:  data.ParentID,
		Position:  data.Position,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toPageDomain(data *model.PageModel) *entity.Page {
	if data == nil {
		return nil
	}

	return &entity.Page{
		ID:              data.ID,
		Slug:            data.Slug,
		Title:           data.Title,
		Content:         data.Content,
		MetaTitle:       data.MetaTitle,
		MetaDescription: data.MetaDescription,
		IsPublished:     data.IsPublished,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromPageDomain(data *entity.Page) *model.PageModel {
	if data == nil {
		return nil
	}

	return &model.PageModel{
		ID:              data.ID,
		Slug:            data.Slug,
		Title:           data.Title,
		Content:         data.Content,
		MetaTitle:       data.MetaTitle,
		MetaDescription: data.MetaDescription,
		IsPublished:     data.IsPublished,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
