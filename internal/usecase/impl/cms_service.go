package impl

import (
	"context"
	"log/slog"
	"sort"
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

type cmsService struct {
	navRepo  repository.NavigationRepository
	pageRepo repository.PageRepository
	logger   *slog.Logger
}

// CMSServiceParams holds dependencies for CMSService, injected by Fx.
type CMSServiceParams struct {
	fx.In

	NavRepo  repository.NavigationRepository
	PageRepo repository.PageRepository
	Logger   *slog.Logger
}

// NewCMSService creates the navigation and page service.
func NewCMSService(params CMSServiceParams) usecase.CMSUsecase {
	return &cmsService{
		navRepo:  params.NavRepo,
		pageRepo: params.PageRepo,
		logger:   params.Logger,
	}
}

func (srv *cmsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cmsService) applyNavigationInput(ctx context.Context, item *entity.NavigationItem, input *usecase.NavigationItemInput) error {
	label := strings.TrimSpace(input.Label)
	url := strings.TrimSpace(input.URL)
	if label == "" || url == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "label and url are required")
	}

	if input.ParentID != nil {
		if *input.ParentID == item.ID {
			return errors.Wrap(domainerrors.ErrValidationFailed, "an item cannot be its own parent")
		}
		parent, err := srv.navRepo.FindByID(ctx, *input.ParentID)
		if err != nil {
			return toAppError(err, "failed to find parent item")
		}
		// Menus are two levels deep.
		if parent.ParentID != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "parent item is itself nested")
		}
	}

	item.Label = label
	item.URL = url
	item.ParentID = input.ParentID
	item.Position = input.Position
	item.IsActive = input.IsActive

	return nil
}

func (srv *cmsService) CreateNavigationItem(ctx context.Context, input *usecase.NavigationItemInput) (*entity.NavigationItem, error) {
	item := &entity.NavigationItem{ID: uuid.New()}
	if err := srv.applyNavigationInput(ctx, item, input); err != nil {
		return nil, err
	}

	if err := srv.navRepo.Create(ctx, item); err != nil {
		return nil, toAppError(err, "failed to create navigation item")
	}

	return item, nil
}

func (srv *cmsService) UpdateNavigationItem(ctx context.Context, id uuid.UUID, input *usecase.NavigationItemInput) (*entity.NavigationItem, error) {
	item, err := srv.navRepo.FindByID(ctx, id)
	if err != nil {
		return nil, toAppError(err, "failed to find navigation item")
	}
	if err := srv.applyNavigationInput(ctx, item, input); err != nil {
		return nil, err
	}

	if err := srv.navRepo.Update(ctx, item); err != nil {
		return nil, toAppError(err, "failed to update navigation item")
	}

	return item, nil
}

func (srv *cmsService) DeleteNavigationItem(ctx context.Context, id uuid.UUID) error {
	if err := srv.navRepo.Delete(ctx, id); err != nil {
		return toAppError(err, "failed to delete navigation item")
	}

	srv.log(ctx).Info("Navigation item deleted", slog.Any("id", id))

	return nil
}

func (srv *cmsService) ListNavigationItems(ctx context.Context) ([]*entity.NavigationItem, error) {
	items, err := srv.navRepo.List(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list navigation items")
	}

	return items, nil
}

func (srv *cmsService) NavigationTree(ctx context.Context) ([]*entity.NavigationItem, error) {
	items, err := srv.navRepo.List(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list navigation items")
	}

	return buildNavigationTree(items), nil
}

// buildNavigationTree nests items under their parents. Children of a missing or inactive parent
// are dropped with it.
func buildNavigationTree(items []*entity.NavigationItem) []*entity.NavigationItem {
	sorted := make([]*entity.NavigationItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	byID := make(map[uuid.UUID]*entity.NavigationItem, len(sorted))
	for _, item := range sorted {
		item.Children = nil
		byID[item.ID] = item
	}

	roots := make([]*entity.NavigationItem, 0, len(sorted))
	for _, item := range sorted {
		if item.ParentID == nil {
			roots = append(roots, item)

			continue
		}
		if parent, ok := byID[*item.ParentID]; ok {
			parent.Children = append(parent.Children, item)
		}
	}

	return roots
}

func applyPageInput(page *entity.Page, input *usecase.PageInput) error {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "title is required")
	}

	slug, err := slugFor(input.Slug, title)
	if err != nil {
		return err
	}

	page.Slug = slug
	page.Title = title
	page.Content = input.Content
	page.MetaTitle = strings.TrimSpace(input.MetaTitle)
	page.MetaDescription = strings.TrimSpace(input.MetaDescription)
	page.IsPublished = input.IsPublished

	return nil
}

func (srv *cmsService) CreatePage(ctx context.Context, input *usecase.PageInput) (*entity.Page, error) {
	page := &entity.Page{ID: uuid.New()}
	if err := applyPageInput(page, input); err != nil {
		return nil, err
	}

	if err := srv.pageRepo.Create(ctx, page); err != nil {
		return nil, toAppError(err, "failed to create page")
	}

	return page, nil
}

func (srv *cmsService) UpdatePage(ctx context.Context, id uuid.UUID, input *usecase.PageInput) (*entity.Page, error) {
	page, err := srv.pageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, toAppError(err, "failed to find page")
	}
	if err := applyPageInput(page, input); err != nil {
		return nil, err
	}

	if err := srv.pageRepo.Update(ctx, page); err != nil {
		return nil, toAppError(err, "failed to update page")
	}

	return page, nil
}

func (srv *cmsService) DeletePage(ctx context.Context, id uuid.UUID) error {
	if err := srv.pageRepo.Delete(ctx, id); err != nil {
		return toAppError(err, "failed to delete page")
	}

	return nil
}

func (srv *cmsService) ListPages(ctx context.Context) ([]*entity.Page, error) {
	pages, err := srv.pageRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pages")
	}

	return pages, nil
}

func (srv *cmsService) GetPublishedPage(ctx context.Context, slug string) (*entity.Page, error) {
	page, err := srv.pageRepo.FindBySlug(ctx, entity.Slugify(slug))
	if err != nil {
		return nil, toAppError(err, "failed to find page")
	}
	if !page.IsPublished {
		return nil, errors.Wrap(domainerrors.ErrPageNotFound, "page is a draft")
	}

	return page, nil
}
