package impl

import (
	"context"
	"testing"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	mockRepo "cakes/internal/mocks/repository"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCMSService(t *testing.T) (usecase.CMSUsecase, *mockRepo.MockNavigationRepository, *mockRepo.MockPageRepository) {
	navRepo := mockRepo.NewMockNavigationRepository(t)
	pageRepo := mockRepo.NewMockPageRepository(t)

	return NewCMSService(CMSServiceParams{NavRepo: navRepo, PageRepo: pageRepo, Logger: newDiscardLogger()}), navRepo, pageRepo
}

func TestBuildNavigationTree(t *testing.T) {
	shop := &entity.NavigationItem{ID: uuid.New(), Label: "Shop", Position: 2}
	about := &entity.NavigationItem{ID: uuid.New(), Label: "About", Position: 1}
	birthday := &entity.NavigationItem{ID: uuid.New(), Label: "Birthday", ParentID: &shop.ID, Position: 2}
	wedding := &entity.NavigationItem{ID: uuid.New(), Label: "Wedding", ParentID: &shop.ID, Position: 1}
	missingParent := uuid.New()
	orphan := &entity.NavigationItem{ID: uuid.New(), Label: "Orphan", ParentID: &missingParent}

	roots := buildNavigationTree([]*entity.NavigationItem{birthday, shop, orphan, wedding, about})

	require.Len(t, roots, 2)
	assert.Equal(t, "About", roots[0].Label)
	assert.Equal(t, "Shop", roots[1].Label)
	require.Len(t, roots[1].Children, 2)
	assert.Equal(t, "Wedding", roots[1].Children[0].Label)
	assert.Equal(t, "Birthday", roots[1].Children[1].Label)
}

func TestCMSService_CreateNavigationItem(t *testing.T) {
	t.Run("child of a top-level item", func(t *testing.T) {
		svc, navRepo, _ := createTestCMSService(t)
		ctx := context.Background()
		parent := &entity.NavigationItem{ID: uuid.New(), Label: "Shop"}

		navRepo.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)
		navRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.NavigationItem")).Return(nil)

		item, err := svc.CreateNavigationItem(ctx, &usecase.NavigationItemInput{
			Label:    " Eggless ",
			URL:      "/cakes?eggless=true",
			ParentID: &parent.ID,
			IsActive: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "Eggless", item.Label)
		assert.Equal(t, parent.ID, *item.ParentID)
	})

	t.Run("third level is refused", func(t *testing.T) {
		svc, navRepo, _ := createTestCMSService(t)
		ctx := context.Background()
		grandparentID := uuid.New()
		parent := &entity.NavigationItem{ID: uuid.New(), ParentID: &grandparentID}

		navRepo.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)

		_, err := svc.CreateNavigationItem(ctx, &usecase.NavigationItemInput{Label: "Deep", URL: "/deep", ParentID: &parent.ID})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("unknown parent", func(t *testing.T) {
		svc, navRepo, _ := createTestCMSService(t)
		ctx := context.Background()
		parentID := uuid.New()

		navRepo.EXPECT().FindByID(ctx, parentID).Return(nil, repository.ErrNavigationItemNotFound)

		_, err := svc.CreateNavigationItem(ctx, &usecase.NavigationItemInput{Label: "X", URL: "/x", ParentID: &parentID})

		assert.True(t, errors.Is(err, domainerrors.ErrNavigationMissing))
	})

	t.Run("missing url", func(t *testing.T) {
		svc, _, _ := createTestCMSService(t)

		_, err := svc.CreateNavigationItem(context.Background(), &usecase.NavigationItemInput{Label: "X"})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestCMSService_UpdateNavigationItem_OwnParent(t *testing.T) {
	svc, navRepo, _ := createTestCMSService(t)
	ctx := context.Background()
	item := &entity.NavigationItem{ID: uuid.New(), Label: "Shop", URL: "/shop"}

	navRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)

	_, err := svc.UpdateNavigationItem(ctx, item.ID, &usecase.NavigationItemInput{Label: "Shop", URL: "/shop", ParentID: &item.ID})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCMSService_Pages(t *testing.T) {
	t.Run("slug derived from title", func(t *testing.T) {
		svc, _, pageRepo := createTestCMSService(t)
		ctx := context.Background()

		pageRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Page")).Return(nil)

		page, err := svc.CreatePage(ctx, &usecase.PageInput{Title: "Terms & Conditions", Content: "<p>...</p>", IsPublished: true})

		require.NoError(t, err)
		assert.Equal(t, "terms-conditions", page.Slug)
	})

	t.Run("published page by slug", func(t *testing.T) {
		svc, _, pageRepo := createTestCMSService(t)
		ctx := context.Background()
		page := &entity.Page{ID: uuid.New(), Slug: "about-us", Title: "About us", IsPublished: true}

		pageRepo.EXPECT().FindBySlug(ctx, "about-us").Return(page, nil)

		got, err := svc.GetPublishedPage(ctx, "About Us")

		require.NoError(t, err)
		assert.Equal(t, page, got)
	})

	t.Run("draft is hidden", func(t *testing.T) {
		svc, _, pageRepo := createTestCMSService(t)
		ctx := context.Background()

		pageRepo.EXPECT().FindBySlug(ctx, "faq").Return(&entity.Page{Slug: "faq"}, nil)

		_, err := svc.GetPublishedPage(ctx, "faq")

		assert.True(t, errors.Is(err, domainerrors.ErrPageNotFound))
	})
}
