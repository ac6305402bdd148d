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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	categoryRepo *mockRepo.MockCategoryRepository
	cakeRepo     *mockRepo.MockCakeRepository
	addonRepo    *mockRepo.MockAddonRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	cakeRepo := mockRepo.NewMockCakeRepository(t)
	addonRepo := mockRepo.NewMockAddonRepository(t)

	return catalogServiceFixtures{
		service: NewCatalogService(CatalogServiceParams{
			CategoryRepo: categoryRepo,
			CakeRepo:     cakeRepo,
			AddonRepo:    addonRepo,
			Logger:       newDiscardLogger(),
		}),
		categoryRepo: categoryRepo,
		cakeRepo:     cakeRepo,
		addonRepo:    addonRepo,
	}
}

func TestCatalogService_CreateCategory_DerivesSlug(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Category) bool { return c.Slug == "photo-cakes" })).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, &usecase.CategoryInput{Name: " Photo Cakes! ", IsActive: true})

	require.NoError(t, err)
	assert.Equal(t, "Photo Cakes!", category.Name)
	assert.Equal(t, "photo-cakes", category.Slug)
}

func TestCatalogService_CreateCategory_SlugTaken(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(repository.ErrDuplicateSlug)

	category, err := fx.service.CreateCategory(ctx, &usecase.CategoryInput{Name: "Birthday"})

	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrSlugAlreadyExists))
}

func TestCatalogService_CreateCategory_NoSlug(t *testing.T) {
	fx := createTestCatalogService(t)

	category, err := fx.service.CreateCategory(context.Background(), &usecase.CategoryInput{Name: "???"})

	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_UpdateCategory_OwnParent(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.categoryRepo.EXPECT().FindByID(ctx, id).Return(&entity.Category{ID: id, Name: "Birthday"}, nil)

	category, err := fx.service.UpdateCategory(ctx, id, &usecase.CategoryInput{Name: "Birthday", ParentID: &id})

	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_GetCategoryBySlug_HidesInactive(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().FindBySlug(ctx, "retired").Return(&entity.Category{Slug: "retired", IsActive: false}, nil)

	category, err := fx.service.GetCategoryBySlug(ctx, "retired")

	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCatalogService_CreateCake(t *testing.T) {
	categoryID := uuid.New()
	validInput := func() *usecase.CakeInput {
		return &usecase.CakeInput{
			CategoryID: categoryID,
			Name:       "Chocolate Truffle",
			BasePrice:  decimal.NewFromInt(499),
			WeightOptions: []entity.WeightOption{
				{Weight: "500g", Price: decimal.NewFromInt(499)},
				{Weight: "1kg", Price: decimal.NewFromInt(899)},
			},
			IsAvailable: true,
		}
	}

	t.Run("success", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
		fx.cakeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Cake")).Return(nil)

		cake, err := fx.service.CreateCake(ctx, validInput())

		require.NoError(t, err)
		assert.Equal(t, "chocolate-truffle", cake.Slug)
		assert.NotNil(t, cake.Flavors)
		assert.NotNil(t, cake.Images)
		assert.Len(t, cake.WeightOptions, 2)
	})

	t.Run("duplicate weight", func(t *testing.T) {
		fx := createTestCatalogService(t)
		input := validInput()
		input.WeightOptions = append(input.WeightOptions, entity.WeightOption{Weight: "1KG", Price: decimal.NewFromInt(950)})

		cake, err := fx.service.CreateCake(context.Background(), input)

		assert.Nil(t, cake)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("free weight option", func(t *testing.T) {
		fx := createTestCatalogService(t)
		input := validInput()
		input.WeightOptions[0].Price = decimal.Zero

		_, err := fx.service.CreateCake(context.Background(), input)

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("unknown category", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

		_, err := fx.service.CreateCake(ctx, validInput())

		assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
	})
}

func TestCatalogService_ListCakes(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Slug: "birthday", IsActive: true}
	eggless := true

	fx.categoryRepo.EXPECT().FindBySlug(ctx, "birthday").Return(category, nil)
	fx.cakeRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f repository.CakeFilter) bool {
			return f.AvailableOnly && *f.CategoryID == category.ID && *f.IsEggless && f.Search == "choco" &&
				f.Page.Page == 1 && f.Page.Limit == repository.DefaultPageSize
		})).
		Return([]*entity.Cake{{ID: uuid.New()}}, int64(1), nil)

	page, err := fx.service.ListCakes(ctx, &usecase.CakeQuery{CategorySlug: "birthday", IsEggless: &eggless, Search: " choco "}, false)

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.Cakes, 1)
}

func TestCatalogService_Addons(t *testing.T) {
	t.Run("negative price", func(t *testing.T) {
		fx := createTestCatalogService(t)

		addon, err := fx.service.CreateAddon(context.Background(), &usecase.AddonInput{Name: "Candles", Price: decimal.NewFromInt(-1)})

		assert.Nil(t, addon)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("update missing", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.addonRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAddonNotFound)

		_, err := fx.service.UpdateAddon(ctx, id, &usecase.AddonInput{Name: "Candles", Price: decimal.NewFromInt(20)})

		assert.True(t, errors.Is(err, domainerrors.ErrAddonNotFound))
	})
}
