package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	mockUsecase "cakes/internal/mocks/usecase"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogHandler(t *testing.T) (*CatalogHandler, *mockUsecase.MockCatalogUsecase) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)

	return NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: slog.Default()}), catalogUC
}

func TestCatalogHandler_GetCake(t *testing.T) {
	cakeID := uuid.New()

	tests := []struct {
		name  string
		param string
		setup func(uc *mockUsecase.MockCatalogUsecase)
	}{
		{
			name:  "by id",
			param: cakeID.String(),
			setup: func(uc *mockUsecase.MockCatalogUsecase) {
				uc.EXPECT().GetCake(mock.Anything, cakeID).Return(&entity.Cake{ID: cakeID, Slug: "black-forest"}, nil)
			},
		},
		{
			name:  "by slug",
			param: "black-forest",
			setup: func(uc *mockUsecase.MockCatalogUsecase) {
				uc.EXPECT().GetCakeBySlug(mock.Anything, "black-forest").Return(&entity.Cake{ID: cakeID, Slug: "black-forest"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, catalogUC := newCatalogHandler(t)
			tt.setup(catalogUC)

			c, rec := newTestContext(t, testRequest{
				method: http.MethodGet,
				target: "/api/cakes/" + tt.param,
				params: map[string]string{"id": tt.param},
			})

			require.NoError(t, h.GetCake(c))

			var cake entity.Cake
			decodeData(t, rec, &cake)
			assert.Equal(t, "black-forest", cake.Slug)
		})
	}
}

func TestCatalogHandler_GetCake_NotFound(t *testing.T) {
	h, catalogUC := newCatalogHandler(t)
	catalogUC.EXPECT().GetCakeBySlug(mock.Anything, "missing").Return(nil, domainerrors.ErrCakeNotFound)

	c, _ := newTestContext(t, testRequest{
		method: http.MethodGet,
		target: "/api/cakes/missing",
		params: map[string]string{"id": "missing"},
	})

	err := h.GetCake(c)

	assert.True(t, errors.Is(err, domainerrors.ErrCakeNotFound))
}

func TestCatalogHandler_ListCakes_Query(t *testing.T) {
	h, catalogUC := newCatalogHandler(t)

	catalogUC.EXPECT().ListCakes(mock.Anything, mock.MatchedBy(func(q *usecase.CakeQuery) bool {
		return q.CategorySlug == "birthday" &&
			q.IsEggless != nil && *q.IsEggless &&
			q.IsBestseller == nil &&
			q.Search == "choco" &&
			q.Page == repository.Pagination{Page: 1, Limit: repository.DefaultPageSize}
	}), false).Return(&usecase.CakePage{
		Cakes: []*entity.Cake{{Slug: "choco-truffle"}},
		Total: 1,
		Page:  repository.Pagination{Page: 1, Limit: repository.DefaultPageSize},
	}, nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodGet,
		target: "/api/cakes?category=birthday&eggless=true&bestseller=maybe&search=choco",
	})

	require.NoError(t, h.ListCakes(c))

	var page ListResponse[entity.Cake]
	decodeData(t, rec, &page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "choco-truffle", page.Items[0].Slug)
	assert.Equal(t, 1, page.Page)
}

func TestCatalogHandler_DeleteCategory_InvalidID(t *testing.T) {
	h, _ := newCatalogHandler(t)
	c, _ := newTestContext(t, testRequest{
		method: http.MethodDelete,
		target: "/api/admin/categories/42",
		params: map[string]string{"id": "42"},
	})

	err := h.DeleteCategory(c)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidID))
}
