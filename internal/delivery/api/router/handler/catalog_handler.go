package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"cakes/internal/delivery/api/response"
	"cakes/internal/domain/entity"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves categories, cakes and addons.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CategoryRequest is the body of category create and update.
type CategoryRequest struct {
	Name         string     `json:"name" validate:"required,max=100"`
	Slug         string     `json:"slug" validate:"omitempty,max=120"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"image_url" validate:"omitempty,max=500"`
	ParentID     *uuid.UUID `json:"parent_id"`
	DisplayOrder int        `json:"display_order"`
	IsActive     *bool      `json:"is_active"`
}

// CakeRequest is the body of cake create and update.
type CakeRequest struct {
	CategoryID    uuid.UUID             `json:"category_id" validate:"required"`
	Name          string                `json:"name" validate:"required,max=150"`
	Slug          string                `json:"slug" validate:"omitempty,max=170"`
	Description   string                `json:"description"`
	BasePrice     decimal.Decimal       `json:"base_price"`
	WeightOptions []entity.WeightOption `json:"weight_options" validate:"dive"`
	Flavors       []string              `json:"flavors"`
	Images        []string              `json:"images"`
	Tags          []string              `json:"tags"`
	IsEggless     bool                  `json:"is_eggless"`
	IsBestseller  bool                  `json:"is_bestseller"`
	IsAvailable   *bool                 `json:"is_available"`
}

// AddonRequest is the body of addon create and update.
type AddonRequest struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Description string          `json:"description"`
	Category    string          `json:"category" validate:"omitempty,max=50"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url" validate:"omitempty,max=500"`
	IsAvailable *bool           `json:"is_available"`
}

// flagOrTrue treats an omitted switch as on.
func flagOrTrue(b *bool) bool {
	return b == nil || *b
}

func (r *CategoryRequest) toInput() *usecase.CategoryInput {
	return &usecase.CategoryInput{
		Name:         r.Name,
		Slug:         r.Slug,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		ParentID:     r.ParentID,
		DisplayOrder: r.DisplayOrder,
		IsActive:     flagOrTrue(r.IsActive),
	}
}

func (r *CakeRequest) toInput() *usecase.CakeInput {
	return &usecase.CakeInput{
		CategoryID:    r.CategoryID,
		Name:          r.Name,
		Slug:          r.Slug,
		Description:   r.Description,
		BasePrice:     r.BasePrice,
		WeightOptions: r.WeightOptions,
		Flavors:       r.Flavors,
		Images:        r.Images,
		Tags:          r.Tags,
		IsEggless:     r.IsEggless,
		IsBestseller:  r.IsBestseller,
		IsAvailable:   flagOrTrue(r.IsAvailable),
	}
}

func (r *AddonRequest) toInput() *usecase.AddonInput {
	return &usecase.AddonInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		IsAvailable: flagOrTrue(r.IsAvailable),
	}
}

// boolQuery reads an optional true/false filter.
func boolQuery(c echo.Context, name string) *bool {
	v, err := strconv.ParseBool(c.QueryParam(name))
	if err != nil {
		return nil
	}

	return &v
}

// ListCategories returns the active categories in display order.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context(), true)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// AdminListCategories returns every category, inactive ones included.
func (h *CatalogHandler) AdminListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context(), false)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// GetCategory looks a category up by slug.
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	category, err := h.catalogUC.GetCategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category)
}

// CreateCategory adds a category.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category)
}

// UpdateCategory replaces a category.
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	category, err := h.catalogUC.UpdateCategory(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category)
}

// DeleteCategory removes a category.
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Category deleted"})
}

func cakeQueryFrom(c echo.Context) *usecase.CakeQuery {
	return &usecase.CakeQuery{
		CategorySlug: c.QueryParam("category"),
		IsEggless:    boolQuery(c, "eggless"),
		IsBestseller: boolQuery(c, "bestseller"),
		Search:       c.QueryParam("search"),
		Page:         paginationFromQuery(c),
	}
}

// ListCakes returns a page of available cakes.
func (h *CatalogHandler) ListCakes(c echo.Context) error {
	page, err := h.catalogUC.ListCakes(c.Request().Context(), cakeQueryFrom(c), false)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newListResponse(page.Cakes, page.Total, page.Page))
}

// AdminListCakes returns a page of cakes including unavailable ones.
func (h *CatalogHandler) AdminListCakes(c echo.Context) error {
	page, err := h.catalogUC.ListCakes(c.Request().Context(), cakeQueryFrom(c), true)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newListResponse(page.Cakes, page.Total, page.Page))
}

// GetCake looks a cake up by ID or, failing that, by slug.
func (h *CatalogHandler) GetCake(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		cake *entity.Cake
		err  error
	)
	if id, parseErr := uuid.Parse(c.Param("id")); parseErr == nil {
		cake, err = h.catalogUC.GetCake(ctx, id)
	} else {
		cake, err = h.catalogUC.GetCakeBySlug(ctx, c.Param("id"))
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cake)
}

// CreateCake adds a cake.
func (h *CatalogHandler) CreateCake(c echo.Context) error {
	var req CakeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cake, err := h.catalogUC.CreateCake(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, cake)
}

// UpdateCake replaces a cake.
func (h *CatalogHandler) UpdateCake(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req CakeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cake, err := h.catalogUC.UpdateCake(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cake)
}

// DeleteCake removes a cake.
func (h *CatalogHandler) DeleteCake(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteCake(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Cake deleted"})
}

// ListAddons returns the available addons.
func (h *CatalogHandler) ListAddons(c echo.Context) error {
	addons, err := h.catalogUC.ListAddons(c.Request().Context(), true)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addons)
}

// AdminListAddons returns every addon.
func (h *CatalogHandler) AdminListAddons(c echo.Context) error {
	addons, err := h.catalogUC.ListAddons(c.Request().Context(), false)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addons)
}

// CreateAddon adds an addon.
func (h *CatalogHandler) CreateAddon(c echo.Context) error {
	var req AddonRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	addon, err := h.catalogUC.CreateAddon(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, addon)
}

// UpdateAddon replaces an addon.
func (h *CatalogHandler) UpdateAddon(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req AddonRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	addon, err := h.catalogUC.UpdateAddon(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addon)
}

// DeleteAddon removes an addon.
func (h *CatalogHandler) DeleteAddon(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteAddon(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Addon deleted"})
}
