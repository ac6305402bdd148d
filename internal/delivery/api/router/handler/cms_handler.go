package handler

import (
	"log/slog"
	"net/http"

	"cakes/internal/delivery/api/response"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CMSHandlerParams holds dependencies for CMSHandler, injected by Fx.
type CMSHandlerParams struct {
	fx.In

	CMSUC  usecase.CMSUsecase
	Logger *slog.Logger
}

// CMSHandler serves storefront navigation and content pages.
type CMSHandler struct {
	cmsUC  usecase.CMSUsecase
	logger *slog.Logger
}

// NewCMSHandler is the constructor for CMSHandler.
func NewCMSHandler(params CMSHandlerParams) *CMSHandler {
	return &CMSHandler{
		cmsUC:  params.CMSUC,
		logger: params.Logger,
	}
}

// NavigationItemRequest is the body of menu item create and update.
type NavigationItemRequest struct {
	Label    string     `json:"label" validate:"required,max=100"`
	URL      string     `json:"url" validate:"required,max=500"`
	ParentID *uuid.UUID `json:"parent_id"`
	Position int        `json:"position"`
	IsActive *bool      `json:"is_active"`
}

// PageRequest is the body of page create and update.
type PageRequest struct {
	Slug            string `json:"slug" validate:"omitempty,max=170"`
	Title           string `json:"title" validate:"required,max=200"`
	Content         string `json:"content"`
	MetaTitle       string `json:"meta_title" validate:"max=200"`
	MetaDescription string `json:"meta_description" validate:"max=500"`
	IsPublished     bool   `json:"is_published"`
}

func (r *NavigationItemRequest) toInput() *usecase.NavigationItemInput {
	return &usecase.NavigationItemInput{
		Label:    r.Label,
		URL:      r.URL,
		ParentID: r.ParentID,
		Position: r.Position,
		IsActive: flagOrTrue(r.IsActive),
	}
}

func (r *PageRequest) toInput() *usecase.PageInput {
	return &usecase.PageInput{
		Slug:            r.Slug,
		Title:           r.Title,
		Content:         r.Content,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		IsPublished:     r.IsPublished,
	}
}

// NavigationTree returns the public menu.
func (h *CMSHandler) NavigationTree(c echo.Context) error {
	tree, err := h.cmsUC.NavigationTree(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tree)
}

// GetPage returns a published page by slug.
func (h *CMSHandler) GetPage(c echo.Context) error {
	page, err := h.cmsUC.GetPublishedPage(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

// ListNavigationItems returns every menu item, flat.
func (h *CMSHandler) ListNavigationItems(c echo.Context) error {
	items, err := h.cmsUC.ListNavigationItems(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items)
}

// CreateNavigationItem adds a menu item.
func (h *CMSHandler) CreateNavigationItem(c echo.Context) error {
	var req NavigationItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	item, err := h.cmsUC.CreateNavigationItem(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// UpdateNavigationItem replaces a menu item.
func (h *CMSHandler) UpdateNavigationItem(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req NavigationItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	item, err := h.cmsUC.UpdateNavigationItem(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item)
}

// DeleteNavigationItem removes a menu item.
func (h *CMSHandler) DeleteNavigationItem(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.cmsUC.DeleteNavigationItem(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Navigation item deleted"})
}

// ListPages returns every page, drafts included.
func (h *CMSHandler) ListPages(c echo.Context) error {
	pages, err := h.cmsUC.ListPages(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pages)
}

// CreatePage adds a page.
func (h *CMSHandler) CreatePage(c echo.Context) error {
	var req PageRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	page, err := h.cmsUC.CreatePage(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, page)
}

// UpdatePage replaces a page.
func (h *CMSHandler) UpdatePage(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req PageRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	page, err := h.cmsUC.UpdatePage(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

// DeletePage removes a page.
func (h *CMSHandler) DeletePage(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.cmsUC.DeletePage(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Page deleted"})
}
