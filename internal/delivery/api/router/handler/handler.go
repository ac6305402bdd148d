// Package handler contains the HTTP handlers of the storefront and back-office API.
package handler

import (
	"net/http"
	"strconv"

	"cakes/internal/delivery/api/middleware"
	"cakes/internal/delivery/api/response"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// MessageResponse is the body of operations that return nothing else.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListResponse wraps a page of results.
type ListResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func newListResponse[T any](items []T, total int64, page repository.Pagination) ListResponse[T] {
	if items == nil {
		items = []T{}
	}

	return ListResponse[T]{Items: items, Total: total, Page: page.Page, Limit: page.Limit}
}

// paginationFromQuery reads page and limit; bad numbers fall back to the defaults.
func paginationFromQuery(c echo.Context) repository.Pagination {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return repository.NewPagination(page, limit)
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrInvalidID.WithDetails(name))
	}

	return id, nil
}

func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return userID, nil
}

func currentCaller(c echo.Context) (usecase.Caller, error) {
	userID, err := currentUser(c)
	if err != nil {
		return usecase.Caller{}, err
	}
	roles, _ := middleware.GetRoles(c)

	return usecase.Caller{UserID: userID, Roles: roles}, nil
}

// bind decodes the request into req and runs its validate tags.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidInput)
	}

	return errors.WithStack(c.Validate(req))
}
