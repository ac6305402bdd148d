package handler

import (
	"log/slog"
	"net/http"

	"cakes/internal/delivery/api/response"
	"cakes/internal/domain/entity"
	"cakes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the caller's profile and the staff accounts of the back office.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest changes the caller's profile. Omitted fields stay as they are.
type UpdateProfileRequest struct {
	Name      *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Phone     *string          `json:"phone" validate:"omitempty,min=7,max=20"`
	Addresses []entity.Address `json:"addresses" validate:"omitempty,max=10,dive"`
}

// CreateStaffRequest creates a back-office account.
type CreateStaffRequest struct {
	Name     string      `json:"name" validate:"required,max=100"`
	Email    string      `json:"email" validate:"required,email"`
	Phone    string      `json:"phone" validate:"omitempty,min=7,max=20"`
	Password string      `json:"password" validate:"required,min=8,max=72"`
	Role     entity.Role `json:"role" validate:"required,oneof=admin delivery_boy vendor"`
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateProfile changes the caller's name, phone or saved addresses.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Addresses: req.Addresses,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// CreateStaff creates a delivery boy, vendor or admin account.
func (h *ProfileHandler) CreateStaff(c echo.Context) error {
	var req CreateStaffRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.profileUC.CreateStaff(c.Request().Context(), &usecase.CreateStaffInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// ListStaff lists accounts holding the role given in the query.
func (h *ProfileHandler) ListStaff(c echo.Context) error {
	role := entity.Role(c.QueryParam("role"))
	page := paginationFromQuery(c)

	users, total, err := h.profileUC.ListStaff(c.Request().Context(), role, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newListResponse(users, total, page))
}
