package handler

import (
	"log/slog"
	"net/http"

	"cakes/internal/delivery/api/response"
	"cakes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves cake reviews and their moderation.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// CreateReviewRequest reviews a cake from a delivered order.
type CreateReviewRequest struct {
	OrderNumber string `json:"order_number" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Comment     string `json:"comment" validate:"max=2000"`
}

// ModerateReviewRequest approves or hides a review.
type ModerateReviewRequest struct {
	IsApproved bool `json:"is_approved"`
}

// CreateReview adds the caller's review of a cake.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	cakeID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req CreateReviewRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), userID, &usecase.CreateReviewInput{
		CakeID:      cakeID,
		OrderNumber: req.OrderNumber,
		Rating:      req.Rating,
		Comment:     req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review)
}

// ListReviews returns the approved reviews of a cake.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	cakeID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), cakeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// ModerateReview approves or hides a review.
func (h *ReviewHandler) ModerateReview(c echo.Context) error {
	reviewID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req ModerateReviewRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.reviewUC.ModerateReview(c.Request().Context(), reviewID, req.IsApproved); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Review updated"})
}
