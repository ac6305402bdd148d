package usecase

import (
	"context"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput is a review of a cake from a delivered order.
type CreateReviewInput struct {
	CakeID      uuid.UUID
	OrderNumber string
	Rating      int
	Comment     string
}

// ReviewUsecase manages cake reviews.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, userID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)
	ListReviews(ctx context.Context, cakeID uuid.UUID) ([]*entity.Review, error)
	// ModerateReview approves or hides a review and refreshes the cake's rating.
	ModerateReview(ctx context.Context, reviewID uuid.UUID, approved bool) error
}
