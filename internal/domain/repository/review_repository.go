package repository

import (
	"context"
	"errors"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for review persistence.
var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("review already exists")
)

// ReviewRepository persists cake reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error
	ListByCake(ctx context.Context, cakeID uuid.UUID, approvedOnly bool) ([]*entity.Review, error)
	// RatingSummary aggregates the approved reviews of a cake.
	RatingSummary(ctx context.Context, cakeID uuid.UUID) (average float64, count int, err error)
}
