package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	orderRepo  repository.OrderRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	OrderRepo  repository.OrderRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewReviewService creates the cake review service.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		orderRepo:  params.OrderRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview accepts one review per cake and delivered order of the caller.
func (srv *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "rating must be between 1 and 5")
	}

	order, err := srv.orderRepo.FindByNumber(ctx, input.OrderNumber)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReviewNotAllowed, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.UserID != userID || order.Status != entity.OrderStatusDelivered || !order.ContainsCake(input.CakeID) {
		return nil, errors.Wrap(domainerrors.ErrReviewNotAllowed, "only delivered cakes from your own orders can be reviewed")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, toAppError(err, "failed to find reviewer")
	}

	review := &entity.Review{
		ID:         uuid.New(),
		CakeID:     input.CakeID,
		UserID:     userID,
		OrderID:    order.ID,
		UserName:   user.Name,
		Rating:     input.Rating,
		Comment:    strings.TrimSpace(input.Comment),
		IsApproved: true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ReviewRepo().Create(ctx, review); err != nil {
			return toAppError(err, "failed to create review")
		}

		return refreshCakeRating(ctx, repoFactory, review.CakeID)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save review")
	}

	srv.log(ctx).Info("Review created", slog.Any("cakeID", review.CakeID), slog.Int("rating", review.Rating))

	return review, nil
}

// ListReviews returns the approved reviews of a cake, newest first.
func (srv *reviewService) ListReviews(ctx context.Context, cakeID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByCake(ctx, cakeID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

func (srv *reviewService) ModerateReview(ctx context.Context, reviewID uuid.UUID, approved bool) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			return toAppError(err, "failed to find review")
		}

		if err := reviewRepo.SetApproved(ctx, reviewID, approved); err != nil {
			return toAppError(err, "failed to moderate review")
		}

		return refreshCakeRating(ctx, repoFactory, review.CakeID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to moderate review")
	}

	srv.log(ctx).Info("Review moderated", slog.Any("reviewID", reviewID), slog.Bool("approved", approved))

	return nil
}

// refreshCakeRating recomputes a cake's aggregate from its approved reviews.
func refreshCakeRating(ctx context.Context, repoFactory repository.RepositoryFactory, cakeID uuid.UUID) error {
	average, count, err := repoFactory.ReviewRepo().RatingSummary(ctx, cakeID)
	if err != nil {
		return errors.Wrap(err, "failed to summarise ratings")
	}

	if err := repoFactory.CakeRepo().UpdateRating(ctx, cakeID, average, count); err != nil {
		return toAppError(err, "failed to update cake rating")
	}

	return nil
}
