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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewFixture struct {
	tx         *txRepos
	reviewRepo *mockRepo.MockReviewRepository
	orderRepo  *mockRepo.MockOrderRepository
	userRepo   *mockRepo.MockUserRepository
	svc        usecase.ReviewUsecase
}

func newReviewFixture(t *testing.T) *reviewFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	f := &reviewFixture{
		tx:         newTxRepos(t, txManager),
		reviewRepo: mockRepo.NewMockReviewRepository(t),
		orderRepo:  mockRepo.NewMockOrderRepository(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
	}
	f.svc = NewReviewService(ReviewServiceParams{
		TxManager:  txManager,
		ReviewRepo: f.reviewRepo,
		OrderRepo:  f.orderRepo,
		UserRepo:   f.userRepo,
		Logger:     newDiscardLogger(),
	})

	return f
}

func TestReviewService_CreateReview(t *testing.T) {
	t.Run("delivered cake is reviewed and rating refreshed", func(t *testing.T) {
		f := newReviewFixture(t)
		ctx := context.Background()
		userID := uuid.New()
		order := placedOrder(userID, entity.OrderStatusDelivered, entity.PaymentMethodCOD)
		cakeID := order.Items[0].CakeID

		f.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)
		f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Name: "Asha"}, nil)
		f.tx.reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
		f.tx.reviewRepo.EXPECT().RatingSummary(ctx, cakeID).Return(4.5, 2, nil)
		f.tx.cakeRepo.EXPECT().UpdateRating(ctx, cakeID, 4.5, 2).Return(nil)

		review, err := f.svc.CreateReview(ctx, userID, &usecase.CreateReviewInput{
			CakeID:      cakeID,
			OrderNumber: order.OrderNumber,
			Rating:      5,
			Comment:     " Moist and fresh ",
		})

		require.NoError(t, err)
		assert.Equal(t, "Asha", review.UserName)
		assert.Equal(t, "Moist and fresh", review.Comment)
		assert.Equal(t, order.ID, review.OrderID)
		assert.True(t, review.IsApproved)
	})

	t.Run("second review of the same cake", func(t *testing.T) {
		f := newReviewFixture(t)
		ctx := context.Background()
		userID := uuid.New()
		order := placedOrder(userID, entity.OrderStatusDelivered, entity.PaymentMethodCOD)

		f.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)
		f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		f.tx.reviewRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateReview)

		_, err := f.svc.CreateReview(ctx, userID, &usecase.CreateReviewInput{
			CakeID:      order.Items[0].CakeID,
			OrderNumber: order.OrderNumber,
			Rating:      4,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrReviewDuplicate))
	})

	notAllowed := []struct {
		name   string
		mutate func(order *entity.Order, input *usecase.CreateReviewInput)
	}{
		{"order not delivered", func(o *entity.Order, _ *usecase.CreateReviewInput) { o.Status = entity.OrderStatusOutForDelivery }},
		{"someone else's order", func(o *entity.Order, _ *usecase.CreateReviewInput) { o.UserID = uuid.New() }},
		{"cake not in order", func(_ *entity.Order, in *usecase.CreateReviewInput) { in.CakeID = uuid.New() }},
	}
	for _, tt := range notAllowed {
		t.Run(tt.name, func(t *testing.T) {
			f := newReviewFixture(t)
			ctx := context.Background()
			userID := uuid.New()
			order := placedOrder(userID, entity.OrderStatusDelivered, entity.PaymentMethodCOD)
			input := &usecase.CreateReviewInput{CakeID: order.Items[0].CakeID, OrderNumber: order.OrderNumber, Rating: 3}
			tt.mutate(order, input)

			f.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)

			_, err := f.svc.CreateReview(ctx, userID, input)

			assert.True(t, errors.Is(err, domainerrors.ErrReviewNotAllowed))
		})
	}

	t.Run("rating out of range", func(t *testing.T) {
		f := newReviewFixture(t)

		_, err := f.svc.CreateReview(context.Background(), uuid.New(), &usecase.CreateReviewInput{Rating: 6})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestReviewService_ModerateReview(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()
	review := &entity.Review{ID: uuid.New(), CakeID: uuid.New(), Rating: 1, IsApproved: true}

	f.tx.reviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)
	f.tx.reviewRepo.EXPECT().SetApproved(ctx, review.ID, false).Return(nil)
	f.tx.reviewRepo.EXPECT().RatingSummary(ctx, review.CakeID).Return(0.0, 0, nil)
	f.tx.cakeRepo.EXPECT().UpdateRating(ctx, review.CakeID, 0.0, 0).Return(nil)

	require.NoError(t, f.svc.ModerateReview(ctx, review.ID, false))
}
