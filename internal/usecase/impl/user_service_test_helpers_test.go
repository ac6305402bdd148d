package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cakes/config"
	"cakes/internal/domain/repository"
	mockRepo "cakes/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Loyalty:  &config.LoyaltyConfig{PointsPerHundred: 1, CashbackPercent: 2},
		Reminder: &config.ReminderConfig{DefaultDaysBefore: 3},
		Order:    &config.OrderConfig{MinimumOrderValue: 0},
		Storage:  &config.StorageConfig{MaxUploadBytes: 1024},
	}
}

// txRepos is a transaction-bound repository set backed by mocks.
type txRepos struct {
	factory     *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	authRepo    *mockRepo.MockAuthRepository
	refreshRepo *mockRepo.MockRefreshTokenRepository
	cakeRepo    *mockRepo.MockCakeRepository
	promoRepo   *mockRepo.MockPromoCodeRepository
	orderRepo   *mockRepo.MockOrderRepository
	reviewRepo  *mockRepo.MockReviewRepository
	walletRepo  *mockRepo.MockWalletRepository
}

// newTxRepos wires txManager to run every transaction body against the returned mocks.
func newTxRepos(t *testing.T, txManager *mockRepo.MockTransactionManager) *txRepos {
	r := &txRepos{
		factory:     mockRepo.NewMockRepositoryFactory(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		authRepo:    mockRepo.NewMockAuthRepository(t),
		refreshRepo: mockRepo.NewMockRefreshTokenRepository(t),
		cakeRepo:    mockRepo.NewMockCakeRepository(t),
		promoRepo:   mockRepo.NewMockPromoCodeRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		reviewRepo:  mockRepo.NewMockReviewRepository(t),
		walletRepo:  mockRepo.NewMockWalletRepository(t),
	}

	r.factory.EXPECT().UserRepo().Return(r.userRepo).Maybe()
	r.factory.EXPECT().AuthRepo().Return(r.authRepo).Maybe()
	r.factory.EXPECT().RefreshTokenRepo().Return(r.refreshRepo).Maybe()
	r.factory.EXPECT().CakeRepo().Return(r.cakeRepo).Maybe()
	r.factory.EXPECT().PromoCodeRepo().Return(r.promoRepo).Maybe()
	r.factory.EXPECT().OrderRepo().Return(r.orderRepo).Maybe()
	r.factory.EXPECT().ReviewRepo().Return(r.reviewRepo).Maybe()
	r.factory.EXPECT().WalletRepo().Return(r.walletRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(r.factory)
		}).
		Maybe()

	return r
}
