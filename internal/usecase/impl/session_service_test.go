package impl

import (
	"context"
	"testing"
	"time"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	mockRepo "cakes/internal/mocks/repository"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service          usecase.SessionUsecase
	repos            *txRepos
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

	service := NewSessionService(SessionServiceParams{
		TxManager:        txManager,
		RefreshTokenRepo: refreshTokenRepo,
		Logger:           newDiscardLogger(),
	})

	return sessionServiceFixtures{
		service:          service,
		repos:            newTxRepos(t, txManager),
		refreshTokenRepo: refreshTokenRepo,
	}
}

func TestSessionService_ListSessions(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	userID := uuid.New()
	sessions := []*entity.RefreshToken{
		{ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(time.Hour)},
		{ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(2 * time.Hour)},
	}

	fx.refreshTokenRepo.EXPECT().FindRefreshTokensByUserID(ctx, userID).Return(sessions, nil)

	result, err := fx.service.ListSessions(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, sessions, result)
}

func TestSessionService_RevokeSession_Success(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	userID := uuid.New()
	session := &entity.RefreshToken{ID: uuid.New(), UserID: userID}

	fx.repos.refreshRepo.EXPECT().FindRefreshTokensByUserID(ctx, userID).Return([]*entity.RefreshToken{session}, nil)
	fx.repos.refreshRepo.EXPECT().DeleteRefreshToken(ctx, session.ID).Return(nil)

	err := fx.service.RevokeSession(ctx, userID, session.ID)

	require.NoError(t, err)
}

func TestSessionService_RevokeSession_OtherUsersSession(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	userID := uuid.New()
	own := &entity.RefreshToken{ID: uuid.New(), UserID: userID}

	fx.repos.refreshRepo.EXPECT().FindRefreshTokensByUserID(ctx, userID).Return([]*entity.RefreshToken{own}, nil)

	err := fx.service.RevokeSession(ctx, userID, uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestSessionService_CleanupExpiredSessions(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(context.Background()).Return(nil)

		assert.NoError(t, fx.service.CleanupExpiredSessions(context.Background()))
	})

	t.Run("repository error", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(context.Background()).Return(errors.New("db down"))

		assert.Error(t, fx.service.CleanupExpiredSessions(context.Background()))
	})
}
