package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/domain/service"
	mockRepo "cakes/internal/mocks/repository"
	mockSvc "cakes/internal/mocks/service"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	repos            *txRepos
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	googleVerifier   *mockSvc.MockIdentityVerifier
}

func createTestUserService(t *testing.T, maxActiveSessions int) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	googleVerifier := mockSvc.NewMockIdentityVerifier(t)

	service := NewUserService(UserServiceParams{
		TxManager:        txManager,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		GoogleVerifier:   googleVerifier,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	})

	return userServiceFixtures{
		service:          service,
		repos:            newTxRepos(t, txManager),
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		googleVerifier:   googleVerifier,
	}
}

func (fx userServiceFixtures) expectNewSession(user *entity.User) {
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, user.Roles.ToStrings()).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)
	fx.repos.refreshRepo.EXPECT().
		CreateRefreshToken(mock.Anything, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == user.ID && token.TokenHash == hashToken("refresh-token")
		})).
		Return(nil)
}

func activeCustomer() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Email:    "asha@example.com",
		Name:     "Asha",
		Roles:    entity.Roles{entity.RoleCustomer},
		IsActive: true,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     " Test User ",
		Email:    "Test@Example.com ",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.repos.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "test@example.com").
		Return(nil, repository.ErrAuthNotFound)
	fx.repos.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.repos.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.Provider == entity.ProviderTypeEmail && auth.PasswordHash == "hashed_password"
		})).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.Equal(t, "Test User", output.User.Name)
	assert.True(t, output.User.HasRole(entity.RoleCustomer))
	assert.True(t, output.User.WalletBalance.IsZero())
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed", nil)
	fx.repos.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "taken@example.com").
		Return(&entity.Authentication{UserID: uuid.New()}, nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Someone",
		Email:    "taken@example.com",
		Password: "Password123!",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()
	user := activeCustomer()
	authRecord := &entity.Authentication{UserID: user.ID, Provider: entity.ProviderTypeEmail, PasswordHash: "hashed"}

	fx.repos.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, user.Email).Return(authRecord, nil)
	fx.repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
	fx.hasher.EXPECT().NeedsRehash("hashed").Return(false)
	fx.expectNewSession(user)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_LabelsSessionWithClient(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := deliverycontext.WithClient(context.Background(), deliverycontext.Client{
		UserAgent: strings.Repeat("é", 200),
		IP:        "203.0.113.7",
	})
	user := activeCustomer()
	authRecord := &entity.Authentication{UserID: user.ID, Provider: entity.ProviderTypeEmail, PasswordHash: "hashed"}

	fx.repos.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, user.Email).Return(authRecord, nil)
	fx.repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
	fx.hasher.EXPECT().NeedsRehash("hashed").Return(false)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, user.Roles.ToStrings()).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)

	var stored *entity.RefreshToken
	fx.repos.refreshRepo.EXPECT().CreateRefreshToken(mock.Anything, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(_ context.Context, token *entity.RefreshToken) { stored = token }).
		Return(nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret"})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "203.0.113.7", stored.ClientIP)
	// "é" is two bytes, so 255 bytes hold 127 whole runes.
	assert.Equal(t, strings.Repeat("é", 127), stored.UserAgent)
}

func TestUserService_Login_UpgradesStaleHash(t *testing.T) {
	tests := []struct {
		name      string
		updateErr error
	}{
		{name: "upgraded"},
		{name: "upgrade failure does not block login", updateErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t, 0)
			ctx := context.Background()
			user := activeCustomer()
			authRecord := &entity.Authentication{ID: uuid.New(), UserID: user.ID, Provider: entity.ProviderTypeEmail, PasswordHash: "old-cost"}

			fx.repos.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, user.Email).Return(authRecord, nil)
			fx.repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			fx.hasher.EXPECT().Check("secret", "old-cost").Return(true)
			fx.hasher.EXPECT().NeedsRehash("old-cost").Return(true)
			fx.hasher.EXPECT().Hash("secret").Return("new-cost", nil)
			fx.repos.authRepo.EXPECT().UpdatePasswordHash(ctx, authRecord.ID, "new-cost").Return(tt.updateErr)
			fx.expectNewSession(user)

			output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret"})

			require.NoError(t, err)
			assert.Equal(t, "access-token", output.AccessToken)
		})
	}
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx userServiceFixtures, user *entity.User)
	}{
		{
			name: "unknown email",
			setup: func(fx userServiceFixtures, user *entity.User) {
				fx.repos.authRepo.EXPECT().
					FindAuthentication(mock.Anything, entity.ProviderTypeEmail, user.Email).
					Return(nil, repository.ErrAuthNotFound)
			},
		},
		{
			name: "wrong password",
			setup: func(fx userServiceFixtures, user *entity.User) {
				fx.repos.authRepo.EXPECT().
					FindAuthentication(mock.Anything, entity.ProviderTypeEmail, user.Email).
					Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
				fx.repos.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
				fx.hasher.EXPECT().Check("secret", "hashed").Return(false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t, 0)
			user := activeCustomer()
			tt.setup(fx, user)

			output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: user.Email, Password: "secret"})

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
		})
	}
}

func TestUserService_Login_InactiveUser(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()
	user := activeCustomer()
	user.IsActive = false

	fx.repos.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, user.Email).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hashed").Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserInactive))
}

func TestUserService_Login_EvictsOldestSessions(t *testing.T) {
	fx := createTestUserService(t, 2)
	ctx := context.Background()
	user := activeCustomer()

	newest := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID}
	older := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID}
	oldest := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID}

	fx.repos.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, user.Email).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
	fx.hasher.EXPECT().NeedsRehash("hashed").Return(false)
	fx.repos.refreshRepo.EXPECT().
		FindRefreshTokensByUserID(ctx, user.ID).
		Return([]*entity.RefreshToken{newest, older, oldest}, nil)
	fx.repos.refreshRepo.EXPECT().DeleteRefreshToken(ctx, older.ID).Return(nil)
	fx.repos.refreshRepo.EXPECT().DeleteRefreshToken(ctx, oldest.ID).Return(repository.ErrRefreshTokenNotFound)
	fx.expectNewSession(user)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret"})

	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	fx.repos.refreshRepo.AssertNotCalled(t, "DeleteRefreshToken", ctx, newest.ID)
}

func TestUserService_GoogleLogin_UnverifiedEmail(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()

	fx.googleVerifier.EXPECT().
		VerifyIDToken(ctx, "id-token").
		Return(&service.VerifiedIdentity{Subject: "sub-1", Email: "g@example.com", EmailVerified: false}, nil)

	output, err := fx.service.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "id-token"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
}

func TestUserService_GoogleLogin_LinksExistingAccount(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()
	user := activeCustomer()

	fx.googleVerifier.EXPECT().
		VerifyIDToken(ctx, "id-token").
		Return(&service.VerifiedIdentity{Subject: "sub-1", Email: "ASHA@example.com", Name: "Asha", EmailVerified: true}, nil)
	fx.repos.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeGoogle, "sub-1").
		Return(nil, repository.ErrAuthNotFound)
	fx.repos.userRepo.EXPECT().FindByEmail(ctx, "asha@example.com").Return(user, nil)
	fx.repos.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.UserID == user.ID && auth.Provider == entity.ProviderTypeGoogle && auth.ProviderUserID == "sub-1"
		})).
		Return(nil)
	fx.expectNewSession(user)

	output, err := fx.service.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_GoogleLogin_CreatesAccount(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()

	fx.googleVerifier.EXPECT().
		VerifyIDToken(ctx, "id-token").
		Return(&service.VerifiedIdentity{Subject: "sub-2", Email: "new@example.com", Name: "New", EmailVerified: true}, nil)
	fx.repos.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeGoogle, "sub-2").
		Return(nil, repository.ErrAuthNotFound)
	fx.repos.userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
	fx.repos.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.repos.authRepo.EXPECT().CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).Return(nil)
	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{"customer"}).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.repos.refreshRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	output, err := fx.service.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", output.User.Email)
	assert.True(t, output.User.IsActive)
}

func TestUserService_RefreshToken_Rotates(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()
	user := activeCustomer()
	stored := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID}

	fx.tokenService.EXPECT().
		ValidateToken("old-refresh").
		Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
	fx.repos.refreshRepo.EXPECT().FindRefreshTokenByHash(ctx, hashToken("old-refresh")).Return(stored, nil)
	fx.repos.refreshRepo.EXPECT().DeleteRefreshToken(ctx, stored.ID).Return(nil)
	fx.repos.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.expectNewSession(user)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestUserService_RefreshToken_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx userServiceFixtures, userID uuid.UUID)
	}{
		{
			name: "access token presented",
			setup: func(fx userServiceFixtures, userID uuid.UUID) {
				fx.tokenService.EXPECT().
					ValidateToken("token").
					Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)
			},
		},
		{
			name: "revoked token",
			setup: func(fx userServiceFixtures, userID uuid.UUID) {
				fx.tokenService.EXPECT().
					ValidateToken("token").
					Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
				fx.repos.refreshRepo.EXPECT().
					FindRefreshTokenByHash(mock.Anything, hashToken("token")).
					Return(nil, repository.ErrRefreshTokenNotFound)
			},
		},
		{
			name: "subject mismatch",
			setup: func(fx userServiceFixtures, userID uuid.UUID) {
				fx.tokenService.EXPECT().
					ValidateToken("token").
					Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
				fx.repos.refreshRepo.EXPECT().
					FindRefreshTokenByHash(mock.Anything, hashToken("token")).
					Return(&entity.RefreshToken{ID: uuid.New(), UserID: uuid.New()}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t, 0)
			tt.setup(fx, uuid.New())

			output, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "token"})

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
		})
	}
}

func TestUserService_Logout(t *testing.T) {
	t.Run("unknown token is ignored", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		fx.refreshTokenRepo.EXPECT().
			DeleteRefreshTokenByHash(mock.Anything, hashToken("gone")).
			Return(repository.ErrRefreshTokenNotFound)

		assert.NoError(t, fx.service.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: "gone"}))
	})

	t.Run("storage failure is returned", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		fx.refreshTokenRepo.EXPECT().
			DeleteRefreshTokenByHash(mock.Anything, hashToken("token")).
			Return(errors.New("connection reset"))

		assert.Error(t, fx.service.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: "token"}))
	})
}
