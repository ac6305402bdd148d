// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"cakes/config"
	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/domain/service"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// maxUserAgentLength matches the refresh_tokens.user_agent column.
const maxUserAgentLength = 255

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleVerifier    service.IdentityVerifier
	maxActiveSessions int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	GoogleVerifier   service.IdentityVerifier
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleVerifier:    params.GoogleVerifier,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// newAccount builds a fresh active user with an empty wallet.
func newAccount(name, email, phone string, role entity.Role) *entity.User {
	return &entity.User{
		Name:          strings.TrimSpace(name),
		Email:         email,
		Phone:         strings.TrimSpace(phone),
		Roles:         entity.Roles{role},
		Addresses:     []entity.Address{},
		WalletBalance: decimal.Zero,
		IsActive:      true,
	}
}

// createPasswordAccount stores a user and its email credential in the current transaction.
func createPasswordAccount(ctx context.Context, repoFactory repository.RepositoryFactory, user *entity.User, passwordHash string) error {
	authRepo := repoFactory.AuthRepo()

	_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, user.Email)
	if err == nil {
		return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return errors.Wrap(err, "failed to find authentication")
	}

	if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	if err := authRepo.CreateAuthentication(ctx, &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: user.Email,
		PasswordHash:   passwordHash,
	}); err != nil {
		return errors.Wrap(err, "failed to create authentication")
	}

	return nil
}

// Register creates a customer account with an email credential.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	// Hash outside the transaction; bcrypt is CPU-bound.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := newAccount(input.Name, email, input.Phone, entity.RoleCustomer)
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return createPasswordAccount(ctx, repoFactory, newUser, passwordHash)
	}); err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login checks an email credential and opens a new session.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	var authRecord *entity.Authentication
	var loggedInUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		authRecord, err = repoFactory.AuthRepo().FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find authentication")
		}

		loggedInUser, err = repoFactory.UserRepo().FindByID(ctx, authRecord.UserID)
		if err != nil {
			return toAppError(err, "failed to find user by id")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load login account")
	}

	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	output, err := srv.openSession(ctx, loggedInUser)
	if err != nil {
		return nil, err
	}

	if srv.hasher.NeedsRehash(authRecord.PasswordHash) {
		srv.upgradePasswordHash(ctx, authRecord, input.Password)
	}

	return output, nil
}

// upgradePasswordHash re-hashes a password at the current cost. Failure only costs the upgrade;
// the old hash keeps working.
func (srv *userService) upgradePasswordHash(ctx context.Context, authRecord *entity.Authentication, password string) {
	passwordHash, err := srv.hasher.Hash(password)
	if err == nil {
		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return repoFactory.AuthRepo().UpdatePasswordHash(ctx, authRecord.ID, passwordHash)
		})
	}
	if err != nil {
		srv.log(ctx).Warn("Failed to upgrade password hash", slog.Any("userID", authRecord.UserID), slog.Any("error", err))

		return
	}

	srv.log(ctx).Info("Password hash upgraded", slog.Any("userID", authRecord.UserID))
}

// GoogleLogin signs a user in with a Google ID token, creating the account on first use.
// An existing email account is linked to the Google identity.
func (srv *userService) GoogleLogin(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Handling Google sign-in")

	identity, err := srv.googleVerifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify Google ID token")
	}
	if !identity.EmailVerified || identity.Email == "" {
		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, "google email is not verified")
	}

	var loggedInUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		loggedInUser, err = srv.findOrCreateGoogleUser(ctx, repoFactory, identity)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute Google sign-in transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute Google user authentication transaction")
	}

	return srv.openSession(ctx, loggedInUser)
}

func (srv *userService) findOrCreateGoogleUser(ctx context.Context, repoFactory repository.RepositoryFactory, identity *service.VerifiedIdentity) (*entity.User, error) {
	authRepo := repoFactory.AuthRepo()
	userRepo := repoFactory.UserRepo()

	authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeGoogle, identity.Subject)
	if err == nil {
		user, err := userRepo.FindByID(ctx, authRecord.UserID)
		if err != nil {
			return nil, toAppError(err, "failed to find user by id for google auth")
		}

		return user, nil
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	email := normalizeEmail(identity.Email)
	user, err := userRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Info("Google user not found, creating new user", slog.String("email", email))

		user = newAccount(identity.Name, email, "", entity.RoleCustomer)
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to create user for Google authentication")
		}
	case err != nil:
		return nil, errors.Wrap(err, "failed to find user by email")
	default:
		srv.log(ctx).Info("Linking Google identity to existing account", slog.Any("userID", user.ID))
	}

	if err := authRepo.CreateAuthentication(ctx, &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: identity.Subject,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create Google authentication")
	}

	return user, nil
}

// RefreshToken rotates a refresh token into a new token pair.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		stored, err := refreshRepo.FindRefreshTokenByHash(ctx, hashToken(input.RefreshToken))
		if err != nil {
			return toAppError(err, "refresh token not found or expired")
		}
		if stored.UserID != claims.UserID {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token subject mismatch")
		}

		if err := refreshRepo.DeleteRefreshToken(ctx, stored.ID); err != nil {
			return toAppError(err, "failed to revoke rotated refresh token")
		}

		user, err = repoFactory.UserRepo().FindByID(ctx, claims.UserID)
		if err != nil {
			return toAppError(err, "failed to find user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute refresh token transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return srv.openSession(ctx, user)
}

// Logout ends the session identified by a refresh token. Unknown tokens are ignored.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, hashToken(input.RefreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// openSession issues tokens for an active user and stores the refresh token,
// evicting the oldest sessions beyond maxActiveSessions.
func (srv *userService) openSession(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	if !user.IsActive {
		return nil, errors.Wrap(domainerrors.ErrUserInactive, "login refused")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	client := deliverycontext.GetClientFromContext(ctx)
	newToken := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		UserAgent: truncate(client.UserAgent, maxUserAgentLength),
		ClientIP:  client.IP,
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		if srv.maxActiveSessions > 0 {
			if err := srv.evictOldestSessions(ctx, refreshRepo, user.ID); err != nil {
				return err
			}
		}

		if err := refreshRepo.CreateRefreshToken(ctx, newToken); err != nil {
			return errors.Wrap(err, "failed to store refresh token")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// evictOldestSessions leaves room for one more session under the limit.
func (srv *userService) evictOldestSessions(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID) error {
	sessions, err := refreshRepo.FindRefreshTokensByUserID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to list active sessions")
	}

	// Sessions are newest first; everything from index maxActiveSessions-1 on must go.
	for i := srv.maxActiveSessions - 1; i < len(sessions); i++ {
		if err := refreshRepo.DeleteRefreshToken(ctx, sessions[i].ID); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return errors.Wrap(err, "failed to evict old session")
		}
		srv.log(ctx).Info("Evicted oldest session", slog.Any("userID", userID), slog.Any("tokenID", sessions[i].ID))
	}

	return nil
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}

	return s[:n]
}
