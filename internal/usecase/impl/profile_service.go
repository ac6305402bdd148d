package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/domain/service"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the user's profile with wallet and loyalty totals.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, toAppError(err, "failed to get user profile")
	}

	return user, nil
}

// UpdateProfile changes the name, phone and saved addresses of a user.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating user profile", slog.Any("userID", userID))

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Find the user
		var err error
		user, err = userRepo.FindByID(ctx, userID)
		if err != nil {
			return toAppError(err, "failed to find user")
		}

		// 2. Update the profile fields
		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				return errors.Wrap(domainerrors.ErrValidationFailed, "name must not be empty")
			}
			user.Name = name
		}
		if input.Phone != nil {
			user.Phone = strings.TrimSpace(*input.Phone)
		}
		if input.Addresses != nil {
			user.Addresses = input.Addresses
		}

		// 3. Save the updated user
		if err := userRepo.Update(ctx, user); err != nil {
			return toAppError(err, "failed to update user profile")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return user, nil
}

// CreateStaff creates an admin, delivery boy or vendor account with an email credential.
func (srv *profileService) CreateStaff(ctx context.Context, input *usecase.CreateStaffInput) (*entity.User, error) {
	if !input.Role.IsStaffRole() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidRole, "role %q cannot be granted to staff", input.Role)
	}

	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Creating staff account", slog.String("email", email), slog.String("role", input.Role.String()))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash staff password")
	}

	staff := newAccount(input.Name, email, input.Phone, input.Role)
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return createPasswordAccount(ctx, repoFactory, staff, passwordHash)
	}); err != nil {
		srv.log(ctx).Warn("Failed to create staff account", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create staff account")
	}

	return staff, nil
}

// ListStaff returns one page of users holding role.
func (srv *profileService) ListStaff(ctx context.Context, role entity.Role, page repository.Pagination) ([]*entity.User, int64, error) {
	if !role.IsStaffRole() {
		return nil, 0, errors.Wrapf(domainerrors.ErrInvalidRole, "role %q is not a staff role", role)
	}

	users, total, err := srv.userRepo.ListByRole(ctx, role, page)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list staff")
	}

	return users, total, nil
}
