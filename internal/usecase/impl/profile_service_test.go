package impl

import (
	"context"
	"testing"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	mockRepo "cakes/internal/mocks/repository"
	mockSvc "cakes/internal/mocks/service"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	repos    *txRepos
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:  service,
		repos:    newTxRepos(t, txManager),
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	expectedUser := activeCustomer()

	fx.userRepo.EXPECT().FindByID(ctx, expectedUser.ID).Return(expectedUser, nil)

	user, err := fx.service.GetProfile(ctx, expectedUser.ID)

	require.NoError(t, err)
	assert.Equal(t, expectedUser, user)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	existing := activeCustomer()
	existing.Addresses = []entity.Address{{Label: "Home", Pincode: "560001"}}

	name := "  Asha Rao "
	phone := "9876543210"

	fx.repos.userRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.repos.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Name == "Asha Rao" && user.Phone == phone && len(user.Addresses) == 1
		})).
		Return(nil)

	user, err := fx.service.UpdateProfile(ctx, existing.ID, &usecase.UpdateProfileInput{Name: &name, Phone: &phone})

	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", user.Name)
	assert.Equal(t, "560001", user.Addresses[0].Pincode)
}

func TestProfileService_UpdateProfile_ClearsAddresses(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	existing := activeCustomer()
	existing.Addresses = []entity.Address{{Label: "Home"}}

	fx.repos.userRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.repos.userRepo.EXPECT().Update(ctx, existing).Return(nil)

	user, err := fx.service.UpdateProfile(ctx, existing.ID, &usecase.UpdateProfileInput{Addresses: []entity.Address{}})

	require.NoError(t, err)
	assert.Empty(t, user.Addresses)
}

func TestProfileService_UpdateProfile_EmptyName(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	existing := activeCustomer()
	blank := "   "

	fx.repos.userRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	user, err := fx.service.UpdateProfile(ctx, existing.ID, &usecase.UpdateProfileInput{Name: &blank})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_CreateStaff(t *testing.T) {
	t.Run("creates delivery boy", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()

		fx.hasher.EXPECT().Hash("Password123!").Return("hashed", nil)
		fx.repos.authRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, "rider@example.com").
			Return(nil, repository.ErrAuthNotFound)
		fx.repos.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
		fx.repos.authRepo.EXPECT().CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).Return(nil)

		staff, err := fx.service.CreateStaff(ctx, &usecase.CreateStaffInput{
			Name:     "Ravi",
			Email:    "Rider@example.com",
			Password: "Password123!",
			Role:     entity.RoleDeliveryBoy,
		})

		require.NoError(t, err)
		assert.True(t, staff.HasRole(entity.RoleDeliveryBoy))
		assert.False(t, staff.HasRole(entity.RoleCustomer))
	})

	t.Run("customer role is refused", func(t *testing.T) {
		fx := createTestProfileService(t)

		staff, err := fx.service.CreateStaff(context.Background(), &usecase.CreateStaffInput{
			Name:     "Ravi",
			Email:    "rider@example.com",
			Password: "Password123!",
			Role:     entity.RoleCustomer,
		})

		assert.Nil(t, staff)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidRole))
	})
}

func TestProfileService_ListStaff(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	page := repository.NewPagination(1, 20)
	vendor := &entity.User{ID: uuid.New(), Roles: entity.Roles{entity.RoleVendor}}

	fx.userRepo.EXPECT().ListByRole(ctx, entity.RoleVendor, page).Return([]*entity.User{vendor}, int64(1), nil)

	users, total, err := fx.service.ListStaff(ctx, entity.RoleVendor, page)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, users, 1)

	_, _, err = fx.service.ListStaff(ctx, entity.RoleCustomer, page)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRole))
}
