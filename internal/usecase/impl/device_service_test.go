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

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo, newDiscardLogger())

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "android",
	}

	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"test-fcm-token"}).Return(nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByUserAndDeviceID(ctx, userID, deviceInfo.DeviceID).
		Return(nil, repository.ErrDeviceNotFound)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)

	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_RefreshesKnownDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserDevice{ID: uuid.New(), UserID: userID, DeviceID: "device-123", FCMToken: "old-token"}
	updated := &entity.UserDevice{ID: existing.ID, UserID: userID, DeviceID: "device-123", FCMToken: "new-token", IsActive: true}

	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"new-token"}).Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByUserAndDeviceID(ctx, userID, "device-123").Return(existing, nil)
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, existing.ID, "new-token").Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, existing.ID).Return(updated, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "new-token", DeviceID: "device-123", Platform: "ios"})

	require.NoError(t, err)
	assert.Equal(t, "new-token", device.FCMToken)
}

func TestDeviceService_RegisterDevice_Duplicate(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"t"}).Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByUserAndDeviceID(ctx, userID, "device-123").Return(nil, repository.ErrDeviceNotFound)
	fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).Return(repository.ErrDuplicateDevice)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "device-123", Platform: "ios"})

	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestDeviceService_RegisterDevice_ReleaseFailure(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"t"}).Return(errors.New("db down"))

	device, err := fx.service.RegisterDevice(ctx, uuid.New(), &usecase.DeviceInfo{FCMToken: "t", DeviceID: "device-123", Platform: "ios"})

	assert.Nil(t, device)
	assert.Error(t, err)
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{{ID: uuid.New(), UserID: userID, IsActive: true}}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devices, nil)

	result, err := fx.service.GetUserDevices(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, devices, result)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()
		userID := uuid.New()
		device := &entity.UserDevice{ID: uuid.New(), UserID: userID}

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(ctx, device.ID).Return(nil)

		assert.NoError(t, fx.service.DeactivateDevice(ctx, userID, device.ID))
	})

	t.Run("another user's device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()
		device := &entity.UserDevice{ID: uuid.New(), UserID: uuid.New()}

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

		err := fx.service.DeactivateDevice(ctx, uuid.New(), device.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("missing device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, id).Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.DeactivateDevice(ctx, uuid.New(), id)
		assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
	})
}
