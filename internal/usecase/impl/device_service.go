package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterDevice registers a new device or updates an existing one. The token moves to this
// install: a shared phone handed to another staff member stops receiving the previous owner's pushes.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if err := s.deviceRepo.DeactivateByTokens(ctx, []string{deviceInfo.FCMToken}); err != nil {
		return nil, errors.Wrap(err, "failed to release FCM token")
	}

	existing, err := s.deviceRepo.FindDeviceByUserAndDeviceID(ctx, userID, deviceInfo.DeviceID)
	switch {
	case err == nil:
		// Known install: refresh its token and reactivate it.
		if err := s.deviceRepo.UpdateFCMToken(ctx, existing.ID, deviceInfo.FCMToken); err != nil {
			return nil, toAppError(err, "failed to update FCM token")
		}
		updatedDevice, err := s.deviceRepo.FindDeviceByID(ctx, existing.ID)
		if err != nil {
			return nil, toAppError(err, "failed to find device by ID")
		}
		s.log(ctx).Debug("Refreshed device token", slog.Any("userID", userID), slog.Any("deviceID", existing.ID))

		return updatedDevice, nil
	case !errors.Is(err, repository.ErrDeviceNotFound):
		return nil, errors.Wrap(err, "failed to find device")
	}

	now := time.Now()
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, errors.Wrap(domainerrors.ErrConflict, "device already registered")
		}

		return nil, errors.Wrap(err, "failed to create device")
	}
	s.log(ctx).Info("Registered device", slog.Any("userID", userID), slog.String("platform", device.Platform))

	return device, nil
}

// GetUserDevices retrieves all active devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	// Fetch device to verify ownership
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return toAppError(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return errors.Wrap(domainerrors.ErrForbidden, "device belongs to another user")
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return toAppError(err, "failed to delete device")
	}

	return nil
}
