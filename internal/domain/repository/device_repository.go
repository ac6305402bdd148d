package repository

import (
	"context"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository keeps the FCM registrations of staff phones, the targets of assignment
// pushes to delivery boys and vendors.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindDeviceByUserAndDeviceID finds the registration of one phone, identified by the
	// app-generated device ID, for userID.
	FindDeviceByUserAndDeviceID(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.UserDevice, error)

	// FindActiveDevicesByUser lists the phones a push to userID should reach.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateFCMToken stores a rotated token and marks the device active again.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateByTokens retires registrations FCM reported as unregistered.
	DeactivateByTokens(ctx context.Context, fcmTokens []string) error

	// DeleteDevice soft-deletes a registration, e.g. on logout from the staff app.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
