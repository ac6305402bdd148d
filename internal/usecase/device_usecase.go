package usecase

import (
	"context"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is what the staff app sends when it (re)registers for pushes.
type DeviceInfo struct {
	FCMToken string
	DeviceID string // Stable per install, generated by the app.
	Platform string // ios or android.
}

// DeviceUsecase lets delivery boys and vendors receive assignment pushes on their phones.
type DeviceUsecase interface {
	// RegisterDevice is idempotent per (user, device ID): a known phone only gets its token
	// refreshed and is reactivated.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice unregisters one of the caller's phones. Other users' devices are
	// reported as not found.
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
