// Package usecase declares the application operations the API and notifier drive, with their
// input and output types. Implementations live in internal/usecase/impl.
package usecase

import (
	"context"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase manages logged-in devices. A session is one stored refresh token.
type SessionUsecase interface {
	// ListSessions returns the caller's live sessions, newest first.
	ListSessions(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)

	// RevokeSession logs one device out. Sessions of other users are reported as not found.
	RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error

	// CleanupExpiredSessions purges expired refresh tokens; run periodically.
	CleanupExpiredSessions(ctx context.Context) error
}
