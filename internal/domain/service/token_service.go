package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims.Type values. Only access tokens open the API; refresh tokens are only accepted by
// the refresh endpoint.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the JWT payload: who the caller is and which roles gate the admin, delivery and
// vendor routes.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Roles  []string  `json:"roles,omitempty"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and checks the signed session tokens.
type TokenService interface {
	// GenerateTokens issues a fresh access and refresh pair for one login.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken verifies signature and expiry of either token type.
	ValidateToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration is how long a stored refresh token stays usable.
	GetRefreshTokenDuration() time.Duration
}
