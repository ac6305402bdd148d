// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies how a user proves who they are.
type ProviderType string

const (
	// ProviderTypeEmail is email and password.
	ProviderTypeEmail ProviderType = "email"
	// ProviderTypeGoogle is a Google ID token.
	ProviderTypeGoogle ProviderType = "google"
)

// Authentication represents a single method of logging in (a credential).
// For example, a user's email/password is one record, while a linked Google account is another.
type Authentication struct {
	ID             uuid.UUID    // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID    // Links this authentication method to the User it belongs to.
	Provider       ProviderType // The authentication provider.
	ProviderUserID string       // Email for the email provider, Google's 'sub' claim otherwise.
	PasswordHash   string       // Only set when the Provider is "email".
	CreatedAt      time.Time
}

// RefreshToken represents a long-lived, authorized user session.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string // SHA-256 of the raw refresh token.
	UserAgent string // Client that opened the session, shown in the session list.
	ClientIP  string
	ExpiresAt time.Time
	CreatedAt time.Time
}
