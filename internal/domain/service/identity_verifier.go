package service

import "context"

// VerifiedIdentity is what a third-party sign-in vouches for.
type VerifiedIdentity struct {
	Subject       string // Stable provider user ID, stored as the credential's provider user ID.
	Email         string
	EmailVerified bool
	Name          string
}

// IdentityVerifier checks an ID token issued to the storefront's sign-in button.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*VerifiedIdentity, error)
}
