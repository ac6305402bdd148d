// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"cakes/config"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var googleIssuers = map[string]bool{
	"https://accounts.google.com": true,
	"accounts.google.com":         true,
}

// validateFunc matches idtoken.Validate so tests can substitute it.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// Verifier checks Google ID tokens minted for the storefront's OAuth client.
type Verifier struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewVerifier creates a Google ID token verifier for the configured client ID.
func NewVerifier(cfg *config.Config, logger *slog.Logger) service.IdentityVerifier {
	return &Verifier{
		clientID: cfg.GoogleOAuth.ClientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken checks the signature and audience against Google's keys, then the issuer.
// Rejected tokens wrap ErrOAuthTokenInvalid.
func (v *Verifier) VerifyIDToken(ctx context.Context, idToken string) (*service.VerifiedIdentity, error) {
	if v.clientID == "" {
		return nil, errors.New("google sign-in is not configured")
	}

	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		v.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}
	if !googleIssuers[payload.Issuer] {
		return nil, errors.Wrapf(domainerrors.ErrOAuthTokenInvalid, "unexpected issuer %s", payload.Issuer)
	}

	identity := &service.VerifiedIdentity{
		Subject: payload.Subject,
		Email:   claimString(payload.Claims, "email"),
		Name:    claimString(payload.Claims, "name"),
	}
	identity.EmailVerified, _ = payload.Claims["email_verified"].(bool)

	v.logger.Debug("Google ID token verified", slog.String("sub", identity.Subject), slog.Bool("emailVerified", identity.EmailVerified))

	return identity, nil
}

func claimString(claims map[string]any, key string) string {
	s, _ := claims[key].(string)

	return s
}
