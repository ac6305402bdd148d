package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cakes/config"
	domainerrors "cakes/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestVerifier(validate validateFunc) *Verifier {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "storefront-client"}}
	v := NewVerifier(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*Verifier)
	v.validate = validate

	return v
}

func payloadWith(issuer string, claims map[string]any) validateFunc {
	return func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		return &idtoken.Payload{
			Issuer:   issuer,
			Audience: audience,
			Subject:  "google-sub-123",
			Claims:   claims,
		}, nil
	}
}

func TestVerifier_VerifyIDToken(t *testing.T) {
	var gotAudience string
	v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return payloadWith("https://accounts.google.com", map[string]any{
			"email":          "priya@example.com",
			"email_verified": true,
			"name":           "Priya",
		})(ctx, token, audience)
	})

	identity, err := v.VerifyIDToken(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, "storefront-client", gotAudience)
	assert.Equal(t, "google-sub-123", identity.Subject)
	assert.Equal(t, "priya@example.com", identity.Email)
	assert.Equal(t, "Priya", identity.Name)
	assert.True(t, identity.EmailVerified)
}

func TestVerifier_VerifyIDToken_UnverifiedEmailIsReported(t *testing.T) {
	v := newTestVerifier(payloadWith("accounts.google.com", map[string]any{
		"email":          "priya@example.com",
		"email_verified": false,
	}))

	identity, err := v.VerifyIDToken(context.Background(), "token")

	require.NoError(t, err)
	assert.False(t, identity.EmailVerified)
}

func TestVerifier_VerifyIDToken_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		validate validateFunc
	}{
		{name: "foreign issuer", validate: payloadWith("https://evil.example.com", map[string]any{"email_verified": true})},
		{name: "bad signature", validate: func(context.Context, string, string) (*idtoken.Payload, error) {
			return nil, errors.New("idtoken: invalid token signature")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := newTestVerifier(tt.validate).VerifyIDToken(context.Background(), "token")

			assert.Nil(t, identity)
			assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
		})
	}
}

func TestVerifier_VerifyIDToken_NotConfigured(t *testing.T) {
	v := newTestVerifier(payloadWith("accounts.google.com", nil))
	v.clientID = ""

	_, err := v.VerifyIDToken(context.Background(), "token")

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
}
