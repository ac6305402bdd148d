package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	mockUsecase "cakes/internal/mocks/usecase"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockUserUsecase, *mockUsecase.MockSessionUsecase) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	sessionUC := mockUsecase.NewMockSessionUsecase(t)

	return NewAuthHandler(AuthHandlerParams{
		UserUC:    userUC,
		SessionUC: sessionUC,
		Logger:    slog.Default(),
	}), userUC, sessionUC
}

func TestAuthHandler_Login(t *testing.T) {
	h, userUC, _ := newAuthHandler(t)
	user := &entity.User{ID: uuid.New(), Email: "asha@example.com", Name: "Asha"}

	userUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "asha@example.com", Password: "secret-pass"}).
		Return(&usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh", User: user}, nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodPost,
		target: "/api/auth/login",
		body:   LoginRequest{Email: "asha@example.com", Password: "secret-pass"},
	})

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp TokenResponse
	decodeData(t, rec, &resp)
	assert.Equal(t, "access", resp.AccessToken)
	assert.Equal(t, "refresh", resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, userUC, _ := newAuthHandler(t)

	userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	c, _ := newTestContext(t, testRequest{
		method: http.MethodPost,
		target: "/api/auth/login",
		body:   LoginRequest{Email: "asha@example.com", Password: "wrong"},
	})

	err := h.Login(c)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	tests := []struct {
		name string
		body RegisterRequest
	}{
		{name: "bad email", body: RegisterRequest{Name: "Asha", Email: "not-an-email", Password: "long-enough"}},
		{name: "short password", body: RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "short"}},
		{name: "missing name", body: RegisterRequest{Email: "asha@example.com", Password: "long-enough"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newAuthHandler(t)
			c, _ := newTestContext(t, testRequest{method: http.MethodPost, target: "/api/auth/register", body: tt.body})

			assert.Error(t, h.Register(c))
		})
	}
}

func TestAuthHandler_Register_MalformedBody(t *testing.T) {
	h, _, _ := newAuthHandler(t)
	c, _ := newTestContext(t, testRequest{method: http.MethodPost, target: "/api/auth/register", body: "{not json"})

	err := h.Register(c)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestAuthHandler_ListSessions(t *testing.T) {
	h, _, sessionUC := newAuthHandler(t)
	userID := uuid.New()
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	sessionUC.EXPECT().ListSessions(mock.Anything, userID).Return([]*entity.RefreshToken{
		{ID: uuid.New(), UserID: userID, TokenHash: "hash", CreatedAt: created, ExpiresAt: created.Add(7 * 24 * time.Hour)},
	}, nil)

	c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/api/auth/sessions", userID: userID})

	require.NoError(t, h.ListSessions(c))
	assert.NotContains(t, rec.Body.String(), "hash")

	var sessions []SessionResponse
	decodeData(t, rec, &sessions)
	require.Len(t, sessions, 1)
	assert.True(t, created.Equal(sessions[0].CreatedAt))
}

func TestAuthHandler_RevokeSession(t *testing.T) {
	h, _, sessionUC := newAuthHandler(t)
	userID := uuid.New()
	sessionID := uuid.New()

	sessionUC.EXPECT().RevokeSession(mock.Anything, userID, sessionID).Return(nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodDelete,
		target: "/api/auth/sessions/" + sessionID.String(),
		userID: userID,
		params: map[string]string{"id": sessionID.String()},
	})

	require.NoError(t, h.RevokeSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
