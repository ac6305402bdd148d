package mail

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"cakes/config"
	"cakes/internal/domain/service"

	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSendGridConfig() *config.SendGridConfig {
	return &config.SendGridConfig{APIKey: "key", FromEmail: "orders@cakesbuy.example", FromName: "CakesBuy"}
}

func TestNewMailer_FallsBackToLogOnly(t *testing.T) {
	mailer := NewMailer(&config.Config{}, newDiscardLogger())

	_, ok := mailer.(*logOnlyMailer)
	require.True(t, ok)
	assert.NoError(t, mailer.Send(context.Background(), &service.Email{ToAddress: "a@b.c", Subject: "hi"}))
}

func TestSendGridMailer_Send(t *testing.T) {
	var captured *sgmail.SGMailV3
	mailer := newSendGridMailer(testSendGridConfig(), func(_ context.Context, message *sgmail.SGMailV3) (int, string, error) {
		captured = message

		return http.StatusAccepted, "", nil
	}, newDiscardLogger())

	err := mailer.Send(context.Background(), &service.Email{
		ToAddress: "priya@example.com",
		ToName:    "Priya",
		Subject:   "Order CK250101123456 confirmed",
		PlainText: "Your cake is being prepared.",
		HTML:      "<p>Your cake is being prepared.</p>",
	})
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, "orders@cakesbuy.example", captured.From.Address)
	assert.Equal(t, "Order CK250101123456 confirmed", captured.Subject)
	require.Len(t, captured.Personalizations, 1)
	assert.Equal(t, "priya@example.com", captured.Personalizations[0].To[0].Address)
	assert.Len(t, captured.Content, 2)
}

func TestSendGridMailer_Send_Rejected(t *testing.T) {
	mailer := newSendGridMailer(testSendGridConfig(), func(context.Context, *sgmail.SGMailV3) (int, string, error) {
		return http.StatusUnauthorized, `{"errors":[{"message":"bad key"}]}`, nil
	}, newDiscardLogger())

	err := mailer.Send(context.Background(), &service.Email{ToAddress: "priya@example.com", Subject: "x", PlainText: "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSendGridMailer_Send_MissingRecipient(t *testing.T) {
	called := false
	mailer := newSendGridMailer(testSendGridConfig(), func(context.Context, *sgmail.SGMailV3) (int, string, error) {
		called = true

		return http.StatusAccepted, "", nil
	}, newDiscardLogger())

	assert.Error(t, mailer.Send(context.Background(), &service.Email{Subject: "x"}))
	assert.False(t, called)
}

func TestWhatsAppNotifier_SendMessage(t *testing.T) {
	disabled := NewWhatsAppNotifier(&config.Config{}, newDiscardLogger())
	assert.NoError(t, disabled.SendMessage(context.Background(), "9876543210", "hello"))

	enabled := NewWhatsAppNotifier(&config.Config{WhatsApp: &config.WhatsAppConfig{Enabled: true}}, newDiscardLogger())
	assert.NoError(t, enabled.SendMessage(context.Background(), "9876543210", "hello"))
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "******3210", maskPhone("9876543210"))
	assert.Equal(t, "123", maskPhone("123"))
}
