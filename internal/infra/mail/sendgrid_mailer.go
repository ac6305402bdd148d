// Package mail sends customer email and WhatsApp messages.
package mail

import (
	"context"
	"log/slog"
	"net/http"

	"cakes/config"
	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendFunc delivers a prepared message and reports the provider's HTTP status and body.
type sendFunc func(ctx context.Context, message *sgmail.SGMailV3) (statusCode int, body string, err error)

type sendGridMailer struct {
	from   *sgmail.Email
	send   sendFunc
	logger *slog.Logger
}

// NewMailer returns a SendGrid mailer, or a log-only one when no API key is configured.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	sgCfg := cfg.SendGrid
	if sgCfg == nil || sgCfg.APIKey == "" {
		logger.Warn("SendGrid API key not configured, emails will only be logged")

		return &logOnlyMailer{logger: logger}
	}

	client := sendgrid.NewSendClient(sgCfg.APIKey)

	return newSendGridMailer(sgCfg, func(ctx context.Context, message *sgmail.SGMailV3) (int, string, error) {
		resp, err := client.SendWithContext(ctx, message)
		if err != nil {
			return 0, "", err
		}

		return resp.StatusCode, resp.Body, nil
	}, logger)
}

func newSendGridMailer(cfg *config.SendGridConfig, send sendFunc, logger *slog.Logger) *sendGridMailer {
	return &sendGridMailer{
		from:   sgmail.NewEmail(cfg.FromName, cfg.FromEmail),
		send:   send,
		logger: logger,
	}
}

// Send delivers a single email. Non-2xx answers from SendGrid are errors.
func (m *sendGridMailer) Send(ctx context.Context, email *service.Email) error {
	if email == nil || email.ToAddress == "" {
		return errors.New("email recipient is required")
	}

	to := sgmail.NewEmail(email.ToName, email.ToAddress)
	message := sgmail.NewSingleEmail(m.from, email.Subject, to, email.PlainText, email.HTML)

	status, body, err := m.send(ctx, message)
	if err != nil {
		return errors.Wrap(err, "failed to send email via SendGrid")
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return errors.Errorf("SendGrid rejected email with status %d: %s", status, body)
	}

	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Email sent",
		slog.String("to", email.ToAddress),
		slog.String("subject", email.Subject),
	)

	return nil
}

type logOnlyMailer struct {
	logger *slog.Logger
}

func (m *logOnlyMailer) Send(ctx context.Context, email *service.Email) error {
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("[Mail] SendGrid disabled, logging email",
		slog.String("to", email.ToAddress),
		slog.String("subject", email.Subject),
	)

	return nil
}
