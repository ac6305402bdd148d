package mail

import (
	"context"
	"log/slog"
	"strings"

	"cakes/config"
	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/service"
)

// whatsAppStub records outgoing WhatsApp messages in the log. No provider is integrated.
type whatsAppStub struct {
	enabled bool
	logger  *slog.Logger
}

// NewWhatsAppNotifier creates the logging WhatsApp notifier.
func NewWhatsAppNotifier(cfg *config.Config, logger *slog.Logger) service.WhatsAppNotifier {
	return &whatsAppStub{
		enabled: cfg.WhatsApp != nil && cfg.WhatsApp.Enabled,
		logger:  logger,
	}
}

func (n *whatsAppStub) SendMessage(ctx context.Context, phone, message string) error {
	if !n.enabled || strings.TrimSpace(phone) == "" {
		return nil
	}

	deliverycontext.GetLoggerOrDefault(ctx, n.logger).Info("[WhatsApp] message queued",
		slog.String("phone", maskPhone(phone)),
		slog.Int("length", len(message)),
	)

	return nil
}

// maskPhone keeps only the last four digits.
func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}

	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
