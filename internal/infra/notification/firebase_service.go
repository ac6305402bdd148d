// Package notification delivers push notifications to staff devices.
package notification

import (
	"context"
	"iter"
	"log/slog"

	"cakes/config"
	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit per multicast request.
const maxMulticastTokens = 500

type firebaseService struct {
	client *messaging.Client
}

// NewPushService returns an FCM-backed service, or a log-only one when Firebase is not configured.
func NewPushService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushNotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase credentials not configured, push notifications will only be logged")

		return &logOnlyService{logger: logger}, nil
	}

	return NewFirebaseService(ctx, cfg.Firebase)
}

// NewFirebaseService creates an FCM client from a service account file.
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.PushNotificationService, error) {
	var firebaseCfg *firebase.Config
	if cfg.ProjectID != "" {
		firebaseCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, firebaseCfg, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// Send multicasts msg in FCM-sized chunks. On a transport failure the tally of the chunks
// already sent is returned with the error.
func (s *firebaseService) Send(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.PushResult, error) {
	result := &service.PushResult{}

	for chunk := range chunks(tokens, maxMulticastTokens) {
		resp, err := s.client.SendEachForMulticast(ctx, multicast(chunk, msg))
		if err != nil {
			return result, errors.Wrap(err, "failed to send multicast notification")
		}

		result.Sent += resp.SuccessCount
		result.Failed += resp.FailureCount
		for i, r := range resp.Responses {
			if r.Error != nil && (messaging.IsUnregistered(r.Error) || messaging.IsInvalidArgument(r.Error)) {
				result.InvalidTokens = append(result.InvalidTokens, chunk[i])
			}
		}
	}

	return result, nil
}

func multicast(tokens []string, msg *service.PushMessage) *messaging.MulticastMessage {
	m := &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
	}
	if msg.Urgent {
		m.Android = &messaging.AndroidConfig{Priority: "high"}
		m.APNS = &messaging.APNSConfig{Headers: map[string]string{"apns-priority": "10"}}
	}

	return m
}

// chunks yields consecutive slices of at most size elements.
func chunks(tokens []string, size int) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for start := 0; start < len(tokens); start += size {
			if !yield(tokens[start:min(start+size, len(tokens))]) {
				return
			}
		}
	}
}

type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) Send(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.PushResult, error) {
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Push notification (not sent)",
		slog.Int("tokens", len(tokens)),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
		slog.Bool("urgent", msg.Urgent),
		slog.Any("data", msg.Data))

	return &service.PushResult{Sent: len(tokens)}, nil
}
