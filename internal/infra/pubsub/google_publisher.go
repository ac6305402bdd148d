package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// publishTimeout bounds how long an order request waits for Pub/Sub to acknowledge an event.
const publishTimeout = 10 * time.Second

// googlePubSubPublisher publishes order events keyed by order number, so the notifier sees the
// events of one order in the order they happened.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and checks that topicID exists.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Pub/Sub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "order event topic %s is not reachable", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Publishing order events to Google Pub/Sub", slog.String("topic", topic))

	return &googlePubSubPublisher{client: client, publisher: publisher, logger: logger}, nil
}

// PublishOrderEvent blocks until Pub/Sub has stored the event.
func (p *googlePubSubPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: event.OrderNumber,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed publish pauses its ordering key; without a resume every later event of this
		// order would fail too.
		p.publisher.ResumePublish(event.OrderNumber)

		return errors.Wrapf(err, "failed to publish %s for order %s", event.Type, event.OrderNumber)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Order event published",
		slog.String("orderNumber", event.OrderNumber),
		slog.String("type", string(event.Type)),
		slog.String("messageID", serverID))

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
