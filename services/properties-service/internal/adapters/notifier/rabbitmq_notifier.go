package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/events"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/pkg/metrics"
	"real-estate-platform/services/properties-service/internal/core/domain"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher то, что нужно адаптеру от rabbitmq_producer.Publisher
type Publisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// RabbitMQNotifier публикует PropertyCreatedEvent в properties_exchange
type RabbitMQNotifier struct {
	producer   Publisher
	routingKey string
	now        func() time.Time
}

func NewRabbitMQNotifier(producer Publisher, routingKey string) (*RabbitMQNotifier, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq notifier: producer cannot be nil")
	}
	if routingKey == "" {
		return nil, fmt.Errorf("rabbitmq notifier: routingKey cannot be empty")
	}
	return &RabbitMQNotifier{
		producer:   producer,
		routingKey: routingKey,
		now:        time.Now,
	}, nil
}

func (n *RabbitMQNotifier) NotifyPropertyCreated(ctx context.Context, property domain.Property) error {
	adapterLogger := contextkeys.LoggerFromContext(ctx).WithFields(logging.Fields{
		"component":   "RabbitMQNotifier",
		"routing_key": n.routingKey,
		"property_id": property.ID.String(),
	})

	traceID := contextkeys.TraceIDFromContext(ctx)
	event := newPropertyCreatedEvent(property, traceID, n.now())

	body, err := json.Marshal(event)
	if err != nil {
		metrics.NotificationsDispatched.WithLabelValues("rabbitmq", "failed").Inc()
		return fmt.Errorf("rabbitmq notifier: failed to marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		MessageId:    event.EventID,
		Type:         events.PropertyCreatedType,
		Headers: amqp.Table{
			events.HeaderEventType:    events.PropertyCreatedType,
			events.HeaderEventVersion: events.PropertyCreatedVersion,
		},
	}
	if traceID != "" {
		msg.Headers[events.HeaderTraceID] = traceID
	}

	if err := n.producer.Publish(ctx, n.routingKey, msg); err != nil {
		metrics.NotificationsDispatched.WithLabelValues("rabbitmq", "failed").Inc()
		adapterLogger.Error("Failed to publish PropertyCreatedEvent", err, nil)
		return fmt.Errorf("%w: %w", domain.ErrNotificationDeliveryFailed, err)
	}

	metrics.NotificationsDispatched.WithLabelValues("rabbitmq", "sent").Inc()
	adapterLogger.Info("PropertyCreatedEvent published", logging.Fields{"event_id": event.EventID})
	return nil
}
