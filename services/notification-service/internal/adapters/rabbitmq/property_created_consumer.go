package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/contracts"
	"real-estate-platform/pkg/events"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/pkg/metrics"
	"real-estate-platform/pkg/rabbitmq/rabbitmq_common"
	"real-estate-platform/pkg/rabbitmq/rabbitmq_consumer"
	"real-estate-platform/services/notification-service/internal/adapters/payload"
	"real-estate-platform/services/notification-service/internal/core/domain"
	"real-estate-platform/services/notification-service/internal/core/port/usecases_port"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const metricsSource = "rabbitmq"

// PropertyCreatedConsumerAdapter читает PropertyCreatedEvent и отправляет письма
type PropertyCreatedConsumerAdapter struct {
	consumer       *rabbitmq_consumer.DistributingConsumer
	useCase        usecases_port.SendPropertyNotificationUseCase
	logger         logging.LoggerPort
	handlerTimeout time.Duration
}

func NewPropertyCreatedConsumerAdapter(
	cfg rabbitmq_consumer.ConsumerConfig,
	uc usecases_port.SendPropertyNotificationUseCase,
	handlerTimeout time.Duration,
	logger logging.LoggerPort,
	connManager *rabbitmq_common.ConnectionManager,
) (*PropertyCreatedConsumerAdapter, error) {
	adapter := newPropertyCreatedHandler(uc, handlerTimeout, logger)

	pkgLogger := logger.WithFields(logging.Fields{"component": "rabbitmq_distributing_consumer", "consumer_tag": cfg.ConsumerTag})
	cfg.Logger = logging.NewPkgLoggerBridge(pkgLogger)

	consumer, err := rabbitmq_consumer.NewDistributingConsumer(cfg, adapter.messageHandler, connManager)
	if err != nil {
		return nil, err
	}
	adapter.consumer = consumer
	return adapter, nil
}

func newPropertyCreatedHandler(uc usecases_port.SendPropertyNotificationUseCase, handlerTimeout time.Duration, logger logging.LoggerPort) *PropertyCreatedConsumerAdapter {
	return &PropertyCreatedConsumerAdapter{
		useCase:        uc,
		logger:         logger.WithFields(logging.Fields{"component": "PropertyCreatedConsumerAdapter"}),
		handlerTimeout: handlerTimeout,
	}
}

// messageHandler: битые события подтверждаются и отбрасываются (ErrDrop),
// сбой доставки возвращается как ошибка и уходит в ретрай
func (a *PropertyCreatedConsumerAdapter) messageHandler(d amqp.Delivery) error {
	traceID, ok := d.Headers[events.HeaderTraceID].(string)
	if !ok || traceID == "" {
		traceID = uuid.New().String()
	}

	msgLogger := a.logger.WithFields(logging.Fields{
		"trace_id":     traceID,
		"delivery_tag": d.DeliveryTag,
		"message_id":   d.MessageId,
	})

	eventType, eventVersion := eventIdentity(d.Headers)
	if err := contracts.ValidateEvent(eventType, eventVersion, d.Body); err != nil {
		metrics.NotificationsSent.WithLabelValues(metricsSource, "malformed").Inc()
		msgLogger.Error("Event failed schema validation, dropping message.", err, logging.Fields{
			"event_type":    eventType,
			"event_version": eventVersion,
		})
		return fmt.Errorf("invalid %s/%s: %w: %w", eventType, eventVersion, err, rabbitmq_consumer.ErrDrop)
	}

	var event events.PropertyCreatedEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		metrics.NotificationsSent.WithLabelValues(metricsSource, "malformed").Inc()
		msgLogger.Error("Failed to unmarshal PropertyCreatedEvent, dropping message.", err, nil)
		return fmt.Errorf("unmarshal event: %w: %w", err, rabbitmq_consumer.ErrDrop)
	}

	handlerLogger := msgLogger.WithFields(logging.Fields{"property_id": event.Property.ID, "event_id": event.EventID})

	ctx, cancel := context.WithTimeout(context.Background(), a.handlerTimeout)
	defer cancel()
	ctx = contextkeys.ContextWithTraceID(ctx, traceID)
	ctx = contextkeys.ContextWithLogger(ctx, handlerLogger)

	handlerLogger.Info("Processing PropertyCreatedEvent.", nil)

	err := a.useCase.Execute(ctx, payload.ToListing(event.Property))
	switch {
	case err == nil:
		metrics.NotificationsSent.WithLabelValues(metricsSource, "sent").Inc()
		return nil
	case errors.Is(err, domain.ErrMalformedPayload):
		metrics.NotificationsSent.WithLabelValues(metricsSource, "malformed").Inc()
		handlerLogger.Warn("Listing lacks fields required for the email, dropping message.", logging.Fields{"error": err.Error()})
		return fmt.Errorf("%w: %w", err, rabbitmq_consumer.ErrDrop)
	default:
		metrics.NotificationsSent.WithLabelValues(metricsSource, "failed").Inc()
		handlerLogger.Error("Failed to send notification, message will be retried.", err, nil)
		return err
	}
}

// eventIdentity тип и версия из заголовков; без заголовков считаем, что это PropertyCreatedEvent 1.0.0
func eventIdentity(headers amqp.Table) (string, string) {
	eventType, _ := headers[events.HeaderEventType].(string)
	if eventType == "" {
		eventType = events.PropertyCreatedType
	}
	eventVersion, _ := headers[events.HeaderEventVersion].(string)
	if eventVersion == "" {
		eventVersion = events.PropertyCreatedVersion
	}
	return eventType, eventVersion
}

func (a *PropertyCreatedConsumerAdapter) Start(ctx context.Context) error {
	return a.consumer.StartConsuming(ctx)
}

func (a *PropertyCreatedConsumerAdapter) Close() error { return a.consumer.Close() }
