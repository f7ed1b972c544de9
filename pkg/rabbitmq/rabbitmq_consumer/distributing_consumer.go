package rabbitmq_consumer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"real-estate-platform/pkg/rabbitmq/rabbitmq_common"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrDrop помечает сообщение, которое бессмысленно обрабатывать повторно.
// Обработчик оборачивает его (fmt.Errorf("...: %w", ErrDrop)), сообщение подтверждается и отбрасывается.
var ErrDrop = errors.New("drop message")

// MessageHandler обработчик сообщения. Пакет сам решает про ack/nack.
type MessageHandler func(delivery amqp.Delivery) error

type outcome int

const (
	outcomeAck outcome = iota
	outcomeDrop
	outcomeReject
	outcomeRetry
	outcomeDeadLetter
)

// decide выбирает, что сделать с сообщением после обработчика
func decide(processErr error, retryEnabled bool, deaths int64, maxRetries int) outcome {
	switch {
	case processErr == nil:
		return outcomeAck
	case errors.Is(processErr, ErrDrop):
		return outcomeDrop
	case !retryEnabled:
		return outcomeReject
	case deaths < int64(maxRetries):
		return outcomeRetry
	default:
		return outcomeDeadLetter
	}
}

// DistributingConsumer обрабатывает каждое сообщение в отдельной горутине
type DistributingConsumer struct {
	baseConsumer *baseConsumer
	handler      MessageHandler
}

// NewDistributingConsumer создает потребителя и объявляет топологию
func NewDistributingConsumer(cfg ConsumerConfig, handler MessageHandler, connManager *rabbitmq_common.ConnectionManager) (*DistributingConsumer, error) {
	if handler == nil {
		return nil, fmt.Errorf("distributing Consumer: message handler is required")
	}

	bc, err := newBaseConsumer(cfg, connManager)
	if err != nil {
		return nil, fmt.Errorf("distributing Consumer: %w", err)
	}

	return &DistributingConsumer{
		baseConsumer: bc,
		handler:      handler,
	}, nil
}

// StartConsuming блокируется до отмены ctx или закрытия соединения
func (c *DistributingConsumer) StartConsuming(ctx context.Context) error {
	bc := c.baseConsumer
	if bc.channel == nil || bc.connection == nil || bc.connection.IsClosed() {
		return fmt.Errorf("distributing Consumer: not connected")
	}

	msgs, err := bc.channel.Consume(
		bc.actualQueueName,
		bc.config.ConsumerTag,
		false, // auto-ack
		bc.config.ExclusiveConsumer,
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("distributing Consumer %s: failed to register a consumer on queue '%s': %w", bc.config.ConsumerTag, bc.actualQueueName, err)
	}

	bc.Logger.Info("[*] Waiting for messages on queue", "queue_name", bc.actualQueueName)

	go func() {
		for {
			// сначала неблокирующая проверка, чтобы не брать новые сообщения после отмены
			select {
			case <-ctx.Done():
				return
			default:
			}

			select {
			case <-ctx.Done():
				bc.Logger.Info("Context cancelled. Exiting consumption loop", "consumer_tag", bc.config.ConsumerTag)
				return
			case d, ok := <-msgs:
				if !ok {
					bc.Logger.Info("Deliveries channel closed by RabbitMQ. Exiting loop", "consumer_tag", bc.config.ConsumerTag)
					return
				}
				bc.wg.Add(1)
				go func(delivery amqp.Delivery) {
					defer bc.wg.Done()
					c.process(delivery)
				}(d)
			}
		}
	}()

	notifyClose := make(chan *amqp.Error, 1)
	bc.connection.NotifyClose(notifyClose)

	select {
	case <-ctx.Done():
		bc.Logger.Info("Context cancelled. Shutting down consumer", "consumer_tag", bc.config.ConsumerTag)
		return nil
	case amqpErr := <-notifyClose:
		if amqpErr == nil {
			return fmt.Errorf("distributing Consumer: connection closed")
		}
		bc.Logger.Error(amqpErr, "Connection closed for consumer", "consumer_tag", bc.config.ConsumerTag)
		return amqpErr
	}
}

func (c *DistributingConsumer) process(delivery amqp.Delivery) {
	bc := c.baseConsumer
	tag := bc.config.ConsumerTag

	processErr := c.handler(delivery)
	deaths := deathCount(delivery.Headers, bc.actualQueueName)

	switch decide(processErr, bc.config.EnableRetryMechanism, deaths, bc.config.MaxRetries) {
	case outcomeAck:
		_ = delivery.Ack(false)
		bc.Logger.Debug("[+] Message Ack'd", "consumer_tag", tag, "delivery_tag", delivery.DeliveryTag)

	case outcomeDrop:
		bc.Logger.Warn("Message dropped", "consumer_tag", tag, "delivery_tag", delivery.DeliveryTag, "reason", processErr.Error())
		_ = delivery.Ack(false)

	case outcomeReject:
		bc.Logger.Error(processErr, "Handler error, retry disabled. Nacking without requeue", "consumer_tag", tag)
		_ = delivery.Nack(false, false)

	case outcomeRetry:
		bc.Logger.Warn("Handler error, retrying message",
			"consumer_tag", tag,
			"delivery_tag", delivery.DeliveryTag,
			"death_count", deaths,
			"error", processErr.Error(),
		)
		_ = delivery.Nack(false, false)

	case outcomeDeadLetter:
		bc.Logger.Error(processErr, "Max retries reached. Publishing to final DLX",
			"consumer_tag", tag,
			"delivery_tag", delivery.DeliveryTag,
		)
		err := bc.finalDlxPublisher.Publish(context.Background(), bc.config.FinalDLQRoutingKey, amqp.Publishing{
			ContentType:  delivery.ContentType,
			Body:         delivery.Body,
			Headers:      delivery.Headers,
			Timestamp:    time.Now(),
			DeliveryMode: amqp.Persistent,
		})
		if err != nil {
			bc.Logger.Error(err, "Failed to publish to final DLX. Nacking to trigger retry loop again", "consumer_tag", tag)
			_ = delivery.Nack(false, false)
			return
		}
		_ = delivery.Ack(false)
	}
}

// Close закрывает потребителя
func (c *DistributingConsumer) Close() error {
	c.baseConsumer.Logger.Info("Closing consumer")
	return c.baseConsumer.Close()
}
