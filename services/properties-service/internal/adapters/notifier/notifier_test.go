package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/contracts"
	"real-estate-platform/pkg/events"
	"real-estate-platform/services/properties-service/internal/core/domain"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPublisher struct {
	PublishFunc func(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	return m.PublishFunc(ctx, routingKey, msg)
}

func sampleProperty() domain.Property {
	bedrooms := 3
	return domain.Property{
		ID:          uuid.MustParse("6f1c2d7e-1a2b-4c3d-9e8f-001122334455"),
		Price:       420000,
		Type:        domain.PropertyTypeHouse,
		Location:    domain.Location{City: "lisbon", Country: "Portugal"},
		Size:        135.5,
		Bedrooms:    &bedrooms,
		Contact:     &domain.Contact{Name: "Ana", Email: "ana@example.com"},
		ListingDate: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestRabbitMQNotifier_PublishesValidEvent(t *testing.T) {
	traceID := uuid.NewString()
	ctx := contextkeys.ContextWithTraceID(context.Background(), traceID)

	var captured amqp.Publishing
	var capturedKey string
	pub := &mockPublisher{PublishFunc: func(_ context.Context, routingKey string, msg amqp.Publishing) error {
		capturedKey = routingKey
		captured = msg
		return nil
	}}

	n, err := NewRabbitMQNotifier(pub, events.RoutingKeyPropertyCreated)
	require.NoError(t, err)

	require.NoError(t, n.NotifyPropertyCreated(ctx, sampleProperty()))

	assert.Equal(t, events.RoutingKeyPropertyCreated, capturedKey)
	assert.Equal(t, amqp.Persistent, captured.DeliveryMode)
	assert.Equal(t, traceID, captured.Headers[events.HeaderTraceID])
	assert.Equal(t, events.PropertyCreatedType, captured.Headers[events.HeaderEventType])

	require.NoError(t, contracts.ValidateEvent(events.PropertyCreatedType, events.PropertyCreatedVersion, captured.Body))

	var event events.PropertyCreatedEvent
	require.NoError(t, json.Unmarshal(captured.Body, &event))
	assert.Equal(t, "lisbon", event.Property.Location.City)
	assert.Equal(t, traceID, event.TraceID)
	assert.Equal(t, captured.MessageId, event.EventID)
}

func TestRabbitMQNotifier_PublishFailure(t *testing.T) {
	pub := &mockPublisher{PublishFunc: func(context.Context, string, amqp.Publishing) error {
		return errors.New("channel closed")
	}}
	n, err := NewRabbitMQNotifier(pub, events.RoutingKeyPropertyCreated)
	require.NoError(t, err)

	err = n.NotifyPropertyCreated(context.Background(), sampleProperty())
	assert.ErrorIs(t, err, domain.ErrNotificationDeliveryFailed)
}

func TestNewRabbitMQNotifier_Validation(t *testing.T) {
	_, err := NewRabbitMQNotifier(nil, "key")
	assert.Error(t, err)

	_, err = NewRabbitMQNotifier(&mockPublisher{}, "")
	assert.Error(t, err)
}

func TestHTTPNotifier(t *testing.T) {
	traceID := uuid.NewString()

	t.Run("posts property with trace id", func(t *testing.T) {
		var gotPath, gotTrace string
		var gotBody events.Property
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotTrace = r.Header.Get(contextkeys.TraceIDHeader)
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &gotBody)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		n, err := NewHTTPNotifier(srv.URL+"/", srv.Client())
		require.NoError(t, err)

		ctx := contextkeys.ContextWithTraceID(context.Background(), traceID)
		require.NoError(t, n.NotifyPropertyCreated(ctx, sampleProperty()))

		assert.Equal(t, "/api/notifications/property", gotPath)
		assert.Equal(t, traceID, gotTrace)
		assert.Equal(t, "ana@example.com", gotBody.Contact.Email)
	})

	t.Run("non-200 is a delivery failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		n, err := NewHTTPNotifier(srv.URL, srv.Client())
		require.NoError(t, err)

		err = n.NotifyPropertyCreated(context.Background(), sampleProperty())
		assert.ErrorIs(t, err, domain.ErrNotificationDeliveryFailed)
	})

	t.Run("empty base url", func(t *testing.T) {
		_, err := NewHTTPNotifier("  ", nil)
		assert.Error(t, err)
	})
}

func TestNoopNotifier(t *testing.T) {
	assert.NoError(t, NewNoopNotifier().NotifyPropertyCreated(context.Background(), sampleProperty()))
}
