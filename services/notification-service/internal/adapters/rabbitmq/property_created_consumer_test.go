package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/events"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/pkg/rabbitmq/rabbitmq_consumer"
	"real-estate-platform/services/notification-service/internal/core/domain"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSendUC struct {
	ExecuteFunc func(ctx context.Context, listing domain.Listing) error
	calls       int
}

func (m *mockSendUC) Execute(ctx context.Context, listing domain.Listing) error {
	m.calls++
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, listing)
	}
	return nil
}

func eventBody(t *testing.T, contact *events.Contact) []byte {
	t.Helper()
	body, err := json.Marshal(events.PropertyCreatedEvent{
		EventID:      uuid.NewString(),
		EventType:    events.PropertyCreatedType,
		EventVersion: events.PropertyCreatedVersion,
		OccurredAt:   time.Now().UTC(),
		Property: events.Property{
			ID:          uuid.NewString(),
			Price:       320000,
			Type:        "house",
			Location:    events.Location{City: "Bled"},
			Size:        160,
			Contact:     contact,
			ListingDate: time.Now().UTC(),
		},
	})
	require.NoError(t, err)
	return body
}

func delivery(body []byte, headers amqp.Table) amqp.Delivery {
	return amqp.Delivery{Body: body, Headers: headers, DeliveryTag: 1}
}

func TestMessageHandler_SendsNotification(t *testing.T) {
	var gotCity, gotTrace string
	uc := &mockSendUC{ExecuteFunc: func(ctx context.Context, l domain.Listing) error {
		gotCity = l.City
		gotTrace = contextkeys.TraceIDFromContext(ctx)
		return nil
	}}
	h := newPropertyCreatedHandler(uc, time.Second, logging.NewNoop())

	err := h.messageHandler(delivery(eventBody(t, &events.Contact{Name: "Jure", Email: "jure@example.com"}), amqp.Table{
		events.HeaderTraceID:      "trace-42",
		events.HeaderEventType:    events.PropertyCreatedType,
		events.HeaderEventVersion: events.PropertyCreatedVersion,
	}))

	require.NoError(t, err)
	assert.Equal(t, "Bled", gotCity)
	assert.Equal(t, "trace-42", gotTrace)
}

func TestMessageHandler_GeneratesTraceID(t *testing.T) {
	var gotTrace string
	uc := &mockSendUC{ExecuteFunc: func(ctx context.Context, _ domain.Listing) error {
		gotTrace = contextkeys.TraceIDFromContext(ctx)
		return nil
	}}
	h := newPropertyCreatedHandler(uc, time.Second, logging.NewNoop())

	require.NoError(t, h.messageHandler(delivery(eventBody(t, &events.Contact{Name: "Jure", Email: "jure@example.com"}), nil)))
	_, err := uuid.Parse(gotTrace)
	assert.NoError(t, err)
}

func TestMessageHandler_DropsInvalidEvents(t *testing.T) {
	tests := []struct {
		name    string
		body    []byte
		headers amqp.Table
	}{
		{name: "not json", body: []byte("{oops")},
		{name: "missing property", body: []byte(`{"eventId":"` + uuid.NewString() + `","eventType":"PropertyCreatedEvent","eventVersion":"1.0.0","occurredAt":"2026-01-02T10:00:00Z"}`)},
		{name: "unknown version", body: []byte(`{}`), headers: amqp.Table{events.HeaderEventVersion: "9.0.0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockSendUC{}
			h := newPropertyCreatedHandler(uc, time.Second, logging.NewNoop())

			err := h.messageHandler(delivery(tt.body, tt.headers))

			assert.ErrorIs(t, err, rabbitmq_consumer.ErrDrop)
			assert.Zero(t, uc.calls)
		})
	}
}

func TestMessageHandler_DropsListingWithoutContact(t *testing.T) {
	uc := &mockSendUC{ExecuteFunc: func(_ context.Context, l domain.Listing) error {
		return l.Validate()
	}}
	h := newPropertyCreatedHandler(uc, time.Second, logging.NewNoop())

	err := h.messageHandler(delivery(eventBody(t, nil), nil))

	assert.ErrorIs(t, err, rabbitmq_consumer.ErrDrop)
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestMessageHandler_DeliveryFailureIsRetried(t *testing.T) {
	uc := &mockSendUC{ExecuteFunc: func(context.Context, domain.Listing) error {
		return fmt.Errorf("%w: %w", domain.ErrNotificationDeliveryFailed, errors.New("ses throttled"))
	}}
	h := newPropertyCreatedHandler(uc, time.Second, logging.NewNoop())

	err := h.messageHandler(delivery(eventBody(t, &events.Contact{Name: "Jure", Email: "jure@example.com"}), nil))

	require.Error(t, err)
	assert.NotErrorIs(t, err, rabbitmq_consumer.ErrDrop)
}
