package contracts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "PropertyCreatedEvent/1.0.0", generateKeyFromPath("events/property-created/v1.json"))
	assert.Equal(t, "Property/1.0.0", generateKeyFromPath("entities/property/v1.json"))
	assert.Equal(t, "", generateKeyFromPath("events/v1.json"))
}

func TestSchemasCompile(t *testing.T) {
	compiled, err := load()
	require.NoError(t, err)
	assert.Contains(t, compiled, PropertyV1)
	assert.Contains(t, compiled, PropertyCreatedEventV1)
}

func TestValidateProperty(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name: "minimal valid",
			body: `{"price":250000,"type":"house","location":{"city":"Berlin"},"size":120}`,
		},
		{
			name: "full valid",
			body: `{"price":1,"type":"apartment","location":{"city":"Paris","country":"France"},"size":45.5,
				"bedrooms":2,"bathrooms":1,"amenities":["balcony"],"contact":{"name":"Ann","email":"ann@example.com"},
				"listingDate":"2024-05-01T10:00:00Z"}`,
		},
		{
			name:      "missing price",
			body:      `{"type":"house","location":{"city":"Berlin"},"size":120}`,
			wantField: "(root)",
		},
		{
			name:      "type outside enum",
			body:      `{"price":1,"type":"castle","location":{"city":"Berlin"},"size":120}`,
			wantField: "type",
		},
		{
			name:      "blank city",
			body:      `{"price":1,"type":"house","location":{"city":"   "},"size":120}`,
			wantField: "location.city",
		},
		{
			name:      "negative size",
			body:      `{"price":1,"type":"house","location":{"city":"Berlin"},"size":-3}`,
			wantField: "size",
		},
		{
			name:      "fractional bedrooms",
			body:      `{"price":1,"type":"house","location":{"city":"Berlin"},"size":10,"bedrooms":1.5}`,
			wantField: "bedrooms",
		},
		{
			name:      "not json",
			body:      `{"price":`,
			wantField: "body is not valid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(PropertyV1, []byte(tt.body))
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ViolationError
			require.True(t, errors.As(err, &verr), "expected ViolationError, got %v", err)
			assert.Contains(t, verr.Error(), tt.wantField)
		})
	}
}

func TestValidateEventRequiresPersistedProperty(t *testing.T) {
	valid := `{"eventId":"7b0e4c1e-9a53-4f0e-8c3c-3a6f2a1d9b10","eventType":"PropertyCreatedEvent","eventVersion":"1.0.0",
		"occurredAt":"2024-05-01T10:00:00Z","property":{"id":"0f8d7c2a-1b3e-4f5a-9c6d-7e8f9a0b1c2d",
		"price":100,"type":"house","location":{"city":"Rome"},"size":80}}`
	assert.NoError(t, ValidateEvent("PropertyCreatedEvent", "1.0.0", []byte(valid)))

	withoutID := `{"eventId":"7b0e4c1e-9a53-4f0e-8c3c-3a6f2a1d9b10","eventType":"PropertyCreatedEvent","eventVersion":"1.0.0",
		"occurredAt":"2024-05-01T10:00:00Z","property":{"price":100,"type":"house","location":{"city":"Rome"},"size":80}}`
	assert.Error(t, ValidateEvent("PropertyCreatedEvent", "1.0.0", []byte(withoutID)))

	assert.Error(t, ValidateEvent("PropertyDeletedEvent", "1.0.0", []byte(valid)))
}
