package propertydoc

import (
	"errors"
	"testing"
	"time"

	"real-estate-platform/services/properties-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAssignsIdentityAndListingDate(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	payload := `{"price":250000,"type":"house","location":{"city":"Berlin","country":"Germany"},"size":120,
		"bedrooms":3,"amenities":["garden","garage"],"contact":{"name":"Anna","email":"anna@example.com"},
		"id":"11111111-1111-1111-1111-111111111111"}`

	property, err := Decode([]byte(payload), now)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, property.ID)
	assert.NotEqual(t, "11111111-1111-1111-1111-111111111111", property.ID.String(), "client ids are replaced")
	assert.Equal(t, now, property.ListingDate)
	assert.Equal(t, domain.PropertyTypeHouse, property.Type)
	require.NotNil(t, property.Bedrooms)
	assert.Equal(t, 3, *property.Bedrooms)
	assert.Equal(t, []string{"garden", "garage"}, property.Amenities)
	assert.Equal(t, "anna@example.com", property.Contact.Email)
}

func TestDecodeKeepsProvidedListingDate(t *testing.T) {
	payload := `{"price":1,"type":"apartment","location":{"city":"Oslo"},"size":30,"listingDate":"2023-01-02T03:04:05Z"}`

	property, err := Decode([]byte(payload), time.Now())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC), property.ListingDate.UTC())
}

func TestDecodeRejectsSchemaViolations(t *testing.T) {
	for name, payload := range map[string]string{
		"missing city":   `{"price":1,"type":"house","location":{},"size":10}`,
		"negative price": `{"price":-1,"type":"house","location":{"city":"Rome"},"size":10}`,
		"unknown type":   `{"price":1,"type":"castle","location":{"city":"Rome"},"size":10}`,
		"string size":    `{"price":1,"type":"house","location":{"city":"Rome"},"size":"big"}`,
		"broken json":    `{"price":1,`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(payload), time.Now())
			require.Error(t, err)

			var verr *domain.ValidationError
			assert.True(t, errors.As(err, &verr))
			assert.ErrorIs(t, err, domain.ErrValidationFailed)
			assert.NotEmpty(t, verr.Details)
		})
	}
}
