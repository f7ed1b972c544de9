package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func validListing() Listing {
	return Listing{
		City:         "Ljubljana",
		Price:        250000,
		Type:         "apartment",
		Size:         72.5,
		Bedrooms:     intPtr(2),
		ContactName:  "Ana Novak",
		ContactEmail: "ana@example.com",
	}
}

func TestComposeMessage(t *testing.T) {
	msg := ComposeMessage(validListing(), "team@example.com")

	assert.Equal(t, "team@example.com", msg.To)
	assert.Equal(t, "New Property Listed in Ljubljana", msg.Subject)
	assert.Equal(t, "New Property Listed!\n\n"+
		"Location: Ljubljana\n"+
		"Price: €250000\n"+
		"Type: apartment\n"+
		"Size: 72.5m²\n"+
		"Bedrooms: 2\n"+
		"Contact: Ana Novak (ana@example.com)\n\n"+
		"View more details on our website.\n", msg.Body)
}

func TestComposeMessage_BedroomsFallback(t *testing.T) {
	for _, bedrooms := range []*int{nil, intPtr(0)} {
		l := validListing()
		l.Bedrooms = bedrooms
		assert.Contains(t, ComposeMessage(l, "x@example.com").Body, "Bedrooms: N/A\n")
	}
}

func TestListingValidate(t *testing.T) {
	require.NoError(t, validListing().Validate())

	l := validListing()
	l.City = " "
	l.ContactEmail = ""
	err := l.Validate()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedPayload))
	var malformed *MalformedPayloadError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, []string{"location.city", "contact.email"}, malformed.Missing)
}
