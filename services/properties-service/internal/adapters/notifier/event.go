package notifier

import (
	"time"

	"real-estate-platform/pkg/events"
	"real-estate-platform/services/properties-service/internal/core/domain"

	"github.com/google/uuid"
)

// toEventProperty переводит доменное объявление в DTO события
func toEventProperty(p domain.Property) events.Property {
	out := events.Property{
		ID:               p.ID.String(),
		Price:            p.Price,
		Type:             string(p.Type),
		Location:         events.Location{City: p.Location.City, Country: p.Location.Country},
		Size:             p.Size,
		PlotSize:         p.PlotSize,
		Bedrooms:         p.Bedrooms,
		Bathrooms:        p.Bathrooms,
		Toilets:          p.Toilets,
		Floors:           p.Floors,
		ConstructionYear: p.ConstructionYear,
		RenovationYear:   p.RenovationYear,
		EnergyRating:     p.EnergyRating,
		ParkingSpaces:    p.ParkingSpaces,
		Amenities:        p.Amenities,
		ListingDate:      p.ListingDate,
	}
	if p.Contact != nil {
		out.Contact = &events.Contact{Name: p.Contact.Name, Email: p.Contact.Email, Phone: p.Contact.Phone}
	}
	return out
}

func newPropertyCreatedEvent(p domain.Property, traceID string, now time.Time) events.PropertyCreatedEvent {
	return events.PropertyCreatedEvent{
		EventID:      uuid.NewString(),
		EventType:    events.PropertyCreatedType,
		EventVersion: events.PropertyCreatedVersion,
		OccurredAt:   now.UTC(),
		TraceID:      traceID,
		Property:     toEventProperty(p),
	}
}
