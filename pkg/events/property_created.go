// Package events описывает сообщения, которыми обмениваются сервисы платформы.
package events

import "time"

const (
	PropertyCreatedType    = "PropertyCreatedEvent"
	PropertyCreatedVersion = "1.0.0"

	// RoutingKeyPropertyCreated ключ маршрутизации в обменнике PropertiesExchange
	RoutingKeyPropertyCreated = "property.created"
	PropertiesExchange        = "properties_exchange"
	QueuePropertyCreated      = "property_created_queue"

	FinalDLXExchange   = "final_dlx_exchange"
	FinalDLQ           = "final_dead_letter_queue"
	FinalDLQRoutingKey = "dead"

	HeaderTraceID      = "x-trace-id"
	HeaderEventType    = "x-event-type"
	HeaderEventVersion = "x-event-version"
)

// Location адрес объекта
type Location struct {
	City    string `json:"city"`
	Country string `json:"country,omitempty"`
}

// Contact контакт продавца
type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Property объявление в том виде, в каком оно передается в событиях
type Property struct {
	ID               string    `json:"id"`
	Price            float64   `json:"price"`
	Type             string    `json:"type"`
	Location         Location  `json:"location"`
	Size             float64   `json:"size"`
	PlotSize         *float64  `json:"plotSize,omitempty"`
	Bedrooms         *int      `json:"bedrooms,omitempty"`
	Bathrooms        *int      `json:"bathrooms,omitempty"`
	Toilets          *int      `json:"toilets,omitempty"`
	Floors           *int      `json:"floors,omitempty"`
	ConstructionYear *int      `json:"constructionYear,omitempty"`
	RenovationYear   *int      `json:"renovationYear,omitempty"`
	EnergyRating     string    `json:"energyRating,omitempty"`
	ParkingSpaces    *int      `json:"parkingSpaces,omitempty"`
	Amenities        []string  `json:"amenities,omitempty"`
	Contact          *Contact  `json:"contact,omitempty"`
	ListingDate      time.Time `json:"listingDate"`
}

// PropertyCreatedEvent публикуется после сохранения объявления
type PropertyCreatedEvent struct {
	EventID      string    `json:"eventId"`
	EventType    string    `json:"eventType"`
	EventVersion string    `json:"eventVersion"`
	OccurredAt   time.Time `json:"occurredAt"`
	TraceID      string    `json:"traceId,omitempty"`
	Property     Property  `json:"property"`
}
