package domain

import (
	"time"

	"github.com/google/uuid"
)

// PropertyType тип объекта недвижимости
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeCommercial PropertyType = "commercial"
)

// PropertyTypes допустимые значения PropertyType
var PropertyTypes = []PropertyType{PropertyTypeApartment, PropertyTypeHouse, PropertyTypeCommercial}

func (t PropertyType) Valid() bool {
	for _, known := range PropertyTypes {
		if t == known {
			return true
		}
	}
	return false
}

type Location struct {
	City    string `json:"city"`
	Country string `json:"country,omitempty"`
}

type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Property объявление о продаже. Необязательные числовые поля - указатели,
// чтобы отличать "не указано" от нуля.
type Property struct {
	ID               uuid.UUID    `json:"id"`
	Price            float64      `json:"price"`
	Type             PropertyType `json:"type"`
	Location         Location     `json:"location"`
	Size             float64      `json:"size"`
	PlotSize         *float64     `json:"plotSize,omitempty"`
	Bedrooms         *int         `json:"bedrooms,omitempty"`
	Bathrooms        *int         `json:"bathrooms,omitempty"`
	Toilets          *int         `json:"toilets,omitempty"`
	Floors           *int         `json:"floors,omitempty"`
	ConstructionYear *int         `json:"constructionYear,omitempty"`
	RenovationYear   *int         `json:"renovationYear,omitempty"`
	EnergyRating     string       `json:"energyRating,omitempty"`
	ParkingSpaces    *int         `json:"parkingSpaces,omitempty"`
	Amenities        []string     `json:"amenities,omitempty"`
	Contact          *Contact     `json:"contact,omitempty"`
	ListingDate      time.Time    `json:"listingDate"`
}
