package mongodb

import (
	"time"

	"real-estate-platform/services/properties-service/internal/core/domain"

	"github.com/google/uuid"
)

type locationDocument struct {
	City    string `bson:"city"`
	Country string `bson:"country,omitempty"`
}

type contactDocument struct {
	Name  string `bson:"name,omitempty"`
	Email string `bson:"email,omitempty"`
	Phone string `bson:"phone,omitempty"`
}

// propertyDocument объявление в коллекции properties, _id хранит UUID строкой
type propertyDocument struct {
	ID               string           `bson:"_id"`
	Price            float64          `bson:"price"`
	Type             string           `bson:"type"`
	Location         locationDocument `bson:"location"`
	Size             float64          `bson:"size"`
	PlotSize         *float64         `bson:"plotSize,omitempty"`
	Bedrooms         *int             `bson:"bedrooms,omitempty"`
	Bathrooms        *int             `bson:"bathrooms,omitempty"`
	Toilets          *int             `bson:"toilets,omitempty"`
	Floors           *int             `bson:"floors,omitempty"`
	ConstructionYear *int             `bson:"constructionYear,omitempty"`
	RenovationYear   *int             `bson:"renovationYear,omitempty"`
	EnergyRating     string           `bson:"energyRating,omitempty"`
	ParkingSpaces    *int             `bson:"parkingSpaces,omitempty"`
	Amenities        []string         `bson:"amenities,omitempty"`
	Contact          *contactDocument `bson:"contact,omitempty"`
	ListingDate      time.Time        `bson:"listingDate"`
}

func toDocument(p domain.Property) propertyDocument {
	doc := propertyDocument{
		ID:               p.ID.String(),
		Price:            p.Price,
		Type:             string(p.Type),
		Location:         locationDocument{City: p.Location.City, Country: p.Location.Country},
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
		doc.Contact = &contactDocument{Name: p.Contact.Name, Email: p.Contact.Email, Phone: p.Contact.Phone}
	}
	return doc
}

func (d propertyDocument) toDomain() (domain.Property, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Property{}, err
	}
	p := domain.Property{
		ID:               id,
		Price:            d.Price,
		Type:             domain.PropertyType(d.Type),
		Location:         domain.Location{City: d.Location.City, Country: d.Location.Country},
		Size:             d.Size,
		PlotSize:         d.PlotSize,
		Bedrooms:         d.Bedrooms,
		Bathrooms:        d.Bathrooms,
		Toilets:          d.Toilets,
		Floors:           d.Floors,
		ConstructionYear: d.ConstructionYear,
		RenovationYear:   d.RenovationYear,
		EnergyRating:     d.EnergyRating,
		ParkingSpaces:    d.ParkingSpaces,
		Amenities:        d.Amenities,
		ListingDate:      d.ListingDate.UTC(),
	}
	if d.Contact != nil {
		p.Contact = &domain.Contact{Name: d.Contact.Name, Email: d.Contact.Email, Phone: d.Contact.Phone}
	}
	return p, nil
}
