// Package payload переводит входящие объявления в domain.Listing.
package payload

import (
	"real-estate-platform/pkg/events"
	"real-estate-platform/services/notification-service/internal/core/domain"
)

// ToListing берет из объявления поля для письма; без контакта имя и email пустые
func ToListing(p events.Property) domain.Listing {
	l := domain.Listing{
		ID:       p.ID,
		City:     p.Location.City,
		Price:    p.Price,
		Type:     p.Type,
		Size:     p.Size,
		Bedrooms: p.Bedrooms,
	}
	if p.Contact != nil {
		l.ContactName = p.Contact.Name
		l.ContactEmail = p.Contact.Email
	}
	return l
}
