// Package propertydoc общая для хранилищ проверка тела объявления по схеме Property.
package propertydoc

import (
	"encoding/json"
	"errors"
	"time"

	"real-estate-platform/pkg/contracts"
	"real-estate-platform/services/properties-service/internal/core/domain"

	"github.com/google/uuid"
)

// Decode проверяет тело по схеме и превращает его в новое объявление:
// присваивает id, listingDate по умолчанию равен now.
// Несоответствие схеме возвращается как *domain.ValidationError.
func Decode(payload []byte, now time.Time) (*domain.Property, error) {
	if err := contracts.Validate(contracts.PropertyV1, payload); err != nil {
		var verr *contracts.ViolationError
		if errors.As(err, &verr) {
			return nil, &domain.ValidationError{Details: verr.Details}
		}
		return nil, err
	}

	var property domain.Property
	if err := json.Unmarshal(payload, &property); err != nil {
		return nil, &domain.ValidationError{Details: []string{err.Error()}}
	}

	property.ID = uuid.New()
	if property.ListingDate.IsZero() {
		property.ListingDate = now.UTC()
	}
	return &property, nil
}
