package usecase

import (
	"errors"
	"fmt"

	"real-estate-platform/services/image-service/internal/core/domain"

	"github.com/google/uuid"
)

func classifyStorageError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &domain.InvalidParameterError{Field: field, Value: raw}
	}
	return id, nil
}

