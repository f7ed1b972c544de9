package usecase

import (
	"errors"
	"fmt"

	"real-estate-platform/services/properties-service/internal/core/domain"
)

// classifyStorageError оставляет доменные ошибки хранилища как есть,
// остальные помечает как domain.ErrStorageUnavailable
func classifyStorageError(err error) error {
	if errors.Is(err, domain.ErrValidationFailed) || errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
}
