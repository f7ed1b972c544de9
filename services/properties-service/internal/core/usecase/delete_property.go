package usecase

import (
	"context"
	"errors"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/services/properties-service/internal/core/domain"
	"real-estate-platform/services/properties-service/internal/core/port"

	"github.com/google/uuid"
)

type DeletePropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewDeletePropertyUseCase(storage port.PropertyStoragePort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{storage: storage}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, rawID string) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(logging.Fields{
		"use_case":    "DeleteProperty",
		"property_id": rawID,
	})

	id, err := uuid.Parse(rawID)
	if err != nil {
		return &domain.InvalidParameterError{Field: "id", Value: rawID}
	}

	if err := uc.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			ucLogger.Info("Property not found", nil)
			return err
		}
		ucLogger.Error("Storage returned an error during delete", err, nil)
		return classifyStorageError(err)
	}

	ucLogger.Info("Property deleted", nil)
	return nil
}
