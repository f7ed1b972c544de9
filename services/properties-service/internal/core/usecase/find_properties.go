package usecase

import (
	"context"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/services/properties-service/internal/core/domain"
	"real-estate-platform/services/properties-service/internal/core/filters"
	"real-estate-platform/services/properties-service/internal/core/port"
)

type FindPropertiesUseCase struct {
	storage port.PropertyStoragePort
}

func NewFindPropertiesUseCase(storage port.PropertyStoragePort) *FindPropertiesUseCase {
	return &FindPropertiesUseCase{storage: storage}
}

// Execute строит предикат из параметров и возвращает все подходящие объявления.
// Повторных попыток при ошибке хранилища нет.
func (uc *FindPropertiesUseCase) Execute(ctx context.Context, req filters.Request) ([]domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(logging.Fields{
		"use_case": "FindProperties",
	})

	predicate, err := filters.Build(req)
	if err != nil {
		ucLogger.Warn("Rejected filter request", logging.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Debug("Use case started", logging.Fields{"predicate": predicate})

	properties, err := uc.storage.Find(ctx, predicate)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, classifyStorageError(err)
	}

	ucLogger.Info("Use case finished successfully", logging.Fields{"total_found": len(properties)})
	return properties, nil
}
