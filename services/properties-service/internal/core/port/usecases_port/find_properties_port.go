package usecases_port

import (
	"context"

	"real-estate-platform/services/properties-service/internal/core/domain"
	"real-estate-platform/services/properties-service/internal/core/filters"
)

type FindPropertiesUseCase interface {
	Execute(ctx context.Context, req filters.Request) ([]domain.Property, error)
}
