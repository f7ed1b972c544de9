package usecases_port

import (
	"context"
	"encoding/json"

	"real-estate-platform/services/properties-service/internal/core/domain"
)

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, payload json.RawMessage) (*domain.Property, error)
}
