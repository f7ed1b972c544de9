package usecases_port

import (
	"context"

	"real-estate-platform/services/image-service/internal/core/domain"
)

type ListImagesUseCase interface {
	Execute(ctx context.Context, rawPropertyID string) ([]domain.Image, error)
}
