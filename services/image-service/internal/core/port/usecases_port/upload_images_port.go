package usecases_port

import (
	"context"

	"real-estate-platform/services/image-service/internal/core/domain"
)

type UploadImagesUseCase interface {
	Execute(ctx context.Context, rawPropertyID string, files []domain.UploadFile) (*domain.UploadResult, error)
}
