package usecase

import (
	"context"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/services/image-service/internal/core/domain"
	"real-estate-platform/services/image-service/internal/core/port"
)

type ListImagesUseCase struct {
	repo port.ImageRepositoryPort
}

func NewListImagesUseCase(repo port.ImageRepositoryPort) *ListImagesUseCase {
	return &ListImagesUseCase{repo: repo}
}

func (uc *ListImagesUseCase) Execute(ctx context.Context, rawPropertyID string) ([]domain.Image, error) {
	propertyID, err := parseID("propertyId", rawPropertyID)
	if err != nil {
		return nil, err
	}

	images, err := uc.repo.FindByProperty(ctx, propertyID)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to list images", err, logging.Fields{
			"use_case":    "ListImages",
			"property_id": rawPropertyID,
		})
		return nil, classifyStorageError(err)
	}
	if images == nil {
		images = []domain.Image{}
	}
	return images, nil
}
