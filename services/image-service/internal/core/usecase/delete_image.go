package usecase

import (
	"context"
	"errors"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/services/image-service/internal/core/domain"
	"real-estate-platform/services/image-service/internal/core/port"
)

// DeleteImageUseCase удаляет запись, затем файл. Ошибка удаления файла только логируется.
type DeleteImageUseCase struct {
	repo  port.ImageRepositoryPort
	blobs port.BlobStorePort
}

func NewDeleteImageUseCase(repo port.ImageRepositoryPort, blobs port.BlobStorePort) *DeleteImageUseCase {
	return &DeleteImageUseCase{repo: repo, blobs: blobs}
}

func (uc *DeleteImageUseCase) Execute(ctx context.Context, rawID string) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(logging.Fields{
		"use_case": "DeleteImage",
		"image_id": rawID,
	})

	id, err := parseID("id", rawID)
	if err != nil {
		return err
	}

	image, err := uc.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			ucLogger.Info("Image not found", nil)
			return err
		}
		ucLogger.Error("Failed to delete image record", err, nil)
		return classifyStorageError(err)
	}

	if err := uc.blobs.Delete(ctx, image.Filename); err != nil {
		ucLogger.Warn("Image record deleted but file removal failed", logging.Fields{
			"filename": image.Filename,
			"error":    err.Error(),
		})
	}

	ucLogger.Info("Image deleted", logging.Fields{"filename": image.Filename})
	return nil
}
