package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/pkg/metrics"
	"real-estate-platform/services/image-service/internal/core/domain"
	"real-estate-platform/services/image-service/internal/core/port"

	"github.com/google/uuid"
)

const thumbnailsPrefix = "thumbnails/"

// UploadImagesUseCase проверяет пакет файлов, сохраняет принятые и создает записи
type UploadImagesUseCase struct {
	repo  port.ImageRepositoryPort
	blobs port.BlobStorePort

	now      func() time.Time
	randomID func() int
}

func NewUploadImagesUseCase(repo port.ImageRepositoryPort, blobs port.BlobStorePort) *UploadImagesUseCase {
	return &UploadImagesUseCase{
		repo:     repo,
		blobs:    blobs,
		now:      time.Now,
		randomID: func() int { return rand.IntN(1_000_000_000) },
	}
}

// storedName images-<unixmillis>-<random>.<ext>
func (uc *UploadImagesUseCase) storedName(ext string) string {
	return fmt.Sprintf("images-%d-%d.%s", uc.now().UnixMilli(), uc.randomID(), ext)
}

func (uc *UploadImagesUseCase) Execute(ctx context.Context, rawPropertyID string, files []domain.UploadFile) (*domain.UploadResult, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(logging.Fields{
		"use_case":    "UploadImages",
		"property_id": rawPropertyID,
		"file_count":  len(files),
	})

	propertyID, err := parseID("propertyId", rawPropertyID)
	if err != nil {
		return nil, err
	}

	if len(files) > domain.MaxFilesPerUpload {
		ucLogger.Warn("Batch rejected: too many files", nil)
		metrics.ImagesProcessed.WithLabelValues("too_many_files").Add(float64(len(files)))
		return nil, &domain.TooManyFilesError{Count: len(files)}
	}
	if len(files) == 0 {
		return nil, domain.ErrNoFiles
	}

	result := &domain.UploadResult{
		Images:   []domain.Image{},
		Rejected: []domain.RejectedFile{},
	}

	for _, file := range files {
		if reason := domain.CheckFile(file); reason != "" {
			metrics.ImagesProcessed.WithLabelValues(string(reason)).Inc()
			result.Rejected = append(result.Rejected, domain.RejectedFile{OriginalName: file.OriginalName, Reason: reason})
			continue
		}

		image, err := uc.store(ctx, propertyID, file)
		if err != nil {
			ucLogger.Error("Failed to store image", err, logging.Fields{"original_name": file.OriginalName})
			return nil, classifyStorageError(err)
		}
		metrics.ImagesProcessed.WithLabelValues("accepted").Inc()
		result.Images = append(result.Images, *image)
	}

	if len(result.Images) == 0 {
		ucLogger.Warn("No file in the batch was accepted", logging.Fields{"rejected": len(result.Rejected)})
		return nil, &domain.RejectedFilesError{Rejected: result.Rejected}
	}

	ucLogger.Info("Images uploaded", logging.Fields{
		"accepted": len(result.Images),
		"rejected": len(result.Rejected),
	})
	return result, nil
}

func (uc *UploadImagesUseCase) store(ctx context.Context, propertyID uuid.UUID, file domain.UploadFile) (*domain.Image, error) {
	name := uc.storedName(file.Extension())

	if err := uc.blobs.Put(ctx, name, file.MimeType, file.Content, file.Size); err != nil {
		return nil, fmt.Errorf("failed to write blob %s: %w", name, err)
	}

	image := domain.Image{
		ID:           uuid.New(),
		PropertyID:   propertyID,
		Filename:     name,
		OriginalName: file.OriginalName,
		MimeType:     file.MimeType,
		Size:         file.Size,
		URL:          uc.blobs.URL(name),
		ThumbnailURL: uc.blobs.URL(thumbnailsPrefix + name),
		CreatedAt:    uc.now().UTC(),
	}

	if err := uc.repo.Save(ctx, image); err != nil {
		// запись не создана, файл без записи не нужен
		if delErr := uc.blobs.Delete(ctx, name); delErr != nil {
			contextkeys.LoggerFromContext(ctx).Warn("Failed to remove orphaned blob", logging.Fields{
				"filename": name,
				"error":    delErr.Error(),
			})
		}
		return nil, fmt.Errorf("failed to save image record: %w", err)
	}
	return &image, nil
}
