package port

import (
	"context"

	"real-estate-platform/services/image-service/internal/core/domain"

	"github.com/google/uuid"
)

// ImageRepositoryPort записи о изображениях.
// Delete возвращает удаленную запись или domain.ErrNotFound.
type ImageRepositoryPort interface {
	Save(ctx context.Context, image domain.Image) error
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]domain.Image, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Image, error)
	Ping(ctx context.Context) error
}
