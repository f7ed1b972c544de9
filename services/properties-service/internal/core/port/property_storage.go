package port

import (
	"context"
	"encoding/json"

	"real-estate-platform/services/properties-service/internal/core/domain"

	"github.com/google/uuid"
)

// PropertyStoragePort хранилище объявлений.
// Create проверяет тело по схеме Property и возвращает *domain.ValidationError при несоответствии.
// Delete возвращает domain.ErrNotFound, если объявления нет.
type PropertyStoragePort interface {
	Find(ctx context.Context, predicate domain.Predicate) ([]domain.Property, error)
	Create(ctx context.Context, payload json.RawMessage) (*domain.Property, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Ping(ctx context.Context) error
}
