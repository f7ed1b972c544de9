package port

import (
	"context"

	"real-estate-platform/services/properties-service/internal/core/domain"
)

// PropertyNotifierPort сообщает о новом объявлении сервису уведомлений
type PropertyNotifierPort interface {
	NotifyPropertyCreated(ctx context.Context, property domain.Property) error
}
