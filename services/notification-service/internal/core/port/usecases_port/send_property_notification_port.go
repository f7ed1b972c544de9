package usecases_port

import (
	"context"

	"real-estate-platform/services/notification-service/internal/core/domain"
)

type SendPropertyNotificationUseCase interface {
	Execute(ctx context.Context, listing domain.Listing) error
}
