package port

import (
	"context"

	"real-estate-platform/services/notification-service/internal/core/domain"
)

// EmailChannelPort отправляет готовое письмо
type EmailChannelPort interface {
	Send(ctx context.Context, msg domain.Message) error
}
