package usecase

import (
	"context"
	"fmt"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/services/notification-service/internal/core/domain"
	"real-estate-platform/services/notification-service/internal/core/port"
)

// SendPropertyNotificationUseCase пишет письмо о новом объявлении.
// Повторный вызов с тем же объявлением отправит письмо еще раз.
type SendPropertyNotificationUseCase struct {
	channel   port.EmailChannelPort
	recipient string
}

func NewSendPropertyNotificationUseCase(channel port.EmailChannelPort, recipient string) *SendPropertyNotificationUseCase {
	return &SendPropertyNotificationUseCase{
		channel:   channel,
		recipient: recipient,
	}
}

func (uc *SendPropertyNotificationUseCase) Execute(ctx context.Context, listing domain.Listing) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(logging.Fields{
		"use_case":    "SendPropertyNotification",
		"property_id": listing.ID,
	})

	if err := listing.Validate(); err != nil {
		ucLogger.Warn("Listing cannot be formatted into a notification", logging.Fields{"error": err.Error()})
		return err
	}

	msg := domain.ComposeMessage(listing, uc.recipient)
	if err := uc.channel.Send(ctx, msg); err != nil {
		ucLogger.Error("Failed to dispatch notification", err, logging.Fields{"subject": msg.Subject})
		return fmt.Errorf("%w: %w", domain.ErrNotificationDeliveryFailed, err)
	}

	ucLogger.Info("Notification sent", logging.Fields{"subject": msg.Subject})
	return nil
}
