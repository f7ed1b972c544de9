package channel

import (
	"context"

	"real-estate-platform/pkg/logging"
	"real-estate-platform/services/notification-service/internal/core/domain"
)

// LogChannel пишет письмо в лог вместо отправки, для локального запуска
type LogChannel struct {
	logger logging.LoggerPort
}

func NewLogChannel(logger logging.LoggerPort) *LogChannel {
	return &LogChannel{logger: logger.WithFields(logging.Fields{"component": "LogChannel"})}
}

func (c *LogChannel) Send(_ context.Context, msg domain.Message) error {
	c.logger.Info("Notification email (not sent)", logging.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
		"body":    msg.Body,
	})
	return nil
}
