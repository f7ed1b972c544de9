package notifier

import (
	"context"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/pkg/metrics"
	"real-estate-platform/services/properties-service/internal/core/domain"
)

// NoopNotifier для NOTIFIER=none: уведомления только пишутся в лог
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier { return &NoopNotifier{} }

func (NoopNotifier) NotifyPropertyCreated(ctx context.Context, property domain.Property) error {
	metrics.NotificationsDispatched.WithLabelValues("none", "skipped").Inc()
	contextkeys.LoggerFromContext(ctx).Debug("Notifications disabled, skipping", logging.Fields{
		"property_id": property.ID.String(),
	})
	return nil
}
