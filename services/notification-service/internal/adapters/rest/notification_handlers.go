package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/events"
	"real-estate-platform/pkg/httpkit"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/pkg/metrics"
	"real-estate-platform/services/notification-service/internal/adapters/payload"
	"real-estate-platform/services/notification-service/internal/core/domain"
	"real-estate-platform/services/notification-service/internal/core/port/usecases_port"
)

const (
	metricsSource   = "http"
	maxPayloadBytes = 1 << 20
)

type NotificationHandlers struct {
	sendUC usecases_port.SendPropertyNotificationUseCase
}

func NewNotificationHandlers(sendUC usecases_port.SendPropertyNotificationUseCase) *NotificationHandlers {
	return &NotificationHandlers{sendUC: sendUC}
}

// SendPropertyNotification POST /api/notifications/property
func (h *NotificationHandlers) SendPropertyNotification(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var property events.Property
	r.Body = http.MaxBytesReader(w, r.Body, maxPayloadBytes)
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		metrics.NotificationsSent.WithLabelValues(metricsSource, "malformed").Inc()
		logger.Warn("Notification payload is not a property", logging.Fields{"error": err.Error()})
		httpkit.WriteErrorBody(w, http.StatusBadRequest, httpkit.ErrorBody{
			Error:  "Please provide property information in the request body",
			Reason: "MALFORMED_PAYLOAD",
		})
		return
	}

	err := h.sendUC.Execute(r.Context(), payload.ToListing(property))
	var malformed *domain.MalformedPayloadError
	switch {
	case err == nil:
		metrics.NotificationsSent.WithLabelValues(metricsSource, "sent").Inc()
		httpkit.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Notification sent successfully"})
	case errors.As(err, &malformed):
		metrics.NotificationsSent.WithLabelValues(metricsSource, "malformed").Inc()
		httpkit.WriteErrorBody(w, http.StatusBadRequest, httpkit.ErrorBody{
			Error:   "Property is missing fields required for the notification",
			Reason:  "MALFORMED_PAYLOAD",
			Details: malformed.Missing,
		})
	default:
		metrics.NotificationsSent.WithLabelValues(metricsSource, "failed").Inc()
		logger.Error("Failed to send notification", err, nil)
		httpkit.WriteErrorBody(w, http.StatusBadGateway, httpkit.ErrorBody{
			Error:  "Failed to send notification",
			Reason: "NOTIFICATION_DELIVERY_FAILED",
		})
	}
}
