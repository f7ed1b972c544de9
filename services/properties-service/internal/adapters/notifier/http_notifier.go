package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/pkg/metrics"
	"real-estate-platform/services/properties-service/internal/core/domain"
)

const notificationPath = "/api/notifications/property"

// HTTPNotifier вызывает HTTP-триггер сервиса уведомлений
type HTTPNotifier struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPNotifier(baseURL string, httpClient *http.Client) (*HTTPNotifier, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("http notifier: base URL cannot be empty")
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPNotifier{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}, nil
}

func (n *HTTPNotifier) NotifyPropertyCreated(ctx context.Context, property domain.Property) error {
	clientLogger := contextkeys.LoggerFromContext(ctx).WithFields(logging.Fields{
		"component":   "HTTPNotifier",
		"property_id": property.ID.String(),
	})

	body, err := json.Marshal(toEventProperty(property))
	if err != nil {
		metrics.NotificationsDispatched.WithLabelValues("http", "failed").Inc()
		return fmt.Errorf("http notifier: failed to marshal property: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+notificationPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("http notifier: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set(contextkeys.TraceIDHeader, traceID)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		metrics.NotificationsDispatched.WithLabelValues("http", "failed").Inc()
		clientLogger.Error("Failed to perform request to notification-service", err, nil)
		return fmt.Errorf("%w: %w", domain.ErrNotificationDeliveryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("notification service returned status %d, body: %s", resp.StatusCode, string(bodyBytes))
		metrics.NotificationsDispatched.WithLabelValues("http", "failed").Inc()
		clientLogger.Error("Received non-OK response from notification-service", err, logging.Fields{"status_code": resp.StatusCode})
		return fmt.Errorf("%w: %w", domain.ErrNotificationDeliveryFailed, err)
	}

	metrics.NotificationsDispatched.WithLabelValues("http", "sent").Inc()
	clientLogger.Info("Notification request accepted", nil)
	return nil
}
