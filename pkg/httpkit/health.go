package httpkit

import (
	"context"
	"net/http"
	"time"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/logging"
)

// Probe проверяет доступность зависимости, например хранилища
type Probe func(ctx context.Context) error

// HealthResponse ответ /health
type HealthResponse struct {
	Status    string  `json:"status"`
	Database  string  `json:"database"`
	Uptime    float64 `json:"uptime"`
	Version   string  `json:"version"`
	Timestamp string  `json:"timestamp"`
}

// HealthHandler отвечает 200 при доступном хранилище и 503 иначе
func HealthHandler(version string, startedAt time.Time, probe Probe) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		resp := HealthResponse{
			Status:    "OK",
			Database:  "connected",
			Uptime:    time.Since(startedAt).Seconds(),
			Version:   version,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}

		if probe != nil {
			if err := probe(ctx); err != nil {
				contextkeys.LoggerFromContext(r.Context()).Warn("Health probe failed", logging.Fields{"error": err.Error()})
				resp.Status = "ERROR"
				resp.Database = "disconnected"
				RespondWithJSON(w, http.StatusServiceUnavailable, resp)
				return
			}
		}
		RespondWithJSON(w, http.StatusOK, resp)
	}
}

// RootHandler отвечает {"message": "<name> API is running"}
func RootHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondWithJSON(w, http.StatusOK, map[string]string{"message": name + " API is running"})
	}
}
