package rest

import (
	"net/http"
	"time"

	"real-estate-platform/pkg/httpkit"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const serviceName = "notification-service"

// RouterConfig то, что роутеру нужно кроме обработчиков
type RouterConfig struct {
	Version        string
	StartedAt      time.Time
	AllowedOrigins []string
	// Probe проверяет брокер; nil, если сервис работает только по HTTP
	Probe httpkit.Probe
}

func NewRouter(handlers *NotificationHandlers, cfg RouterConfig, baseLogger logging.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(
		httpkit.LoggerMiddleware(baseLogger),
		httpkit.MetricsMiddleware(serviceName),
		middleware.Recoverer,
		httpkit.CORS(cfg.AllowedOrigins),
	)

	health := httpkit.HealthHandler(cfg.Version, cfg.StartedAt, cfg.Probe)

	r.Get("/", httpkit.RootHandler("Real Estate Notifications"))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/health", health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health)
		r.Post("/notifications/property", handlers.SendPropertyNotification)
	})

	return r
}

func NewServer(port string, handlers *NotificationHandlers, cfg RouterConfig, baseLogger logging.LoggerPort) *httpkit.Server {
	return httpkit.NewServer(port, NewRouter(handlers, cfg, baseLogger), baseLogger)
}
