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

const serviceName = "properties-service"

// RouterConfig то, что роутеру нужно кроме обработчиков
type RouterConfig struct {
	Version        string
	StartedAt      time.Time
	AllowedOrigins []string
	Probe          httpkit.Probe
}

// NewRouter регистрирует маршруты без префикса и под /api
func NewRouter(handlers *PropertyHandlers, cfg RouterConfig, baseLogger logging.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(
		httpkit.LoggerMiddleware(baseLogger),
		httpkit.MetricsMiddleware(serviceName),
		middleware.Recoverer,
		httpkit.CORS(cfg.AllowedOrigins),
	)

	health := httpkit.HealthHandler(cfg.Version, cfg.StartedAt, cfg.Probe)
	routes := func(r chi.Router) {
		r.Get("/properties", handlers.FindProperties)
		r.Post("/properties", handlers.CreateProperty)
		r.Delete("/properties/{id}", handlers.DeleteProperty)
		r.Get("/health", health)
	}

	r.Get("/", httpkit.RootHandler("Real Estate Properties"))
	r.Handle("/metrics", metrics.Handler())
	r.Group(routes)
	r.Route("/api", routes)

	return r
}

func NewServer(port string, handlers *PropertyHandlers, cfg RouterConfig, baseLogger logging.LoggerPort) *httpkit.Server {
	return httpkit.NewServer(port, NewRouter(handlers, cfg, baseLogger), baseLogger)
}
