package rest

import (
	"net/http"
	"strings"
	"time"

	"real-estate-platform/pkg/httpkit"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const serviceName = "image-service"

type RouterConfig struct {
	Version        string
	StartedAt      time.Time
	AllowedOrigins []string
	Probe          httpkit.Probe

	// Uploads отдает загруженные файлы под UploadsPrefix; nil для S3
	Uploads       http.Handler
	UploadsPrefix string
}

func NewRouter(handlers *ImageHandlers, cfg RouterConfig, baseLogger logging.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(
		httpkit.LoggerMiddleware(baseLogger),
		httpkit.MetricsMiddleware(serviceName),
		middleware.Recoverer,
		httpkit.CORS(cfg.AllowedOrigins),
	)

	health := httpkit.HealthHandler(cfg.Version, cfg.StartedAt, cfg.Probe)
	routes := func(r chi.Router) {
		r.Get("/images/property/{id}", handlers.ListImages)
		r.Post("/images/upload/{id}", handlers.UploadImages)
		r.Delete("/images/{id}", handlers.DeleteImage)
		r.Get("/images/health", health)
		r.Get("/health", health)
	}

	r.Get("/", httpkit.RootHandler("Real Estate Images"))
	r.Handle("/metrics", metrics.Handler())
	r.Group(routes)
	r.Route("/api", routes)

	if cfg.Uploads != nil {
		prefix := "/" + strings.Trim(cfg.UploadsPrefix, "/")
		r.Handle(prefix+"/*", cfg.Uploads)
	}

	return r
}

func NewServer(port string, handlers *ImageHandlers, cfg RouterConfig, baseLogger logging.LoggerPort) *httpkit.Server {
	return httpkit.NewServer(port, NewRouter(handlers, cfg, baseLogger), baseLogger)
}
