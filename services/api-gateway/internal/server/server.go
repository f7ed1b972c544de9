package server

import (
	"fmt"
	"net/http"
	"time"

	"real-estate-platform/pkg/httpkit"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/pkg/metrics"
	"real-estate-platform/services/api-gateway/internal/configs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const serviceName = "api-gateway"

// NewRouter собирает главный роутер: /api/* уходит в сервисы, остальное - фронтенд
func NewRouter(cfg *configs.Config, startedAt time.Time, baseLogger logging.LoggerPort) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(
		middleware.RealIP,
		httpkit.LoggerMiddleware(baseLogger),
		httpkit.MetricsMiddleware(serviceName),
		middleware.Recoverer,
		httpkit.CORS(cfg.AllowedOrigins),
	)

	upstreams := []struct {
		prefix string
		url    string
	}{
		// /api/properties/* -> properties-service/api/properties/*
		{prefix: "/api/properties", url: cfg.PropertiesServiceURL},
		// /api/images/* -> image-service/api/images/*, включая загруженные файлы
		{prefix: "/api/images", url: cfg.ImageServiceURL},
		{prefix: "/api/notifications", url: cfg.NotificationServiceURL},
	}
	for _, u := range upstreams {
		proxy, err := CreateProxy(u.url)
		if err != nil {
			return nil, fmt.Errorf("proxy for %s: %w", u.prefix, err)
		}
		r.Handle(u.prefix, proxy)
		r.Handle(u.prefix+"/*", proxy)
	}

	r.Get("/health", httpkit.HealthHandler(cfg.Version, startedAt, nil))
	r.Handle("/metrics", metrics.Handler())

	if cfg.FrontendDir != "" {
		r.Handle("/*", frontendHandler(cfg.FrontendDir))
	} else {
		r.Get("/", httpkit.RootHandler("Real Estate Gateway"))
	}

	return r, nil
}

func NewServer(cfg *configs.Config, baseLogger logging.LoggerPort) (*httpkit.Server, error) {
	router, err := NewRouter(cfg, time.Now(), baseLogger)
	if err != nil {
		return nil, err
	}
	return httpkit.NewServer(cfg.Port, router, baseLogger), nil
}
