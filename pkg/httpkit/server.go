package httpkit

import (
	"context"
	"net/http"
	"time"

	"real-estate-platform/pkg/logging"
)

// Server обертка над http.Server с логированием старта и остановки
type Server struct {
	httpServer *http.Server
	logger     logging.LoggerPort
}

func NewServer(port string, handler http.Handler, logger logging.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start блокируется до остановки, после Stop возвращает http.ErrServerClosed
func (s *Server) Start() error {
	s.logger.Info("Starting REST server", logging.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
