package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"real-estate-platform/pkg/httpkit"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/services/api-gateway/internal/configs"
	"real-estate-platform/services/api-gateway/internal/server"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// App основная структура приложения
type App struct {
	config       *configs.Config
	httpServer   *httpkit.Server
	logger       logging.LoggerPort
	fluentClient *fluent.Fluent
}

// NewApp создает и настраивает все компоненты приложения
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	baseLogger, fluentClient, err := logging.Setup(appConfig.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loggers: %w", err)
	}
	appLogger := baseLogger.WithFields(logging.Fields{"component": "app"})

	httpServer, err := server.NewServer(appConfig, baseLogger)
	if err != nil {
		appLogger.Error("Failed to configure gateway routes", err, nil)
		return nil, err
	}
	appLogger.Debug("Gateway routes configured", logging.Fields{
		"properties_service":   appConfig.PropertiesServiceURL,
		"image_service":        appConfig.ImageServiceURL,
		"notification_service": appConfig.NotificationServiceURL,
		"frontend_dir":         appConfig.FrontendDir,
	})

	return &App{
		config:       appConfig,
		httpServer:   httpServer,
		logger:       appLogger,
		fluentClient: fluentClient,
	}, nil
}

// Run запускает приложение и управляет его жизненным циклом
func (a *App) Run() error {
	errorsCh := make(chan error, 1)
	go func() {
		if err := a.httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- fmt.Errorf("failed to start API Gateway: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quit:
		a.logger.Debug("API Gateway is shutting down...", logging.Fields{"signal": sig.String()})
	case runErr = <-errorsCh:
		a.logger.Error("API Gateway failed", runErr, nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("API Gateway shutdown failed", err, nil)
	}

	a.logger.Info("API Gateway shut down gracefully.", nil)
	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}

	return runErr
}
