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

	"real-estate-platform/pkg/events"
	"real-estate-platform/pkg/httpkit"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/pkg/mongodb"
	"real-estate-platform/pkg/postgres"
	"real-estate-platform/pkg/rabbitmq/rabbitmq_common"
	"real-estate-platform/pkg/rabbitmq/rabbitmq_producer"
	mongo_adapter "real-estate-platform/services/properties-service/internal/adapters/mongodb"
	"real-estate-platform/services/properties-service/internal/adapters/notifier"
	postgres_adapter "real-estate-platform/services/properties-service/internal/adapters/postgres"
	"real-estate-platform/services/properties-service/internal/adapters/rest"
	"real-estate-platform/services/properties-service/internal/configs"
	"real-estate-platform/services/properties-service/internal/core/port"
	"real-estate-platform/services/properties-service/internal/core/usecase"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// App структура приложения
type App struct {
	config       *configs.AppConfig
	apiServer    *httpkit.Server
	fluentClient *fluent.Fluent
	logger       logging.LoggerPort

	createPropertyUC *usecase.CreatePropertyUseCase

	// закрываются в обратном порядке
	closers []func() error
}

// NewApp создает приложение и связывает зависимости
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

	app := &App{
		config:       appConfig,
		fluentClient: fluentClient,
		logger:       appLogger,
	}

	storage, err := app.initStorage()
	if err != nil {
		app.closeResources()
		return nil, err
	}

	propertyNotifier, err := app.initNotifier(baseLogger)
	if err != nil {
		app.closeResources()
		return nil, err
	}
	appLogger.Info("All outgoing adapters initialized.", logging.Fields{
		"storage_driver": appConfig.Database.Driver,
		"notifier":       appConfig.Notifier.Kind,
	})

	findPropertiesUC := usecase.NewFindPropertiesUseCase(storage)
	app.createPropertyUC = usecase.NewCreatePropertyUseCase(storage, propertyNotifier, appConfig.Notifier.Timeout)
	deletePropertyUC := usecase.NewDeletePropertyUseCase(storage)
	appLogger.Info("All use cases initialized.", nil)

	handlers := rest.NewPropertyHandlers(findPropertiesUC, app.createPropertyUC, deletePropertyUC)
	app.apiServer = rest.NewServer(appConfig.Rest.PORT, handlers, rest.RouterConfig{
		Version:        appConfig.Version,
		StartedAt:      time.Now(),
		AllowedOrigins: appConfig.Rest.AllowedOrigins,
		Probe:          storage.Ping,
	}, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return app, nil
}

func (a *App) initStorage() (port.PropertyStoragePort, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	dbCfg := a.config.Database
	switch dbCfg.Driver {
	case configs.StorageDriverMongoDB:
		client, db, err := mongodb.NewClient(ctx, mongodb.Config{URI: dbCfg.MongoURI, Database: dbCfg.MongoDatabase})
		if err != nil {
			a.logger.Error("Failed to connect to MongoDB", err, nil)
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		a.closers = append(a.closers, func() error { return client.Disconnect(context.Background()) })

		adapter, err := mongo_adapter.NewMongoStorageAdapter(db)
		if err != nil {
			return nil, fmt.Errorf("failed to create mongo storage adapter: %w", err)
		}
		if err := adapter.EnsureIndexes(ctx); err != nil {
			// без индексов работает, только медленнее
			a.logger.Warn("Failed to ensure property indexes", logging.Fields{"error": err.Error()})
		}
		a.logger.Info("Successfully connected to MongoDB!", logging.Fields{"database": dbCfg.MongoDatabase})
		return adapter, nil

	default:
		dbPool, err := postgres.NewClient(ctx, postgres.Config{DatabaseURL: dbCfg.URL})
		if err != nil {
			a.logger.Error("Failed to connect to PostgreSQL", err, nil)
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		a.closers = append(a.closers, func() error {
			dbPool.Close()
			return nil
		})

		adapter, err := postgres_adapter.NewPostgresStorageAdapter(dbPool)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres storage adapter: %w", err)
		}
		a.logger.Info("Successfully connected to PostgreSQL pool!", nil)
		return adapter, nil
	}
}

func (a *App) initNotifier(baseLogger logging.LoggerPort) (port.PropertyNotifierPort, error) {
	switch a.config.Notifier.Kind {
	case configs.NotifierHTTP:
		return notifier.NewHTTPNotifier(a.config.Notifier.ServiceURL, &http.Client{Timeout: a.config.Notifier.Timeout})

	case configs.NotifierNone:
		a.logger.Warn("Property notifications are disabled", nil)
		return notifier.NewNoopNotifier(), nil
	}

	connManagerBridge := logging.NewPkgLoggerBridge(baseLogger.WithFields(logging.Fields{"component": "rabbitmq_conn_manager"}))
	connManager, err := rabbitmq_common.NewConnectionManager(rabbitmq_common.Config{URL: a.config.RabbitMQ.URL}, connManagerBridge)
	if err != nil {
		a.logger.Error("Failed to create connection manager", err, nil)
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	a.closers = append(a.closers, connManager.Close)

	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		Config:                   rabbitmq_common.Config{URL: a.config.RabbitMQ.URL},
		ExchangeName:             events.PropertiesExchange,
		ExchangeType:             "topic",
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   logging.NewPkgLoggerBridge(baseLogger.WithFields(logging.Fields{"component": "rabbitmq_producer"})),
	}, connManager)
	if err != nil {
		a.logger.Error("Failed to create event producer", err, nil)
		return nil, fmt.Errorf("failed to create event producer: %w", err)
	}
	a.closers = append(a.closers, producer.Close)
	a.logger.Info("RabbitMQ Event Producer initialized.", nil)

	return notifier.NewRabbitMQNotifier(producer, events.RoutingKeyPropertyCreated)
}

// Run запускает сервер и ждет сигнала остановки
func (a *App) Run() error {
	defer a.shutdown()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", logging.Fields{"port": a.config.Rest.PORT})
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", logging.Fields{"signal": receivedSignal.String()})
		return nil
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
		return err
	}
}

func (a *App) shutdown() {
	a.logger.Info("Shutdown sequence initiated...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := a.apiServer.Stop(ctx); err != nil {
		a.logger.Error("Error during API server shutdown", err, nil)
	}

	// новые объявления больше не приходят, дожидаемся отправки уведомлений
	a.logger.Info("Waiting for background notifications to finish...", nil)
	a.createPropertyUC.Wait()

	a.closeResources()
	a.logger.Info("Application shut down gracefully.", nil)

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
}

func (a *App) closeResources() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Error("Error closing resource", err, nil)
		}
	}
	a.closers = nil
}
