package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"real-estate-platform/pkg/events"
	"real-estate-platform/pkg/httpkit"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/pkg/rabbitmq/rabbitmq_common"
	"real-estate-platform/pkg/rabbitmq/rabbitmq_consumer"
	"real-estate-platform/services/notification-service/internal/adapters/channel"
	rabbitmq_adapter "real-estate-platform/services/notification-service/internal/adapters/rabbitmq"
	"real-estate-platform/services/notification-service/internal/adapters/rest"
	"real-estate-platform/services/notification-service/internal/configs"
	"real-estate-platform/services/notification-service/internal/core/port"
	"real-estate-platform/services/notification-service/internal/core/usecase"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// App структура приложения
type App struct {
	config       *configs.AppConfig
	apiServer    *httpkit.Server
	fluentClient *fluent.Fluent
	logger       logging.LoggerPort

	connManager             *rabbitmq_common.ConnectionManager
	propertyCreatedListener *rabbitmq_adapter.PropertyCreatedConsumerAdapter
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

	emailChannel, err := app.initChannel(baseLogger)
	if err != nil {
		return nil, err
	}
	appLogger.Info("Email channel initialized.", logging.Fields{"channel": appConfig.Email.Channel})

	sendNotificationUC := usecase.NewSendPropertyNotificationUseCase(emailChannel, appConfig.Email.To)

	routerCfg := rest.RouterConfig{
		Version:        appConfig.Version,
		StartedAt:      time.Now(),
		AllowedOrigins: appConfig.Rest.AllowedOrigins,
	}

	if appConfig.Consumer.Enabled {
		if err := app.initConsumer(sendNotificationUC, baseLogger); err != nil {
			app.closeResources()
			return nil, err
		}
		routerCfg.Probe = app.brokerProbe
	} else {
		appLogger.Warn("RabbitMQ consumer is disabled, notifications arrive over HTTP only", nil)
	}

	handlers := rest.NewNotificationHandlers(sendNotificationUC)
	app.apiServer = rest.NewServer(appConfig.Rest.PORT, handlers, routerCfg, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return app, nil
}

func (a *App) initChannel(baseLogger logging.LoggerPort) (port.EmailChannelPort, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	emailCfg := a.config.Email
	switch emailCfg.Channel {
	case configs.ChannelSNS:
		client, err := channel.NewSNSClient(ctx, emailCfg.AWSRegion)
		if err != nil {
			a.logger.Error("Failed to create SNS client", err, nil)
			return nil, err
		}
		return channel.NewSNSChannel(client, emailCfg.SNSTopicARN)

	case configs.ChannelLog:
		return channel.NewLogChannel(baseLogger), nil

	default:
		client, err := channel.NewSESClient(ctx, emailCfg.AWSRegion)
		if err != nil {
			a.logger.Error("Failed to create SES client", err, nil)
			return nil, err
		}
		return channel.NewSESChannel(client, emailCfg.From)
	}
}

func (a *App) initConsumer(sendNotificationUC *usecase.SendPropertyNotificationUseCase, baseLogger logging.LoggerPort) error {
	consumerCfg := a.config.Consumer

	connManagerBridge := logging.NewPkgLoggerBridge(baseLogger.WithFields(logging.Fields{"component": "rabbitmq_conn_manager"}))
	connManager, err := rabbitmq_common.NewConnectionManager(rabbitmq_common.Config{URL: consumerCfg.RabbitMQURL}, connManagerBridge)
	if err != nil {
		a.logger.Error("Failed to create connection manager", err, nil)
		return fmt.Errorf("failed to create connection manager: %w", err)
	}
	a.connManager = connManager

	listener, err := rabbitmq_adapter.NewPropertyCreatedConsumerAdapter(rabbitmq_consumer.ConsumerConfig{
		Config:                 rabbitmq_common.Config{URL: consumerCfg.RabbitMQURL},
		QueueName:              events.QueuePropertyCreated,
		DeclareQueue:           true,
		DurableQueue:           true,
		ExchangeNameForBind:    events.PropertiesExchange,
		DeclareExchangeForBind: true,
		ExchangeTypeForBind:    "topic",
		DurableExchangeForBind: true,
		RoutingKeyForBind:      events.RoutingKeyPropertyCreated,
		PrefetchCount:          consumerCfg.PrefetchCount,
		ConsumerTag:            "property-created-notifier",

		EnableRetryMechanism: true,
		RetryExchange:        events.QueuePropertyCreated + "_retry_ex",
		RetryQueue:           events.QueuePropertyCreated + "_retry_wait",
		RetryTTL:             int(consumerCfg.RetryTTL.Milliseconds()),
		FinalDLXExchange:     events.FinalDLXExchange,
		FinalDLQ:             events.FinalDLQ,
		FinalDLQRoutingKey:   events.FinalDLQRoutingKey,
		MaxRetries:           consumerCfg.MaxRetries,
	}, sendNotificationUC, consumerCfg.HandlerTimeout, baseLogger, connManager)
	if err != nil {
		a.logger.Error("Failed to create PropertyCreated consumer", err, nil)
		return fmt.Errorf("failed to create PropertyCreated consumer: %w", err)
	}
	a.propertyCreatedListener = listener
	a.logger.Info("PropertyCreated consumer initialized.", logging.Fields{"queue": events.QueuePropertyCreated})
	return nil
}

func (a *App) brokerProbe(_ context.Context) error {
	if !a.connManager.Healthy() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

// Run запускает сервер и слушателя, ждет сигнала остановки
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	defer func() {
		cancelApp()
		a.shutdown(&wg)
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 2)
	go func() {
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	if a.propertyCreatedListener != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			listenerLogger := a.logger.WithFields(logging.Fields{"listener": "PropertyCreated Events Listener"})
			listenerLogger.Info("Starting listener...", nil)
			if err := a.propertyCreatedListener.Start(appCtx); err != nil {
				listenerLogger.Error("Listener stopped with an unexpected error", err, nil)
				errorsCh <- fmt.Errorf("property created listener error: %w", err)
				return
			}
			listenerLogger.Info("Listener stopped gracefully.", nil)
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or component error...", logging.Fields{"port": a.config.Rest.PORT})
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", logging.Fields{"signal": receivedSignal.String()})
		return nil
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
		return err
	}
}

func (a *App) shutdown(wg *sync.WaitGroup) {
	a.logger.Info("Shutdown sequence initiated...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := a.apiServer.Stop(ctx); err != nil {
		a.logger.Error("Error during API server shutdown", err, nil)
	}

	a.logger.Info("Waiting for background processes to finish...", nil)
	wg.Wait()

	a.closeResources()
	a.logger.Info("Application shut down gracefully.", nil)

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
}

// closeResources: сначала слушатель дожидается обработчиков, потом закрывается соединение
func (a *App) closeResources() {
	if a.propertyCreatedListener != nil {
		if err := a.propertyCreatedListener.Close(); err != nil {
			a.logger.Error("Error closing PropertyCreated listener", err, nil)
		}
		a.propertyCreatedListener = nil
	}
	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection manager", err, nil)
		}
		a.connManager = nil
	}
}
