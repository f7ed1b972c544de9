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
	"real-estate-platform/pkg/mongodb"
	"real-estate-platform/pkg/postgres"
	"real-estate-platform/services/image-service/internal/adapters/blobstore"
	mongo_adapter "real-estate-platform/services/image-service/internal/adapters/mongodb"
	postgres_adapter "real-estate-platform/services/image-service/internal/adapters/postgres"
	"real-estate-platform/services/image-service/internal/adapters/rest"
	"real-estate-platform/services/image-service/internal/configs"
	"real-estate-platform/services/image-service/internal/core/port"
	"real-estate-platform/services/image-service/internal/core/usecase"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// App структура приложения
type App struct {
	config       *configs.AppConfig
	apiServer    *httpkit.Server
	fluentClient *fluent.Fluent
	logger       logging.LoggerPort

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

	repo, err := app.initRepository()
	if err != nil {
		app.closeResources()
		return nil, err
	}

	routerCfg := rest.RouterConfig{
		Version:        appConfig.Version,
		StartedAt:      time.Now(),
		AllowedOrigins: appConfig.Rest.AllowedOrigins,
		Probe:          repo.Ping,
	}

	blobs, err := app.initBlobStore(&routerCfg)
	if err != nil {
		app.closeResources()
		return nil, err
	}
	appLogger.Info("All outgoing adapters initialized.", logging.Fields{
		"storage_driver": appConfig.Database.Driver,
		"blob_driver":    appConfig.Blob.Driver,
	})

	uploadImagesUC := usecase.NewUploadImagesUseCase(repo, blobs)
	listImagesUC := usecase.NewListImagesUseCase(repo)
	deleteImageUC := usecase.NewDeleteImageUseCase(repo, blobs)
	appLogger.Info("All use cases initialized.", nil)

	handlers := rest.NewImageHandlers(uploadImagesUC, listImagesUC, deleteImageUC)
	app.apiServer = rest.NewServer(appConfig.Rest.PORT, handlers, routerCfg, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return app, nil
}

func (a *App) initRepository() (port.ImageRepositoryPort, error) {
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

		repo, err := mongo_adapter.NewImageRepository(db)
		if err != nil {
			return nil, fmt.Errorf("failed to create mongo image repository: %w", err)
		}
		if err := repo.EnsureIndexes(ctx); err != nil {
			a.logger.Warn("Failed to ensure image indexes", logging.Fields{"error": err.Error()})
		}
		a.logger.Info("Successfully connected to MongoDB!", logging.Fields{"database": dbCfg.MongoDatabase})
		return repo, nil

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

		repo, err := postgres_adapter.NewImageRepository(dbPool)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres image repository: %w", err)
		}
		a.logger.Info("Successfully connected to PostgreSQL pool!", nil)
		return repo, nil
	}
}

// initBlobStore для локального хранилища дополнительно раздает файлы через роутер
func (a *App) initBlobStore(routerCfg *rest.RouterConfig) (port.BlobStorePort, error) {
	blobCfg := a.config.Blob
	if blobCfg.Driver == configs.BlobDriverS3 {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		client, err := blobstore.NewS3Client(ctx, blobCfg.S3Region)
		if err != nil {
			a.logger.Error("Failed to create S3 client", err, nil)
			return nil, err
		}
		store, err := blobstore.NewS3Store(client, blobstore.S3Config{
			Bucket:        blobCfg.S3Bucket,
			Region:        blobCfg.S3Region,
			KeyPrefix:     blobCfg.S3KeyPrefix,
			PublicBaseURL: blobCfg.S3PublicBaseURL,
		})
		if err != nil {
			return nil, err
		}
		a.logger.Info("S3 blob store initialized.", logging.Fields{"bucket": blobCfg.S3Bucket})
		return store, nil
	}

	store, err := blobstore.NewLocalStore(blobCfg.UploadDir, blobCfg.PublicPrefix)
	if err != nil {
		a.logger.Error("Failed to prepare upload directory", err, logging.Fields{"dir": blobCfg.UploadDir})
		return nil, err
	}
	routerCfg.Uploads = store.Handler()
	routerCfg.UploadsPrefix = store.PublicPrefix()
	a.logger.Info("Local blob store initialized.", logging.Fields{"dir": blobCfg.UploadDir})
	return store, nil
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
