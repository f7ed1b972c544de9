package configs

import (
	"fmt"
	"time"

	"real-estate-platform/pkg/configs"
	"real-estate-platform/pkg/logging"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMongoDB  = "mongodb"

	NotifierRabbitMQ = "rabbitmq"
	NotifierHTTP     = "http"
	NotifierNone     = "none"
)

type DBconfig struct {
	Driver        string
	URL           string
	MongoURI      string
	MongoDatabase string
}

type RESTconfig struct {
	PORT           string
	AllowedOrigins []string
}

type RabbitMQConfig struct {
	URL string
}

type NotifierConfig struct {
	Kind       string
	ServiceURL string
	Timeout    time.Duration
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName  string
	Version  string
	Database DBconfig
	Rest     RESTconfig
	RabbitMQ RabbitMQConfig
	Notifier NotifierConfig
	Logging  logging.Options
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig(envPath ...string) (*AppConfig, error) {
	configs.LoadDotEnv(envPath...)

	cfg := &AppConfig{}
	cfg.AppName = configs.GetEnvAsString("APP_NAME", "properties-service")
	cfg.Version = configs.GetEnvAsString("APP_VERSION", "1.0.0")

	cfg.Database.Driver = configs.GetEnvAsString("STORAGE_DRIVER", StorageDriverPostgres)
	switch cfg.Database.Driver {
	case StorageDriverPostgres:
		cfg.Database.URL = configs.GetEnvAsString("DATABASE_URL", "")
		if cfg.Database.URL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required")
		}
	case StorageDriverMongoDB:
		cfg.Database.MongoURI = configs.GetEnvAsString("MONGO_URI", "")
		if cfg.Database.MongoURI == "" {
			return nil, fmt.Errorf("MONGO_URI environment variable is required")
		}
		cfg.Database.MongoDatabase = configs.GetEnvAsString("MONGO_DATABASE", "real_estate")
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Database.Driver)
	}

	cfg.Rest.PORT = configs.GetEnvAsString("PORT", "5000")
	cfg.Rest.AllowedOrigins = configs.GetEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"})

	cfg.Notifier.Kind = configs.GetEnvAsString("NOTIFIER", NotifierRabbitMQ)
	cfg.Notifier.Timeout = configs.GetEnvAsDuration("NOTIFY_TIMEOUT", 10*time.Second)
	switch cfg.Notifier.Kind {
	case NotifierRabbitMQ:
		cfg.RabbitMQ.URL = configs.GetEnvAsString("RABBITMQ_URL", "")
		if cfg.RabbitMQ.URL == "" {
			return nil, fmt.Errorf("RABBITMQ_URL environment variable is required when NOTIFIER=rabbitmq")
		}
	case NotifierHTTP:
		cfg.Notifier.ServiceURL = configs.GetEnvAsString("NOTIFICATION_SERVICE_URL", "")
		if cfg.Notifier.ServiceURL == "" {
			return nil, fmt.Errorf("NOTIFICATION_SERVICE_URL environment variable is required when NOTIFIER=http")
		}
	case NotifierNone:
	default:
		return nil, fmt.Errorf("unknown NOTIFIER %q", cfg.Notifier.Kind)
	}

	cfg.Logging = configs.LoadLogging(cfg.AppName)
	return cfg, nil
}
