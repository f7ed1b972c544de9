package configs

import (
	"fmt"

	"real-estate-platform/pkg/configs"
	"real-estate-platform/pkg/logging"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMongoDB  = "mongodb"

	BlobDriverLocal = "local"
	BlobDriverS3    = "s3"
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

// BlobConfig место хранения загруженных файлов
type BlobConfig struct {
	Driver       string
	UploadDir    string
	PublicPrefix string

	S3Bucket        string
	S3Region        string
	S3KeyPrefix     string
	S3PublicBaseURL string
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName  string
	Version  string
	Database DBconfig
	Rest     RESTconfig
	Blob     BlobConfig
	Logging  logging.Options
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig(envPath ...string) (*AppConfig, error) {
	configs.LoadDotEnv(envPath...)

	cfg := &AppConfig{}
	cfg.AppName = configs.GetEnvAsString("APP_NAME", "image-service")
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

	cfg.Rest.PORT = configs.GetEnvAsString("PORT", "3001")
	cfg.Rest.AllowedOrigins = configs.GetEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"})

	cfg.Blob.Driver = configs.GetEnvAsString("BLOB_DRIVER", BlobDriverLocal)
	switch cfg.Blob.Driver {
	case BlobDriverLocal:
		cfg.Blob.UploadDir = configs.GetEnvAsString("UPLOAD_DIR", "uploads")
		cfg.Blob.PublicPrefix = configs.GetEnvAsString("PUBLIC_UPLOAD_PREFIX", "/api/images/uploads")
	case BlobDriverS3:
		cfg.Blob.S3Bucket = configs.GetEnvAsString("S3_BUCKET", "")
		if cfg.Blob.S3Bucket == "" {
			return nil, fmt.Errorf("S3_BUCKET environment variable is required when BLOB_DRIVER=s3")
		}
		cfg.Blob.S3Region = configs.GetEnvAsString("AWS_REGION", "eu-central-1")
		cfg.Blob.S3KeyPrefix = configs.GetEnvAsString("S3_KEY_PREFIX", "images")
		cfg.Blob.S3PublicBaseURL = configs.GetEnvAsString("S3_PUBLIC_BASE_URL", "")
	default:
		return nil, fmt.Errorf("unknown BLOB_DRIVER %q", cfg.Blob.Driver)
	}

	cfg.Logging = configs.LoadLogging(cfg.AppName)
	return cfg, nil
}
