package configs

import (
	"fmt"
	"time"

	"real-estate-platform/pkg/configs"
	"real-estate-platform/pkg/logging"
)

const (
	ChannelSES = "ses"
	ChannelSNS = "sns"
	ChannelLog = "log"
)

type RESTconfig struct {
	PORT           string
	AllowedOrigins []string
}

type EmailConfig struct {
	Channel     string
	From        string
	To          string
	AWSRegion   string
	SNSTopicARN string
}

// ConsumerConfig очередь property_created_queue и ее ретраи
type ConsumerConfig struct {
	Enabled        bool
	RabbitMQURL    string
	PrefetchCount  int
	MaxRetries     int
	RetryTTL       time.Duration
	HandlerTimeout time.Duration
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName  string
	Version  string
	Rest     RESTconfig
	Email    EmailConfig
	Consumer ConsumerConfig
	Logging  logging.Options
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig(envPath ...string) (*AppConfig, error) {
	configs.LoadDotEnv(envPath...)

	cfg := &AppConfig{}
	cfg.AppName = configs.GetEnvAsString("APP_NAME", "notification-service")
	cfg.Version = configs.GetEnvAsString("APP_VERSION", "1.0.0")

	cfg.Rest.PORT = configs.GetEnvAsString("PORT", "7071")
	cfg.Rest.AllowedOrigins = configs.GetEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"})

	cfg.Email.Channel = configs.GetEnvAsString("EMAIL_CHANNEL", ChannelSES)
	cfg.Email.To = configs.GetEnvAsString("NOTIFICATION_EMAIL_TO", "")
	cfg.Email.From = configs.GetEnvAsString("NOTIFICATION_EMAIL_FROM", "")
	cfg.Email.AWSRegion = configs.GetEnvAsString("AWS_REGION", "eu-central-1")
	switch cfg.Email.Channel {
	case ChannelSES:
		if cfg.Email.From == "" || cfg.Email.To == "" {
			return nil, fmt.Errorf("NOTIFICATION_EMAIL_FROM and NOTIFICATION_EMAIL_TO are required when EMAIL_CHANNEL=ses")
		}
	case ChannelSNS:
		cfg.Email.SNSTopicARN = configs.GetEnvAsString("SNS_TOPIC_ARN", "")
		if cfg.Email.SNSTopicARN == "" {
			return nil, fmt.Errorf("SNS_TOPIC_ARN environment variable is required when EMAIL_CHANNEL=sns")
		}
	case ChannelLog:
	default:
		return nil, fmt.Errorf("unknown EMAIL_CHANNEL %q", cfg.Email.Channel)
	}

	cfg.Consumer.Enabled = configs.GetEnvAsBool("CONSUMER_ENABLED", true)
	cfg.Consumer.PrefetchCount = configs.GetEnvAsInt("CONSUMER_PREFETCH", 10)
	cfg.Consumer.MaxRetries = configs.GetEnvAsInt("NOTIFY_MAX_RETRIES", 3)
	cfg.Consumer.RetryTTL = configs.GetEnvAsDuration("NOTIFY_RETRY_TTL", 10*time.Second)
	cfg.Consumer.HandlerTimeout = configs.GetEnvAsDuration("NOTIFY_TIMEOUT", 10*time.Second)
	if cfg.Consumer.Enabled {
		cfg.Consumer.RabbitMQURL = configs.GetEnvAsString("RABBITMQ_URL", "")
		if cfg.Consumer.RabbitMQURL == "" {
			return nil, fmt.Errorf("RABBITMQ_URL environment variable is required when CONSUMER_ENABLED=true")
		}
	}

	cfg.Logging = configs.LoadLogging(cfg.AppName)
	return cfg, nil
}
