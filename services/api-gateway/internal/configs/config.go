package configs

import (
	"fmt"
	"net/url"

	"real-estate-platform/pkg/configs"
	"real-estate-platform/pkg/logging"
)

// Config хранит всю конфигурацию приложения
type Config struct {
	AppName string
	Version string
	Port    string // порт самого gateway

	// адреса внутренних сервисов
	PropertiesServiceURL   string
	ImageServiceURL        string
	NotificationServiceURL string

	// FrontendDir каталог собранного фронтенда; пусто - статика не раздается
	FrontendDir    string
	AllowedOrigins []string

	Logging logging.Options
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig(envPath ...string) (*Config, error) {
	configs.LoadDotEnv(envPath...)

	cfg := &Config{
		AppName: configs.GetEnvAsString("APP_NAME", "api-gateway"),
		Version: configs.GetEnvAsString("APP_VERSION", "1.0.0"),
		Port:    configs.GetEnvAsString("GATEWAY_PORT", "8080"),

		PropertiesServiceURL:   configs.GetEnvAsString("PROPERTIES_SERVICE_URL", "http://localhost:5000"),
		ImageServiceURL:        configs.GetEnvAsString("IMAGE_SERVICE_URL", "http://localhost:3001"),
		NotificationServiceURL: configs.GetEnvAsString("NOTIFICATION_SERVICE_URL", "http://localhost:7071"),

		FrontendDir:    configs.GetEnvAsString("FRONTEND_DIR", ""),
		AllowedOrigins: configs.GetEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	for key, raw := range map[string]string{
		"PROPERTIES_SERVICE_URL":   cfg.PropertiesServiceURL,
		"IMAGE_SERVICE_URL":        cfg.ImageServiceURL,
		"NOTIFICATION_SERVICE_URL": cfg.NotificationServiceURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("%s must be an absolute URL, got %q", key, raw)
		}
	}

	cfg.Logging = configs.LoadLogging(cfg.AppName)
	return cfg, nil
}
