package logging

import (
	"fmt"
	"log/slog"
	"strings"

	fluentlogger "real-estate-platform/pkg/fluent_logger"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// FluentBitConfig настройки отправки логов в Fluent Bit
type FluentBitConfig struct {
	Enabled bool
	Host    string
	Port    int
	Level   string
}

// Options набор приемников логов сервиса
type Options struct {
	AppName     string
	StdoutLevel string
	FluentBit   FluentBitConfig
}

// Setup собирает мульти-логгер: цветной stdout всегда, Fluent Bit по флагу.
// Возвращенный клиент fluent (может быть nil) закрывается при остановке сервиса.
func Setup(opts Options) (LoggerPort, *fluent.Fluent, error) {
	stdoutLogger := NewSlogAdapter(SlogConfig{
		Level:    ParseLevel(opts.StdoutLevel),
		UseColor: true,
	})
	active := []LoggerPort{stdoutLogger}

	var fluentClient *fluent.Fluent
	if opts.FluentBit.Enabled {
		client, err := fluentlogger.NewClient(fluentlogger.Config{
			Host:      opts.FluentBit.Host,
			Port:      opts.FluentBit.Port,
			TagPrefix: opts.AppName,
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}
		fluentAdapter, err := NewFluentLoggerAdapter(client, ParseLevel(opts.FluentBit.Level))
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		fluentClient = client
		active = append(active, fluentAdapter)
	}

	multi, err := NewMultiLoggerAdapter(active...)
	if err != nil {
		return nil, nil, err
	}

	base := multi.WithFields(Fields{"service_name": opts.AppName})
	base.Debug("Logger system initialized", Fields{
		"active_loggers": len(active),
		"fluent_enabled": opts.FluentBit.Enabled,
	})
	return base, fluentClient, nil
}

// ParseLevel переводит строковый уровень в slog.Level, info по умолчанию
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
