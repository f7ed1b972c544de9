package contextkeys

import (
	"context"

	"real-estate-platform/pkg/logging"
)

type loggerKeyType struct{}

var loggerKey = loggerKeyType{}

// ContextWithLogger помещает логгер в контекст
func ContextWithLogger(ctx context.Context, logger logging.LoggerPort) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext извлекает логгер из контекста, без логгера возвращает noop
func LoggerFromContext(ctx context.Context) logging.LoggerPort {
	if logger, ok := ctx.Value(loggerKey).(logging.LoggerPort); ok {
		return logger
	}
	return logging.NewNoop()
}
