package contextkeys

import (
	"context"
	"testing"

	"real-estate-platform/pkg/logging"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFromContextFallsBackToNoop(t *testing.T) {
	logger := LoggerFromContext(context.Background())
	assert.NotNil(t, logger)
	assert.NotPanics(t, func() {
		logger.WithFields(logging.Fields{"a": 1}).Error("nothing", nil, nil)
	})
}

func TestLoggerRoundTrip(t *testing.T) {
	logger := logging.NewSlogAdapter(logging.SlogConfig{})
	ctx := ContextWithLogger(context.Background(), logger)
	assert.Same(t, logger, LoggerFromContext(ctx))
}

func TestTraceID(t *testing.T) {
	assert.Empty(t, TraceIDFromContext(context.Background()))
	ctx := ContextWithTraceID(context.Background(), "5f0c7a1e-trace")
	assert.Equal(t, "5f0c7a1e-trace", TraceIDFromContext(ctx))
}
