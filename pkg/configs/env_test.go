package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "forty-two")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_DURATION", "250ms")
	t.Setenv("TEST_NEGATIVE_DURATION", "-1s")
	t.Setenv("TEST_LIST", " http://a.example , ,http://b.example")

	assert.Equal(t, "value", GetEnvAsString("TEST_STR", "default"))
	assert.Equal(t, "default", GetEnvAsString("TEST_MISSING", "default"))
	assert.Equal(t, 42, GetEnvAsInt("TEST_INT", 1))
	assert.Equal(t, 1, GetEnvAsInt("TEST_BAD_INT", 1))
	assert.True(t, GetEnvAsBool("TEST_BOOL", false))
	assert.Equal(t, 250*time.Millisecond, GetEnvAsDuration("TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, GetEnvAsDuration("TEST_NEGATIVE_DURATION", time.Second))
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, GetEnvAsList("TEST_LIST", nil))
	assert.Equal(t, []string{"*"}, GetEnvAsList("TEST_MISSING_LIST", []string{"*"}))
}

func TestLoadLoggingDisablesFluentWithoutHost(t *testing.T) {
	t.Setenv("FLUENTBIT_ENABLED", "true")
	t.Setenv("FLUENTBIT_HOST", "")
	t.Setenv("STDOUT_LOG_LEVEL", "warn")

	opts := LoadLogging("properties-service")

	assert.Equal(t, "properties-service", opts.AppName)
	assert.Equal(t, "warn", opts.StdoutLevel)
	assert.False(t, opts.FluentBit.Enabled)
}
