// Package configs содержит общие для сервисов помощники чтения окружения.
package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"real-estate-platform/pkg/logging"
)

// LoadDotEnv подгружает .env, если он есть. Отсутствие файла не ошибка:
// в контейнере переменные приходят из окружения.
func LoadDotEnv(envPath ...string) {
	var err error
	if len(envPath) > 0 && envPath[0] != "" {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: .env file not loaded (path: %v): %v. Using process environment.", envPath, err)
	}
}

func GetEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt читает int, при ошибке разбора пишет предупреждение и возвращает значение по умолчанию
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists || valStr == "" {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists || valStr == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(valStr)
	if err != nil || d <= 0 {
		log.Printf("Warning: Environment variable %s (value: %s) is not a positive duration. Using default value: %s", key, valStr, defaultValue)
		return defaultValue
	}
	return d
}

// GetEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func GetEnvAsList(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valStr) == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LoadLogging читает STDOUT_LOG_LEVEL и FLUENTBIT_* переменные
func LoadLogging(appName string) logging.Options {
	opts := logging.Options{
		AppName:     appName,
		StdoutLevel: GetEnvAsString("STDOUT_LOG_LEVEL", "debug"),
	}
	opts.FluentBit.Enabled = GetEnvAsBool("FLUENTBIT_ENABLED", false)
	if opts.FluentBit.Enabled {
		opts.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if opts.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			opts.FluentBit.Enabled = false
		}
		opts.FluentBit.Port = GetEnvAsInt("FLUENTBIT_PORT", 24224)
		opts.FluentBit.Level = GetEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}
	return opts
}
