package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Storage
	DataDir string

	// Logging
	LogLevel string

	// AMQP goal alerts; an empty URL disables them
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Dashboard cache
	DashboardCacheSize int
	DashboardCacheTTL  time.Duration
}

// LoadEnvFile loads variables from the given files (default ".env") into
// the process environment without overriding values already set.
// A missing file is not an error.
func LoadEnvFile(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return fmt.Errorf("load env file %s: %w", name, err)
		}
	}
	return nil
}

func Load() *Config {
	return &Config{
		DataDir:  getEnv("FINANCAS_DATA_DIR", "./data"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "financas"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "goal_alerts"),

		DashboardCacheSize: getEnvInt("DASHBOARD_CACHE_SIZE", 128),
		DashboardCacheTTL:  getEnvDuration("DASHBOARD_CACHE_TTL", 5*time.Minute),
	}
}

// AlertsEnabled reports whether goal alerts should be published.
func (c *Config) AlertsEnabled() bool {
	return c.AMQPURL != ""
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.DataDir) == "" {
		errors = append(errors, "data directory cannot be empty")
	} else if info, err := os.Stat(c.DataDir); err == nil && !info.IsDir() {
		errors = append(errors, fmt.Sprintf("data directory '%s' is not a directory", c.DataDir))
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	isValidLevel := false
	for _, level := range validLevels {
		if strings.EqualFold(c.LogLevel, level) {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLevels))
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.DashboardCacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid dashboard cache size %d: must be at least 1", c.DashboardCacheSize))
	} else if c.DashboardCacheSize > 10000 {
		errors = append(errors, fmt.Sprintf("invalid dashboard cache size %d: must be at most 10000", c.DashboardCacheSize))
	}

	if c.DashboardCacheTTL < time.Second {
		errors = append(errors, fmt.Sprintf("invalid dashboard cache TTL %v: must be at least 1 second", c.DashboardCacheTTL))
	} else if c.DashboardCacheTTL > 24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid dashboard cache TTL %v: must be at most 24 hours", c.DashboardCacheTTL))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
