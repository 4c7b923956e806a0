package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Log       LogConfig
	AMQP      AMQPConfig
	Security  SecurityConfig
	Scheduler SchedulerConfig
	Report    ReportConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string
	Format string // "console" or "json"
}

// AMQPConfig configures the transaction event publisher.
// An empty URL disables publishing.
type AMQPConfig struct {
	URL      string
	Exchange string
}

// SecurityConfig holds the optional Fernet key used to encrypt
// transaction descriptions at rest.
type SecurityConfig struct {
	EncryptionKey string
}

// SchedulerConfig holds cron specs for background jobs.
// An empty spec disables the job.
type SchedulerConfig struct {
	SnapshotSchedule string
}

// ReportConfig holds defaults for the savings report.
type ReportConfig struct {
	DefaultGoal decimal.Decimal
}

var validFormats = []string{"console", "json"}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	defaultGoal, err := decimal.NewFromString(getEnv("DEFAULT_GOAL", "10000"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_GOAL: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/finance_tracker.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost")),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "console")),
		},
		AMQP: AMQPConfig{
			URL:      os.Getenv("AMQP_URL"),
			Exchange: getEnv("AMQP_EXCHANGE", "finance"),
		},
		Security: SecurityConfig{
			EncryptionKey: os.Getenv("ENCRYPTION_KEY"),
		},
		Scheduler: SchedulerConfig{
			SnapshotSchedule: lookupEnv("SNAPSHOT_SCHEDULE", "@daily"),
		},
		Report: ReportConfig{
			DefaultGoal: defaultGoal,
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Server.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Server.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.Database.Path == "" {
		problems = append(problems, "database path cannot be empty")
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil || c.Log.Level == "" {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.Log.Level))
	}

	validFormat := false
	for _, f := range validFormats {
		if c.Log.Format == f {
			validFormat = true
			break
		}
	}
	if !validFormat {
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be one of %v", c.Log.Format, validFormats))
	}

	if c.AMQP.URL != "" {
		if parsedURL, err := url.Parse(c.AMQP.URL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL: %v", err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQP.Exchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	if !c.Report.DefaultGoal.IsPositive() {
		problems = append(problems, fmt.Sprintf("invalid default goal %s: must be positive", c.Report.DefaultGoal))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// lookupEnv is like getEnv but keeps an explicitly empty value, so a
// variable set to "" can switch a feature off.
func lookupEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
