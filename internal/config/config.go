package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string        `yaml:"port" envconfig:"SERVER_PORT"`
	Mode            string        `yaml:"mode" envconfig:"SERVER_MODE"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"SERVER_IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SERVER_SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig holds PostgreSQL settings
type DatabaseConfig struct {
	Host            string `yaml:"host" envconfig:"DB_HOST"`
	Port            string `yaml:"port" envconfig:"DB_PORT"`
	User            string `yaml:"user" envconfig:"DB_USER"`
	Password        string `yaml:"password" envconfig:"DB_PASSWORD"`
	DBName          string `yaml:"dbname" envconfig:"DB_NAME"`
	SSLMode         string `yaml:"sslmode" envconfig:"DB_SSLMODE"`
	MaxIdleConns    int    `yaml:"max_idle_conns" envconfig:"DB_MAX_IDLE_CONNS"`
	MaxOpenConns    int    `yaml:"max_open_conns" envconfig:"DB_MAX_OPEN_CONNS"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime" envconfig:"DB_CONN_MAX_LIFETIME"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LOG_LEVEL"`
	Format string `yaml:"format" envconfig:"LOG_FORMAT"`
}

// RedisConfig enables the shared student lock when URL is set
type RedisConfig struct {
	URL     string        `yaml:"url" envconfig:"REDIS_URL"`
	LockTTL time.Duration `yaml:"lock_ttl" envconfig:"REDIS_LOCK_TTL"`
}

// KafkaConfig enables event publishing when Brokers is set
type KafkaConfig struct {
	Brokers        []string      `yaml:"brokers" envconfig:"KAFKA_BROKERS"`
	Topic          string        `yaml:"topic" envconfig:"KAFKA_TOPIC"`
	ProduceTimeout time.Duration `yaml:"produce_timeout" envconfig:"KAFKA_PRODUCE_TIMEOUT"`
}

// TracingConfig holds OpenTelemetry settings
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled" envconfig:"TRACING_ENABLED"`
	Exporter    string  `yaml:"exporter" envconfig:"TRACING_EXPORTER"`
	ServiceName string  `yaml:"service_name" envconfig:"TRACING_SERVICE_NAME"`
	SampleRate  float64 `yaml:"sample_rate" envconfig:"TRACING_SAMPLE_RATE"`
}

// PricingConfig holds the discount tier
type PricingConfig struct {
	DiscountThreshold int   `yaml:"discount_threshold" envconfig:"PRICING_DISCOUNT_THRESHOLD"`
	DiscountPercent   int64 `yaml:"discount_percent" envconfig:"PRICING_DISCOUNT_PERCENT"`
}

// SeedConfig controls development data
type SeedConfig struct {
	Enabled bool `yaml:"enabled" envconfig:"SEED_ENABLED"`
}

// Config structure represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Tracing  TracingConfig  `yaml:"tracing"`
	Pricing  PricingConfig  `yaml:"pricing"`
	Seed     SeedConfig     `yaml:"seed"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Parse YAML into Config structure
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = 10 * time.Second
	config.Server.WriteTimeout = 10 * time.Second
	config.Server.IdleTimeout = 60 * time.Second
	config.Server.ShutdownTimeout = 10 * time.Second

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "coursereg"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Redis.LockTTL = 5 * time.Second
	config.Kafka.Topic = "registrations"
	config.Kafka.ProduceTimeout = 5 * time.Second

	config.Tracing.Exporter = "stdout"
	config.Tracing.ServiceName = "coursereg"
	config.Tracing.SampleRate = 1.0

	config.Pricing.DiscountThreshold = 2
	config.Pricing.DiscountPercent = 75
}

// loadFromEnv overrides configuration with environment variables. Sections are
// processed one by one so every variable is matched by its full name only.
func loadFromEnv(config *Config) error {
	sections := []any{
		&config.Server,
		&config.Database,
		&config.Logging,
		&config.Redis,
		&config.Kafka,
		&config.Tracing,
		&config.Pricing,
		&config.Seed,
	}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return err
		}
	}
	return nil
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection max lifetime format: %w", err)
	}

	switch strings.ToLower(config.Logging.Level) {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("unknown log level %q", config.Logging.Level)
	}

	switch config.Tracing.Exporter {
	case "stdout", "none", "":
	default:
		return fmt.Errorf("unsupported tracing exporter %q", config.Tracing.Exporter)
	}

	if len(config.Kafka.Brokers) > 0 && config.Kafka.Topic == "" {
		return fmt.Errorf("kafka topic is required when brokers are set")
	}

	if config.Pricing.DiscountThreshold < 0 {
		return fmt.Errorf("pricing discount threshold must not be negative")
	}
	if config.Pricing.DiscountPercent <= 0 || config.Pricing.DiscountPercent > 100 {
		return fmt.Errorf("pricing discount percent must be in (0, 100], got %d", config.Pricing.DiscountPercent)
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// IsProduction reports whether the server runs in release mode
func (c *Config) IsProduction() bool {
	mode := strings.ToLower(c.Server.Mode)
	return mode == "production" || mode == "release"
}
