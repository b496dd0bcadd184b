package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT" validate:"required"`
	Port        string `mapstructure:"PORT" validate:"required,numeric"`
	LogLevel    string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`

	// Database configuration
	DatabaseDriver   string `mapstructure:"DATABASE_DRIVER" validate:"oneof=sqlite postgres"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabasePath     string `mapstructure:"DB_PATH"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	MaxOpenConns     int    `mapstructure:"DB_MAX_OPEN_CONNS" validate:"gte=1"`

	// QueryTimeout bounds every read issued by the query layer
	QueryTimeout time.Duration `mapstructure:"QUERY_TIMEOUT" validate:"gt=0"`

	// ModelPath points to the classifier coefficients; empty uses the bundled model
	ModelPath string `mapstructure:"MODEL_PATH"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "5001")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_PATH", "employee_events.db")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "employee_events")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 10)
	viper.SetDefault("QUERY_TIMEOUT", 5*time.Second)

	// Classifier defaults
	viper.SetDefault("MODEL_PATH", "")
}

// buildDatabaseURL returns a DSN for the configured driver
func buildDatabaseURL(config *Config) string {
	if config.DatabaseDriver == "sqlite" {
		// read-only over pre-populated data
		return fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", config.DatabasePath)
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return err
	}

	if config.DatabaseDriver == "sqlite" && config.DatabasePath == "" && config.DatabaseURL == "" {
		return fmt.Errorf("DB_PATH is required for the sqlite driver")
	}
	if config.DatabaseDriver == "postgres" && config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	return nil
}

// WritableDatabaseURL returns the DSN with the sqlite read-only flag removed.
// Only provisioning writes to the store.
func (c *Config) WritableDatabaseURL() string {
	if c.DatabaseDriver != "sqlite" {
		return c.DatabaseURL
	}
	dsn := strings.Replace(c.DatabaseURL, "mode=ro&", "", 1)
	dsn = strings.Replace(dsn, "&mode=ro", "", 1)
	return strings.Replace(dsn, "?mode=ro", "", 1)
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
