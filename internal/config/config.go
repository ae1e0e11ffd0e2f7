package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"dompet/internal/logger"
)

// Config holds application configuration
type Config struct {
	Env  string `mapstructure:"env"`
	Port string `mapstructure:"port" validate:"required,numeric"`

	Database DatabaseConfig `mapstructure:",squash"`
	JWT      JWTConfig      `mapstructure:",squash"`

	// StatusCodes switches failure responses from HTTP 200 envelopes to the
	// status code carried by each error.
	StatusCodes bool   `mapstructure:"api_status_codes"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds the PostgreSQL connection settings.
type DatabaseConfig struct {
	Host          string `mapstructure:"db_host" validate:"required"`
	Port          string `mapstructure:"db_port" validate:"required,numeric"`
	User          string `mapstructure:"db_user" validate:"required"`
	Password      string `mapstructure:"db_password"`
	Name          string `mapstructure:"db_name" validate:"required"`
	SSLMode       string `mapstructure:"db_sslmode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	MigrationsDir string `mapstructure:"migrations_dir" validate:"required"`
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret    string        `mapstructure:"jwt_secret" validate:"required,min=16"`
	Issuer    string        `mapstructure:"jwt_issuer" validate:"required"`
	Algorithm string        `mapstructure:"jwt_algorithm" validate:"oneof=HS256 HS384 HS512"`
	ExpiresIn time.Duration `mapstructure:"jwt_expires_in" validate:"gte=0"`
}

var defaults = map[string]any{
	"env":              "development",
	"port":             "8080",
	"db_host":          "localhost",
	"db_port":          "5432",
	"db_user":          "dompet",
	"db_password":      "dompet",
	"db_name":          "dompet",
	"db_sslmode":       "disable",
	"migrations_dir":   "migrations",
	"jwt_secret":       "fallback-secret-key-for-dev-only",
	"jwt_issuer":       "dompet-api",
	"jwt_algorithm":    "HS256",
	"jwt_expires_in":   "24h",
	"api_status_codes": false,
	"sentry_dsn":       "",
}

// Load reads configuration from a .env file (if any), the process
// environment and an optional file named by CONFIG_FILE, in increasing
// order of precedence for the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Get().Warnf("failed to read .env file: %v", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// DSN returns the PostgreSQL connection string used by GORM.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the PostgreSQL URL used by golang-migrate.
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}
