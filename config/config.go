// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Scheduler SchedulerConfig
	Analytics AnalyticsConfig
	Email     EmailConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	// AuthRateLimit is the number of auth requests allowed per client IP per
	// minute.
	AuthRateLimit int `env:"AUTH_RATE_LIMIT" envDefault:"20"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver          string        `env:"DB_DRIVER" envDefault:"postgres"`
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            int           `env:"DB_PORT" envDefault:"5432"`
	Name            string        `env:"DB_NAME" envDefault:"finance_planner"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD"`
	SSLMode         string        `env:"DB_SSL_MODE" envDefault:"disable"`
	SQLitePath      string        `env:"DB_SQLITE_PATH" envDefault:"finance.db"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
}

// DSN returns the driver-specific connection string.
func (c DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// RedisConfig holds Redis configuration. When disabled, analytics are not
// cached and the scheduler lock is process-local.
type RedisConfig struct {
	Enabled  bool   `env:"REDIS_ENABLED" envDefault:"false"`
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// JWTConfig holds JWT token configuration.
type JWTConfig struct {
	Secret             string        `env:"JWT_SECRET"`
	AccessTokenExpiry  time.Duration `env:"JWT_ACCESS_TOKEN_EXPIRY" envDefault:"1h"`
	RefreshTokenExpiry time.Duration `env:"JWT_REFRESH_TOKEN_EXPIRY" envDefault:"168h"`
	BcryptCost         int           `env:"BCRYPT_COST" envDefault:"12"`
}

// SchedulerConfig holds recurrence scheduler configuration.
type SchedulerConfig struct {
	Enabled  bool          `env:"SCHEDULER_ENABLED" envDefault:"true"`
	Interval time.Duration `env:"SCHEDULER_INTERVAL" envDefault:"6h"`
	LockTTL  time.Duration `env:"SCHEDULER_LOCK_TTL" envDefault:"10m"`
	// Timezone decides which calendar day counts as "today".
	Timezone string `env:"SCHEDULER_TIMEZONE" envDefault:"UTC"`
}

// Location resolves Timezone.
func (c SchedulerConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// AnalyticsConfig holds analytics cache configuration.
type AnalyticsConfig struct {
	CacheTTL time.Duration `env:"ANALYTICS_CACHE_TTL" envDefault:"5m"`
}

// EmailConfig holds email service configuration.
type EmailConfig struct {
	ResendAPIKey  string        `env:"RESEND_API_KEY"`
	ResendBaseURL string        `env:"RESEND_BASE_URL"`
	FromName      string        `env:"EMAIL_FROM_NAME" envDefault:"Finance Planner"`
	FromEmail     string        `env:"EMAIL_FROM" envDefault:"onboarding@resend.dev"`
	AppBaseURL    string        `env:"APP_BASE_URL" envDefault:"http://localhost:5173"`
	WorkerEnabled bool          `env:"EMAIL_WORKER_ENABLED" envDefault:"true"`
	PollInterval  time.Duration `env:"EMAIL_WORKER_POLL_INTERVAL" envDefault:"5s"`
	BatchSize     int           `env:"EMAIL_WORKER_BATCH_SIZE" envDefault:"10"`
	MaxRetries    int           `env:"EMAIL_MAX_RETRIES" envDefault:"3"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads a .env file when one exists, then parses and validates the
// environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse builds the configuration from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsProduction reports whether the server runs in production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.Server.Port))
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			errs = append(errs, errors.New("DB_HOST and DB_NAME are required for the postgres driver"))
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			errs = append(errs, errors.New("DB_SQLITE_PATH is required for the sqlite driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.Database.Driver))
	}

	if c.JWT.Secret == "" {
		if c.IsProduction() {
			errs = append(errs, errors.New("JWT_SECRET is required in production"))
		} else {
			c.JWT.Secret = "change-me-in-production"
		}
	} else if c.IsProduction() && len(c.JWT.Secret) < 32 {
		errs = append(errs, errors.New("JWT_SECRET must be at least 32 characters in production"))
	}

	if c.JWT.AccessTokenExpiry <= 0 || c.JWT.RefreshTokenExpiry <= 0 {
		errs = append(errs, errors.New("JWT token expiries must be positive"))
	}

	if c.Scheduler.Interval <= 0 {
		errs = append(errs, fmt.Errorf("SCHEDULER_INTERVAL must be positive, got %s", c.Scheduler.Interval))
	}
	if c.Scheduler.LockTTL <= 0 {
		errs = append(errs, fmt.Errorf("SCHEDULER_LOCK_TTL must be positive, got %s", c.Scheduler.LockTTL))
	}
	if _, err := c.Scheduler.Location(); err != nil {
		errs = append(errs, fmt.Errorf("SCHEDULER_TIMEZONE: %w", err))
	}

	if c.Email.MaxRetries < 1 {
		errs = append(errs, errors.New("EMAIL_MAX_RETRIES must be at least 1"))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}
