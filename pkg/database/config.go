package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Driver selects the storage backend.
type Driver string

// Supported drivers.
const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// Config holds database configuration.
type Config struct {
	Driver Driver

	// PostgreSQL settings
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	// SQLite settings
	Path string

	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DSN returns the pgx-compatible connection string. Only meaningful for the
// postgres driver (the NOTIFY listener dials it directly).
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// LoadConfigFromEnv loads database configuration from environment variables.
// DB_DRIVER selects postgres (default) or sqlite; sqlite reads DB_PATH.
func LoadConfigFromEnv() (Config, error) {
	driver := Driver(getEnvOrDefault("DB_DRIVER", string(DriverPostgres)))
	switch driver {
	case DriverPostgres, DriverSQLite:
	default:
		return Config{}, fmt.Errorf("invalid DB_DRIVER %q: must be postgres or sqlite", driver)
	}

	port, err := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxOpen, _ := strconv.Atoi(getEnvOrDefault("DB_MAX_OPEN_CONNS", "10"))
	maxIdle, _ := strconv.Atoi(getEnvOrDefault("DB_MAX_IDLE_CONNS", "5"))

	return Config{
		Driver:          driver,
		Host:            getEnvOrDefault("DB_HOST", "localhost"),
		Port:            port,
		User:            getEnvOrDefault("DB_USER", "foundry"),
		Password:        os.Getenv("DB_PASSWORD"),
		Database:        getEnvOrDefault("DB_NAME", "foundry"),
		SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
		Path:            getEnvOrDefault("DB_PATH", "foundry.db"),
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
