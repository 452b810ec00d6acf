// Package config handles configuration loading for the application tracker.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application tracker API.
type Config struct {
	Port        string
	Environment string

	DBDriver          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	DBPath            string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBAutoMigrate     bool

	JWTSecret string
	JWTExpiry time.Duration

	AllowedOrigins []string
}

// Load reads configuration from an optional .env file and the environment.
// Missing required values terminate the process.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := &Config{
		Port:        GetEnv("PORT", "3000"),
		Environment: GetEnv("ENVIRONMENT", "development"),

		DBDriver:          strings.ToLower(GetEnv("DB_DRIVER", DriverPostgres)),
		DBHost:            GetEnv("DB_HOST", "localhost"),
		DBPort:            GetEnv("DB_PORT", "8888"),
		DBName:            GetEnv("DB_NAME", "ApplicationTracker"),
		DBSSLMode:         GetEnv("DB_SSLMODE", "disable"),
		DBPath:            GetEnv("DB_PATH", "application_tracker.sqlite"),
		DBMaxOpenConns:    parseInt(GetEnv("DB_MAX_OPEN_CONNS", "10"), 10),
		DBMaxIdleConns:    parseInt(GetEnv("DB_MAX_IDLE_CONNS", "5"), 5),
		DBConnMaxLifetime: parseDuration(GetEnv("DB_CONN_MAX_LIFETIME", "30m"), 30*time.Minute),
		DBAutoMigrate:     parseBool(GetEnv("DB_AUTO_MIGRATE", "false")),

		JWTSecret: GetEnvRequired("JWT_SECRET"),
		JWTExpiry: parseDuration(GetEnv("JWT_EXPIRY", "24h"), 24*time.Hour),

		AllowedOrigins: splitList(GetEnv("CORS_ALLOWED_ORIGINS", "")),
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		cfg.DBUser = GetEnvRequired("DB_USER")
		cfg.DBPassword = GetEnvRequired("DB_PASSWORD")
	case DriverSQLite:
	default:
		log.Fatalf("Unsupported DB_DRIVER %q (expected %q or %q)", cfg.DBDriver, DriverPostgres, DriverSQLite)
	}

	return cfg
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// GetEnv returns the value of key or defaultValue when it is unset or blank.
func GetEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvRequired returns the value of key or exits when it is unset.
func GetEnvRequired(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return defaultValue
	}
	return duration
}

func parseInt(value string, defaultValue int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func parseBool(value string) bool {
	b, err := strconv.ParseBool(value)
	return err == nil && b
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
