package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultPoolSize is the number of pooled database connections opened at startup
const DefaultPoolSize = 5

// Config holds all runtime settings, sourced from the environment
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	PoolSize   int
	HTTPPort   string
	LogLevel   string
	LogFormat  string
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	poolSize, err := strconv.Atoi(getEnv("DB_POOL_SIZE", strconv.Itoa(DefaultPoolSize)))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_POOL_SIZE: %w", err)
	}

	cfg := Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "nba"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		PoolSize:   poolSize,
		HTTPPort:   getEnv("HTTP_PORT", "5000"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "json"),
	}

	return cfg, cfg.Validate()
}

// Validate checks the settings that cannot have a sensible fallback
func (c Config) Validate() error {
	if c.DBHost == "" {
		return errors.New("DB_HOST must not be empty")
	}
	if c.DBName == "" {
		return errors.New("DB_NAME must not be empty")
	}
	if c.PoolSize <= 0 {
		return fmt.Errorf("DB_POOL_SIZE must be positive, got %d", c.PoolSize)
	}
	return nil
}

// DSN returns a lib/pq key/value connection string
func (c Config) DSN() string {
	parts := []string{
		"host=" + quoteDSN(c.DBHost),
		"port=" + quoteDSN(c.DBPort),
		"user=" + quoteDSN(c.DBUser),
		"dbname=" + quoteDSN(c.DBName),
		"sslmode=" + quoteDSN(c.DBSSLMode),
	}
	if c.DBPassword != "" {
		parts = append(parts, "password="+quoteDSN(c.DBPassword))
	}
	return strings.Join(parts, " ")
}

// quoteDSN wraps a value in single quotes when it is empty or contains
// characters that are significant to the key/value DSN parser.
func quoteDSN(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
