// Package config loads server settings from the environment.
//
// Values come from real environment variables, optionally seeded from a
// .env file in the working directory (variables already set win). Every
// setting has a default, so a bare `go run ./cmd/server` works.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port             int
	DBDriver         string // "sqlite" or "postgres"
	DBPath           string // SQLite file, used when DBDriver is sqlite
	DatabaseURL      string // Postgres DSN, used when DBDriver is postgres
	MaxContentLength int
	StrictLikes      bool
	LogLevel         slog.Level
	CORSOrigins      []string
}

// Load reads .env (if present) and the environment.
// envFiles overrides the default ".env"; a missing file is not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: loading %s: %w", f, err)
		}
	}

	cfg := Config{
		DBDriver:    getEnv("DB_DRIVER", DriverSQLite),
		DBPath:      getEnv("DB_PATH", "data/confessionwall.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	var err error
	if cfg.Port, err = getInt("PORT", 8080); err != nil {
		return Config{}, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("config: PORT %d out of range", cfg.Port)
	}

	if cfg.MaxContentLength, err = getInt("MAX_CONTENT_LENGTH", 500); err != nil {
		return Config{}, err
	}
	if cfg.MaxContentLength <= 0 {
		return Config{}, fmt.Errorf("config: MAX_CONTENT_LENGTH must be positive, got %d", cfg.MaxContentLength)
	}

	if cfg.StrictLikes, err = getBool("STRICT_LIKES", false); err != nil {
		return Config{}, err
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("config: invalid LOG_LEVEL: %w", err)
	}

	switch cfg.DBDriver {
	case DriverSQLite:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("config: DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return Config{}, fmt.Errorf("config: unknown DB_DRIVER %q (want sqlite or postgres)", cfg.DBDriver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s value %q", key, v)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: invalid %s value %q", key, v)
	}
	return b, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
