package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"portfolio-backend/internal/infrastructure/database"
)

// envParser collects every malformed variable instead of stopping at the first.
type envParser struct {
	errs []error
}

func (p *envParser) int(key string, def int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("invalid %s: %w", key, err))
		return def
	}
	return v
}

func (p *envParser) duration(key string, def time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("invalid %s: %w", key, err))
		return def
	}
	return v
}

// LoadDatabaseConfig reads the Postgres settings (DB_*) from the environment.
// Only used with STORE_DRIVER=postgres.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	var p envParser

	cfg := &database.DBConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     p.int("DB_PORT", 5432),
		Username: getEnv("DB_USER", "portfolio"),
		Password: getEnv("DB_PASSWORD", "secret"),
		DBName:   getEnv("DB_NAME", "portfolio_dev"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),

		MaxConns:          int32(p.int("DB_MAX_CONNECTIONS", 10)),
		MinConns:          int32(p.int("DB_MIN_CONNECTIONS", 2)),
		MaxConnLifetime:   p.duration("DB_MAX_CONN_LIFETIME", 5*time.Minute),
		MaxConnIdleTime:   p.duration("DB_MAX_CONN_IDLE_TIME", time.Minute),
		HealthCheckPeriod: p.duration("DB_HEALTH_CHECK_PERIOD", time.Minute),

		MaxRetries:     p.int("DB_MAX_RETRIES", 5),
		RetryDelay:     p.duration("DB_RETRY_DELAY", time.Second),
		ConnectTimeout: p.duration("DB_CONNECT_TIMEOUT", 10*time.Second),
	}

	if err := errors.Join(p.errs...); err != nil {
		return nil, err
	}
	if cfg.MinConns > cfg.MaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNECTIONS (%d) exceeds DB_MAX_CONNECTIONS (%d)", cfg.MinConns, cfg.MaxConns)
	}
	return cfg, nil
}
