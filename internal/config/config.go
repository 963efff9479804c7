// Package config handles application configuration and environment loading.
package config

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the settings of the result-table service.
type Config struct {
	ListenAddr   string // HTTP listen address (default ":8080")
	MetaDBPath   string // path to the SQLite metadata file (templates, history)
	GenomeDBPath string // path to the DuckDB warehouse file; "" means in-memory
	SeedDemoData bool   // create and populate the demo genomic tables on startup
	LogLevel     string // debug, info, warn, error (default "info")
	Env          string // "development" (default) or "production"

	// Result table lifecycle.
	TableTTL        time.Duration // idle lifetime of a registered table (default 30m)
	SweepSchedule   string        // cron spec for the expiry sweep (default "@every 5m")
	MaxPageSize     int           // upper bound accepted for page-size changes (default 1000)
	EngineBatchRows int           // rows fetched per engine batch (default 100)

	// Rate limiting.
	RateLimitRPS   float64 // sustained requests per second (default 100)
	RateLimitBurst int     // burst capacity (default 200)

	// CORS.
	CORSAllowedOrigins []string // allowed origins (default: ["*"])

	// Warnings collects non-fatal notes from loading, logged once the
	// logger exists.
	Warnings []string
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// LoadFromEnv loads configuration from environment variables, applying
// defaults for anything unset.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		ListenAddr:    os.Getenv("LISTEN_ADDR"),
		MetaDBPath:    os.Getenv("META_DB_PATH"),
		GenomeDBPath:  os.Getenv("GENOME_DB_PATH"),
		SeedDemoData:  parseBoolEnvDefault("SEED_DEMO_DATA", true),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		Env:           os.Getenv("ENV"),
		SweepSchedule: os.Getenv("TABLE_SWEEP_SCHEDULE"),
	}

	if v := os.Getenv("TABLE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("TABLE_TTL: %w", err)
		}
		cfg.TableTTL = d
	}
	if v := os.Getenv("MAX_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxPageSize = n
		}
	}
	if v := os.Getenv("ENGINE_BATCH_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.EngineBatchRows = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimitRPS = f
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitBurst = n
		}
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORSAllowedOrigins = origins
	}

	// Defaults.
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.MetaDBPath == "" {
		cfg.MetaDBPath = "biomine_meta.sqlite"
	}
	if cfg.GenomeDBPath == "" {
		cfg.Warnings = append(cfg.Warnings, "GENOME_DB_PATH not set — using an in-memory DuckDB that is lost on shutdown")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.TableTTL == 0 {
		cfg.TableTTL = 30 * time.Minute
	}
	if cfg.SweepSchedule == "" {
		cfg.SweepSchedule = "@every 5m"
	}
	if cfg.MaxPageSize == 0 {
		cfg.MaxPageSize = 1000
	}
	if cfg.EngineBatchRows == 0 {
		cfg.EngineBatchRows = 100
	}
	if cfg.RateLimitRPS == 0 {
		cfg.RateLimitRPS = 100
	}
	if cfg.RateLimitBurst == 0 {
		cfg.RateLimitBurst = 200
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	// Production mode: insecure defaults are fatal.
	if cfg.IsProduction() {
		if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
			return nil, fmt.Errorf("CORS wildcard (*) is not allowed in production (ENV=production)")
		}
		if cfg.GenomeDBPath == "" {
			return nil, fmt.Errorf("GENOME_DB_PATH must be set in production (ENV=production)")
		}
	}

	return cfg, nil
}

func parseBoolEnvDefault(key string, defaultVal bool) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	switch v {
	case "":
		return defaultVal
	case "0", "false", "no", "off":
		return false
	case "1", "true", "yes", "on":
		return true
	}
	return defaultVal
}

// LoadDotEnv reads a .env file and sets any variables not already in the
// environment. Lines must be KEY=VALUE; comments (#) and blanks are skipped.
func LoadDotEnv(path string) error {
	f, err := os.Open(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = stripQuotes(strings.TrimSpace(value))
		// Real environment variables take precedence.
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("setenv %s: %w", key, err)
			}
		}
	}
	return scanner.Err()
}

// stripQuotes removes matching surrounding double or single quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
