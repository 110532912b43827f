// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/notifier.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Sport registry
// --------------------------------------------------------------------------

type SportConfig struct {
	ID          string
	Name        string
	Periods     int    // regulation periods/halves/stages
	PeriodLabel string // display label for boundary markers
}

var SportRegistry = map[string]SportConfig{
	"HOCKEY":   {ID: "HOCKEY", Name: "Ice Hockey", Periods: 3, PeriodLabel: "Period"},
	"FOOTBALL": {ID: "FOOTBALL", Name: "Football", Periods: 2, PeriodLabel: "Half"},
	"BIATHLON": {ID: "BIATHLON", Name: "Biathlon", Periods: 4, PeriodLabel: "Shooting"},
}

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Upstream feed
	FeedBaseURL       string
	FeedAPIKey        string
	FeedRatePerMinute int

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Cache
	CacheEnabled bool

	// Notifier
	PollInterval time.Duration
	RetryWindow  time.Duration
	SeenFilePath string
	PushEndpoint string
	PushAPIKey   string
	MetricsAddr  string

	// Seen-set backends (file store is the default when both are empty)
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration
	RedisURL       string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	feedURL := envOr("FEED_BASE_URL", "")
	if feedURL == "" {
		return nil, fmt.Errorf("FEED_BASE_URL must be set")
	}

	return &Config{
		FeedBaseURL:       feedURL,
		FeedAPIKey:        envOr("FEED_API_KEY", ""),
		FeedRatePerMinute: envInt("FEED_RATE_PER_MINUTE", 60),

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled: envBool("CACHE_ENABLED", true),

		PollInterval: time.Duration(envInt("POLL_INTERVAL_SECONDS", 300)) * time.Second,
		RetryWindow:  time.Duration(envInt("RETRY_WINDOW_HOURS", 24)) * time.Hour,
		SeenFilePath: envOr("SEEN_FILE_PATH", "seen_games.txt"),
		PushEndpoint: envOr("PUSH_ENDPOINT", ""),
		PushAPIKey:   envOr("PUSH_API_KEY", ""),
		MetricsAddr:  envOr("METRICS_ADDR", ":9108"),

		DatabaseURL:    envOr("DATABASE_URL", ""),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,
		RedisURL:       envOr("REDIS_URL", ""),
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
