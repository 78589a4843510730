// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      int
	LogLevel  string
	LogPretty bool
	DevMode   bool

	SeedFile string // YAML holdings/news seed; built-in fixtures when empty

	News   NewsConfig
	Report ReportConfig

	RiskFreeRate            float64 // annual, decimal
	PerformanceSeed         int64
	DailyChangePercent      float64
	MonthlyContributionGoal float64
	MaxDrawdownLimit        float64 // percent
}

// NewsConfig holds feed import settings
type NewsConfig struct {
	FeedURLs        []string
	RefreshSchedule string // cron spec
}

// ReportConfig holds intelligence report settings
type ReportConfig struct {
	GeminiAPIKey  string
	GeminiModel   string
	RatePerMinute int
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnvAsInt("FOLIO_PORT", 8080),
		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogPretty: getEnvAsBool("LOG_PRETTY", true),
		DevMode:   getEnvAsBool("DEV_MODE", false),
		SeedFile:  getEnv("FOLIO_SEED_FILE", ""),
		News: NewsConfig{
			FeedURLs:        getEnvAsList("NEWS_FEED_URLS"),
			RefreshSchedule: getEnv("NEWS_REFRESH_SCHEDULE", "@every 30m"),
		},
		Report: ReportConfig{
			GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
			GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			RatePerMinute: getEnvAsInt("REPORT_RATE_PER_MINUTE", 6),
		},
		RiskFreeRate:            getEnvAsFloat("RISK_FREE_RATE", 0.0),
		PerformanceSeed:         int64(getEnvAsInt("PERFORMANCE_SEED", 42)),
		DailyChangePercent:      getEnvAsFloat("DAILY_CHANGE_PERCENT", 1.24),
		MonthlyContributionGoal: getEnvAsFloat("MONTHLY_CONTRIBUTION_GOAL", 700),
		MaxDrawdownLimit:        getEnvAsFloat("MAX_DRAWDOWN_LIMIT", 20),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid FOLIO_PORT %d: must be between 1 and 65535", c.Port)
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid LOG_LEVEL %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	if c.Report.RatePerMinute <= 0 {
		return fmt.Errorf("invalid REPORT_RATE_PER_MINUTE %d: must be greater than 0", c.Report.RatePerMinute)
	}
	if c.MonthlyContributionGoal < 0 {
		return fmt.Errorf("invalid MONTHLY_CONTRIBUTION_GOAL %v: must not be negative", c.MonthlyContributionGoal)
	}
	if c.MaxDrawdownLimit <= 0 {
		return fmt.Errorf("invalid MAX_DRAWDOWN_LIMIT %v: must be greater than 0", c.MaxDrawdownLimit)
	}
	return nil
}

// GeminiEnabled reports whether the Gemini report generator is configured
func (c *Config) GeminiEnabled() bool {
	return c.Report.GeminiAPIKey != ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
