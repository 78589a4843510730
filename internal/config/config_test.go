package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"FOLIO_PORT", "LOG_LEVEL", "NEWS_FEED_URLS", "GEMINI_API_KEY", "REPORT_RATE_PER_MINUTE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "@every 30m", cfg.News.RefreshSchedule)
	assert.Empty(t, cfg.News.FeedURLs)
	assert.Equal(t, "gemini-2.0-flash", cfg.Report.GeminiModel)
	assert.Equal(t, 6, cfg.Report.RatePerMinute)
	assert.False(t, cfg.GeminiEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("FOLIO_PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("NEWS_FEED_URLS", " https://a.example/rss , ,https://b.example/atom")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("DAILY_CHANGE_PERCENT", "-0.5")
	t.Setenv("PERFORMANCE_SEED", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example/rss", "https://b.example/atom"}, cfg.News.FeedURLs)
	assert.True(t, cfg.GeminiEnabled())
	assert.Equal(t, -0.5, cfg.DailyChangePercent)
	assert.Equal(t, int64(7), cfg.PerformanceSeed)
}

func TestLoad_InvalidValueFallsBackToDefault(t *testing.T) {
	t.Setenv("FOLIO_PORT", "not-a-number")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REPORT_RATE_PER_MINUTE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:                    8080,
			LogLevel:                "info",
			Report:                  ReportConfig{RatePerMinute: 6},
			MonthlyContributionGoal: 700,
			MaxDrawdownLimit:        20,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"port zero", func(c *Config) { c.Port = 0 }, "FOLIO_PORT"},
		{"port too high", func(c *Config) { c.Port = 70000 }, "FOLIO_PORT"},
		{"unknown level", func(c *Config) { c.LogLevel = "trace" }, "LOG_LEVEL"},
		{"zero rate", func(c *Config) { c.Report.RatePerMinute = 0 }, "REPORT_RATE_PER_MINUTE"},
		{"negative goal", func(c *Config) { c.MonthlyContributionGoal = -1 }, "MONTHLY_CONTRIBUTION_GOAL"},
		{"zero drawdown limit", func(c *Config) { c.MaxDrawdownLimit = 0 }, "MAX_DRAWDOWN_LIMIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
