// Package main is the entry point for folio, the portfolio dashboard backend.
//
// Commands:
//   - serve: HTTP API, event streams and background jobs
//   - view: print the computed portfolio view
//   - report: print the intelligence report
package main

import (
	"fmt"
	"os"

	"github.com/aristath/folio/internal/config"
	"github.com/aristath/folio/internal/di"
	"github.com/aristath/folio/pkg/logger"
	"github.com/spf13/cobra"
)

var logLevel string

// rootCmd is the base command for the folio CLI
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Investment portfolio dashboard backend",
	Long: `folio tracks a set of holdings and serves derived metrics, sector and
geography allocations, portfolio totals, performance KPIs and an
intelligence report over HTTP.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override: debug, info, warn, error")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies the --log-level flag
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// wireForCommand builds the container for one-shot commands. Logs go to stderr
// so stdout carries only the command output.
func wireForCommand() (*di.Container, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	})

	container, err := di.Wire(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to wire dependencies: %w", err)
	}
	return container, nil
}
