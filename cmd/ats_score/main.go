// Package main provides the ats_score CLI for scoring resumes against job descriptions.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/observability"
)

var rootCmd = &cobra.Command{
	Use:               "ats_score",
	Short:             "ATS resume scoring engine",
	Long:              "ats_score rates how well a structured resume would perform in an applicant tracking system, optionally against a job description.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	configPath  string
	logJSON     bool
	debug       bool
	metricsFile string
)

// Process-wide state built in setup
var (
	cfg     *config.Config
	logger  = zap.NewNop()
	metrics *observability.Metrics
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./ats.yaml when present)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit")
}

func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-json") {
		loaded.Log.JSON = logJSON
	}
	if flags.Changed("debug") {
		loaded.Log.Debug = debug
	}
	if flags.Changed("metrics-file") {
		loaded.Metrics.File = metricsFile
	}

	l, err := observability.NewLogger(loaded.Log.JSON, loaded.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	cfg = loaded
	logger = l
	metrics = observability.NewMetrics()
	return nil
}

// teardown flushes metrics and logs. It runs even when the command failed.
func teardown() {
	if cfg != nil && cfg.Metrics.File != "" {
		if err := metrics.WriteToTextfile(cfg.Metrics.File); err != nil {
			logger.Warn("failed to write metrics", zap.String("path", cfg.Metrics.File), zap.Error(err))
		}
	}
	_ = logger.Sync()
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	teardown()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
