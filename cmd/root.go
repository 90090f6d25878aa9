// Package cmd provides the CLI commands for the ICLR author-language
// pipeline. Each pipeline stage is its own subcommand; pipeline chains
// them.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Will-Wei7/iclr-analysis/config"
)

var configFile string

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "iclr-analysis",
	Short: "Build the ICLR author-language research dataset",
	Long: `iclr-analysis builds a dataset correlating ICLR paper metadata with the
linguistic background of each paper's first author.

It scrapes submissions and author profiles from OpenReview, infers each
first author's likely countries of education from institution names and
email domains, labels authors as probable English speakers via TOEFL
exemption status, and tokenizes abstracts for text analysis.

Stages run individually or chained:
  iclr-analysis collect --year 2022
  iclr-analysis authors
  iclr-analysis profiles
  iclr-analysis label
  iclr-analysis merge
  iclr-analysis tokenize
  iclr-analysis pipeline`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return cfg, nil
}

func init() {
	setupLogger()
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Pipeline config YAML file")
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(authorsCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(labelCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(pipelineCmd)
}
