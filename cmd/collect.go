package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Will-Wei7/iclr-analysis/config"
	"github.com/Will-Wei7/iclr-analysis/openreview"
	"github.com/Will-Wei7/iclr-analysis/papers"
)

var collectYear int

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Fetch ICLR submissions from OpenReview into per-year files",
	Long: `Fetch submission metadata (title, abstract, authors, decision, review
scores) for the configured conference years. 2018-2023 use API v1
invitations; 2024 onward use API v2 venue ids.

This stage is long-running and is not part of the pipeline command; run
it separately per year when the paper files need refreshing.`,
	RunE: runCollect,
}

func init() {
	collectCmd.Flags().IntVar(&collectYear, "year", 0, "Fetch a single year (default: all configured years)")
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	years := cfg.Years
	if collectYear != 0 {
		years = []int{collectYear}
	}

	client := newClient(cfg)

	for _, year := range years {
		slog.Info("fetching submissions", "year", year)

		all, err := client.Notes(cmd.Context(), year)
		if err != nil {
			return fmt.Errorf("fetching year %d: %w", year, err)
		}
		slog.Info("fetched submissions", "year", year, "papers", len(all))

		path := cfg.PaperFile(year)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating paper file: %w", err)
		}
		if err := papers.WriteCSV(f, all); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing paper file: %w", err)
		}
		slog.Info("wrote paper file", "path", path)
	}

	return nil
}

func newClient(cfg *config.Config) *openreview.Client {
	client := openreview.NewClient()
	if cfg.API.V1BaseURL != "" {
		client.V1BaseURL = cfg.API.V1BaseURL
	}
	if cfg.API.V2BaseURL != "" {
		client.V2BaseURL = cfg.API.V2BaseURL
	}
	client.RateDelay = time.Duration(cfg.API.RateLimitMillis) * time.Millisecond
	return client
}
