package cmd

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Will-Wei7/iclr-analysis/papers"
)

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Extract unique first authors from the paper files",
	Long: `Read every configured per-year paper file and collect the distinct
first authors, keeping the first occurrence across years. Years whose
paper file is missing are skipped with a warning.`,
	RunE: runAuthors,
}

func runAuthors(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var yearSets [][]papers.Paper
	total := 0
	for _, year := range cfg.Years {
		path := cfg.PaperFile(year)
		if _, err := os.Stat(path); err != nil {
			slog.Warn("paper file not found, skipping year", "year", year, "path", path)
			continue
		}

		set, err := papers.Read(path)
		if err != nil {
			return fmt.Errorf("reading papers for %d: %w", year, err)
		}
		slog.Info("loaded papers", "year", year, "count", len(set))
		total += len(set)
		yearSets = append(yearSets, set)
	}

	names := papers.UniqueFirstAuthors(yearSets...)
	if len(names) == 0 {
		return fmt.Errorf("no first authors found; check that the paper files exist under %s", cfg.DataDir)
	}
	slog.Info("extracted unique first authors", "papers", total, "authors", len(names))

	f, err := os.Create(cfg.UniqueAuthorsFile())
	if err != nil {
		return fmt.Errorf("creating unique authors file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"author_name"}); err != nil {
		return fmt.Errorf("writing unique authors header: %w", err)
	}
	for _, name := range names {
		if err := writer.Write([]string{name}); err != nil {
			return fmt.Errorf("writing author name: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	slog.Info("wrote unique authors file", "path", cfg.UniqueAuthorsFile())
	return nil
}
