package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Will-Wei7/iclr-analysis/authors"
	"github.com/Will-Wei7/iclr-analysis/papers"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Join per-year paper tables with author language labels",
	Long: `For each configured year, join the paper table to the labeled author
table by first author name and write iclr_{year}_with_language.csv.
Papers whose first author has no profile default to the unknown label.`,
	RunE: runMerge,
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	in, err := os.Open(cfg.LabeledProfilesFile())
	if err != nil {
		return fmt.Errorf("opening labeled profiles (run the label stage first): %w", err)
	}
	table, err := authors.ReadCSV(in)
	in.Close()
	if err != nil {
		return err
	}
	slog.Info("loaded labeled profiles", "authors", table.Len())

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

		merged := papers.Merge(set, table)

		matched := 0
		for _, p := range merged {
			if p.Speaker.Valid() {
				matched++
			}
		}

		out, err := os.Create(cfg.MergedFile(year))
		if err != nil {
			return fmt.Errorf("creating merged file for %d: %w", year, err)
		}
		if err := papers.WriteMergedCSV(out, merged); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return fmt.Errorf("closing merged file for %d: %w", year, err)
		}

		slog.Info("merged year", "year", year, "papers", len(merged), "withLabel", matched, "path", cfg.MergedFile(year))
	}

	return nil
}
