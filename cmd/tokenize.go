package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Will-Wei7/iclr-analysis/authors"
	"github.com/Will-Wei7/iclr-analysis/papers"
	"github.com/Will-Wei7/iclr-analysis/tokenize"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize",
	Short: "Tokenize abstracts into per-group parquet files",
	Long: `Segment every merged paper's abstract into sentences of tokens and
write three parquet files per year: all papers, English-speaker first
authors, and non-English-speaker first authors. Abstracts shorter than
50 characters and sentences of 5 or fewer tokens are dropped.`,
	RunE: runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.TokenizedDir(), 0o755); err != nil {
		return fmt.Errorf("creating tokenized output directory: %w", err)
	}

	groups := []struct {
		suffix string
		keep   func(papers.LabeledPaper) bool
	}{
		{"", func(papers.LabeledPaper) bool { return true }},
		{"_english", func(p papers.LabeledPaper) bool { return p.Speaker == authors.EnglishSpeaking }},
		{"_non_english", func(p papers.LabeledPaper) bool { return p.Speaker == authors.NonEnglishSpeaking }},
	}

	for _, year := range cfg.Years {
		path := cfg.MergedFile(year)
		f, err := os.Open(path)
		if err != nil {
			slog.Warn("merged file not found, skipping year", "year", year, "path", path)
			continue
		}
		merged, err := papers.ReadMergedCSV(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("reading merged file for %d: %w", year, err)
		}

		for _, group := range groups {
			var selected []papers.LabeledPaper
			for _, p := range merged {
				if group.keep(p) {
					selected = append(selected, p)
				}
			}

			rows := tokenize.Rows(selected)
			if len(rows) == 0 {
				slog.Info("no tokenizable abstracts", "year", year, "group", group.suffix)
				continue
			}

			out := cfg.TokenizedFile(year, group.suffix)
			if err := tokenize.WriteParquet(out, rows); err != nil {
				return err
			}
			slog.Info("wrote tokenized sentences",
				"year", year,
				"group", group.suffix,
				"papers", len(selected),
				"sentences", len(rows),
				"path", out)
		}
	}

	return nil
}
