package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Will-Wei7/iclr-analysis/authors"
	"github.com/Will-Wei7/iclr-analysis/classify"
	"github.com/Will-Wei7/iclr-analysis/refdata"
	"github.com/Will-Wei7/iclr-analysis/report"
)

var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "Classify authors as English speakers from country evidence",
	Long: `Resolve each author's countries of education from institution names,
email domains, and self-reported location, then assign the tri-state
English-speaker label via TOEFL exemption status.

Authors that already carry a valid label keep it, as long as the stored
country data is intact; rows with a label but no country data are reset
to unknown. Re-running this stage on its own output is a no-op.`,
	RunE: runLabel,
}

func runLabel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ref, err := refdata.Load(cfg.UniversitiesFile, cfg.TOEFLFile)
	if err != nil {
		return err
	}

	in, err := os.Open(cfg.AuthorProfilesFile())
	if err != nil {
		return fmt.Errorf("opening author profiles (run the profiles stage first): %w", err)
	}
	table, err := authors.ReadCSV(in)
	in.Close()
	if err != nil {
		return err
	}
	slog.Info("loaded author profiles", "authors", table.Len())

	classify.NewEngine(ref).Process(table)

	out, err := os.Create(cfg.LabeledProfilesFile())
	if err != nil {
		return fmt.Errorf("creating labeled profiles file: %w", err)
	}
	defer out.Close()
	if err := authors.WriteCSV(out, table); err != nil {
		return err
	}

	slog.Info("wrote labeled profiles", "path", cfg.LabeledProfilesFile())
	report.Compute(table).Print(os.Stdout)

	return nil
}
