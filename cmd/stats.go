package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Will-Wei7/iclr-analysis/authors"
	"github.com/Will-Wei7/iclr-analysis/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the label breakdown of the labeled author table",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f, err := os.Open(cfg.LabeledProfilesFile())
	if err != nil {
		return fmt.Errorf("opening labeled profiles (run the label stage first): %w", err)
	}
	defer f.Close()

	table, err := authors.ReadCSV(f)
	if err != nil {
		return err
	}

	report.Compute(table).Print(os.Stdout)
	return nil
}
