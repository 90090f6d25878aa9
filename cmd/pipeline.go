package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run the full pipeline: authors, profiles, label, merge, tokenize",
	Long: `Run the processing stages in order over previously collected paper
files. The collect stage is not included; run it separately, since
fetching whole conference years is slow and rarely needs repeating.`,
	RunE: runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	stages := []struct {
		name string
		run  func(*cobra.Command, []string) error
	}{
		{"authors", runAuthors},
		{"profiles", runProfiles},
		{"label", runLabel},
		{"merge", runMerge},
		{"tokenize", runTokenize},
	}

	for _, stage := range stages {
		slog.Info("pipeline stage starting", "stage", stage.name)
		if err := stage.run(cmd, args); err != nil {
			return err
		}
		slog.Info("pipeline stage complete", "stage", stage.name)
	}

	return nil
}
