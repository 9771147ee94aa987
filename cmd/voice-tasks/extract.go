package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/voice-tasks/internal/extract"
	"github.com/pdiddy/voice-tasks/internal/fixture"
	"github.com/pdiddy/voice-tasks/internal/report"
)

var extractCmd = &cobra.Command{
	Use:   "extract [fixture.csv]",
	Short: "Extract tasks from the diary entries in a CSV fixture",
	Long: `Extract loads diary entries from a CSV fixture, finds at most one task
per entry, and writes a report with the tasks and run summary. The report
goes to stdout unless --output is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		viper.Set("fixture.path", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	entries, err := fixture.NewLoader(logger.Named("fixture")).Load(cfg.Fixture.Path)
	if err != nil {
		return err
	}

	result := extract.ProcessEntries(entries)
	rep := report.New(cfg.Fixture.Path, entries, result)

	logger.Info("extraction complete",
		zap.String("run_id", rep.RunID),
		zap.Int("entries", rep.Summary.Entries),
		zap.Int("tasks", rep.Summary.Tasks),
		zap.Int("ignored", rep.Summary.Ignored),
	)

	if cfg.Output.File == "" {
		return rep.Write(cmd.OutOrStdout(), cfg.Output.Format)
	}

	if err := report.WriteFile(cfg.Output.File, rep, cfg.Output.Format); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d tasks to %s\n", rep.Summary.Tasks, cfg.Output.File)
	return nil
}

func init() {
	extractCmd.Flags().String("format", "yaml", "report format: yaml, json, or table")
	extractCmd.Flags().StringP("output", "o", "", "write the report to this file instead of stdout")

	_ = viper.BindPFlag("output.format", extractCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output.file", extractCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(extractCmd)
}
