package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/voice-tasks/internal/fixture"
	"github.com/pdiddy/voice-tasks/internal/report"
	"github.com/pdiddy/voice-tasks/pkg/types"
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List the diary entries loaded from the fixture",
	Long: `Entries prints the entries parsed from the CSV fixture with their
user tags, emotion score, and a transcript preview. Use it to check how
the fixture was read before running extract.`,
	RunE: runEntries,
}

func runEntries(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	entries, err := fixture.NewLoader(logger.Named("fixture")).Load(cfg.Fixture.Path)
	if err != nil {
		return err
	}

	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	formatEntries(cmd.OutOrStdout(), entries)
	return nil
}

func formatEntries(w io.Writer, entries []types.VoiceEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-20s  %-7s  %s\n", "ID", "Tags", "Emotion", "Transcript")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, e := range entries {
		tags := report.Truncate(strings.Join(e.TagsUser, ","), 20)
		emotion := "-"
		if e.EmotionScore != nil {
			emotion = fmt.Sprintf("%.2f", *e.EmotionScore)
		}
		fmt.Fprintf(w, "%-4s  %-20s  %-7s  %s\n", e.ID, tags, emotion, report.Truncate(e.TranscriptUser, 60))
	}

	fmt.Fprintf(w, "\n%d entries\n", len(entries))
}

func init() {
	entriesCmd.Flags().Int("limit", 0, "maximum entries to list (0 = all)")

	rootCmd.AddCommand(entriesCmd)
}
