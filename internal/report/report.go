// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders an extraction result with the metadata of the
// run that produced it.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/voice-tasks/pkg/types"
)

// Report is the on-disk representation of one extraction run.
type Report struct {
	RunID       string                 `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time              `json:"generated_at" yaml:"generated_at"`
	Source      string                 `json:"source" yaml:"source"`
	Summary     Summary                `json:"summary" yaml:"summary"`
	Result      types.ExtractionResult `json:"result" yaml:"result"`
}

// Summary holds counts for the run.
type Summary struct {
	Entries     int `json:"entries" yaml:"entries"`
	Tasks       int `json:"tasks" yaml:"tasks"`
	Ignored     int `json:"ignored" yaml:"ignored"`
	WithDueDate int `json:"with_due_date" yaml:"with_due_date"`
}

// now is overridden in tests.
var now = time.Now

// New builds a report for result, extracted from entries read at source.
func New(source string, entries []types.VoiceEntry, result types.ExtractionResult) *Report {
	summary := Summary{
		Entries: len(entries),
		Tasks:   len(result.Tasks),
		Ignored: len(entries) - len(result.Tasks),
	}
	for _, t := range result.Tasks {
		if t.DueDate != nil {
			summary.WithDueDate++
		}
	}

	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: now().UTC(),
		Source:      source,
		Summary:     summary,
		Result:      result,
	}
}

// Write renders the report to w in the given format.
func (r *Report) Write(w io.Writer, format types.OutputFormat) error {
	switch format {
	case types.OutputYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	case types.OutputTable:
		return r.writeTable(w)
	default:
		return fmt.Errorf("unsupported format %q: use yaml, json, or table", format)
	}
}

func (r *Report) writeTable(w io.Writer) error {
	if len(r.Result.Tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks found.")
		return err
	}

	fmt.Fprintf(w, "%-4s  %-50s  %-22s  %s\n", "#", "Task", "Due", "Status")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for i, t := range r.Result.Tasks {
		text := Truncate(t.Text, 50)
		due := "-"
		if t.DueDate != nil {
			due = *t.DueDate
		}
		fmt.Fprintf(w, "%-4d  %-50s  %-22s  %s\n", i+1, text, due, t.Status)
	}

	_, err := fmt.Fprintf(w, "\n%d tasks from %d entries (%d ignored)\n",
		r.Summary.Tasks, r.Summary.Entries, r.Summary.Ignored)
	return err
}

// Truncate shortens s to at most width runes, ending it with "..." when
// anything was cut.
func Truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	if width <= 3 {
		return string([]rune(s)[:width])
	}
	return string([]rune(s)[:width-3]) + "..."
}

// WriteFile renders the report to path, replacing any existing file.
func WriteFile(path string, r *Report, format types.OutputFormat) error {
	var sb strings.Builder
	if err := r.Write(&sb, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
