// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TaskStatus tracks whether an extracted task is done.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

// CategoryGeneral is the only category the heuristic extractor assigns.
const CategoryGeneral = "general"

// Task is a to-do item extracted from a transcript.
type Task struct {
	// Text is the action with the timeframe token removed.
	Text string `json:"text" yaml:"text"`

	// DueDate is the timeframe token as it appeared in the transcript
	// (e.g. "tomorrow", "this week", "thursday"). Nil when none was found.
	DueDate *string `json:"dueDate" yaml:"due_date"`

	Status TaskStatus `json:"status" yaml:"status"`

	Category string `json:"category" yaml:"category"`
}

// ExtractionResult holds the output of one extraction pass over a set of entries.
type ExtractionResult struct {
	// Tasks are ordered by the position of their source entry.
	Tasks []Task `json:"tasks" yaml:"tasks"`

	// TagFrequencies maps a tag name to its count. Always empty for now.
	TagFrequencies map[string]int `json:"tagFrequencies" yaml:"tag_frequencies"`
}
