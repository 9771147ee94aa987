// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract finds to-do style tasks in diary transcripts using
// cue-phrase heuristics. Each entry yields at most one task.
package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/voice-tasks/pkg/types"
)

// planningCues introduce an intention ("going to paint the fence").
// They are tried before actionCues.
var planningCues = []string{
	"planning to",
	"going to",
	"will",
	"want to",
	"intend to",
}

// actionCues are first-person phrases that precede an action.
// "i'll be" never wins over "i'll"; the order is kept as listed.
var actionCues = []string{
	"i'm",
	"i am",
	"i have",
	"i'll",
	"i would",
	"i'll be",
	"i've",
}

// timeframeTokens are literal timeframes recognised as due dates. Any
// single word ending in "day" (weekdays, "someday") also counts.
var timeframeTokens = []string{
	"this week",
	"next week",
	"weekend",
	"tomorrow",
	"tonight",
	"today",
	"later this week",
	"over the next few days",
	"sometime this week",
}

// cuePatterns holds the compiled cue tables in priority order. Group 1
// of each pattern is the candidate action.
var cuePatterns = []*regexp.Regexp{
	cuePattern(planningCues),
	cuePattern(actionCues),
}

var timeframePattern = regexp.MustCompile(`(?i)\b(` + alternation(timeframeTokens) + `|\b\w+day\b)\b`)

// pastTimeframes match the timeframe pattern but never name a due date
// when they lead the sentence.
var pastTimeframes = map[string]bool{
	"yesterday": true,
}

// space separates a cue from its action: ASCII whitespace plus Unicode
// separators such as U+00A0.
const space = `[\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}]`

func cuePattern(cues []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:` + alternation(cues) + `)` + space + `+(.+)`)
}

// alternation joins literals into a regexp alternation, keeping their order.
func alternation(literals []string) string {
	quoted := make([]string, len(literals))
	for i, l := range literals {
		quoted[i] = regexp.QuoteMeta(l)
	}
	return strings.Join(quoted, "|")
}

// ProcessEntries extracts at most one task per entry, in input order.
// Entries without a planning or first-person cue are ignored. It never
// fails and keeps no state between calls.
func ProcessEntries(entries []types.VoiceEntry) types.ExtractionResult {
	tasks := []types.Task{}
	for _, entry := range entries {
		if task, ok := extractTask(entry.TranscriptUser); ok {
			tasks = append(tasks, task)
		}
	}

	return types.ExtractionResult{
		Tasks:          tasks,
		TagFrequencies: tagFrequencies(entries),
	}
}

// extractTask tries each cue pattern in priority order. A pattern whose
// action is empty once the timeframe is removed gives way to the next.
func extractTask(transcript string) (types.Task, bool) {
	text := strings.ToLower(transcript)

	for _, p := range cuePatterns {
		m := p.FindStringSubmatchIndex(text)
		if m == nil {
			continue
		}

		action, due := extractTimeframe(text[m[2]:m[3]])
		if action == "" {
			continue
		}
		if due == nil {
			// The timeframe often leads the sentence ("tomorrow i'm ...").
			due = leadingTimeframe(text[:m[0]])
		}

		return types.Task{
			Text:     action,
			DueDate:  due,
			Status:   types.TaskPending,
			Category: types.CategoryGeneral,
		}, true
	}

	return types.Task{}, false
}

// findTimeframe returns the leftmost timeframe token in s.
func findTimeframe(s string) (string, bool) {
	tf := timeframePattern.FindString(s)
	return tf, tf != ""
}

// leadingTimeframe returns the first timeframe in the text before a cue,
// skipping past-tense words such as "yesterday".
func leadingTimeframe(lead string) *string {
	for _, tf := range timeframePattern.FindAllString(lead, -1) {
		if !pastTimeframes[tf] {
			return &tf
		}
	}
	return nil
}

// extractTimeframe splits an action string into the action text and its
// timeframe. The first occurrence of the matched token is stripped,
// wherever it sits in the string.
func extractTimeframe(action string) (string, *string) {
	tf, ok := findTimeframe(action)
	if !ok {
		return strings.TrimSpace(action), nil
	}
	return strings.TrimSpace(strings.Replace(action, tf, "", 1)), &tf
}

// tagFrequencies is where tag aggregation belongs. How tags should be
// counted (tags_user, tags_model, or both) is not defined yet, so the
// result is always an empty map.
func tagFrequencies(_ []types.VoiceEntry) map[string]int {
	return map[string]int{}
}
