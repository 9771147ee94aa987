package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/voice-tasks/pkg/types"
)

func entry(transcript string) types.VoiceEntry {
	return types.VoiceEntry{
		ID:             "1",
		UserID:         "mock",
		TranscriptRaw:  transcript,
		TranscriptUser: transcript,
		TagsUser:       []string{"reflection"},
	}
}

func ptr(s string) *string { return &s }

// --- ProcessEntries ---

func TestProcessEntries(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		wantText   string
		wantDue    *string
	}{
		{
			name:       "planning cue with trailing timeframe",
			transcript: "Planning to visit my grandmother later this week",
			wantText:   "visit my grandmother",
			wantDue:    ptr("later this week"),
		},
		{
			name:       "leading timeframe before planning cue",
			transcript: "Tomorrow I'm going to the dentist",
			wantText:   "the dentist",
			wantDue:    ptr("tomorrow"),
		},
		{
			name:       "weekend before planning cue",
			transcript: "This weekend I'm planning to declutter my closet",
			wantText:   "declutter my closet",
			wantDue:    ptr("weekend"),
		},
		{
			name:       "weekday token inside action",
			transcript: "I've blocked off Thursday to deep clean the house",
			wantText:   "blocked off  to deep clean the house",
			wantDue:    ptr("thursday"),
		},
		{
			name:       "action cue with timeframe in the middle",
			transcript: "I'm setting aside time tomorrow to finish that sculpture",
			wantText:   "setting aside time  to finish that sculpture",
			wantDue:    ptr("tomorrow"),
		},
		{
			name:       "multi-word timeframe",
			transcript: "I'm going to batch some blog posts over the next few days",
			wantText:   "batch some blog posts",
			wantDue:    ptr("over the next few days"),
		},
		{
			name:       "sometime this week wins over this week",
			transcript: "I'm going to paint the living room sometime this week",
			wantText:   "paint the living room",
			wantDue:    ptr("sometime this week"),
		},
		{
			name:       "i have cue",
			transcript: "I have a doctor's appointment scheduled for tomorrow morning",
			wantText:   "a doctor's appointment scheduled for  morning",
			wantDue:    ptr("tomorrow"),
		},
		{
			name:       "no timeframe anywhere",
			transcript: "I want to learn the cello",
			wantText:   "learn the cello",
			wantDue:    nil,
		},
		{
			name:       "planning cue takes priority over action cue",
			transcript: "I'm going to call mom tonight",
			wantText:   "call mom",
			wantDue:    ptr("tonight"),
		},
		{
			name:       "i'll is matched before i'll be",
			transcript: "I'll be at the gym tonight",
			wantText:   "be at the gym",
			wantDue:    ptr("tonight"),
		},
		{
			name:       "first timeframe in the action wins",
			transcript: "I will call today and again tomorrow",
			wantText:   "call  and again tomorrow",
			wantDue:    ptr("today"),
		},
		{
			name:       "no-break space after cue",
			transcript: "I will\u00a0call mom today",
			wantText:   "call mom",
			wantDue:    ptr("today"),
		},
		{
			name:       "ideographic space after action cue",
			transcript: "I'm\u3000repotting the fern tonight",
			wantText:   "repotting the fern",
			wantDue:    ptr("tonight"),
		},
		{
			name:       "past-tense lead is not a due date",
			transcript: "Yesterday I said I'm going to rest more",
			wantText:   "rest more",
			wantDue:    nil,
		},
		{
			name:       "lead skips yesterday for a later timeframe",
			transcript: "Yesterday I decided that this weekend I'm going to rest more",
			wantText:   "rest more",
			wantDue:    ptr("weekend"),
		},
		{
			name:       "empty planning action falls back to action cue",
			transcript: "I'm going to tomorrow",
			wantText:   "going to",
			wantDue:    ptr("tomorrow"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ProcessEntries([]types.VoiceEntry{entry(tt.transcript)})
			require.Len(t, result.Tasks, 1)

			task := result.Tasks[0]
			assert.Equal(t, tt.wantText, task.Text)
			assert.Equal(t, tt.wantDue, task.DueDate)
			assert.Equal(t, types.TaskPending, task.Status)
			assert.Equal(t, types.CategoryGeneral, task.Category)
		})
	}
}

func TestProcessEntriesIgnored(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
	}{
		{"empty string", ""},
		{"whitespace only", "   \t "},
		{"long-term reflection", "I dream of a peaceful life in the countryside"},
		{"emotional entry", "This relationship makes me happy, more than I expected"},
		{"habit reflection", "Kept scrolling through my phone again last night"},
		{"cue without action", "going to"},
		{"will inside another word", "Feeling willing but tired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ProcessEntries([]types.VoiceEntry{entry(tt.transcript)})
			assert.Empty(t, result.Tasks)
			assert.NotNil(t, result.Tasks)
		})
	}
}

func TestProcessEntriesOrderAndCount(t *testing.T) {
	entries := []types.VoiceEntry{
		entry("I'm writing my resume from scratch tomorrow"),
		entry("I dream of a peaceful life"),
		entry("I'm going grocery shopping tomorrow to restock essentials"),
		entry(""),
		entry("Tomorrow I'm meal prepping for the week"),
	}

	result := ProcessEntries(entries)
	require.Len(t, result.Tasks, 3)
	assert.LessOrEqual(t, len(result.Tasks), len(entries))

	assert.Equal(t, "writing my resume from scratch", result.Tasks[0].Text)
	assert.Equal(t, "going grocery shopping  to restock essentials", result.Tasks[1].Text)
	assert.Equal(t, "meal prepping for the week", result.Tasks[2].Text)
	assert.Equal(t, ptr("tomorrow"), result.Tasks[2].DueDate)
}

func TestProcessEntriesIdempotent(t *testing.T) {
	entries := []types.VoiceEntry{
		entry("Planning to visit my grandmother later this week"),
		entry("I've set a reminder to book the hotel by Wednesday"),
		entry("This relationship makes me happy"),
	}

	first := ProcessEntries(entries)
	second := ProcessEntries(entries)
	assert.Equal(t, first, second)
}

func TestProcessEntriesTagFrequenciesEmpty(t *testing.T) {
	e := entry("I will water the plants today")
	e.TagsUser = []string{"home", "reflection"}
	e.TagsModel = []string{"chores"}

	result := ProcessEntries([]types.VoiceEntry{e, e})
	require.NotNil(t, result.TagFrequencies)
	assert.Empty(t, result.TagFrequencies)

	empty := ProcessEntries(nil)
	assert.Empty(t, empty.Tasks)
	assert.NotNil(t, empty.TagFrequencies)
}

// --- extractTimeframe ---

func TestExtractTimeframe(t *testing.T) {
	tests := []struct {
		action     string
		wantAction string
		wantDue    *string
	}{
		{"finish the report by friday", "finish the report by", ptr("friday")},
		{"call the bank today", "call the bank", ptr("today")},
		{"plan the trip next week", "plan the trip", ptr("next week")},
		{"pack tonight", "pack", ptr("tonight")},
		{"tidy up the garage", "tidy up the garage", nil},
		{"read for a few days", "read for a few days", nil},
		{"tomorrow", "", ptr("tomorrow")},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			action, due := extractTimeframe(tt.action)
			assert.Equal(t, tt.wantAction, action)
			assert.Equal(t, tt.wantDue, due)
		})
	}
}

func TestLeadingTimeframe(t *testing.T) {
	assert.Equal(t, ptr("tomorrow"), leadingTimeframe("tomorrow i'm "))
	assert.Equal(t, ptr("monday"), leadingTimeframe("yesterday and monday i "))
	assert.Nil(t, leadingTimeframe("yesterday i said i'm "))
	assert.Nil(t, leadingTimeframe(""))
}

func TestFindTimeframeRespectsWordBoundaries(t *testing.T) {
	_, ok := findTimeframe("the weekender bag")
	assert.False(t, ok)

	_, ok = findTimeframe("daydreaming")
	assert.False(t, ok)

	tf, ok := findTimeframe("see you on monday!")
	require.True(t, ok)
	assert.Equal(t, "monday", tf)
}
