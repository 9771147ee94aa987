// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// VoiceEntry is a single diary entry recorded by voice and transcribed.
// The extractor reads only TranscriptUser; the remaining fields travel
// with the entry so fixtures mirror the full record.
type VoiceEntry struct {
	// ID identifies the entry within its source (the fixture row index).
	ID string `json:"id" yaml:"id"`

	// UserID is the owner of the entry.
	UserID string `json:"user_id" yaml:"user_id"`

	// AudioURL points to the original recording, when one is kept.
	AudioURL *string `json:"audio_url" yaml:"audio_url"`

	// TranscriptRaw is the transcript as produced by speech recognition.
	TranscriptRaw string `json:"transcript_raw" yaml:"transcript_raw"`

	// TranscriptUser is the transcript after the user edited it.
	TranscriptUser string `json:"transcript_user" yaml:"transcript_user"`

	LanguageDetected string `json:"language_detected" yaml:"language_detected"`
	LanguageRendered string `json:"language_rendered" yaml:"language_rendered"`

	// TagsModel are tags suggested by a model.
	TagsModel []string `json:"tags_model" yaml:"tags_model"`

	// TagsUser are tags the user assigned.
	TagsUser []string `json:"tags_user" yaml:"tags_user"`

	Category *string `json:"category" yaml:"category"`

	// CreatedAt and UpdatedAt are ISO-8601 timestamps kept as text.
	CreatedAt string `json:"created_at" yaml:"created_at"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`

	// EmotionScore is nil when the source value is missing or not a number.
	EmotionScore *float64 `json:"emotion_score_score" yaml:"emotion_score_score"`

	Embedding []float64 `json:"embedding" yaml:"embedding"`
}
