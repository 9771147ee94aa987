// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fixture loads diary entries from a CSV file with named columns.
// It is a startup-time data source: a malformed file is an error, never
// a partial result.
package fixture

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/voice-tasks/pkg/types"
)

// Column names read from the CSV header.
const (
	colTranscriptRaw  = "transcript_raw"
	colTranscriptUser = "transcript_user"
	colTagsModel      = "tags_model"
	colTagsUser       = "tags_user"
	colCreatedAt      = "created_at"
	colUpdatedAt      = "updated_at"
	colEmotionScore   = "emotion_score_score"
)

const (
	mockUserID      = "mock"
	defaultLanguage = "en"
	defaultUserTag  = "reflection"
	tagSeparator    = "|"
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

var errNotFinite = errors.New("not a finite number")

// now supplies default timestamps. Tests override it for stable output.
var now = time.Now

// replacer swaps the replacement character left by a lossy export for
// the apostrophe it stood in for.
var replacer = strings.NewReplacer("\uFFFD", "'")

// Loader reads fixture files.
type Loader struct {
	log *zap.Logger
}

// NewLoader returns a Loader that reports row-level anomalies to log.
// A nil log disables logging.
func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

// Load reads and parses the CSV file at path.
func (l *Loader) Load(path string) ([]types.VoiceEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening fixture %s: %w", path, err)
	}
	defer f.Close()

	entries, err := l.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}

	l.log.Debug("fixture loaded", zap.String("path", path), zap.Int("entries", len(entries)))
	return entries, nil
}

// Parse reads CSV records from r. The first record is the header; each
// following record becomes one VoiceEntry whose ID is its 0-based row
// index. Empty lines are skipped and do not count as rows. A row whose
// field count differs from the header's is an error.
func (l *Loader) Parse(r io.Reader) ([]types.VoiceEntry, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}

	// FieldsPerRecord stays 0: the header fixes the width of every row.
	cr := csv.NewReader(strings.NewReader(replacer.Replace(string(raw))))
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("reading header: empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	columns := indexColumns(header)
	if _, ok := columns[colTranscriptUser]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, colTranscriptUser)
	}

	var entries []types.VoiceEntry
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record %d: %w", len(entries), err)
		}
		entries = append(entries, l.buildEntry(row{columns: columns, values: record}, len(entries)))
	}

	return entries, nil
}

// row gives by-name access to one CSV record.
type row struct {
	columns map[string]int
	values  []string
}

// get returns the value of column name and whether it was present and non-empty.
func (r row) get(name string) (string, bool) {
	i, ok := r.columns[name]
	if !ok || i >= len(r.values) {
		return "", false
	}
	v := r.values[i]
	return v, v != ""
}

func (l *Loader) buildEntry(r row, index int) types.VoiceEntry {
	id := strconv.Itoa(index)
	stamp := now().UTC().Format(timestampLayout)

	transcriptRaw, _ := r.get(colTranscriptRaw)
	transcriptUser, _ := r.get(colTranscriptUser)

	e := types.VoiceEntry{
		ID:               id,
		UserID:           mockUserID,
		TranscriptRaw:    transcriptRaw,
		TranscriptUser:   transcriptUser,
		LanguageDetected: defaultLanguage,
		LanguageRendered: defaultLanguage,
		TagsModel:        []string{},
		TagsUser:         []string{defaultUserTag},
		CreatedAt:        stamp,
		UpdatedAt:        stamp,
	}

	if v, ok := r.get(colTagsModel); ok {
		e.TagsModel = strings.Split(v, tagSeparator)
	}
	if v, ok := r.get(colTagsUser); ok {
		e.TagsUser = strings.Split(v, tagSeparator)
	}
	if v, ok := r.get(colCreatedAt); ok {
		e.CreatedAt = v
	}
	if v, ok := r.get(colUpdatedAt); ok {
		e.UpdatedAt = v
	}
	if v, ok := r.get(colEmotionScore); ok {
		score, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil && (math.IsNaN(score) || math.IsInf(score, 0)) {
			err = errNotFinite
		}
		if err != nil {
			l.log.Debug("ignoring emotion score",
				zap.String("entry", id), zap.String("value", v), zap.Error(err))
		} else {
			e.EmotionScore = &score
		}
	}

	return e
}

// indexColumns maps header names to their field index. A UTF-8 byte
// order mark on the first name is dropped.
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		columns[strings.TrimSpace(name)] = i
	}
	return columns
}

// Find returns the first entry whose raw transcript contains snippet.
func Find(entries []types.VoiceEntry, snippet string) (types.VoiceEntry, bool) {
	for _, e := range entries {
		if strings.Contains(e.TranscriptRaw, snippet) {
			return e, true
		}
	}
	return types.VoiceEntry{}, false
}
