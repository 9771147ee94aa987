package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// OutputFormat selects how an extraction report is rendered.
type OutputFormat string

const (
	OutputYAML  OutputFormat = "yaml"
	OutputJSON  OutputFormat = "json"
	OutputTable OutputFormat = "table"
)

// FixtureConfig holds settings for loading diary entries from CSV.
type FixtureConfig struct {
	// Path is the CSV file containing the diary entries.
	Path string `json:"path" yaml:"path" mapstructure:"path" validate:"required"`
}

// OutputConfig holds settings for writing the extraction report.
type OutputConfig struct {
	// Format is yaml, json, or table (default yaml).
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format" validate:"required,oneof=yaml json table"`

	// File is the destination path. Empty writes to stdout.
	File string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`
}

// CLIConfig groups the settings the command-line surface reads from
// flags, the config file, and VOICE_TASKS_* environment variables.
type CLIConfig struct {
	Fixture FixtureConfig `json:"fixture" yaml:"fixture" mapstructure:"fixture"`
	Output  OutputConfig  `json:"output" yaml:"output" mapstructure:"output"`

	// Verbose enables debug logging.
	Verbose bool `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
}

// Validate checks the configuration against its struct tags.
func (c CLIConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
