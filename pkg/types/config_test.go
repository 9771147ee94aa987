package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIConfigValidate(t *testing.T) {
	valid := CLIConfig{
		Fixture: FixtureConfig{Path: "data/diary_entries.csv"},
		Output:  OutputConfig{Format: OutputYAML},
	}

	tests := []struct {
		name   string
		mutate func(c *CLIConfig)
		errMsg string
	}{
		{name: "valid yaml", mutate: func(c *CLIConfig) {}},
		{name: "valid json to file", mutate: func(c *CLIConfig) { c.Output = OutputConfig{Format: OutputJSON, File: "out.json"} }},
		{name: "valid table", mutate: func(c *CLIConfig) { c.Output.Format = OutputTable }},
		{name: "missing fixture path", mutate: func(c *CLIConfig) { c.Fixture.Path = "" }, errMsg: "Path"},
		{name: "missing format", mutate: func(c *CLIConfig) { c.Output.Format = "" }, errMsg: "Format"},
		{name: "unknown format", mutate: func(c *CLIConfig) { c.Output.Format = "xml" }, errMsg: "oneof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
