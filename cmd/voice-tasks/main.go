// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the voice-tasks CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/voice-tasks/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const defaultFixture = "data/diary_entries.csv"

// logger is replaced in PersistentPreRunE once flags are parsed.
var logger = zap.NewNop()

// rootCmd is the base command for the voice-tasks CLI.
var rootCmd = &cobra.Command{
	Use:   "voice-tasks",
	Short: "Extract to-do tasks from diary voice transcripts",
	Long: `voice-tasks reads diary entries from a CSV fixture and extracts simple
to-do tasks from their transcripts. Entries that state a plan ("going to",
"planning to") or a first-person action ("I'm", "I have") become tasks;
reflective entries are ignored. Timeframes such as "tomorrow" or
"thursday" become the task's due date.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(viper.GetBool("verbose"))
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		logger = l
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug("using config file", zap.String("path", f))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./voice-tasks.yaml or ~/.config/voice-tasks/voice-tasks.yaml)")
	rootCmd.PersistentFlags().String("fixture", defaultFixture, "CSV file containing diary entries")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	_ = viper.BindPFlag("fixture.path", rootCmd.PersistentFlags().Lookup("fixture"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetDefault("fixture.path", defaultFixture)
	viper.SetDefault("output.format", string(types.OutputYAML))
	viper.SetDefault("output.file", "")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("voice-tasks")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "voice-tasks"))
		}
	}

	viper.SetEnvPrefix("VOICE_TASKS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// loadConfig merges flags, config file, and environment into a validated CLIConfig.
func loadConfig() (types.CLIConfig, error) {
	var cfg types.CLIConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
