//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Extract builds the CLI and writes a table of tasks from the default fixture.
// FIXTURE overrides the fixture path.
func Extract() error {
	mg.Deps(Build)

	args := []string{"extract", "--format", "table"}
	if f := os.Getenv("FIXTURE"); f != "" {
		args = append(args, "--fixture", f)
	}
	return sh.RunV(filepath.Join(binDir, binName), args...)
}

// Report builds the CLI and writes a YAML report to out/tasks.yaml.
func Report() error {
	mg.Deps(Build, Init)
	return sh.RunV(filepath.Join(binDir, binName), "extract", "--output", filepath.Join("out", "tasks.yaml"))
}
