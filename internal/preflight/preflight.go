// Package preflight checks for the binaries needed to use a generated pixi.toml.
package preflight

import (
	"os/exec"

	"github.com/cameronsjo/pixigen/internal/pixi"
)

// BinaryCheck represents a binary and its purpose.
type BinaryCheck struct {
	Name        string
	Required    bool   // false = warning only
	Purpose     string // which generated tasks need it
	InstallHint string // e.g., "brew install pixi" or "https://..."
}

// LookPathFunc resolves a binary name. exec.LookPath in production.
type LookPathFunc func(name string) (string, error)

// requiredBinaries defines binaries without which no generated task can run.
var requiredBinaries = []BinaryCheck{
	{
		Name:        "pixi",
		Required:    true,
		Purpose:     "runs every task in pixi.toml",
		InstallHint: "Install pixi: https://pixi.sh/latest/#installation",
	},
}

// optionalBinaries defines binaries used by some generated tasks.
var optionalBinaries = []BinaryCheck{
	{
		Name:        "docker",
		Required:    false,
		Purpose:     "build-locally runs linux builds in containers",
		InstallHint: "Install Docker: https://docs.docker.com/get-docker/",
	},
	{
		Name:        "git",
		Required:    false,
		Purpose:     "rerender commits changes to the feedstock",
		InstallHint: "Install git: https://git-scm.com/downloads",
	},
}

// BinariesFor returns the checks relevant to a feedstock using tool.
// Standard tools get conda debug tasks, which need conda on the host.
func BinariesFor(tool pixi.BuildTool) []BinaryCheck {
	checks := append([]BinaryCheck{}, requiredBinaries...)
	checks = append(checks, optionalBinaries...)
	if !tool.IsRattlerBuild() {
		checks = append(checks, BinaryCheck{
			Name:        "conda",
			Required:    false,
			Purpose:     "debug tasks open a conda debug environment",
			InstallHint: "Install miniforge: https://github.com/conda-forge/miniforge",
		})
	}
	return checks
}

// Missing returns the checks whose binary lookPath cannot find.
func Missing(checks []BinaryCheck, lookPath LookPathFunc) []BinaryCheck {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	var missing []BinaryCheck
	for _, bin := range checks {
		if _, err := lookPath(bin.Name); err != nil {
			missing = append(missing, bin)
		}
	}
	return missing
}

// CheckAll performs all pre-flight checks and returns warnings and errors.
// Errors are for missing required binaries, warnings are for missing optional binaries.
func CheckAll(checks []BinaryCheck, lookPath LookPathFunc) (warnings []string, errors []string) {
	for _, bin := range Missing(checks, lookPath) {
		msg := bin.Name + " (" + bin.Purpose + "): " + bin.InstallHint
		if bin.Required {
			errors = append(errors, msg)
		} else {
			warnings = append(warnings, msg)
		}
	}
	return warnings, errors
}
