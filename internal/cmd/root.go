// Package cmd provides the CLI commands for pixigen.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/pixigen/internal/fileutil"
	"github.com/cameronsjo/pixigen/internal/pixi"
)

const version = "0.3.0"

// smithyVersionEnv overrides the smithy version recorded in pixi.toml.
const smithyVersionEnv = "PIXIGEN_SMITHY_VERSION"

var errNoSmithyVersion = errors.New("conda-smithy version unknown: pass --smithy-version or set " + smithyVersionEnv)

// explicitSmithyVersion returns the flag value, else the environment.
func explicitSmithyVersion(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(smithyVersionEnv)
}

// resolveSmithyVersion falls back to the version recorded in an existing
// pixi.toml when none is given explicitly.
func resolveSmithyVersion(flagValue, pixiFile string) (string, error) {
	if v := explicitSmithyVersion(flagValue); v != "" {
		return v, nil
	}

	data, ok, err := fileutil.ReadIfExists(pixiFile)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errNoSmithyVersion
	}
	v, err := pixi.RecordedSmithyVersion(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", pixiFile, err)
	}
	if v == "" {
		return "", errNoSmithyVersion
	}
	return v, nil
}

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pixigen",
		Short: "Render pixi.toml for conda-forge feedstocks",
		Long: `pixigen - pixi manifests for conda-forge feedstocks

Generates the pixi.toml that lets maintainers build, debug and inspect a
feedstock locally with pixi. Build tool and recipe location come from
conda-forge.yml; variants come from .ci_support/.

RENDER COMMANDS
  render [dir...]         Render pixi.toml for one or more feedstocks
    --dry-run, -n         Print the manifest instead of writing it
    --diff, -d            Show diff against the existing pixi.toml
    --check               Fail if pixi.toml is out of date
    --context, -c <file>  Render from a YAML context file
    --template, -t <file> Render a custom template

DISCOVERY
  variants [dir]          List CI variants and their platforms
  doctor [dir]            Check the feedstock and host are ready for pixi`,
		Version: version,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.SetVersionTemplate("pixigen version {{.Version}}\n")
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newVariantsCmd())
	rootCmd.AddCommand(newDoctorCmd())

	return rootCmd
}

// Execute builds the root command and runs it.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
