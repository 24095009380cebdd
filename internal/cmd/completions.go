package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// knownPlatforms are the conda subdirs conda-forge builds for.
var knownPlatforms = []string{
	"linux-64",
	"linux-aarch64",
	"linux-ppc64le",
	"osx-64",
	"osx-arm64",
	"win-64",
	"win-arm64",
	"emscripten-wasm32",
}

// completeDirectories completes feedstock directory arguments.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveFilterDirs
}

// completePlatforms completes --platform values, skipping ones already given
// earlier in a comma-separated list.
func completePlatforms(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	current := toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
		current = toComplete[i+1:]
	}

	given := make(map[string]bool)
	for _, p := range strings.Split(prefix, ",") {
		given[p] = true
	}

	var names []string
	for _, p := range knownPlatforms {
		if given[p] || !strings.HasPrefix(p, current) {
			continue
		}
		names = append(names, prefix+p)
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}
