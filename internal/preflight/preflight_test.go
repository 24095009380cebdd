package preflight

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cameronsjo/pixigen/internal/pixi"
)

// fakeLookPath finds only the named binaries.
func fakeLookPath(found ...string) LookPathFunc {
	return func(name string) (string, error) {
		for _, f := range found {
			if f == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func names(checks []BinaryCheck) []string {
	out := make([]string, 0, len(checks))
	for _, c := range checks {
		out = append(out, c.Name)
	}
	return out
}

func mustTool(t *testing.T, name string) pixi.BuildTool {
	t.Helper()
	tool, err := pixi.ParseBuildTool(name)
	require.NoError(t, err)
	return tool
}

func TestBinariesFor(t *testing.T) {
	t.Run("standard tool includes conda", func(t *testing.T) {
		checks := BinariesFor(mustTool(t, pixi.ToolCondaBuild))
		assert.Equal(t, []string{"pixi", "docker", "git", "conda"}, names(checks))
	})

	t.Run("rattler-build has no debug tasks", func(t *testing.T) {
		checks := BinariesFor(mustTool(t, pixi.ToolRattlerBuild))
		assert.Equal(t, []string{"pixi", "docker", "git"}, names(checks))
	})

	t.Run("all have install hints and purposes", func(t *testing.T) {
		for _, bin := range BinariesFor(mustTool(t, pixi.ToolMambabuild)) {
			assert.NotEmpty(t, bin.InstallHint, bin.Name)
			assert.NotEmpty(t, bin.Purpose, bin.Name)
		}
	})

	t.Run("does not alias the package lists", func(t *testing.T) {
		checks := BinariesFor(mustTool(t, pixi.ToolCondaBuild))
		checks[0].Name = "changed"
		assert.Equal(t, "pixi", requiredBinaries[0].Name)
	})
}

func TestMissing(t *testing.T) {
	checks := BinariesFor(mustTool(t, pixi.ToolCondaBuild))

	missing := Missing(checks, fakeLookPath("pixi", "git"))
	assert.Equal(t, []string{"docker", "conda"}, names(missing))

	assert.Empty(t, Missing(checks, fakeLookPath("pixi", "git", "docker", "conda")))
}

func TestCheckAll(t *testing.T) {
	checks := BinariesFor(mustTool(t, pixi.ToolRattlerBuild))

	warnings, errs := CheckAll(checks, fakeLookPath("git"))

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "pixi (runs every task in pixi.toml): ")
	assert.Contains(t, errs[0], "https://pixi.sh")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "docker")
}
