package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/cameronsjo/pixigen/internal/config"
)

// testSmithyVersion is exported to commands unless a test sets
// PIXIGEN_SMITHY_VERSION itself.
const testSmithyVersion = "3.44.0"

// executeCmd runs a fresh command tree with the given args and returns the
// command output. Colored status lines go to color.Output and are discarded.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeCmdUI(t, args...)
	return out, err
}

// executeCmdUI is executeCmd that also returns the colored status lines.
func executeCmdUI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	if _, ok := os.LookupEnv(smithyVersionEnv); !ok {
		t.Setenv(smithyVersionEnv, testSmithyVersion)
	}

	uiBuf := new(bytes.Buffer)
	oldNoColor, oldOutput := color.NoColor, color.Output
	color.NoColor = true
	color.Output = uiBuf
	t.Cleanup(func() {
		color.NoColor = oldNoColor
		color.Output = oldOutput
	})

	buf := new(bytes.Buffer)
	root := newRootCmd()
	// Set args to a non-nil slice so cobra does not read os.Args
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(buf)
	root.SetErr(buf)
	err := root.Execute()
	return buf.String(), uiBuf.String(), err
}

// newFeedstock creates a feedstock checkout named name under a temp dir.
func newFeedstock(t *testing.T, name, forge string, variants ...string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "recipe"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".ci_support"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, config.ForgeFile), []byte(forge), 0644))
	for _, v := range variants {
		require.NoError(t, os.WriteFile(filepath.Join(root, ".ci_support", v+".yaml"), []byte("{}\n"), 0644))
	}
	return root
}
