package pixi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordedSmithyVersion_FromRender(t *testing.T) {
	out, err := Render(mustContext(t, rattlerOptions()))
	require.NoError(t, err)

	got, err := RecordedSmithyVersion([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "3.44.0", got)
}

func TestRecordedSmithyVersion(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    string
		wantErr bool
	}{
		{"no project table", "[tasks]\nbuild = \"x\"\n", "", false},
		{"empty", "", "", false},
		{"not toml", "[project\n", "", true},
		{"non-string version", "[project]\nversion = 3\n", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RecordedSmithyVersion([]byte(tt.doc))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
