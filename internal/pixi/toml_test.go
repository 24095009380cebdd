package pixi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTOMLString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", `"plain"`},
		{"", `""`},
		{`say "hi"`, `"say \"hi\""`},
		{`C:\conda`, `"C:\\conda"`},
		{"a\tb\nc", `"a\tb\nc"`},
		{"bell\x07", `"bell\u0007"`},
		{"del\x7f", `"del\u007F"`},
		{"ünïcode", `"ünïcode"`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TOMLString(tt.in), tt.in)
	}
}

func TestTOMLKey(t *testing.T) {
	assert.Equal(t, "conda-build", TOMLKey("conda-build"))
	assert.Equal(t, "build_locally2", TOMLKey("build_locally2"))
	assert.Equal(t, `"python.app"`, TOMLKey("python.app"))
	assert.Equal(t, `"with space"`, TOMLKey("with space"))
	assert.Equal(t, `""`, TOMLKey(""))
}

func TestTOMLArray(t *testing.T) {
	assert.Equal(t, "[]", TOMLArray(nil))
	assert.Equal(t, `["linux-64"]`, TOMLArray([]string{"linux-64"}))
	assert.Equal(t, `["linux-64", "osx-arm64"]`, TOMLArray([]string{"linux-64", "osx-arm64"}))
}
