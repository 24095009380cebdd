package pixi

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// RecordedSmithyVersion returns [project].version from a previously rendered
// pixi.toml, or "" when the manifest does not record one.
func RecordedSmithyVersion(data []byte) (string, error) {
	var doc struct {
		Project struct {
			Version string `toml:"version"`
		} `toml:"project"`
	}
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return "", fmt.Errorf("parse pixi.toml: %w", err)
	}
	return doc.Project.Version, nil
}
