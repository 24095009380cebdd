package feedstock

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cameronsjo/pixigen/internal/pixi"
)

// contextFile is the YAML form of a render context. Keys follow the
// conda-smithy template variable names.
type contextFile struct {
	FeedstockName     string            `yaml:"feedstock_name"`
	MaintainerHandle  string            `yaml:"maintainer_handle"`
	SmithyVersion     string            `yaml:"smithy_version"`
	Platforms         []string          `yaml:"platforms"`
	BuildToolDeps     pixi.Dependencies `yaml:"build_tool_deps"`
	BuildToolDepsDict pixi.Dependencies `yaml:"build_tool_deps_dict"`
	CondaBuildTool    string            `yaml:"conda_build_tool"`
	RecipeDir         string            `yaml:"recipe_dir"`
	Variants          []string          `yaml:"variants"`
}

// LoadContextFile reads a YAML context document. smithyVersion is used when
// the document does not set smithy_version. Unknown keys are rejected.
func LoadContextFile(path, smithyVersion string) (*pixi.Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read context %s: %w", path, err)
	}

	ctx, err := ParseContext(data, smithyVersion)
	if err != nil {
		return nil, fmt.Errorf("context %s: %w", path, err)
	}
	return ctx, nil
}

// ParseContext decodes a YAML context document.
func ParseContext(data []byte, smithyVersion string) (*pixi.Context, error) {
	var doc contextFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}

	if doc.BuildToolDeps != nil && doc.BuildToolDepsDict != nil {
		return nil, errors.New("set only one of build_tool_deps and build_tool_deps_dict")
	}
	deps := doc.BuildToolDeps
	if deps == nil {
		deps = doc.BuildToolDepsDict
	}

	if doc.SmithyVersion == "" {
		doc.SmithyVersion = smithyVersion
	}

	return pixi.NewContext(pixi.Options{
		FeedstockName:    doc.FeedstockName,
		MaintainerHandle: doc.MaintainerHandle,
		SmithyVersion:    doc.SmithyVersion,
		Platforms:        doc.Platforms,
		BuildToolDeps:    deps,
		BuildTool:        doc.CondaBuildTool,
		RecipeDir:        doc.RecipeDir,
		Variants:         doc.Variants,
	})
}
