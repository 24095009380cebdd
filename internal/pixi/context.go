package pixi

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Context errors.
var (
	// ErrMissingField indicates a required context field was not supplied.
	ErrMissingField = errors.New("missing context field")

	// ErrFeedstockSuffix indicates a maintainer handle could not be derived
	// because the feedstock name lacks the -feedstock suffix.
	ErrFeedstockSuffix = errors.New("feedstock name must end in " + FeedstockSuffix)

	// ErrUnknownBuildTool indicates a conda_build_tool outside SupportedBuildTools.
	ErrUnknownBuildTool = errors.New("unknown conda build tool")
)

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}

// Options carries the caller-supplied values for a Context.
type Options struct {
	FeedstockName string

	// MaintainerHandle is the team name used in authors. Derived from
	// FeedstockName when empty.
	MaintainerHandle string

	SmithyVersion string
	Platforms     []string
	BuildToolDeps Dependencies
	BuildTool     string
	RecipeDir     string
	Variants      []string
}

// Context is the immutable input to Render.
type Context struct {
	FeedstockName    string
	MaintainerHandle string
	SmithyVersion    string
	Platforms        []string
	BuildToolDeps    Dependencies
	BuildTool        BuildTool
	RecipeDir        string
	Variants         []string
}

// NewContext validates opts and resolves the build tool and maintainer handle.
// Slices are copied so later changes by the caller do not leak into renders.
func NewContext(opts Options) (*Context, error) {
	tool, err := ParseBuildTool(opts.BuildTool)
	if err != nil {
		return nil, err
	}

	handle := opts.MaintainerHandle
	if handle == "" && opts.FeedstockName != "" {
		handle, err = MaintainerHandle(opts.FeedstockName)
		if err != nil {
			return nil, err
		}
	}

	ctx := &Context{
		FeedstockName:    opts.FeedstockName,
		MaintainerHandle: handle,
		SmithyVersion:    opts.SmithyVersion,
		Platforms:        slices.Clone(opts.Platforms),
		BuildToolDeps:    slices.Clone(opts.BuildToolDeps),
		BuildTool:        tool,
		RecipeDir:        opts.RecipeDir,
		Variants:         slices.Clone(opts.Variants),
	}

	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	return ctx, nil
}

// MaintainerHandle strips the -feedstock suffix from a feedstock name.
func MaintainerHandle(feedstockName string) (string, error) {
	handle, found := strings.CutSuffix(feedstockName, FeedstockSuffix)
	if !found || handle == "" {
		return "", fmt.Errorf("%w: %q", ErrFeedstockSuffix, feedstockName)
	}
	return handle, nil
}

// Validate reports the first required field that is absent.
// Dependencies and variants may be omitted. Platforms must be present,
// but an empty non-nil list is a valid value and renders as [].
func (c *Context) Validate() error {
	if c == nil {
		return missingField("context")
	}

	required := []struct {
		name  string
		value string
	}{
		{"feedstock_name", c.FeedstockName},
		{"maintainer_handle", c.MaintainerHandle},
		{"smithy_version", c.SmithyVersion},
		{"conda_build_tool", c.BuildTool.Name},
		{"recipe_dir", c.RecipeDir},
	}
	for _, field := range required {
		if field.value == "" {
			return missingField(field.name)
		}
	}

	if c.Platforms == nil {
		return missingField("platforms")
	}

	for _, dep := range c.BuildToolDeps {
		if dep.Name == "" {
			return fmt.Errorf("%w: build_tool_deps entry with empty name", ErrMissingField)
		}
	}

	return nil
}

// Values exposes the context under its conda-smithy variable names,
// for use by custom templates. build_tool_deps_dict is an alias of
// build_tool_deps; both are the ordered dependency list.
func (c *Context) Values() map[string]any {
	return map[string]any{
		"feedstock_name":       c.FeedstockName,
		"maintainer_handle":    c.MaintainerHandle,
		"smithy_version":       c.SmithyVersion,
		"platforms":            slices.Clone(c.Platforms),
		"build_tool_deps":      slices.Clone(c.BuildToolDeps),
		"build_tool_deps_dict": slices.Clone(c.BuildToolDeps),
		"conda_build_tool":     c.BuildTool.Name,
		"rattler_build":        c.BuildTool.IsRattlerBuild(),
		"recipe_dir":           c.RecipeDir,
		"variants":             slices.Clone(c.Variants),
	}
}
