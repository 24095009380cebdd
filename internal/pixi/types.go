package pixi

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Conda build tool names accepted in conda-forge.yml.
const (
	ToolCondaBuild         = "conda-build"
	ToolCondaBuildClassic  = "conda-build+classic"
	ToolCondaBuildLibmamba = "conda-build+conda-libmamba-solver"
	ToolMambabuild         = "mambabuild"
	ToolRattlerBuild       = "rattler-build"

	// DefaultBuildTool is used when conda-forge.yml does not choose one.
	DefaultBuildTool = ToolCondaBuild

	// DefaultRecipeDir is the recipe location relative to the feedstock root.
	DefaultRecipeDir = "recipe"

	// FeedstockSuffix terminates every feedstock repository name.
	FeedstockSuffix = "-feedstock"
)

// SupportedBuildTools lists every build tool a manifest can be rendered for.
var SupportedBuildTools = []string{
	ToolCondaBuild,
	ToolCondaBuildClassic,
	ToolCondaBuildLibmamba,
	ToolMambabuild,
	ToolRattlerBuild,
}

// BuildToolKind selects the command syntax used for build tasks.
type BuildToolKind int

const (
	// Standard tools take the recipe directory positionally and support a debug subcommand.
	Standard BuildToolKind = iota

	// RattlerBuild takes the recipe via --recipe and has no debug tasks.
	RattlerBuild
)

func (k BuildToolKind) String() string {
	switch k {
	case Standard:
		return "standard"
	case RattlerBuild:
		return "rattler-build"
	default:
		return fmt.Sprintf("BuildToolKind(%d)", int(k))
	}
}

// BuildTool is a conda build tool with its command syntax resolved.
type BuildTool struct {
	// Name is the tool name as written in conda-forge.yml and used in commands.
	Name string

	// Kind is derived from Name once, at parse time.
	Kind BuildToolKind
}

// ParseBuildTool resolves a tool name into a BuildTool.
func ParseBuildTool(name string) (BuildTool, error) {
	if name == "" {
		return BuildTool{}, missingField("conda_build_tool")
	}

	for _, supported := range SupportedBuildTools {
		if name != supported {
			continue
		}
		kind := Standard
		if name == ToolRattlerBuild {
			kind = RattlerBuild
		}
		return BuildTool{Name: name, Kind: kind}, nil
	}

	return BuildTool{}, fmt.Errorf("%w: %s (supported: %v)", ErrUnknownBuildTool, name, SupportedBuildTools)
}

// IsRattlerBuild reports whether the tool uses rattler-build syntax.
func (t BuildTool) IsRattlerBuild() bool {
	return t.Kind == RattlerBuild
}

func (t BuildTool) String() string {
	return t.Name
}

// Dependency is a single package requirement in the [dependencies] table.
type Dependency struct {
	Name       string
	Constraint string
}

// Dependencies is an ordered list of package requirements.
// Rendering emits entries in slice order.
type Dependencies []Dependency

// Set replaces the constraint for name in place, or appends a new entry.
func (d *Dependencies) Set(name, constraint string) {
	for i := range *d {
		if (*d)[i].Name == name {
			(*d)[i].Constraint = constraint
			return
		}
	}
	*d = append(*d, Dependency{Name: name, Constraint: constraint})
}

// Names returns the package names in order.
func (d Dependencies) Names() []string {
	names := make([]string, 0, len(d))
	for _, dep := range d {
		names = append(names, dep.Name)
	}
	return names
}

// UnmarshalYAML decodes a YAML mapping, keeping document order.
func (d *Dependencies) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: dependencies must be a mapping of package to constraint", value.Line)
	}

	deps := make(Dependencies, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: constraint for %s must be a string", val.Line, key.Value)
		}
		constraint := val.Value
		// A bare "key:" decodes as null; pixi spells that "*".
		if val.Tag == "!!null" {
			constraint = "*"
		}
		deps.Set(key.Value, constraint)
	}

	*d = deps
	return nil
}
