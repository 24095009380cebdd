package feedstock

import (
	"github.com/cameronsjo/pixigen/internal/pixi"
)

// CISetupConstraint pins conda-forge-ci-setup for every build tool.
const CISetupConstraint = "4.*"

// DefaultBuildToolDeps returns the [dependencies] a build tool needs, in
// render order.
func DefaultBuildToolDeps(tool pixi.BuildTool) pixi.Dependencies {
	var deps pixi.Dependencies

	switch tool.Name {
	case pixi.ToolRattlerBuild:
		deps.Set("rattler-build", "*")
	case pixi.ToolMambabuild:
		deps.Set("boa", "*")
	case pixi.ToolCondaBuildLibmamba:
		deps.Set("conda-build", ">=24.1")
		deps.Set("conda-libmamba-solver", "*")
	default:
		deps.Set("conda-build", ">=24.1")
	}

	deps.Set("conda-forge-ci-setup", CISetupConstraint)
	return deps
}
