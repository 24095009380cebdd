package feedstock

import (
	"fmt"

	"github.com/cameronsjo/pixigen/internal/config"
	"github.com/cameronsjo/pixigen/internal/pixi"
)

// Overrides replace discovered values when set.
type Overrides struct {
	FeedstockName    string
	MaintainerHandle string
	SmithyVersion    string
	Platforms        []string
	Variants         []string
	BuildToolDeps    pixi.Dependencies
}

// Assemble builds the render context for the feedstock described by cfg.
// Variants come from .ci_support/, platforms from the variant names, and
// dependencies from the build tool, unless overridden.
func Assemble(cfg *config.Config, o Overrides) (*pixi.Context, error) {
	variants := o.Variants
	if variants == nil {
		discovered, err := DiscoverVariants(cfg.CISupportDir())
		if err != nil {
			return nil, fmt.Errorf("discover variants: %w", err)
		}
		variants = discovered
	}

	platforms := o.Platforms
	if len(platforms) == 0 {
		platforms = PlatformsFromVariants(variants)
	}

	deps := DefaultBuildToolDeps(cfg.BuildTool)
	for _, dep := range o.BuildToolDeps {
		deps.Set(dep.Name, dep.Constraint)
	}

	name := o.FeedstockName
	if name == "" {
		name = FeedstockName(cfg.Root)
	}

	ctx, err := pixi.NewContext(pixi.Options{
		FeedstockName:    name,
		MaintainerHandle: o.MaintainerHandle,
		SmithyVersion:    o.SmithyVersion,
		Platforms:        platforms,
		BuildToolDeps:    deps,
		BuildTool:        cfg.BuildTool.Name,
		RecipeDir:        cfg.Forge.RecipeDir,
		Variants:         variants,
	})
	if err != nil {
		return nil, fmt.Errorf("feedstock %s: %w", cfg.Root, err)
	}
	return ctx, nil
}
