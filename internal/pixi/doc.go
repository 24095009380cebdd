// Package pixi renders the pixi.toml project manifest for a conda-forge
// feedstock.
//
// A Context carries everything the manifest depends on: the feedstock name,
// the smithy version, target platforms, build tool dependencies, the build
// tool and the CI variants. Render turns it into TOML text:
//
//	ctx, err := pixi.NewContext(pixi.Options{
//	    FeedstockName: "numpy-feedstock",
//	    SmithyVersion: "3.44.0",
//	    Platforms:     []string{"linux-64", "osx-arm64"},
//	    BuildToolDeps: pixi.Dependencies{{Name: "conda-build", Constraint: ">=24.1"}},
//	    BuildTool:     "conda-build",
//	    RecipeDir:     "recipe",
//	    Variants:      []string{"linux_64_", "osx_arm64_"},
//	})
//	text, err := pixi.Render(ctx)
//
// # Build tools
//
// The build tool is resolved once into a BuildToolKind. Standard tools get
// build and debug tasks with the recipe passed positionally. rattler-build
// gets only build tasks, using build --recipe.
//
// # Sections
//
// Each table group has its own renderer (RenderProject, RenderTasks, ...)
// backed by an embedded text/template with the sprig function map. Render
// concatenates them in order.
package pixi
