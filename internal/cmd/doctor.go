package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/pixigen/internal/config"
	"github.com/cameronsjo/pixigen/internal/feedstock"
	"github.com/cameronsjo/pixigen/internal/fileutil"
	"github.com/cameronsjo/pixigen/internal/pixi"
	"github.com/cameronsjo/pixigen/internal/preflight"
	"github.com/cameronsjo/pixigen/internal/ui"
)

// lookPath is swapped in tests.
var lookPath preflight.LookPathFunc = exec.LookPath

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [feedstock-dir]",
		Short: "Check the feedstock and host are ready for pixi",
		Long: `Check that conda-forge.yml loads, that the recipe directory exists, that
.ci_support/ has variants, whether pixi.toml is current, and that the binaries
the generated tasks call are on PATH.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		ValidArgsFunction: completeDirectories,
		RunE:              runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	ui.Header("Feedstock")
	cfg, err := config.Load(dir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	ui.Success("%s (%s)", cfg.Root, config.ForgeFile)
	ui.Info("  build tool: %s (%s)", cfg.BuildTool.Name, cfg.BuildTool.Kind)
	ui.Info("  build deps: %s", strings.Join(feedstock.DefaultBuildToolDeps(cfg.BuildTool).Names(), ", "))

	recipeOK := checkRecipeDir(cfg)

	variants, err := feedstock.DiscoverVariants(cfg.CISupportDir())
	if err != nil {
		return err
	}
	if len(variants) == 0 {
		ui.Warning("No variants in %s (run conda smithy rerender first)", cfg.CISupportDir())
	} else {
		ui.Success("%d variant(s) on %v", len(variants), feedstock.PlatformsFromVariants(variants))
	}

	checkManifest(cfg)

	ui.Header("\nBinaries")
	warnings, errs := preflight.CheckAll(preflight.BinariesFor(cfg.BuildTool), lookPath)
	for _, w := range warnings {
		ui.Warning("%s", w)
	}
	for _, e := range errs {
		ui.Error("%s", e)
	}
	if len(warnings) == 0 && len(errs) == 0 {
		ui.Success("All binaries found")
	}

	if !recipeOK {
		return fmt.Errorf("recipe directory %s not found", cfg.Forge.RecipeDir)
	}
	if len(errs) > 0 {
		return errors.New("required binaries missing")
	}
	return nil
}

// checkRecipeDir reports whether recipe_dir points at a directory.
// Every build, debug and lint task passes it to the build tool.
func checkRecipeDir(cfg *config.Config) bool {
	info, err := os.Stat(cfg.RecipePath())
	if err != nil || !info.IsDir() {
		ui.Error("Recipe directory %s not found (recipe_dir in %s)", cfg.RecipePath(), config.ForgeFile)
		return false
	}
	ui.Success("Recipe directory %s", cfg.Forge.RecipeDir)
	return true
}

// checkManifest reports whether pixi.toml matches a fresh render.
// Problems here are warnings: render reports them as errors.
func checkManifest(cfg *config.Config) {
	existing, ok, err := fileutil.ReadIfExists(cfg.PixiFile())
	switch {
	case err != nil:
		ui.Warning("Cannot read pixi.toml: %v", err)
		return
	case !ok:
		ui.Warning("pixi.toml missing (run pixigen render --smithy-version <version>)")
		return
	}

	smithyVersion, err := resolveSmithyVersion("", cfg.PixiFile())
	if err != nil {
		ui.Warning("Cannot render pixi.toml: %v", err)
		return
	}
	ctx, err := feedstock.Assemble(cfg, feedstock.Overrides{SmithyVersion: smithyVersion})
	if err != nil {
		ui.Warning("Cannot render pixi.toml: %v", err)
		return
	}
	want, err := pixi.Render(ctx)
	if err != nil {
		ui.Warning("Cannot render pixi.toml: %v", err)
		return
	}

	if string(existing) != want {
		ui.Warning("pixi.toml out of date (run pixigen render)")
		return
	}
	ui.Success("pixi.toml up to date (conda-smithy %s)", smithyVersion)
}
