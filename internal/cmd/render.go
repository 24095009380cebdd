package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/cameronsjo/pixigen/internal/config"
	"github.com/cameronsjo/pixigen/internal/feedstock"
	"github.com/cameronsjo/pixigen/internal/fileutil"
	"github.com/cameronsjo/pixigen/internal/pixi"
	"github.com/cameronsjo/pixigen/internal/ui"
)

// errStale is returned by render --check when a pixi.toml differs from its rendering.
var errStale = errors.New("pixi.toml out of date")

// stdoutPath as --output writes the manifest to stdout.
const stdoutPath = "-"

type renderOptions struct {
	contextFile   string
	output        string
	templateFile  string
	smithyVersion string
	platforms     []string
	dryRun        bool
	diff          bool
	check         bool
	jobs          int
}

type renderResult struct {
	// source is the feedstock root or context file the result came from.
	source   string
	path     string
	content  string
	existing []byte
	exists   bool
}

func (r *renderResult) changed() bool {
	return !r.exists || string(r.existing) != r.content
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	renderCmd := &cobra.Command{
		Use:   "render [feedstock-dir...]",
		Short: "Render pixi.toml for feedstocks",
		Long: `Render the pixi.toml manifest for one or more feedstock checkouts.

Each directory is searched upward for conda-forge.yml. Variants are read from
.ci_support/ and platforms are derived from the variant names. Feedstocks are
rendered concurrently; nothing is written unless every render succeeds.

Examples:
  # Render the feedstock in the current directory
  pixigen render

  # Show what would change
  pixigen render -d ~/src/numpy-feedstock

  # Fail in CI when pixi.toml is stale
  pixigen render --check

  # Render from an explicit context to stdout
  pixigen render -c context.yaml`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, opts)
		},
		ValidArgsFunction: completeDirectories,
	}

	flags := renderCmd.Flags()
	flags.StringVarP(&opts.contextFile, "context", "c", "", "Render from a YAML context file instead of a feedstock")
	flags.StringVarP(&opts.output, "output", "o", "", "Output path (default <feedstock>/pixi.toml, stdout with --context; - for stdout)")
	flags.StringVarP(&opts.templateFile, "template", "t", "", "Render a custom template instead of the built-in manifest")
	flags.StringVar(&opts.smithyVersion, "smithy-version", "", "conda-smithy version recorded in [project].version (default $"+smithyVersionEnv+", then the existing pixi.toml)")
	flags.StringSliceVarP(&opts.platforms, "platform", "p", nil, "Platforms to target (default: derived from variants)")
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, "Print the manifest instead of writing it")
	flags.BoolVarP(&opts.diff, "diff", "d", false, "Show diff against the existing pixi.toml")
	flags.BoolVar(&opts.check, "check", false, "Exit non-zero if pixi.toml is out of date")
	flags.IntVarP(&opts.jobs, "jobs", "j", 4, "Feedstocks to render concurrently")

	renderCmd.MarkFlagsMutuallyExclusive("dry-run", "diff", "check")
	renderCmd.MarkFlagsMutuallyExclusive("context", "platform")
	renderCmd.MarkFlagFilename("context", "yaml", "yml")
	renderCmd.MarkFlagFilename("template", "tmpl")
	renderCmd.RegisterFlagCompletionFunc("platform", completePlatforms)

	return renderCmd
}

func runRender(cmd *cobra.Command, args []string, opts *renderOptions) error {
	if opts.contextFile != "" && len(args) > 0 {
		return errors.New("--context cannot be combined with feedstock directories")
	}
	if opts.output != "" && len(args) > 1 {
		return errors.New("--output requires a single feedstock")
	}

	var tmplText string
	if opts.templateFile != "" {
		data, err := os.ReadFile(opts.templateFile)
		if err != nil {
			return fmt.Errorf("read template: %w", err)
		}
		tmplText = string(data)
	}

	sources := args
	if opts.contextFile != "" {
		sources = []string{opts.contextFile}
	} else if len(sources) == 0 {
		sources = []string{"."}
	}

	results := make([]*renderResult, len(sources))
	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(1, opts.jobs))
	for i, source := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := renderSource(source, opts, tmplText)
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return emitResults(cmd, results, opts)
}

// renderSource renders one feedstock or context file without writing anything.
func renderSource(source string, opts *renderOptions, tmplText string) (*renderResult, error) {
	var (
		ctx  *pixi.Context
		path string
		err  error
	)

	if opts.contextFile != "" {
		ctx, err = feedstock.LoadContextFile(source, explicitSmithyVersion(opts.smithyVersion))
		if err != nil {
			return nil, err
		}
		path = stdoutPath
	} else {
		var cfg *config.Config
		cfg, err = config.Load(source)
		if err != nil {
			return nil, err
		}
		var smithyVersion string
		smithyVersion, err = resolveSmithyVersion(opts.smithyVersion, cfg.PixiFile())
		if err != nil {
			return nil, err
		}
		ctx, err = feedstock.Assemble(cfg, feedstock.Overrides{
			SmithyVersion: smithyVersion,
			Platforms:     opts.platforms,
		})
		if err != nil {
			return nil, err
		}
		path = cfg.PixiFile()
	}

	if opts.output != "" {
		path = opts.output
	}

	var content string
	if tmplText != "" {
		content, err = pixi.RenderTemplate(filepath.Base(opts.templateFile), tmplText, ctx)
	} else {
		content, err = pixi.Render(ctx)
	}
	if err != nil {
		return nil, err
	}

	res := &renderResult{source: source, path: path, content: content}
	if path != stdoutPath {
		res.existing, res.exists, err = fileutil.ReadIfExists(path)
		if err != nil {
			return nil, fmt.Errorf("read existing %s: %w", path, err)
		}
	}
	return res, nil
}

// emitResults prints, diffs, checks or writes the rendered manifests in
// argument order.
func emitResults(cmd *cobra.Command, results []*renderResult, opts *renderOptions) error {
	out := cmd.OutOrStdout()
	stale := 0

	for _, r := range results {
		switch {
		case opts.dryRun || r.path == stdoutPath:
			if len(results) > 1 {
				ui.Blue.Fprintf(out, "--- %s ---\n", r.source)
			}
			fmt.Fprint(out, r.content)

		case opts.diff:
			if !ui.WriteDiff(out, r.path, r.path+" (rendered)", string(r.existing), r.content) {
				ui.Success("%s is up to date", r.path)
			}

		case opts.check:
			if r.changed() {
				ui.Error("%s is out of date", r.path)
				stale++
				continue
			}
			ui.Success("%s is up to date", r.path)

		default:
			if !r.changed() {
				ui.Success("%s is up to date", r.path)
				continue
			}
			if err := fileutil.WriteFileAtomic(r.path, []byte(r.content), 0644); err != nil {
				return fmt.Errorf("write %s: %w", r.path, err)
			}
			ui.Success("Wrote %s", r.path)
		}
	}

	if stale > 0 {
		return fmt.Errorf("%w: %d of %d feedstock(s), run pixigen render", errStale, stale, len(results))
	}
	return nil
}
