package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/pixigen/internal/config"
	"github.com/cameronsjo/pixigen/internal/feedstock"
	"github.com/cameronsjo/pixigen/internal/ui"
)

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants [feedstock-dir]",
		Short: "List CI variants and their platforms",
		Long: `List the CI variants found in .ci_support/ together with the platform each
one maps to. These are the variants render creates build, debug and inspect
tasks for.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		ValidArgsFunction: completeDirectories,
		RunE:              runVariants,
	}
}

func runVariants(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	variants, err := feedstock.DiscoverVariants(cfg.CISupportDir())
	if err != nil {
		return err
	}
	if len(variants) == 0 {
		ui.Warning("No variants in %s (run conda smithy rerender first)", cfg.CISupportDir())
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PLATFORM\tVARIANT")
	for _, v := range variants {
		platform, ok := feedstock.PlatformFromVariant(v)
		if !ok {
			platform = "?"
		}
		fmt.Fprintf(tw, "%s\t%s\n", platform, v)
	}
	return tw.Flush()
}
