package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ylingene/gallery/pkg/gallery"
	"github.com/ylingene/gallery/pkg/pipeline"
)

// layoutCommand creates the layout command for computing justified layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		configPath string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [manifest.json]",
		Short: "Compute a justified layout from a gallery manifest",
		Long: `Compute a justified layout from a gallery manifest.

The layout command takes a manifest.json file (produced by 'scan') and packs
the images into rows of uniform height that exactly fill the container width.
The output is a layout.json file that can be rendered to HTML, SVG, or PNG
using the 'render' command.

At or below the mobile breakpoint the layout falls back to a single column.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfigFile(&opts, configPath); err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file with engine settings")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass cache and recompute")

	registerLayoutFlags(cmd, &opts)

	return cmd
}

// runLayout loads the manifest, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	m, err := gallery.ReadManifestFile(input)
	if err != nil {
		return fmt.Errorf("load manifest %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	if opts.SourceDir == "" {
		opts.SourceDir = m.Source
	}
	opts.SetLayoutDefaults()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing layout at %.0fpx...", opts.ContainerWidth))
	spinner.Start()

	doc, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, &m, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := gallery.WriteLayoutFile(doc, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(doc.Boxes), doc.RowCount, doc.WidowCount, cacheHit)
	printNewline()
	printNextStep("Render", appName+" render "+outputPath)

	return nil
}
