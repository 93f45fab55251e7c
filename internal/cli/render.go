package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ylingene/gallery/pkg/gallery"
	"github.com/ylingene/gallery/pkg/pipeline"
)

// renderCommand creates the render command for generating artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [layout.json]",
		Short: "Render a layout to HTML, SVG, PNG, or JSON",
		Long: `Render a layout to output artifacts.

The render command takes a layout.json file (produced by 'layout') and
generates artifacts in the requested formats:

  html  static gallery page with absolutely positioned images
  svg   wireframe of the box geometry
  png   raster contact sheet (use --thumbs for real thumbnails)
  json  the layout document itself

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): html (default), svg, png, json (comma-separated)")
	cmd.Flags().StringVar(&opts.SourceDir, "source", "", "source image directory (for --thumbs)")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "draw image IDs in SVG and PNG output")
	cmd.Flags().BoolVar(&opts.Thumbs, "thumbs", false, "draw real thumbnails in PNG output")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass cache and re-render")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runRender loads the layout, renders the requested formats, and writes the files.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	doc, err := gallery.ReadLayoutFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}

	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return err
	}
	if opts.Thumbs && opts.SourceDir == "" {
		return fmt.Errorf("--thumbs requires --source")
	}
	if opts.SourceDir == "" {
		// Render needs no source dir unless thumbnails are requested, but
		// the options require one; the layout's directory stands in.
		opts.SourceDir = filepath.Dir(input)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, doc, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(artifacts, opts.Formats, output, input)
	if err != nil {
		return err
	}

	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(len(doc.Boxes), doc.RowCount, doc.WidowCount, cacheHit)

	return nil
}

// writeArtifacts writes each rendered format to disk and returns the paths.
// With a single format, output names the file directly; with several, it is
// a base path that gets a per-format extension.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, input string) ([]string, error) {
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, ".layout.json")
		base = strings.TrimSuffix(base, filepath.Ext(base))
	} else if len(formats) == 1 {
		if err := os.WriteFile(output, artifacts[formats[0]], 0644); err != nil {
			return nil, fmt.Errorf("write output %s: %w", output, err)
		}
		return []string{output}, nil
	}

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := base + "." + format
		if err := os.WriteFile(path, artifacts[format], 0644); err != nil {
			return nil, fmt.Errorf("write output %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
