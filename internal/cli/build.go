package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ylingene/gallery/pkg/pipeline"
)

// buildCommand creates the build command running the complete pipeline.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		outputDir  string
		formatsStr string
		configPath string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "build [directory]",
		Short: "Scan, lay out, and render a gallery in one step",
		Long: `Run the complete scan → layout → render pipeline.

The build command scans the source directory, computes a justified layout
for the container width, and writes the rendered artifacts to the output
directory. Each stage is cached independently, so rebuilding an unchanged
gallery is fast.

Examples:
  gallery build photos/iceland
  gallery build photos/iceland -w 1440 -f html,svg,json -o dist/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.SourceDir = args[0]
			opts.Formats = parseFormats(formatsStr)
			if err := applyConfigFile(&opts, configPath); err != nil {
				return err
			}
			return c.runBuild(cmd.Context(), opts, outputDir, noCache)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default: <directory>)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): html (default), svg, png, json (comma-separated)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file with engine settings")
	cmd.Flags().BoolVarP(&opts.Recursive, "recursive", "r", false, "descend into subdirectories")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "draw image IDs in SVG and PNG output")
	cmd.Flags().BoolVar(&opts.Thumbs, "thumbs", false, "draw real thumbnails in PNG output")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass caches and rebuild")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	registerLayoutFlags(cmd, &opts)

	return cmd
}

// runBuild executes the pipeline and writes one file per format.
func (c *CLI) runBuild(ctx context.Context, opts pipeline.Options, outputDir string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Building gallery...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Build failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if outputDir == "" {
		outputDir = opts.SourceDir
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir %s: %w", outputDir, err)
	}

	printSuccess("Build complete")
	for _, format := range opts.Formats {
		path := filepath.Join(outputDir, "gallery."+format)
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		printFile(path)
	}

	cached := result.CacheInfo.ScanHit && result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit
	printStats(result.Stats.ImageCount, result.Stats.RowCount, result.Stats.WidowCount, cached)
	printDetail("scan %s · layout %s · render %s",
		result.Stats.ScanTime.Round(time.Millisecond),
		result.Stats.LayoutTime.Round(time.Millisecond),
		result.Stats.RenderTime.Round(time.Millisecond))

	return nil
}
