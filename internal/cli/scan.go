package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ylingene/gallery/pkg/gallery"
	"github.com/ylingene/gallery/pkg/pipeline"
)

// scanCommand creates the scan command for building gallery manifests.
func (c *CLI) scanCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Scan a directory and write a gallery manifest",
		Long: `Scan a directory for images and write a gallery manifest.

The scan command discovers JPEG, PNG, GIF, WebP, TIFF, and BMP files, reads
their intrinsic dimensions from file headers, and writes a manifest.json
describing the gallery. Optional metadata (title, alt text, captions) is
read from a gallery.toml sidecar file in the directory.

Results are cached locally; an unchanged directory reuses its cached manifest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.SourceDir = args[0]
			return c.runScan(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <directory>/manifest.json)")
	cmd.Flags().BoolVarP(&opts.Recursive, "recursive", "r", false, "descend into subdirectories")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass cache and rescan")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runScan scans the directory and writes the manifest.
func (c *CLI) runScan(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Scanning images...")
	spinner.Start()

	m, cacheHit, err := runner.ScanWithCacheInfo(ctx, opts)
	if err != nil {
		spinner.StopWithError("Scan failed")
		return fmt.Errorf("scan %s: %w", opts.SourceDir, err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = filepath.Join(opts.SourceDir, "manifest.json")
	}

	if err := gallery.WriteManifestFile(*m, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Scan complete")
	printFile(outputPath)
	printStats(len(m.Images), 0, 0, cacheHit)
	printNewline()
	printNextStep("Compute layout", appName+" layout "+outputPath)

	return nil
}
