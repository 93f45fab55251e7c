// Package cli implements the gallery command-line interface.
//
// This package provides commands for scanning photo directories, computing
// justified layouts, rendering static gallery artifacts, and managing the
// build cache. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - scan: Discover images and write a gallery manifest
//   - layout: Compute a justified layout from a manifest
//   - render: Generate JSON, SVG, HTML, or PNG artifacts from a layout
//   - build: Run the complete scan → layout → render pipeline
//   - preview: Explore layouts interactively across container widths
//   - cache: Manage the build cache
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ylingene/gallery/pkg/buildinfo"
	"github.com/ylingene/gallery/pkg/cache"
	"github.com/ylingene/gallery/pkg/layout"
	"github.com/ylingene/gallery/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "gallery"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Gallery lays out photo collections as justified grids",
		Long:         `Gallery is a CLI tool for building justified photo galleries: it scans image directories, packs images into uniform-height rows that exactly fill a container width, and renders the result as static HTML, SVG, PNG, or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.scanCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/gallery/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// applyConfigFile loads engine settings from a TOML config file if given,
// filling only the option fields the user left unset on the command line.
func applyConfigFile(opts *pipeline.Options, path string) error {
	if path == "" {
		return nil
	}
	cfg, err := layout.LoadConfig(path)
	if err != nil {
		return err
	}
	opts.ApplyConfig(cfg)
	return nil
}

// registerLayoutFlags wires the shared layout geometry flags onto a command.
func registerLayoutFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().Float64VarP(&opts.ContainerWidth, "width", "w", 0, "container width in pixels (default 1200)")
	cmd.Flags().Float64Var(&opts.TargetRowHeight, "row-height", 0, "target row height in pixels (default 320)")
	cmd.Flags().Float64Var(&opts.Tolerance, "tolerance", 0, "row height tolerance fraction (default 0.25)")
	cmd.Flags().Float64Var(&opts.BoxSpacing, "spacing", 0, "spacing between boxes in pixels (default 10)")
	cmd.Flags().Float64Var(&opts.ContainerPadding, "padding", 0, "horizontal container padding in pixels")
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatHTML}
	}
	return strings.Split(s, ",")
}
