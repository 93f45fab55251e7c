// Package pipeline provides the core gallery build pipeline.
//
// This package implements the complete scan → layout → render pipeline that
// can be used by CLI and library consumers. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Scan: Discover images in a source directory and measure dimensions
//  2. Layout: Pack images into justified rows for a container width
//  3. Render: Generate output in various formats (JSON, SVG, HTML, PNG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    SourceDir:      "photos/iceland",
//	    ContainerWidth: 1200,
//	    Formats:        []string{"html"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	page := result.Artifacts["html"]
//
// Run individual stages:
//
//	// Scan only
//	m, err := runner.Scan(ctx, opts)
//
//	// Layout with an existing manifest
//	doc, err := runner.ComputeLayout(ctx, m, opts)
//
//	// Render with an existing layout
//	artifacts, err := runner.Render(ctx, doc, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ylingene/gallery/pkg/cache"
	"github.com/ylingene/gallery/pkg/gallery"
	"github.com/ylingene/gallery/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Consumers
// =============================================================================

// DefaultContainerWidth is the container width used when none is given.
// Chosen to match a common content column on desktop viewports.
const DefaultContainerWidth = 1200.0

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatHTML = "html"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatSVG:  true,
	FormatHTML: true,
	FormatPNG:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the gallery pipeline.
// This struct supports JSON serialization so a build can be replayed.
type Options struct {
	// Scan options
	SourceDir string `json:"source_dir"`
	Recursive bool   `json:"recursive,omitempty"`
	Refresh   bool   `json:"refresh,omitempty"` // Bypass caches and recompute

	// Layout options. Zero values take the engine defaults.
	ContainerWidth    float64 `json:"container_width,omitempty"`
	TargetRowHeight   float64 `json:"target_row_height,omitempty"`
	Tolerance         float64 `json:"tolerance,omitempty"`
	BoxSpacing        float64 `json:"box_spacing,omitempty"`
	ContainerPadding  float64 `json:"container_padding,omitempty"`
	MobileBreakpoint  float64 `json:"mobile_breakpoint,omitempty"`
	DesktopBreakpoint float64 `json:"desktop_breakpoint,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Labels  bool     `json:"labels,omitempty"` // Draw image IDs in SVG/PNG
	Thumbs  bool     `json:"thumbs,omitempty"` // Draw real thumbnails in PNG

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Manifest is the scanned image inventory.
	Manifest *gallery.Manifest

	// ManifestHash is the content hash of the manifest.
	ManifestHash string

	// Layout is the computed layout document.
	Layout gallery.LayoutDoc

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ImageCount int
	RowCount   int
	WidowCount int
	ScanTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ScanHit   bool // Whether the manifest came from cache
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: json, svg, html, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForScan(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := o.LayoutConfig().Validate(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForScan checks required fields for scanning.
func (o *Options) ValidateForScan() error {
	if o.SourceDir == "" {
		return fmt.Errorf("source directory is required")
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.ContainerWidth == 0 {
		o.ContainerWidth = DefaultContainerWidth
	}
	if o.TargetRowHeight == 0 {
		o.TargetRowHeight = layout.DefaultTargetRowHeight
	}
	if o.Tolerance == 0 {
		o.Tolerance = layout.DefaultTolerance
	}
	if o.BoxSpacing == 0 {
		o.BoxSpacing = layout.DefaultBoxSpacing
	}
	if o.MobileBreakpoint == 0 {
		o.MobileBreakpoint = layout.DefaultMobileBreakpoint
	}
	if o.DesktopBreakpoint == 0 {
		o.DesktopBreakpoint = layout.DefaultDesktopBreakpoint
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return o.LayoutConfig().Validate()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatHTML}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// LayoutConfig builds the engine configuration from the options.
func (o *Options) LayoutConfig() layout.Config {
	return layout.Config{
		BoxSpacing:        o.BoxSpacing,
		ContainerPadding:  o.ContainerPadding,
		TargetRowHeight:   o.TargetRowHeight,
		Tolerance:         o.Tolerance,
		MobileBreakpoint:  o.MobileBreakpoint,
		DesktopBreakpoint: o.DesktopBreakpoint,
	}
}

// ApplyConfig copies engine settings from a loaded configuration file.
// Explicitly set option fields win over the file.
func (o *Options) ApplyConfig(cfg layout.Config) {
	if o.BoxSpacing == 0 {
		o.BoxSpacing = cfg.BoxSpacing
	}
	if o.ContainerPadding == 0 {
		o.ContainerPadding = cfg.ContainerPadding
	}
	if o.TargetRowHeight == 0 {
		o.TargetRowHeight = cfg.TargetRowHeight
	}
	if o.Tolerance == 0 {
		o.Tolerance = cfg.Tolerance
	}
	if o.MobileBreakpoint == 0 {
		o.MobileBreakpoint = cfg.MobileBreakpoint
	}
	if o.DesktopBreakpoint == 0 {
		o.DesktopBreakpoint = cfg.DesktopBreakpoint
	}
}

// ManifestKeyOpts returns cache key options for manifest scanning.
func (o *Options) ManifestKeyOpts() cache.ManifestKeyOpts {
	return cache.ManifestKeyOpts{
		Recursive: o.Recursive,
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		ContainerWidth:    o.ContainerWidth,
		TargetRowHeight:   o.TargetRowHeight,
		Tolerance:         o.Tolerance,
		BoxSpacing:        o.BoxSpacing,
		ContainerPadding:  o.ContainerPadding,
		MobileBreakpoint:  o.MobileBreakpoint,
		DesktopBreakpoint: o.DesktopBreakpoint,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Labels: o.Labels,
		Thumbs: o.Thumbs,
	}
}
