package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ylingene/gallery/pkg/cache"
	"github.com/ylingene/gallery/pkg/gallery"
	"github.com/ylingene/gallery/pkg/observability"
	"github.com/ylingene/gallery/pkg/scan"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete scan → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Scan
	scanStart := time.Now()
	m, scanHit, err := r.ScanWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	result.Manifest = m
	result.Stats.ScanTime = time.Since(scanStart)
	result.Stats.ImageCount = len(m.Images)
	result.CacheInfo.ScanHit = scanHit

	// Compute manifest hash for cache keys and stats
	if data, err := gallery.MarshalManifest(*m); err == nil {
		result.ManifestHash = cache.Hash(data)
	}

	r.Logger.Info("scanned images",
		"dir", opts.SourceDir,
		"images", len(m.Images),
		"duration", result.Stats.ScanTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	doc, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, m, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = doc
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.RowCount = doc.RowCount
	result.Stats.WidowCount = doc.WidowCount
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"width", opts.ContainerWidth,
		"rows", doc.RowCount,
		"widows", doc.WidowCount,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ScanWithCacheInfo scans the source directory with caching and returns cache hit info.
func (r *Runner) ScanWithCacheInfo(ctx context.Context, opts Options) (*gallery.Manifest, bool, error) {
	if err := opts.ValidateForScan(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	start := time.Now()
	observability.Pipeline().OnScanStart(ctx, opts.SourceDir)

	scanner, err := scan.NewScanner(opts.SourceDir, scan.Options{
		Recursive: opts.Recursive,
		Logger:    opts.Logger,
	})
	if err != nil {
		observability.Pipeline().OnScanComplete(ctx, opts.SourceDir, 0, time.Since(start), err)
		return nil, false, err
	}

	// The fingerprint covers file names, sizes, and mtimes, so the cache
	// key changes whenever the directory does.
	fingerprint, err := scanner.Fingerprint()
	if err != nil {
		observability.Pipeline().OnScanComplete(ctx, opts.SourceDir, 0, time.Since(start), err)
		return nil, false, err
	}
	cacheKey := r.Keyer.ManifestKey(fingerprint, opts.ManifestKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := gallery.UnmarshalManifest(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "manifest")
				observability.Pipeline().OnScanComplete(ctx, opts.SourceDir, len(cached.Images), time.Since(start), nil)
				return &cached, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "manifest")
	}

	// Scan
	m, err := scanner.Scan(ctx)
	if err != nil {
		observability.Pipeline().OnScanComplete(ctx, opts.SourceDir, 0, time.Since(start), err)
		return nil, false, err
	}

	// Cache the result
	if data, err := gallery.MarshalManifest(*m); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLManifest)
		observability.Cache().OnCacheSet(ctx, "manifest", len(data))
	}

	observability.Pipeline().OnScanComplete(ctx, opts.SourceDir, len(m.Images), time.Since(start), nil)
	return m, false, nil // Cache miss
}

// Scan is a convenience wrapper that calls ScanWithCacheInfo and discards the cache hit info.
func (r *Runner) Scan(ctx context.Context, opts Options) (*gallery.Manifest, error) {
	m, _, err := r.ScanWithCacheInfo(ctx, opts)
	return m, err
}

// ComputeLayoutWithCacheInfo computes a layout with caching and returns cache hit info.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, m *gallery.Manifest, opts Options) (gallery.LayoutDoc, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return gallery.LayoutDoc{}, false, err
	}
	r.applyLogger(&opts)

	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, opts.ContainerWidth, len(m.Images))

	// Compute cache key
	manifestData, _ := gallery.MarshalManifest(*m)
	manifestHash := cache.Hash(manifestData)
	cacheKey := r.Keyer.LayoutKey(manifestHash, opts.LayoutKeyOpts())

	// Try cache first
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := gallery.UnmarshalLayout(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				observability.Pipeline().OnLayoutComplete(ctx, opts.ContainerWidth, cached.RowCount, cached.WidowCount, time.Since(start), nil)
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	// Compute layout
	doc, err := ComputeLayout(m, opts)
	if err != nil {
		observability.Pipeline().OnLayoutComplete(ctx, opts.ContainerWidth, 0, 0, time.Since(start), err)
		return gallery.LayoutDoc{}, false, err
	}

	// Cache the result
	if data, err := gallery.MarshalLayout(doc); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	observability.Pipeline().OnLayoutComplete(ctx, opts.ContainerWidth, doc.RowCount, doc.WidowCount, time.Since(start), nil)
	return doc, false, nil // Cache miss
}

// ComputeLayout is a convenience wrapper that calls ComputeLayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, m *gallery.Manifest, opts Options) (gallery.LayoutDoc, error) {
	doc, _, err := r.ComputeLayoutWithCacheInfo(ctx, m, opts)
	return doc, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, doc gallery.LayoutDoc, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)

	// Compute cache key from layout data
	layoutData, err := gallery.MarshalLayout(doc)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
			} else {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				allCached = false
				break
			}
		}

		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
			return artifacts, true, nil // All artifacts from cache
		}
	}

	// Render all formats
	rendered, err := Render(doc, opts)
	if err != nil {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, doc gallery.LayoutDoc, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, doc, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
