// Package pkg provides the core libraries for gallery layout and rendering.
//
// # Overview
//
// Gallery turns a directory of photos into a justified grid: rows of uniform
// height that exactly fill a container width, the way photo sites lay out
// their albums. The pkg directory is organized into these areas:
//
//  1. [layout] - The justified layout engine (row packing, scaling, widows)
//  2. [gallery] - Serialization types for manifests and layout documents
//  3. [scan] - Image discovery and dimension measurement
//  4. [render] - Output sinks (JSON, SVG, HTML, PNG)
//  5. [pipeline] - Orchestration (scan → layout → render) with caching
//  6. [cache] - Content-addressed build cache
//
// # Architecture
//
// The typical data flow through a gallery build:
//
//	Source directory
//	         ↓
//	    [scan] package (discover images, read dimensions)
//	         ↓
//	    [layout] package (pack justified rows)
//	         ↓
//	    [render] package (generate artifacts)
//	         ↓
//	    HTML/SVG/PNG/JSON output
//
// # Quick Start
//
// Run the full pipeline with a Runner:
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    SourceDir: "photos/iceland",
//	    Formats:   []string{"html"},
//	})
//
// Or call the engine directly when the images are already measured:
//
//	res, err := layout.Layout(1200, images, layout.DefaultConfig())
//
// [layout]: github.com/ylingene/gallery/pkg/layout
// [gallery]: github.com/ylingene/gallery/pkg/gallery
// [scan]: github.com/ylingene/gallery/pkg/scan
// [render]: github.com/ylingene/gallery/pkg/render
// [pipeline]: github.com/ylingene/gallery/pkg/pipeline
// [cache]: github.com/ylingene/gallery/pkg/cache
package pkg
