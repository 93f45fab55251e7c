// Package gallery provides serialization types for gallery manifests and
// computed layouts.
//
// This package defines the canonical wire format for the toolchain's data,
// used for JSON files, caching, and hand-off between build steps.
//
// # Architecture
//
// The package sits at the serialization boundary between internal
// representations and external formats:
//
//   - [Manifest], [LayoutDoc]: Serialization types (this package)
//   - pkg/layout.Image, pkg/layout.Result: Internal layout representations
//
// Use [Manifest.LayoutImages] and [FromResult] to convert between them.
//
// # Manifest Serialization
//
// Manifests use a simple JSON format:
//
//	{
//	  "title": "Iceland",
//	  "images": [{"id": "01.jpg", "width": 6000, "height": 4000}]
//	}
//
// Common operations:
//
//	m, _ := gallery.ReadManifestFile("manifest.json") // File → Manifest
//	gallery.WriteManifestFile(m, "manifest.json")     // Manifest → File
//	data, _ := gallery.MarshalManifest(m)             // Manifest → []byte
//
// # Layout Serialization
//
// A LayoutDoc captures one layout computation for one container width,
// including widow accounting, filler geometry, and per-image load hints.
// It is the input to all render sinks and the unit of layout caching.
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package gallery
