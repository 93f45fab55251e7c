// Package render turns a computed gallery layout into output artifacts.
//
// # Overview
//
// Four sinks share one option surface:
//
//   - JSON: the layout document itself, for downstream tooling
//   - SVG: a wireframe of the box geometry, useful for inspecting rows
//   - HTML: a static gallery page with absolutely positioned images
//   - PNG: a contact sheet drawn with real thumbnails or placeholder tiles
//
// # Usage
//
//	svg := render.SVG(doc, render.WithLabels())
//	page, err := render.HTML(doc)
//	sheet, err := render.PNG(doc, render.WithThumbs("photos/iceland"))
//
// All sinks read the same layout document, so artifacts for one gallery are
// always geometrically consistent with each other.
package render
