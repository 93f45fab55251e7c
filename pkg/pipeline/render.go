package pipeline

import (
	"fmt"

	"github.com/ylingene/gallery/pkg/gallery"
	"github.com/ylingene/gallery/pkg/render"
)

// Render generates output artifacts in the requested formats.
func Render(doc gallery.LayoutDoc, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	renderOpts := buildRenderOptions(opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatJSON:
			data, err = render.JSON(doc)
		case FormatSVG:
			data = render.SVG(doc, renderOpts...)
		case FormatHTML:
			data, err = render.HTML(doc, renderOpts...)
		case FormatPNG:
			data, err = render.PNG(doc, renderOpts...)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// RenderFromLayoutData renders output from serialized layout data.
// This is useful when the layout was computed elsewhere (e.g., cached).
func RenderFromLayoutData(layoutData []byte, opts Options) (map[string][]byte, error) {
	doc, err := gallery.UnmarshalLayout(layoutData)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return Render(doc, opts)
}

// buildRenderOptions converts pipeline options to render sink options.
func buildRenderOptions(opts Options) []render.Option {
	var renderOpts []render.Option
	if opts.Labels {
		renderOpts = append(renderOpts, render.WithLabels())
	}
	if opts.Thumbs {
		renderOpts = append(renderOpts, render.WithThumbs(opts.SourceDir))
	}
	return renderOpts
}
