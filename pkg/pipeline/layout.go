package pipeline

import (
	"github.com/ylingene/gallery/pkg/gallery"
	"github.com/ylingene/gallery/pkg/layout"
)

// ComputeLayout runs the justified layout engine over a manifest and wraps
// the result in its serialization format. This is the uncached stage entry;
// most callers want Runner.ComputeLayout.
func ComputeLayout(m *gallery.Manifest, opts Options) (gallery.LayoutDoc, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return gallery.LayoutDoc{}, err
	}

	cfg := opts.LayoutConfig()
	res, err := layout.Layout(opts.ContainerWidth, m.LayoutImages(), cfg)
	if err != nil {
		return gallery.LayoutDoc{}, err
	}

	return gallery.FromResult(*m, res, opts.ContainerWidth, cfg), nil
}
