package layout

import (
	"github.com/ylingene/gallery/pkg/errors"
)

// ErrNotMeasured is returned when the container width has not been
// observed yet (zero or negative). It signals "no layout available",
// which callers must treat differently from an empty layout.
var ErrNotMeasured = errors.New(errors.ErrCodeNotMeasured, "container width not measured")

// Layout computes the justified layout for images inside a container of
// the given width.
//
// Containers at or below cfg.MobileBreakpoint use the single-column
// fallback and never produce widows. Wider containers are packed into
// justified rows; a trailing row that cannot be stretched to full width
// without leaving the height tolerance stays at the target height and its
// boxes are reported via Result.WidowCount.
//
// The result depends only on the arguments: identical inputs always yield
// identical output.
func Layout(containerWidth float64, images []Image, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if containerWidth <= 0 {
		return Result{}, ErrNotMeasured
	}
	if err := ValidateImages(images); err != nil {
		return Result{}, err
	}
	if len(images) == 0 {
		return Result{}, nil
	}

	if containerWidth <= cfg.MobileBreakpoint {
		return mobileResult(containerWidth, images, cfg), nil
	}

	frame := containerWidth - 2*cfg.ContainerPadding
	if frame <= 0 {
		return Result{}, errors.New(errors.ErrCodeInvalidConfig,
			"container padding %v leaves no room in width %v", cfg.ContainerPadding, containerWidth)
	}

	rows := partitionRows(images, frame, cfg)

	var (
		boxes  []Box
		y      float64
		widows int
	)
	for i, r := range rows {
		last := i == len(rows)-1

		var (
			rowBoxes  []Box
			rowHeight float64
		)
		switch {
		case r.closed:
			rowBoxes, rowHeight = justifyRow(r, frame, cfg)
		case len(rows) == 1:
			// A gallery that fits in one never-closed row is stretched to
			// fill the container; a fully-short single row is not a widow.
			rowBoxes, rowHeight = justifyRow(r, frame, cfg)
		case last && fitsTolerance(r, frame, cfg):
			rowBoxes, rowHeight = justifyRow(r, frame, cfg)
		default:
			rowBoxes, rowHeight = shortRow(r, cfg)
			widows = len(r.images)
		}

		for j := range rowBoxes {
			rowBoxes[j].Top = y
		}
		boxes = append(boxes, rowBoxes...)
		y += rowHeight + cfg.BoxSpacing
	}

	return Result{
		Boxes:         boxes,
		WidowCount:    widows,
		RowCount:      len(rows),
		ContentHeight: y - cfg.BoxSpacing,
	}, nil
}

// ValidateImages rejects descriptors whose intrinsic dimensions would make
// the aspect ratio undefined. The engine calls it before packing so that
// degenerate inputs fail loudly instead of producing NaN geometry.
func ValidateImages(images []Image) error {
	for _, img := range images {
		if img.Width <= 0 || img.Height <= 0 {
			return errors.New(errors.ErrCodeInvalidImage,
				"invalid image descriptor %q: dimensions %vx%v", img.ID, img.Width, img.Height)
		}
	}
	return nil
}
