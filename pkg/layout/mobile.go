package layout

// LayoutMobile computes the single-column fallback: one image per row,
// each box spanning the full container width with height derived from the
// image's own aspect ratio. The justified packer's tolerance logic
// produces uneven rows at very small widths, so narrow containers use
// this predictable path instead.
//
// Callers are expected to validate the images first (see ValidateImages);
// the engine does this before delegating.
func LayoutMobile(containerWidth float64, images []Image) []Box {
	return stackColumn(containerWidth, images, DefaultBoxSpacing)
}

// mobileResult wraps the single-column layout in a Result, using the
// configured spacing for the vertical gaps.
func mobileResult(containerWidth float64, images []Image, cfg Config) Result {
	boxes := stackColumn(containerWidth, images, cfg.BoxSpacing)
	height := 0.0
	if n := len(boxes); n > 0 {
		height = boxes[n-1].Bottom()
	}
	return Result{
		Boxes:         boxes,
		WidowCount:    0,
		RowCount:      len(images),
		ContentHeight: height,
	}
}

func stackColumn(containerWidth float64, images []Image, spacing float64) []Box {
	boxes := make([]Box, len(images))
	var y float64
	for i, img := range images {
		ar := img.AspectRatio()
		h := containerWidth / ar
		boxes[i] = Box{
			ID:          img.ID,
			Top:         y,
			Width:       containerWidth,
			Height:      h,
			AspectRatio: ar,
		}
		y += h + spacing
	}
	return boxes
}
