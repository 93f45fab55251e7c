package layout

const eps = 1e-9

// row is the intermediate unit of the two-phase packing: a run of images
// together with their summed width at the target row height. A closed row
// reached the frame width during partitioning; an open row is the trailing
// remainder.
type row struct {
	images  []Image
	natural float64 // Σ image widths at target row height, gaps excluded
	closed  bool
}

// gaps returns the total horizontal spacing inside the row.
func (r row) gaps(spacing float64) float64 {
	if len(r.images) < 2 {
		return 0
	}
	return float64(len(r.images)-1) * spacing
}

// partitionRows greedily assigns images to rows, measuring each image at
// the target row height. A row closes as soon as its width including gaps
// reaches frameWidth; the image that crossed the line stays in the closing
// row, so justification scales the row down to an exact fit rather than
// stretching a nearly-empty next row.
func partitionRows(images []Image, frameWidth float64, cfg Config) []row {
	var rows []row
	current := row{}

	for _, img := range images {
		w := cfg.TargetRowHeight * img.AspectRatio()
		current.images = append(current.images, img)
		current.natural += w

		if current.natural+current.gaps(cfg.BoxSpacing) >= frameWidth-eps {
			current.closed = true
			rows = append(rows, current)
			current = row{}
		}
	}

	if len(current.images) > 0 {
		rows = append(rows, current)
	}
	return rows
}

// justifyRow uniformly scales the row so it exactly spans frameWidth,
// preserving each image's own aspect ratio. It returns the boxes without
// vertical positions and the resulting row height.
func justifyRow(r row, frameWidth float64, cfg Config) ([]Box, float64) {
	scale := (frameWidth - r.gaps(cfg.BoxSpacing)) / r.natural
	height := cfg.TargetRowHeight * scale
	return buildRow(r.images, height, cfg), height
}

// shortRow lays the row out at the target height without stretching,
// producing the widow boxes of an under-filled trailing row.
func shortRow(r row, cfg Config) ([]Box, float64) {
	return buildRow(r.images, cfg.TargetRowHeight, cfg), cfg.TargetRowHeight
}

// fitsTolerance reports whether justifying the row would keep its height
// inside [target*(1-tol), target*(1+tol)]. This is the authoritative widow
// condition for the trailing row.
func fitsTolerance(r row, frameWidth float64, cfg Config) bool {
	scale := (frameWidth - r.gaps(cfg.BoxSpacing)) / r.natural
	height := cfg.TargetRowHeight * scale
	lo := cfg.TargetRowHeight * (1 - cfg.Tolerance)
	hi := cfg.TargetRowHeight * (1 + cfg.Tolerance)
	return height >= lo-eps && height <= hi+eps
}

// buildRow materializes boxes at the given row height, assigning Left
// coordinates from the container padding onward. Top is filled in by the
// caller once the row's vertical offset is known.
func buildRow(images []Image, height float64, cfg Config) []Box {
	boxes := make([]Box, len(images))
	x := cfg.ContainerPadding
	for i, img := range images {
		ar := img.AspectRatio()
		w := height * ar
		boxes[i] = Box{
			ID:          img.ID,
			Left:        x,
			Width:       w,
			Height:      height,
			AspectRatio: ar,
		}
		x += w + cfg.BoxSpacing
	}
	return boxes
}
