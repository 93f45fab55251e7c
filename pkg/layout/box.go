package layout

// Image describes one gallery image by its intrinsic pixel dimensions.
// The ID is opaque to the engine; callers typically use the source path.
type Image struct {
	ID     string
	Width  float64
	Height float64
}

// AspectRatio returns width divided by height.
func (i Image) AspectRatio() float64 { return i.Width / i.Height }

// Box is the on-screen rectangle allocated to one image. Coordinates are
// relative to the container's top-left corner, in px.
type Box struct {
	ID          string
	Left, Top   float64
	Width       float64
	Height      float64
	AspectRatio float64
}

// Right returns the x coordinate of the box's right edge.
func (b Box) Right() float64 { return b.Left + b.Width }

// Bottom returns the y coordinate of the box's bottom edge.
func (b Box) Bottom() float64 { return b.Top + b.Height }

// Filler is the invisible element that occupies the horizontal space left
// over by a widow row, so space-between distribution does not push the
// widow images to both edges.
type Filler struct {
	Width  float64
	Height float64
}

// Result is the outcome of one layout computation. Boxes preserves the
// input image order; WidowCount is the number of boxes in a trailing row
// that was left unjustified (0 when every row fills the container).
type Result struct {
	Boxes         []Box
	WidowCount    int
	RowCount      int
	ContentHeight float64
}

// Widows returns the trailing WidowCount boxes, or nil when the layout
// has no widow row.
func (r Result) Widows() []Box {
	if r.WidowCount == 0 {
		return nil
	}
	return r.Boxes[len(r.Boxes)-r.WidowCount:]
}
