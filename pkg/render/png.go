package render

import (
	"bytes"
	"image"
	"math"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/ylingene/gallery/pkg/gallery"
)

// Placeholder tile colors, cycled per box.
var pngPalette = [][3]float64{
	{0.81, 0.89, 0.95},
	{0.85, 0.92, 0.83},
	{1.00, 0.95, 0.80},
	{0.96, 0.80, 0.80},
	{0.85, 0.82, 0.91},
}

// PNG renders a raster contact sheet of the layout. Without WithThumbs each
// box becomes a colored tile; with it, source images are resized to their
// box geometry so the sheet previews the finished gallery.
func PNG(doc gallery.LayoutDoc, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)

	w := int(math.Ceil(doc.ContainerWidth))
	h := int(math.Ceil(doc.ContentHeight))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(0.98, 0.98, 0.98)
	dc.Clear()

	for i, b := range doc.Boxes {
		if thumb := r.loadThumb(b); thumb != nil {
			dc.DrawImage(thumb, int(math.Round(b.Left)), int(math.Round(b.Top)))
		} else {
			c := pngPalette[i%len(pngPalette)]
			dc.SetRGB(c[0], c[1], c[2])
			dc.DrawRectangle(b.Left, b.Top, b.Width, b.Height)
			dc.Fill()
		}
		dc.SetRGB(0.4, 0.4, 0.4)
		dc.SetLineWidth(1)
		dc.DrawRectangle(b.Left, b.Top, b.Width, b.Height)
		dc.Stroke()

		if r.labels {
			dc.SetRGB(0.2, 0.2, 0.2)
			dc.DrawString(b.ID, b.Left+6, b.Top+16)
		}
	}

	if doc.Filler != nil && len(doc.Boxes) > 0 {
		last := doc.Boxes[len(doc.Boxes)-1]
		dc.SetRGB(0.6, 0.6, 0.6)
		dc.SetLineWidth(1)
		dc.SetDash(6, 4)
		dc.DrawRectangle(doc.ContainerWidth-doc.Filler.Width, last.Top, doc.Filler.Width, doc.Filler.Height)
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// loadThumb reads and resizes the source image for a box. Returns nil when
// thumbnails are disabled or the file cannot be decoded, which falls back
// to a placeholder tile.
func (r *renderer) loadThumb(b gallery.Box) image.Image {
	if r.thumbsDir == "" {
		return nil
	}
	src, err := imaging.Open(filepath.Join(r.thumbsDir, filepath.FromSlash(b.ID)))
	if err != nil {
		return nil
	}
	return imaging.Fill(src, int(math.Round(b.Width)), int(math.Round(b.Height)), imaging.Center, imaging.Lanczos)
}
