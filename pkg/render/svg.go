package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/ylingene/gallery/pkg/gallery"
)

// Fill colors cycle per box so adjacent rectangles stay distinguishable
// in the wireframe.
var svgPalette = []string{"#cfe2f3", "#d9ead3", "#fff2cc", "#f4cccc", "#d9d2e9"}

// SVG renders a wireframe of the layout geometry: one rectangle per box, a
// dashed rectangle for the widow filler, and optional ID labels. The
// wireframe is the quickest way to inspect row structure without touching
// image files.
func SVG(doc gallery.LayoutDoc, opts ...Option) []byte {
	r := newRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		doc.ContainerWidth, doc.ContentHeight, doc.ContainerWidth, doc.ContentHeight)

	for i, b := range doc.Boxes {
		fill := svgPalette[i%len(svgPalette)]
		fmt.Fprintf(&buf,
			`  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="#666" stroke-width="1"/>`+"\n",
			b.Left, b.Top, b.Width, b.Height, fill)
		if r.labels {
			fmt.Fprintf(&buf,
				`  <text x="%.2f" y="%.2f" font-size="12" font-family="sans-serif" fill="#333">%s</text>`+"\n",
				b.Left+6, b.Top+16, html.EscapeString(b.ID))
		}
	}

	if doc.Filler != nil && len(doc.Boxes) > 0 {
		// The filler closes the widow row against the right container edge.
		last := doc.Boxes[len(doc.Boxes)-1]
		fmt.Fprintf(&buf,
			`  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="#999" stroke-width="1" stroke-dasharray="6 4"/>`+"\n",
			doc.ContainerWidth-doc.Filler.Width, last.Top, doc.Filler.Width, doc.Filler.Height)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
