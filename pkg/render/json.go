package render

import "github.com/ylingene/gallery/pkg/gallery"

// JSON renders the layout document itself, pretty-printed. This is the
// machine-readable artifact for downstream tooling.
func JSON(doc gallery.LayoutDoc) ([]byte, error) {
	return gallery.MarshalLayout(doc)
}
