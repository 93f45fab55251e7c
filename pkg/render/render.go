package render

// Option configures a render sink.
type Option func(*renderer)

type renderer struct {
	labels    bool
	thumbsDir string
}

// WithLabels draws image IDs on boxes in SVG and PNG output.
func WithLabels() Option { return func(r *renderer) { r.labels = true } }

// WithThumbs makes the PNG contact sheet draw real thumbnails loaded from
// the given source directory. Boxes whose source image cannot be read fall
// back to placeholder tiles.
func WithThumbs(dir string) Option { return func(r *renderer) { r.thumbsDir = dir } }

func newRenderer(opts ...Option) renderer {
	var r renderer
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
