package layout

// Load is the fetch-priority hint for a single image, matching the HTML
// loading attribute values.
type Load string

const (
	LoadEager Load = "eager"
	LoadLazy  Load = "lazy"
)

// Above-the-fold budgets per viewport class. Narrow viewports show fewer
// images on first paint, so fewer are fetched eagerly.
const (
	eagerCountNarrow = 3
	eagerCountWide   = 6
)

// LoadHint decides whether the image at index should be fetched eagerly
// or lazily for the given container width. The hint is monotonic in
// index: once an index is lazy, all later indices are lazy too.
func LoadHint(containerWidth float64, index int) Load {
	return LoadHintAt(containerWidth, index, DefaultDesktopBreakpoint)
}

// LoadHintAt is LoadHint with an explicit desktop breakpoint, for callers
// carrying a non-default Config.
func LoadHintAt(containerWidth float64, index int, desktopBreakpoint float64) Load {
	eager := eagerCountNarrow
	if containerWidth >= desktopBreakpoint {
		eager = eagerCountWide
	}
	if index < eager {
		return LoadEager
	}
	return LoadLazy
}
