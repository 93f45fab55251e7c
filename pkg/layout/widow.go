package layout

// WidowFiller computes the invisible filler box for an under-filled
// trailing row. Its width is the horizontal space the widow boxes leave
// unoccupied, including one gap per widow box, and its height matches the
// shared widow row height. Rendering the filler keeps space-between
// distribution from pushing the widow images to both edges of the row.
//
// The result is meaningful only for a non-empty widow slice; with no
// widows the zero Filler is returned.
func WidowFiller(containerWidth float64, widows []Box, boxSpacing float64) Filler {
	if len(widows) == 0 {
		return Filler{}
	}

	var used float64
	for _, b := range widows {
		used += b.Width
	}
	return Filler{
		Width:  containerWidth - used - float64(len(widows))*boxSpacing,
		Height: widows[0].Height,
	}
}
