package box

import "github.com/npillmayer/mathbox/core/dimen"

// SizeFromChildren calculates the height, depth and maximum font size of a
// composite box from its direct children. Each value is the maximum over the
// children's values, or 0 if there are no children; this way a composite box
// never reports a negative height or depth.
func SizeFromChildren(children []*Box) (height, depth dimen.Em, maxFontSize float64) {
	for _, c := range children {
		if c.height > height {
			height = c.height
		}
		if c.depth > depth {
			depth = c.depth
		}
		if c.maxFontSize > maxFontSize {
			maxFontSize = c.maxFontSize
		}
	}
	return
}
