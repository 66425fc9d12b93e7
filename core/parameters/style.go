package parameters

// StyleContext carries the ambient style for box construction: the current
// size level, whether we are in display style, and the current color.
//
// StyleContext is a value type. Builders receive it by value and never
// mutate it.
type StyleContext struct {
	Size    Size
	Display bool
	Color   string
}

// NewStyleContext creates a style context for a size level.
// Invalid size levels are clamped to 1…10.
func NewStyleContext(size Size, display bool, color string) StyleContext {
	return StyleContext{
		Size:    size.clamp(),
		Display: display,
		Color:   color,
	}
}

// DefaultStyle is the style of top-level inline math at normal size.
func DefaultStyle() StyleContext {
	return StyleContext{Size: SizeNormal}
}

// SizeMultiplier returns the font size multiplier of the context's size level.
func (sc StyleContext) SizeMultiplier() float64 {
	return sc.Size.Multiplier()
}

// ResetClass returns the CSS class resetting the font size of sc's level,
// e.g. "reset-size5".
func (sc StyleContext) ResetClass() string {
	return "reset-" + sc.Size.ClassName()
}

// WithSize returns a copy of sc at a different size level.
func (sc StyleContext) WithSize(size Size) StyleContext {
	sc.Size = size.clamp()
	return sc
}

// WithColor returns a copy of sc with a different color.
func (sc StyleContext) WithColor(color string) StyleContext {
	sc.Color = color
	return sc
}
