package box

import (
	"strings"

	"github.com/npillmayer/mathbox/core/dimen"
	"github.com/npillmayer/mathbox/core/font"
	"github.com/npillmayer/mathbox/core/parameters"
)

// PositionType selects how the baseline of a vertical list is positioned
// relative to its items.
type PositionType int8

// Position types for vertical lists. Items of a vlist are always given
// bottom to top.
const (
	// PositionUnspecified is not a valid position type. MakeVList treats it,
	// as it treats every other unrecognized value, as a baseline offset of 0.
	PositionUnspecified PositionType = iota
	// IndividualShift: every element carries its own shift below the
	// baseline of the vlist. Kerns in the input are ignored.
	IndividualShift
	// Top: position data is the height of the topmost point of the vlist.
	Top
	// Bottom: position data is the depth of the bottommost point.
	Bottom
	// Shift: the baseline of the first item is shifted down by position data.
	Shift
	// FirstBaseline: the baseline of the vlist is the baseline of the first
	// item.
	FirstBaseline
)

var positionTypeNames = [...]string{
	"<unspecified>", "individualShift", "top", "bottom", "shift", "firstBaseline",
}

func (pt PositionType) String() string {
	if pt < 0 || int(pt) >= len(positionTypeNames) {
		return "<unknown>"
	}
	return positionTypeNames[pt]
}

// ParsePositionType returns the position type for a name, e.g. "firstBaseline".
// For an unknown name it returns PositionUnspecified and false.
func ParsePositionType(name string) (PositionType, bool) {
	for i := IndividualShift; int(i) < len(positionTypeNames); i++ {
		if strings.EqualFold(positionTypeNames[i], name) {
			return i, true
		}
	}
	return PositionUnspecified, false
}

// Item is an entry of a vertical list: either an element box or a kern.
type Item struct {
	box     *Box
	size    dimen.Em // kern size or, for shifted elements, the shift
	shifted bool
}

// Elem creates a vlist item for a box.
func Elem(b *Box) Item {
	return Item{box: b}
}

// ShiftedElem creates a vlist item for a box which is to be placed
// shift em below the baseline of the vlist. The shift is respected for
// position type IndividualShift only.
func ShiftedElem(b *Box, shift dimen.Em) Item {
	return Item{box: b, size: shift, shifted: true}
}

// Kern creates a vlist item for vertical space.
func Kern(size dimen.Em) Item {
	return Item{size: size}
}

// IsKern is true if the item is a kern.
func (it Item) IsKern() bool {
	return it.box == nil
}

// Box returns the box of an element item, or nil for a kern.
func (it Item) Box() *Box {
	return it.box
}

// Size returns the size of a kern or the shift of an element.
func (it Item) Size() dimen.Em {
	return it.size
}

func (it Item) extent() dimen.Em {
	if it.IsKern() {
		return it.size
	}
	return it.box.height + it.box.depth
}

// MakeVList stacks items on top of each other, first item at the bottom,
// and returns a single box. The baseline of the resulting box is positioned
// according to pos; the meaning of data depends on pos (see PositionType).
//
// Every element is wrapped into a span, shifted by its style's top value,
// together with a font-size ensurer. A trailing baseline-fix marker is
// appended to the list of children. The height and depth of the
// resulting box reflect the visual extent of the stacked items, including
// leading or trailing kerns.
//
// For an unrecognized position type, the baseline offset is 0.
func MakeVList(items []Item, pos PositionType, data dimen.Em, style parameters.StyleContext) *Box {
	var offset dimen.Em
	switch pos {
	case IndividualShift:
		items = synthesizeKerns(items)
		if len(items) > 0 {
			offset = -items[0].size - items[0].box.depth
		}
	case Top:
		offset = data
		for _, it := range items {
			offset -= it.extent()
		}
	case Bottom:
		offset = -data
	case Shift:
		offset = -firstDepth(items) - data
	case FirstBaseline:
		offset = -firstDepth(items)
	default:
		tracer().Debugf("vlist position type %d unknown, baseline offset is 0", pos)
	}
	var maxFontSize float64
	for _, it := range items {
		if !it.IsKern() && it.box.maxFontSize > maxFontSize {
			maxFontSize = it.box.maxFontSize
		}
	}
	children := make([]*Box, 0, len(items)+1)
	curr := offset
	for _, it := range items {
		if it.IsKern() {
			curr += it.size
			continue
		}
		child := it.box
		var shift dimen.Em
		if pos == IndividualShift {
			shift = it.size
			curr = child.height - shift
		} else {
			shift = -child.depth - curr
			curr += child.height + child.depth
		}
		wrap := MakeSpan(nil, []*Box{makeFontSizer(style, maxFontSize), child}, "")
		wrap.height -= shift
		wrap.depth += shift
		wrap.style.Top = shift
		wrap.style.Shifted = true
		children = append(children, wrap)
	}
	baselineFix := MakeSpan([]string{"baseline-fix"}, []*Box{
		makeFontSizer(style, maxFontSize),
		zeroWidthSpace(),
	}, "")
	children = append(children, baselineFix)
	vlist := MakeSpan([]string{"vlist"}, children, "")
	vlist.height = dimen.Max(curr, vlist.height)
	vlist.depth = dimen.Max(-offset, vlist.depth)
	tracer().Debugf("vlist(%s): %d items, h=%s, d=%s", pos, len(items), vlist.height, vlist.depth)
	return vlist
}

// synthesizeKerns drops all kerns from a list of items and inserts kerns
// between consecutive elements, such that every element will end up at its
// shift below the baseline. Element i−1 ends at height h(i−1)−s(i−1),
// element i has to start at −s(i)−d(i).
func synthesizeKerns(items []Item) []Item {
	list := make([]Item, 0, 2*len(items))
	var prev Item
	for _, it := range items {
		if it.IsKern() {
			tracer().Infof("vlist: kern %s ignored for individually shifted elements", it.size)
			continue
		}
		if len(list) > 0 {
			kern := (prev.size - it.size) - (prev.box.height + it.box.depth)
			list = append(list, Kern(kern))
		}
		list = append(list, it)
		prev = it
	}
	return list
}

func firstDepth(items []Item) dimen.Em {
	if len(items) == 0 || items[0].IsKern() {
		return 0
	}
	return items[0].box.depth
}

// makeFontSizer creates an invisible box which forces the font size of
// its enclosing box to fontSize, relative to the current size of style.
func makeFontSizer(style parameters.StyleContext, fontSize float64) *Box {
	inner := MakeSpan(nil, []*Box{zeroWidthSpace()}, "")
	inner.style.FontSize = dimen.Em(fontSize / style.SizeMultiplier())
	return MakeSpan([]string{
		"fontsize-ensurer",
		style.ResetClass(),
		parameters.SizeNormal.ClassName(),
	}, []*Box{inner}, "")
}

func zeroWidthSpace() *Box {
	return NewSymbol("\u200b", font.CharacterMetrics{}, "")
}
