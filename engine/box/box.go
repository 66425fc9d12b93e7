package box

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mathbox/core/dimen"
	"github.com/npillmayer/mathbox/core/font"
	"github.com/npillmayer/mathbox/core/parameters"
)

// Kind is the type of a box.
type Kind uint8

// Kinds of boxes.
const (
	SpanBox     Kind = iota // a composite box with classes and style
	FragmentBox             // a composite box without markup of its own
	SymbolBox               // a leaf box holding a character
)

func (k Kind) String() string {
	switch k {
	case SpanBox:
		return "span"
	case FragmentBox:
		return "fragment"
	case SymbolBox:
		return "symbol"
	}
	return "<unknown>"
}

// Style holds the inline styles of a box.
type Style struct {
	Color    string   // empty for no color
	Top      dimen.Em // vertical offset, valid if Shifted is set
	Shifted  bool
	FontSize dimen.Em // relative font size, 0 for inherited
}

// Box is a typeset element.
//
// Boxes are created by the Make… functions and by NewSymbol and must not
// be copied by value. A box is immutable once created.
type Box struct {
	kind        Kind
	height      dimen.Em
	depth       dimen.Em
	maxFontSize float64
	classes     []string
	style       Style
	children    []*Box
	text        string   // symbols only
	italic      dimen.Em // symbols only
	skew        dimen.Em // symbols only
}

// Kind returns the type of a box.
func (b *Box) Kind() Kind {
	return b.kind
}

// Height returns the height of b above the baseline.
func (b *Box) Height() dimen.Em {
	return b.height
}

// Depth returns the depth of b below the baseline.
func (b *Box) Depth() dimen.Em {
	return b.depth
}

// MaxFontSize returns the largest relative font size used within b.
func (b *Box) MaxFontSize() float64 {
	return b.maxFontSize
}

// Classes returns a copy of the CSS classes of b.
func (b *Box) Classes() []string {
	return append([]string(nil), b.classes...)
}

// HasClass is true if b is tagged with CSS class c.
func (b *Box) HasClass(c string) bool {
	for _, cls := range b.classes {
		if cls == c {
			return true
		}
	}
	return false
}

// Style returns the inline styles of b.
func (b *Box) Style() Style {
	return b.style
}

// Children returns a copy of the list of b's children.
func (b *Box) Children() []*Box {
	return append([]*Box(nil), b.children...)
}

// ChildCount returns the number of children of b.
func (b *Box) ChildCount() int {
	return len(b.children)
}

// Child returns the child at position i.
func (b *Box) Child(i int) (*Box, bool) {
	if i < 0 || i >= len(b.children) {
		return nil, false
	}
	return b.children[i], true
}

// Text returns the character of a symbol box; for other boxes it is empty.
func (b *Box) Text() string {
	return b.text
}

// Italic returns the italic correction of a symbol box.
func (b *Box) Italic() dimen.Em {
	return b.italic
}

// Skew returns the skew of a symbol box.
func (b *Box) Skew() dimen.Em {
	return b.skew
}

// Walk calls f for b and all of its descendents, depth first. If f returns
// false, children of the current box are not visited.
func (b *Box) Walk(f func(b *Box, level int) bool) {
	b.walk(f, 0)
}

func (b *Box) walk(f func(*Box, int) bool, level int) {
	if !f(b, level) {
		return
	}
	for _, c := range b.children {
		c.walk(f, level+1)
	}
}

// String returns an indented, multi-line representation of a box tree.
// Intended for debugging.
func (b *Box) String() string {
	var sb strings.Builder
	b.Walk(func(x *Box, level int) bool {
		sb.WriteString(strings.Repeat("  ", level))
		sb.WriteString(x.Label())
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}

// Label returns a one-line description of a box.
func (b *Box) Label() string {
	s := b.kind.String()
	if b.kind == SymbolBox {
		s += fmt.Sprintf(" %q", b.text)
	}
	if len(b.classes) > 0 {
		s += " ." + strings.Join(b.classes, ".")
	}
	s += fmt.Sprintf(" h=%s d=%s", b.height, b.depth)
	if b.maxFontSize != 0 {
		s += fmt.Sprintf(" fs=%g", b.maxFontSize)
	}
	if b.style.Shifted {
		s += " top=" + b.style.Top.String()
	}
	if b.style.FontSize != 0 {
		s += " font-size=" + b.style.FontSize.String()
	}
	if b.style.Color != "" {
		s += " color=" + b.style.Color
	}
	return s
}

// --- Constructors ----------------------------------------------------------

// NewSymbol creates a leaf box for a character, sized from its metrics.
func NewSymbol(text string, m font.CharacterMetrics, color string, classes ...string) *Box {
	return &Box{
		kind:    SymbolBox,
		text:    text,
		height:  m.Height,
		depth:   m.Depth,
		italic:  m.Italic,
		skew:    m.Skew,
		classes: compact(classes),
		style:   Style{Color: color},
	}
}

// MakeSpan creates a span with the given list of classes, list of children,
// and color. The span is sized from its children.
func MakeSpan(classes []string, children []*Box, color string) *Box {
	span := &Box{
		kind:     SpanBox,
		classes:  compact(classes),
		children: compactBoxes(children),
		style:    Style{Color: color},
	}
	span.height, span.depth, span.maxFontSize = SizeFromChildren(span.children)
	return span
}

// MakeFragment creates a fragment holding a list of children. The fragment
// is sized from its children.
func MakeFragment(children []*Box) *Box {
	frag := &Box{
		kind:     FragmentBox,
		children: compactBoxes(children),
	}
	frag.height, frag.depth, frag.maxFontSize = SizeFromChildren(frag.children)
	return frag
}

// MakeStrut creates an empty span with an explicit extent. Struts are used
// for rules and other elements without content.
func MakeStrut(height, depth dimen.Em, fontSize float64, classes ...string) *Box {
	return &Box{
		kind:        SpanBox,
		height:      height,
		depth:       depth,
		maxFontSize: fontSize,
		classes:     compact(classes),
	}
}

// MakeSizingSpan creates a span for children set at the size level of a
// style context. The span is tagged with the sizing classes, and its
// maximum font size will be at least the size multiplier of the style.
func MakeSizingSpan(style parameters.StyleContext, classes []string, children []*Box) *Box {
	cls := append([]string{"sizing", style.ResetClass(), style.Size.ClassName()}, classes...)
	span := MakeSpan(cls, children, style.Color)
	if m := style.SizeMultiplier(); m > span.maxFontSize {
		span.maxFontSize = m
	}
	return span
}

func compact(classes []string) []string {
	if len(classes) == 0 {
		return nil
	}
	c := make([]string, 0, len(classes))
	for _, cls := range classes {
		if cls != "" {
			c = append(c, cls)
		}
	}
	return c
}

func compactBoxes(children []*Box) []*Box {
	if len(children) == 0 {
		return nil
	}
	c := make([]*Box, 0, len(children))
	for _, ch := range children {
		if ch == nil {
			tracer().Errorf("nil box dropped from list of children")
			continue
		}
		c = append(c, ch)
	}
	return c
}
