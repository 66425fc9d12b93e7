package box

import (
	"strings"
	"testing"

	"github.com/npillmayer/mathbox/core/dimen"
	"github.com/npillmayer/mathbox/core/font"
	"github.com/npillmayer/mathbox/core/parameters"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func sym(h, d dimen.Em) *Box {
	return NewSymbol("x", font.CharacterMetrics{Height: h, Depth: d}, "")
}

func TestSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.box")
	defer teardown()
	//
	m := font.CharacterMetrics{Height: 0.694, Depth: 0.194, Italic: 0.05, Skew: 0.0833}
	s := NewSymbol("f", m, "red", "mathit", "")
	assert.Equal(t, SymbolBox, s.Kind())
	assert.Equal(t, "f", s.Text())
	assert.Equal(t, m.Height, s.Height())
	assert.Equal(t, m.Depth, s.Depth())
	assert.Equal(t, m.Italic, s.Italic())
	assert.Equal(t, m.Skew, s.Skew())
	assert.Equal(t, []string{"mathit"}, s.Classes(), "empty class names are dropped")
	assert.Equal(t, "red", s.Style().Color)
	assert.Equal(t, 0, s.ChildCount())
}

func TestSizeFromChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.box")
	defer teardown()
	//
	sized := MakeSizingSpan(parameters.NewStyleContext(7, false, ""), nil, []*Box{sym(0.25, 0)})
	span := MakeSpan([]string{"mord"}, []*Box{
		sym(0.5, 0.25),
		sym(1.25, -0.5),
		sized,
		sym(-0.75, 0.125),
	}, "")
	assert.Equal(t, dimen.Em(1.25), span.Height())
	assert.Equal(t, dimen.Em(0.25), span.Depth())
	assert.Equal(t, 1.44, span.MaxFontSize())
	//
	empty := MakeSpan(nil, nil, "")
	assert.Equal(t, dimen.Zero, empty.Height())
	assert.Equal(t, dimen.Zero, empty.Depth())
	assert.Equal(t, 0.0, empty.MaxFontSize())
	//
	negative := MakeFragment([]*Box{sym(-1, -1)})
	assert.Equal(t, dimen.Zero, negative.Height(), "composite boxes are at least 0 high")
	assert.Equal(t, dimen.Zero, negative.Depth())
}

func TestCompositeSizeLaw(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.box")
	defer teardown()
	//
	leaf := func(i int) *Box {
		return MakeStrut(dimen.Em(i%5)/4-0.25, dimen.Em(i%3)/8, float64(i%4)/2)
	}
	var tree []*Box
	for i := 0; i < 12; i++ {
		kids := []*Box{leaf(i), leaf(i + 1), leaf(2 * i)}
		if i%2 == 0 {
			tree = append(tree, MakeSpan(nil, kids, ""))
		} else {
			tree = append(tree, MakeFragment(kids))
		}
	}
	root := MakeSpan([]string{"base"}, tree, "")
	root.Walk(func(b *Box, _ int) bool {
		if b.ChildCount() == 0 {
			return false
		}
		h, d, f := dimen.Zero, dimen.Zero, 0.0
		for _, c := range b.Children() {
			h, d = dimen.Max(h, c.Height()), dimen.Max(d, c.Depth())
			if c.MaxFontSize() > f {
				f = c.MaxFontSize()
			}
		}
		assert.Equal(t, h, b.Height(), b.Label())
		assert.Equal(t, d, b.Depth(), b.Label())
		assert.Equal(t, f, b.MaxFontSize(), b.Label())
		return true
	})
}

func TestNilChildrenDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.box")
	defer teardown()
	//
	frag := MakeFragment([]*Box{nil, sym(1, 0), nil})
	assert.Equal(t, FragmentBox, frag.Kind())
	assert.Equal(t, 1, frag.ChildCount())
	_, ok := frag.Child(1)
	assert.False(t, ok)
}

func TestAccessorsReturnCopies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.box")
	defer teardown()
	//
	span := MakeSpan([]string{"a"}, []*Box{sym(1, 0)}, "")
	span.Classes()[0] = "b"
	span.Children()[0] = nil
	assert.True(t, span.HasClass("a"))
	c, ok := span.Child(0)
	assert.True(t, ok)
	assert.NotNil(t, c)
}

func TestSizingSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.box")
	defer teardown()
	//
	style := parameters.NewStyleContext(3, false, "blue")
	span := MakeSizingSpan(style, []string{"mord"}, []*Box{sym(0.5, 0)})
	assert.Equal(t, []string{"sizing", "reset-size3", "size3", "mord"}, span.Classes())
	assert.Equal(t, 0.8, span.MaxFontSize())
	assert.Equal(t, "blue", span.Style().Color)
}

func TestString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.box")
	defer teardown()
	//
	span := MakeSpan([]string{"mord"}, []*Box{sym(0.5, 0.25)}, "")
	s := span.String()
	t.Logf("\n%s", s)
	lines := strings.Split(strings.TrimSpace(s), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "span .mord h=0.5em d=0.25em"))
	assert.True(t, strings.HasPrefix(lines[1], `  symbol "x"`))
}
