package build

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/mathbox/core"
	"github.com/npillmayer/mathbox/core/dimen"
	"github.com/npillmayer/mathbox/core/font"
	"github.com/npillmayer/mathbox/engine/box"
	"github.com/npillmayer/mathbox/engine/fontvariant"
	"github.com/npillmayer/mathbox/engine/symbols"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	n    int32
	last atomic.Value
}

func (c *counter) MissingMetrics(value string, face font.Face) {
	atomic.AddInt32(&c.n, 1)
	c.last.Store(value)
}

func (c *counter) count() int {
	return int(atomic.LoadInt32(&c.n))
}

// faceMetrics reports every character to be as high as the index of the
// face it is set in, making the face observable from the box.
var faceMetrics = font.MetricsFunc(func(value string, face font.Face) (font.CharacterMetrics, bool) {
	return font.CharacterMetrics{Height: faceHeight(face)}, true
})

func faceHeight(face font.Face) dimen.Em {
	for i, f := range font.Faces() {
		if f == face {
			return dimen.Em(i + 1)
		}
	}
	return 0
}

func TestMakeSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.build")
	defer teardown()
	//
	c := &counter{}
	mt := font.NewMetricsTable().Add(font.MainRegular, 'A', font.CharacterMetrics{Height: 0.68})
	b := New(WithMetrics(mt), WithObserver(c))
	sym := b.MakeSymbol("A", font.MainRegular, symbols.Math, "")
	assert.Equal(t, box.SymbolBox, sym.Kind())
	assert.Equal(t, dimen.Em(0.68), sym.Height())
	assert.Equal(t, dimen.Zero, sym.Depth())
	assert.Equal(t, "", sym.Style().Color)
	assert.Empty(t, sym.Classes())
	assert.Equal(t, 0, c.count())
}

func TestMakeSymbolMissingMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.build")
	defer teardown()
	//
	c := &counter{}
	b := New(WithMetrics(font.NewMetricsTable()), WithObserver(c))
	var sym *box.Box
	require.NotPanics(t, func() {
		sym = b.MakeSymbol(`\unknownGlyph`, font.MainRegular, symbols.Math, "red", "mord")
	})
	assert.Equal(t, `\unknownGlyph`, sym.Text())
	assert.Equal(t, dimen.Zero, sym.Height())
	assert.Equal(t, dimen.Zero, sym.Depth())
	assert.Equal(t, dimen.Zero, sym.Italic())
	assert.Equal(t, dimen.Zero, sym.Skew())
	assert.Equal(t, "red", sym.Style().Color)
	assert.Equal(t, []string{"mord"}, sym.Classes())
	assert.Equal(t, 1, c.count(), "exactly one diagnostic expected")
	assert.Equal(t, `\unknownGlyph`, c.last.Load())
}

func TestMakeSymbolReplacement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.build")
	defer teardown()
	//
	c := &counter{}
	mt := font.NewMetricsTable().Add(font.MathItalic, 'α',
		font.CharacterMetrics{Height: 0.43056, Italic: 0.0037})
	b := New(WithMetrics(mt), WithObserver(c))
	sym := b.MakeSymbol(`\alpha`, font.MathItalic, symbols.Math, "")
	assert.Equal(t, "α", sym.Text())
	assert.Equal(t, dimen.Em(0.43056), sym.Height())
	assert.Equal(t, dimen.Em(0.0037), sym.Italic())
	assert.Equal(t, 0, c.count())
	// text mode has no replacement for \alpha
	sym = b.MakeSymbol(`\alpha`, font.MathItalic, symbols.Text, "")
	assert.Equal(t, `\alpha`, sym.Text())
	assert.Equal(t, 1, c.count())
}

func TestMathDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.build")
	defer teardown()
	//
	b := New(WithMetrics(faceMetrics))
	sym, err := b.MathDefault("x", symbols.Math, "", []string{"mord"}, symbols.MathOrd)
	require.NoError(t, err)
	assert.Equal(t, faceHeight(font.MathItalic), sym.Height())
	assert.Equal(t, []string{"mord", "mathit"}, sym.Classes())
	//
	sym, err = b.MathDefault("3", symbols.Math, "", nil, symbols.MathOrd)
	require.NoError(t, err)
	assert.Equal(t, faceHeight(font.MainItalic), sym.Height(), "digits are set in Main-Italic")
	//
	sym, err = b.MathDefault("x", symbols.Math, "", nil, symbols.TextOrd)
	require.NoError(t, err)
	assert.Equal(t, faceHeight(font.MainRegular), sym.Height())
	assert.Equal(t, []string{"mathrm"}, sym.Classes())
	//
	sym, err = b.MathDefault("+", symbols.Math, "", nil, symbols.Bin)
	assert.Nil(t, sym)
	require.Error(t, err)
	var ute UnexpectedTypeError
	require.True(t, errors.As(err, &ute))
	assert.Equal(t, symbols.Bin, ute.Type)
	assert.Equal(t, "+", ute.Value)
	assert.Equal(t, core.ECONTRACT, core.Code(err))
}

func TestMathIt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.build")
	defer teardown()
	//
	b := New(WithMetrics(faceMetrics))
	for _, v := range append([]string{"3", `\imath`, `\jmath`}, fontvariant.GreekCapitals()...) {
		sym, err := b.MathIt(v, symbols.Math, "", nil, symbols.MathOrd)
		require.NoError(t, err)
		assert.Equal(t, faceHeight(font.MainItalic), sym.Height(), v)
		assert.Equal(t, []string{"mainit"}, sym.Classes(), v)
	}
	sym, _ := b.MathIt(`\imath`, symbols.Math, "", nil, symbols.MathOrd)
	assert.Equal(t, "ı", sym.Text())
	// letters fall back to Math-Italic, whatever their type
	for _, typ := range []symbols.Group{symbols.MathOrd, symbols.TextOrd, symbols.Rel} {
		sym, err := b.MathIt("x", symbols.Math, "", nil, typ)
		require.NoError(t, err)
		assert.Equal(t, faceHeight(font.MathItalic), sym.Height())
		assert.Equal(t, []string{"mathit"}, sym.Classes())
	}
}

func TestVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.build")
	defer teardown()
	//
	b := New(WithMetrics(faceMetrics))
	for _, tc := range []struct {
		name    fontvariant.Name
		value   string
		typ     symbols.Group
		face    font.Face
		classes []string
		text    string
	}{
		{fontvariant.MathBf, "A", symbols.MathOrd, font.MainBold, []string{"mathbf"}, "A"},
		{fontvariant.MathBf, `\alpha`, symbols.MathOrd, font.MathItalic, []string{"mathit"}, "α"},
		{fontvariant.MathBf, "/", symbols.TextOrd, font.MainRegular, []string{"mathrm"}, "/"},
		{fontvariant.MathRm, "x", symbols.MathOrd, font.MainRegular, nil, "x"},
		{fontvariant.MathBb, "R", symbols.MathOrd, font.AMSRegular, []string{"amsrm"}, "R"},
		{fontvariant.MathBb, "k", symbols.MathOrd, font.AMSRegular, []string{"amsrm"}, "k"},
		{fontvariant.MathBb, "a", symbols.MathOrd, font.MathItalic, []string{"mathit"}, "a"},
		{fontvariant.MathCal, "L", symbols.MathOrd, font.CalligraphicRegular, []string{"mathcal"}, "L"},
		{fontvariant.MathCal, "l", symbols.MathOrd, font.MathItalic, []string{"mathit"}, "l"},
		{fontvariant.MathFrak, "g", symbols.MathOrd, font.FrakturRegular, []string{"mathfrak"}, "g"},
		{fontvariant.MathScr, "R", symbols.MathOrd, font.ScriptRegular, []string{"mathscr"}, "R"},
		{fontvariant.MathScr, "2", symbols.TextOrd, font.MainRegular, []string{"mathrm"}, "2"},
		{fontvariant.MathSf, `\Omega`, symbols.TextOrd, font.SansSerifRegular, []string{"mathsf"}, "Ω"},
		{fontvariant.MathSf, "q", symbols.MathOrd, font.SansSerifRegular, []string{"mathsf"}, "q"},
		{fontvariant.MathTt, `\Omega`, symbols.TextOrd, font.MainRegular, []string{"mathrm"}, "Ω"},
		{fontvariant.MathTt, "0", symbols.TextOrd, font.TypewriterRegular, []string{"mathtt"}, "0"},
	} {
		sym, err := b.Variant(tc.name, tc.value, symbols.Math, "", nil, tc.typ)
		require.NoError(t, err, "%s{%s}", tc.name, tc.value)
		assert.Equal(t, faceHeight(tc.face), sym.Height(), "%s{%s}", tc.name, tc.value)
		assert.Equal(t, tc.classes, sym.Classes(), "%s{%s}", tc.name, tc.value)
		assert.Equal(t, tc.text, sym.Text(), "%s{%s}", tc.name, tc.value)
	}
	_, err := b.MathBf(",", symbols.Math, "", nil, symbols.Punct)
	assert.Equal(t, core.ECONTRACT, core.Code(err))
	_, err = b.Variant("mathbold", "A", symbols.Math, "", nil, symbols.MathOrd)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestNamedVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.build")
	defer teardown()
	//
	b := New(WithMetrics(faceMetrics))
	type op func(string, symbols.Mode, string, []string, symbols.Group) (*box.Box, error)
	ops := map[fontvariant.Name]op{
		fontvariant.MathBf: b.MathBf, fontvariant.MathIt: b.MathIt,
		fontvariant.MathRm: b.MathRm, fontvariant.MathBb: b.MathBb,
		fontvariant.MathCal: b.MathCal, fontvariant.MathFrak: b.MathFrak,
		fontvariant.MathScr: b.MathScr, fontvariant.MathSf: b.MathSf,
		fontvariant.MathTt: b.MathTt,
	}
	require.Len(t, ops, len(fontvariant.Names()))
	for name, f := range ops {
		v, _ := fontvariant.Lookup(name)
		sym, err := f("B", symbols.Math, "green", []string{"mord"}, symbols.MathOrd)
		require.NoError(t, err, name)
		assert.Equal(t, faceHeight(v.Face), sym.Height(), name)
		assert.Equal(t, "green", sym.Style().Color, name)
		assert.Equal(t, "mord", sym.Classes()[0], name)
	}
}

func TestMathsym(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.build")
	defer teardown()
	//
	b := New(WithMetrics(faceMetrics))
	classes := make([]string, 1, 4)
	classes[0] = "mrel"
	sym := b.Mathsym(`\leqq`, symbols.Math, "", classes)
	assert.Equal(t, "≦", sym.Text())
	assert.Equal(t, faceHeight(font.AMSRegular), sym.Height())
	assert.Equal(t, []string{"mrel", "amsrm"}, sym.Classes())
	assert.Equal(t, "", classes[:2][1], "caller's classes must not be modified")
	//
	sym = b.Mathsym(`\leq`, symbols.Math, "", classes)
	assert.Equal(t, "≤", sym.Text())
	assert.Equal(t, faceHeight(font.MainRegular), sym.Height())
	assert.Equal(t, []string{"mrel"}, sym.Classes())
	//
	sym = b.Mathsym("§", symbols.Math, "", nil)
	assert.Equal(t, faceHeight(font.MainRegular), sym.Height(), "unknown symbols use the main font")
}

func TestConcurrentBuilds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.build")
	defer teardown()
	//
	c := &counter{}
	mt := font.NewMetricsTable().
		Add(font.MainBold, 'A', font.CharacterMetrics{Height: 0.68}).
		Add(font.MathItalic, 'x', font.CharacterMetrics{Height: 0.43})
	b := New(WithMetrics(mt), WithObserver(c))
	build := func() []*box.Box {
		var result []*box.Box
		for _, v := range []string{"A", "x", "y"} {
			sym, err := b.MathBf(v, symbols.Math, "", nil, symbols.MathOrd)
			assert.NoError(t, err)
			result = append(result, sym)
		}
		return result
	}
	reference := build()
	assert.Equal(t, 2, c.count(), "y in Main-Bold and x in Main-Bold are missing")
	const n = 16
	results := make([][]*box.Box, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = build()
		}(i)
	}
	wg.Wait()
	for i := range results {
		assert.Empty(t, cmp.Diff(reference, results[i], cmp.AllowUnexported(box.Box{})))
	}
	assert.Equal(t, 2*(n+1), c.count())
}

func TestDefaultBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.build")
	defer teardown()
	//
	c := &counter{}
	b := New(WithObserver(c))
	require.NotNil(t, b.Symbols())
	sym := b.MakeSymbol("A", font.MainRegular, symbols.Math, "")
	assert.InDelta(t, 0.68, sym.Height().Float(), 0.05)
	sym, err := b.MathDefault("g", symbols.Math, "", nil, symbols.MathOrd)
	require.NoError(t, err)
	assert.Greater(t, sym.Depth().Float(), 0.1)
	assert.Equal(t, 0, c.count())
}

func TestNilObserver(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.build")
	defer teardown()
	//
	b := New(WithMetrics(font.NewMetricsTable()), WithObserver(nil))
	assert.NotPanics(t, func() {
		b.MakeSymbol("?", font.MainRegular, symbols.Math, "")
	})
	calls := 0
	b = New(WithMetrics(font.NewMetricsTable()), WithObserver(ObserverFunc(func(string, font.Face) {
		calls++
	})))
	b.MakeSymbol("?", font.MainRegular, symbols.Math, "")
	assert.Equal(t, 1, calls)
}
