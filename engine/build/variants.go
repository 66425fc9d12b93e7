package build

import (
	"github.com/npillmayer/mathbox/core"
	"github.com/npillmayer/mathbox/core/font"
	"github.com/npillmayer/mathbox/engine/box"
	"github.com/npillmayer/mathbox/engine/fontvariant"
	"github.com/npillmayer/mathbox/engine/symbols"
)

// MathDefault creates a box for a token in the default math font.
// Math ordinaries (type mathord) are set in italics, see MathIt.
// Text ordinaries (type textord) are set in Main-Regular with class "mathrm".
// For all other types an UnexpectedTypeError is returned.
func (b *Builder) MathDefault(value string, mode symbols.Mode, color string, classes []string,
	typ symbols.Group) (*box.Box, error) {
	//
	switch typ {
	case symbols.MathOrd:
		return b.MathIt(value, mode, color, classes, typ)
	case symbols.TextOrd:
		return b.MakeSymbol(value, font.MainRegular, mode, color, withClass(classes, "mathrm")...), nil
	}
	tracer().Errorf("cannot set %q of type %q in default math font", value, typ)
	return nil, UnexpectedTypeError{Type: typ, Value: value}
}

// Variant creates a box for a token set in font variant name.
//
// If value passes the variant's test, it is set in the variant's face and
// tagged with the variant's class. Otherwise it is set in the default math
// font (see MathDefault), with the exception of variant mathit: symbols
// failing its test are set in Math-Italic with class "mathit", regardless
// of their type.
func (b *Builder) Variant(name fontvariant.Name, value string, mode symbols.Mode, color string,
	classes []string, typ symbols.Group) (*box.Box, error) {
	//
	v, ok := fontvariant.Lookup(name)
	if !ok {
		return nil, core.Error(core.EINVALID, "unknown font variant %q", name)
	}
	if v.Test(value) {
		return b.MakeSymbol(value, v.Face, mode, color, withClass(classes, v.Class)...), nil
	}
	if name == fontvariant.MathIt {
		return b.MakeSymbol(value, fontvariant.DefaultFace, mode, color,
			withClass(classes, fontvariant.DefaultClass)...), nil
	}
	return b.MathDefault(value, mode, color, classes, typ)
}

// MathBf sets a token in bold, see Variant.
func (b *Builder) MathBf(value string, mode symbols.Mode, color string, classes []string,
	typ symbols.Group) (*box.Box, error) {
	return b.Variant(fontvariant.MathBf, value, mode, color, classes, typ)
}

// MathIt sets a token in italics. Digits, dotless i and j, and capital
// Greek letters are set in Main-Italic, everything else in Math-Italic.
func (b *Builder) MathIt(value string, mode symbols.Mode, color string, classes []string,
	typ symbols.Group) (*box.Box, error) {
	return b.Variant(fontvariant.MathIt, value, mode, color, classes, typ)
}

// MathRm sets a token upright, see Variant.
func (b *Builder) MathRm(value string, mode symbols.Mode, color string, classes []string,
	typ symbols.Group) (*box.Box, error) {
	return b.Variant(fontvariant.MathRm, value, mode, color, classes, typ)
}

// MathBb sets a token in blackboard bold, see Variant.
func (b *Builder) MathBb(value string, mode symbols.Mode, color string, classes []string,
	typ symbols.Group) (*box.Box, error) {
	return b.Variant(fontvariant.MathBb, value, mode, color, classes, typ)
}

// MathCal sets a token in calligraphic letters, see Variant.
func (b *Builder) MathCal(value string, mode symbols.Mode, color string, classes []string,
	typ symbols.Group) (*box.Box, error) {
	return b.Variant(fontvariant.MathCal, value, mode, color, classes, typ)
}

// MathFrak sets a token in fraktur, see Variant.
func (b *Builder) MathFrak(value string, mode symbols.Mode, color string, classes []string,
	typ symbols.Group) (*box.Box, error) {
	return b.Variant(fontvariant.MathFrak, value, mode, color, classes, typ)
}

// MathScr sets a token in script letters, see Variant.
func (b *Builder) MathScr(value string, mode symbols.Mode, color string, classes []string,
	typ symbols.Group) (*box.Box, error) {
	return b.Variant(fontvariant.MathScr, value, mode, color, classes, typ)
}

// MathSf sets a token sans serif, see Variant.
func (b *Builder) MathSf(value string, mode symbols.Mode, color string, classes []string,
	typ symbols.Group) (*box.Box, error) {
	return b.Variant(fontvariant.MathSf, value, mode, color, classes, typ)
}

// MathTt sets a token in typewriter letters, see Variant.
func (b *Builder) MathTt(value string, mode symbols.Mode, color string, classes []string,
	typ symbols.Group) (*box.Box, error) {
	return b.Variant(fontvariant.MathTt, value, mode, color, classes, typ)
}
