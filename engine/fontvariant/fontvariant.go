/*
Package fontvariant holds the closed table of math font variants.

TeX offers font commands like \mathbf or \mathbb to typeset symbols in a
certain font family. Not every symbol exists in every family; each variant
therefore carries a classification predicate which decides, based on a
symbol's value, whether the variant's font is to be used. Symbols failing
the test are rendered in the default math font instead.

The table is the single source of truth for these decisions: the HTML box
builder uses it to select a face, and a MathML serializer uses the very
same predicates to decide on a "mathvariant" attribute. Predicates are
pure functions of their input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontvariant

import (
	"github.com/npillmayer/mathbox/core/font"
)

// Name is the name of a font variant, equal to the TeX command without
// backslash, e.g. "mathbf".
type Name string

// The nine font variants.
const (
	MathBf   Name = "mathbf"
	MathIt   Name = "mathit"
	MathRm   Name = "mathrm"
	MathBb   Name = "mathbb"
	MathCal  Name = "mathcal"
	MathFrak Name = "mathfrak"
	MathScr  Name = "mathscr"
	MathSf   Name = "mathsf"
	MathTt   Name = "mathtt"
)

// Predicate decides if a symbol value is to be set in a variant's font.
type Predicate func(value string) bool

// Variant describes a font variant. Variants are immutable.
type Variant struct {
	Name   Name
	MathML string    // value of MathML attribute "mathvariant"
	Face   font.Face // face for symbols passing the test
	Class  string    // CSS class for symbols passing the test, may be empty
	test   Predicate
}

// Test applies the variant's classification predicate to a symbol value.
func (v Variant) Test(value string) bool {
	if v.test == nil {
		return false
	}
	return v.test(value)
}

// greekCapitals are the commands for upper case Greek letters which have a
// glyph of their own (the others look like latin letters).
var greekCapitals = map[string]bool{
	`\Gamma`:   true,
	`\Delta`:   true,
	`\Theta`:   true,
	`\Lambda`:  true,
	`\Xi`:      true,
	`\Pi`:      true,
	`\Sigma`:   true,
	`\Upsilon`: true,
	`\Phi`:     true,
	`\Psi`:     true,
	`\Omega`:   true,
}

var dotless = map[string]bool{
	`\imath`: true,
	`\jmath`: true,
}

// IsGreekCapital returns true for the eleven commands of Greek capitals,
// e.g. `\Gamma`.
func IsGreekCapital(value string) bool {
	return greekCapitals[value]
}

// GreekCapitals returns the commands for Greek capitals.
func GreekCapitals() []string {
	return []string{`\Gamma`, `\Delta`, `\Theta`, `\Lambda`, `\Xi`, `\Pi`,
		`\Sigma`, `\Upsilon`, `\Phi`, `\Psi`, `\Omega`}
}

// Only the leading byte of a value is classified. Commands start with a
// backslash and therefore never pass a character class test.

func leading(value string) byte {
	if value == "" {
		return 0
	}
	return value[0]
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func alnum(value string) bool {
	c := leading(value)
	return isUpper(c) || isLower(c) || isDigit(c)
}

func upper(value string) bool {
	return isUpper(leading(value))
}

func blackboard(value string) bool {
	c := leading(value)
	return isUpper(c) || c == 'k'
}

func italic(value string) bool {
	return isDigit(leading(value)) || dotless[value] || greekCapitals[value]
}

func sansSerif(value string) bool {
	return alnum(value) || greekCapitals[value]
}

var variants = map[Name]Variant{
	MathBf:   {MathBf, "bold", font.MainBold, "mathbf", alnum},
	MathIt:   {MathIt, "italic", font.MainItalic, "mainit", italic},
	MathRm:   {MathRm, "normal", font.MainRegular, "", alnum},
	MathBb:   {MathBb, "double-struck", font.AMSRegular, "amsrm", blackboard},
	MathCal:  {MathCal, "script", font.CalligraphicRegular, "mathcal", upper},
	MathFrak: {MathFrak, "fraktur", font.FrakturRegular, "mathfrak", alnum},
	MathScr:  {MathScr, "script", font.ScriptRegular, "mathscr", upper},
	MathSf:   {MathSf, "sans-serif", font.SansSerifRegular, "mathsf", sansSerif},
	MathTt:   {MathTt, "monospace", font.TypewriterRegular, "mathtt", alnum},
}

// Lookup returns the variant for a name.
func Lookup(name Name) (Variant, bool) {
	v, ok := variants[name]
	return v, ok
}

// Test applies the predicate of variant name to value. For unknown variant
// names Test returns false.
func Test(name Name, value string) bool {
	v, ok := variants[name]
	return ok && v.Test(value)
}

// MathMLVariant returns the MathML "mathvariant" value for a variant.
func MathMLVariant(name Name) (string, bool) {
	v, ok := variants[name]
	return v.MathML, ok
}

// Names returns the names of all variants, in a fixed order.
func Names() []Name {
	return []Name{MathBf, MathIt, MathRm, MathBb, MathCal, MathFrak, MathScr, MathSf, MathTt}
}

// Math italic is the default face for math ordinaries. It is used by the
// mathit variant for symbols failing its test.
const (
	DefaultFace  = font.MathItalic
	DefaultClass = "mathit"
)
