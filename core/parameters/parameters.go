/*
Package parameters holds static typesetting tables and the style context
handed to box construction.

Both tables are pure data: sizes 1 to 10 map to font size multipliers, and
named spacing commands map to a width and a CSS class name. A StyleContext
is a read-only value; box construction never changes it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package parameters

import (
	"strconv"

	"github.com/npillmayer/mathbox/core/dimen"
)

// Size is a relative size level, ranging from 1 (smallest) to 10 (largest).
// Size 5 is the normal text size.
type Size int

// Bounds of the size levels.
const (
	SizeMin    Size = 1
	SizeNormal Size = 5
	SizeMax    Size = 10
)

// sizingMultiplier maps size levels to font size multipliers.
// Index 0 is unused.
var sizingMultiplier = [SizeMax + 1]float64{
	0,
	0.5,  // size1
	0.7,  // size2
	0.8,  // size3
	0.9,  // size4
	1.0,  // size5
	1.2,  // size6
	1.44, // size7
	1.73, // size8
	2.07, // size9
	2.49, // size10
}

// Valid returns true if s is in the range 1…10.
func (s Size) Valid() bool {
	return s >= SizeMin && s <= SizeMax
}

// Multiplier returns the font size multiplier for a size level.
// Sizes outside of 1…10 are clamped to the nearest valid level.
func (s Size) Multiplier() float64 {
	return sizingMultiplier[s.clamp()]
}

func (s Size) clamp() Size {
	if s < SizeMin {
		return SizeMin
	} else if s > SizeMax {
		return SizeMax
	}
	return s
}

// ClassName returns the CSS class for a size level, e.g. "size5".
func (s Size) ClassName() string {
	return "size" + strconv.Itoa(int(s.clamp()))
}

func (s Size) String() string {
	return s.ClassName()
}

// SizingMultiplier returns the multiplier for a size class name like "size7".
func SizingMultiplier(className string) (float64, bool) {
	for s := SizeMin; s <= SizeMax; s++ {
		if s.ClassName() == className {
			return s.Multiplier(), true
		}
	}
	return 0, false
}

// --- Spacing ---------------------------------------------------------------

// Spacing describes a horizontal spacing command.
type Spacing struct {
	Size      dimen.Em
	ClassName string
}

var spacingFunctions = map[string]Spacing{
	`\qquad`:   {dimen.MustParseEm("2em"), "qquad"},
	`\quad`:    {dimen.MustParseEm("1em"), "quad"},
	`\enspace`: {dimen.MustParseEm("0.5em"), "enspace"},
	`\;`:       {dimen.MustParseEm("0.277778em"), "thickspace"},
	`\:`:       {dimen.MustParseEm("0.22222em"), "mediumspace"},
	`\,`:       {dimen.MustParseEm("0.16667em"), "thinspace"},
	`\!`:       {dimen.MustParseEm("-0.16667em"), "negativethinspace"},
}

// SpacingFunction looks up a named spacing command, e.g. `\quad`.
func SpacingFunction(command string) (Spacing, bool) {
	sp, ok := spacingFunctions[command]
	return sp, ok
}

// SpacingCommands returns the names of all known spacing commands.
func SpacingCommands() []string {
	cmds := make([]string, 0, len(spacingFunctions))
	for k := range spacingFunctions {
		cmds = append(cmds, k)
	}
	return cmds
}
