/*
Package font is for typeface and font handling of the math box layer.

We will stick to the following nomenclature:

* A "face" is a named font of the box layer, e.g. "Main-Regular" or
"AMS-Regular". Faces are what symbols are rendered in and what CSS
classes refer to.

* A "scalable font" is a concrete font file a face may be backed by,
e.g. Latin Modern Roman 10 regular.

* "Metrics" are the vertical extent of a character within a face:
height, depth, italic correction and skew, all in em.

Box construction consumes metrics through interface Metrics. This package
provides two implementations: MetricsTable, a static table, and
OpenTypeMetrics, which measures glyph outlines of scalable fonts.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"bytes"
	"os"

	"github.com/npillmayer/mathbox/core"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer traces with key 'tyse.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}

// Face is the name of a font face of the box layer.
type Face string

// Faces known to the box layer.
const (
	MainRegular         Face = "Main-Regular"
	MainBold            Face = "Main-Bold"
	MainItalic          Face = "Main-Italic"
	MathItalic          Face = "Math-Italic"
	AMSRegular          Face = "AMS-Regular"
	CalligraphicRegular Face = "Calligraphic-Regular"
	FrakturRegular      Face = "Fraktur-Regular"
	ScriptRegular       Face = "Script-Regular"
	SansSerifRegular    Face = "SansSerif-Regular"
	TypewriterRegular   Face = "Typewriter-Regular"
	Size1Regular        Face = "Size1-Regular"
	Size4Regular        Face = "Size4-Regular"
)

// Faces returns all faces known to the box layer.
func Faces() []Face {
	return []Face{MainRegular, MainBold, MainItalic, MathItalic, AMSRegular,
		CalligraphicRegular, FrakturRegular, ScriptRegular, SansSerifRegular,
		TypewriterRegular, Size1Regular, Size4Regular}
}

func (f Face) String() string {
	return string(f)
}

// IsItalic is true for faces with a slanted design.
func (f Face) IsItalic() bool {
	return f == MainItalic || f == MathItalic
}

// IsBold is true for faces with a bold design.
func (f Face) IsBold() bool {
	return f == MainBold
}

// --- Scalable fonts ----------------------------------------------------------

// ScalableFont is a parsed OpenType font.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont loads and parses a font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot load font %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses font data, usually from an OpenType file or
// from an embedded font.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	if len(fbytes) == 0 {
		return nil, core.Error(core.EINVALID, "empty font data")
	}
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font data")
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	if f.Fontname == "" {
		f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFamily)
	}
	tracer().Debugf("parsed font %q (%d glyphs)", f.Fontname, f.SFNT.NumGlyphs())
	return
}

// Equal is true if two scalable fonts share the same binary.
func (sf *ScalableFont) Equal(other *ScalableFont) bool {
	if sf == nil || other == nil {
		return sf == other
	}
	return sf == other || bytes.Equal(sf.Binary, other.Binary)
}
