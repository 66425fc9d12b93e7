// Package dimen implements dimensions and units.
//
// All vertical and horizontal measures of the math box layer are given in
// em, relative to the font size in effect. Heights are measured upwards
// from the baseline, depths downwards; both are stored as signed values,
// with a depth of 0.2 meaning 0.2em below the baseline.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"regexp"
	"strconv"
)

// Em is a dimension type, relative to the current font size.
type Em float64

// Some pre-defined dimensions
const (
	Zero Em = 0
	One  Em = 1
)

// Stringer implementation. Dimensions print in CSS notation, e.g. "0.5em".
func (d Em) String() string {
	return strconv.FormatFloat(float64(d), 'g', -1, 64) + "em"
}

// Float returns a dimension as a plain float value.
func (d Em) Float() float64 {
	return float64(d)
}

// Scale multiplies a dimension by a factor.
func (d Em) Scale(factor float64) Em {
	return Em(float64(d) * factor)
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+))(em)?$`)

// ErrFormat is returned if a string cannot be parsed into a dimension.
var ErrFormat = errors.New("format error parsing dimension")

// ParseEm parses a string to return a dimension. Syntax is a CSS length
// in unit 'em', e.g. "-0.16667em". A missing unit is accepted.
func ParseEm(s string) (Em, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, ErrFormat
	}
	f, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, ErrFormat
	}
	return Em(f), nil
}

// MustParseEm is like ParseEm, but panics on malformed input.
// It is intended for initialization of static tables.
func MustParseEm(s string) Em {
	d, err := ParseEm(s)
	if err != nil {
		panic(err.Error() + ": " + s)
	}
	return d
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Em) Em {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Em) Em {
	if a > b {
		return a
	}
	return b
}
