package font

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/npillmayer/mathbox/core/dimen"
)

// FontSource resolves faces to scalable fonts.
// Package fontregistry provides an implementation.
type FontSource interface {
	ScalableFont(face Face) (*ScalableFont, bool)
}

// OpenTypeMetrics is a metrics service which measures glyph outlines of
// scalable fonts. Height and depth are taken from a glyph's bounding box.
// OpenType fonts do not carry TeX italic corrections or skews, so these are
// always 0.
type OpenTypeMetrics struct {
	source FontSource
}

var _ Metrics = OpenTypeMetrics{}

// NewOpenTypeMetrics creates a metrics service for fonts of a font source.
func NewOpenTypeMetrics(source FontSource) OpenTypeMetrics {
	return OpenTypeMetrics{source: source}
}

// CharacterMetrics is part of interface Metrics.
func (otm OpenTypeMetrics) CharacterMetrics(value string, face Face) (CharacterMetrics, bool) {
	ch, ok := singleRune(value)
	if !ok || otm.source == nil {
		return CharacterMetrics{}, false
	}
	sf, ok := otm.source.ScalableFont(face)
	if !ok || sf == nil || sf.SFNT == nil {
		tracer().Debugf("no scalable font for face %s", face)
		return CharacterMetrics{}, false
	}
	return GlyphMetrics(sf, ch)
}

// GlyphMetrics measures a character in a scalable font.
// If the font does not contain a glyph for ch, false is returned.
func GlyphMetrics(sf *ScalableFont, ch rune) (CharacterMetrics, bool) {
	var buf sfnt.Buffer // sfnt.Buffer must not be shared between goroutines
	gid, err := sf.SFNT.GlyphIndex(&buf, ch)
	if err != nil || gid == 0 {
		return CharacterMetrics{}, false
	}
	upem := fixed.I(int(sf.SFNT.UnitsPerEm()))
	bounds, _, err := sf.SFNT.GlyphBounds(&buf, gid, upem, font.HintingNone)
	if err != nil {
		tracer().Errorf("cannot measure glyph %#U in %s: %v", ch, sf.Fontname, err)
		return CharacterMetrics{}, false
	}
	// sfnt bounds grow downwards
	h := dimen.Em(float64(-bounds.Min.Y) / float64(upem))
	d := dimen.Em(float64(bounds.Max.Y) / float64(upem))
	return CharacterMetrics{
		Height: dimen.Max(h, 0),
		Depth:  dimen.Max(d, 0),
	}, true
}
