package fontregistry

import (
	"path"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/go-fonts/latin-modern/lmmath"
	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmroman12regular"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/npillmayer/mathbox/core"
	"github.com/npillmayer/mathbox/core/font"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
)

// Registry is a type for holding information about fonts backing the faces
// of the box layer. Fonts may either be stored as parsed fonts or as raw
// (embedded) font data, which will be parsed on first use.
type Registry struct {
	sync.Mutex
	fonts    map[font.Face]*font.ScalableFont
	embedded map[font.Face][]byte
}

var _ font.FontSource = &Registry{}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// loaded fonts. It is pre-populated with Latin Modern fonts for every face.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewLatinModernRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts:    make(map[font.Face]*font.ScalableFont),
		embedded: make(map[font.Face][]byte),
	}
	return fr
}

// NewLatinModernRegistry creates a font registry where every face is backed
// by a Latin Modern font. Faces without a Latin Modern counterpart
// (AMS, calligraphic, fraktur, script) use Latin Modern Math, which is
// the closest approximation available.
func NewLatinModernRegistry() *Registry {
	fr := NewRegistry()
	fr.StoreEmbedded(font.MainRegular, lmroman10regular.TTF)
	fr.StoreEmbedded(font.MainBold, lmroman10bold.TTF)
	fr.StoreEmbedded(font.MainItalic, lmroman10italic.TTF)
	fr.StoreEmbedded(font.MathItalic, lmroman10italic.TTF)
	fr.StoreEmbedded(font.AMSRegular, lmmath.TTF)
	fr.StoreEmbedded(font.CalligraphicRegular, lmmath.TTF)
	fr.StoreEmbedded(font.FrakturRegular, lmmath.TTF)
	fr.StoreEmbedded(font.ScriptRegular, lmmath.TTF)
	fr.StoreEmbedded(font.SansSerifRegular, lmsans10regular.TTF)
	fr.StoreEmbedded(font.TypewriterRegular, lmmono10regular.TTF)
	fr.StoreEmbedded(font.Size1Regular, lmroman12regular.TTF)
	fr.StoreEmbedded(font.Size4Regular, lmmath.TTF)
	return fr
}

// StoreFont pushes a font into the registry if it isn't contained yet.
// The font will be stored as the font backing face.
func (fr *Registry) StoreFont(face font.Face, f *font.ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[face]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, face)
		fr.fonts[face] = f
	}
}

// StoreEmbedded registers raw font data for a face. The data is parsed on
// first use of face. An already parsed font for face takes precedence.
func (fr *Registry) StoreEmbedded(face font.Face, data []byte) {
	fr.Lock()
	defer fr.Unlock()
	fr.embedded[face] = data
}

// ScalableFont returns the font backing a face. It is part of interface
// font.FontSource.
func (fr *Registry) ScalableFont(face font.Face) (*font.ScalableFont, bool) {
	fr.Lock()
	defer fr.Unlock()
	if f, ok := fr.fonts[face]; ok {
		return f, true
	}
	data, ok := fr.embedded[face]
	if !ok {
		tracer().Infof("registry does not contain a font for %s", face)
		return nil, false
	}
	// several faces may share the same embedded data
	for other, d := range fr.embedded {
		if len(d) == 0 || len(d) != len(data) {
			continue
		}
		if f, ok := fr.fonts[other]; ok && &d[0] == &data[0] {
			fr.fonts[face] = f
			return f, true
		}
	}
	f, err := font.ParseOpenTypeFont(data)
	if err != nil {
		tracer().Errorf("cannot parse embedded font for %s: %v", face, err)
		delete(fr.embedded, face)
		return nil, false
	}
	tracer().Infof("font registry caches font %s for %s", f.Fontname, face)
	fr.fonts[face] = f
	return f, true
}

// Metrics returns a metrics service measuring the fonts of this registry.
func (fr *Registry) Metrics() font.Metrics {
	return font.NewOpenTypeMetrics(fr)
}

// LocateFace searches the system fonts for a font file matching pattern
// and the style of face, e.g. pattern "cmunrm" for MainRegular.
// If found, the font is loaded and stored as the font backing face.
func (fr *Registry) LocateFace(face font.Face, pattern string) (*font.ScalableFont, error) {
	style, weight := FaceStyleAndWeight(face)
	var fontpath string
	if p, err := findfont.Find(pattern); err == nil && Matches(p, pattern, style, weight) {
		fontpath = p
	} else {
		for _, p := range findfont.List() {
			if Matches(p, pattern, style, weight) {
				fontpath = p
				break
			}
		}
	}
	if fontpath == "" {
		return nil, core.Error(core.EMISSING, "no system font matching %q for %s", pattern, face)
	}
	f, err := font.LoadOpenTypeFont(fontpath)
	if err != nil {
		return nil, err
	}
	fr.Lock()
	fr.fonts[face] = f
	fr.Unlock()
	tracer().Infof("located font %s for %s", fontpath, face)
	return f, nil
}

// LogFontList is a helper function to dump the list of known fonts
// to the trace. Will be called for trace-level Info only.
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	fr.Lock()
	for k, v := range fr.fonts {
		tracer().Infof("font [%s] = %v", k, v.Fontname)
	}
	for k := range fr.embedded {
		if _, ok := fr.fonts[k]; !ok {
			tracer().Infof("font [%s] = <embedded, not yet parsed>", k)
		}
	}
	fr.Unlock()
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}

// --- Font names -------------------------------------------------------------

// FaceStyleAndWeight derives the design of a face from its name.
func FaceStyleAndWeight(face font.Face) (xfont.Style, xfont.Weight) {
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if face.IsItalic() {
		style = xfont.StyleItalic
	}
	if face.IsBold() {
		weight = xfont.WeightBold
	}
	return style, weight
}

// GuessStyleAndWeight trys to guess a font's style and weight from the
// font's file name.
func GuessStyleAndWeight(fontfilename string) (xfont.Style, xfont.Weight) {
	fontfilename = path.Base(fontfilename)
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			return xfont.StyleNormal, xfont.WeightLight
		case "normal", "medium", "regular", "r":
			return xfont.StyleNormal, xfont.WeightNormal
		case "bold", "b":
			return xfont.StyleNormal, xfont.WeightBold
		case "xbold", "black":
			return xfont.StyleNormal, xfont.WeightExtraBold
		}
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(fontfilename, "italic") {
		style = xfont.StyleItalic
	}
	if strings.Contains(fontfilename, "light") {
		weight = xfont.WeightLight
	}
	if strings.Contains(fontfilename, "bold") {
		weight = xfont.WeightBold
	}
	return style, weight
}

// Matches returns true if a font file name contains pattern and the font
// is guessed to be of style and weight.
func Matches(fontfilename, pattern string, style xfont.Style, weight xfont.Weight) bool {
	basename := path.Base(fontfilename)
	basename = basename[:len(basename)-len(path.Ext(basename))]
	basename = strings.ToLower(basename)
	tracer().Debugf("basename of font = %s", basename)
	if !strings.Contains(basename, strings.ToLower(pattern)) {
		return false
	}
	s, w := GuessStyleAndWeight(basename)
	if s == style && w == weight {
		return true
	}
	return false
}
