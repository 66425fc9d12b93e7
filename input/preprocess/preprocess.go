package preprocess

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/npillmayer/mathbox/core"
	"golang.org/x/net/html"
)

// Config controls preprocessing. The zero value is a sensible default.
type Config struct {
	IgnoreNewLines   bool // leave \n commands untouched
	SuppressWarnings bool // do not report invalid math
}

// MatchTimeout limits the time a single pattern may spend on an input.
const MatchTimeout = time.Second

func mustCompile(pattern string) *regexp2.Regexp {
	re := regexp2.MustCompile(pattern, regexp2.None)
	re.MatchTimeout = MatchTimeout
	return re
}

type rewrite struct {
	re   *regexp2.Regexp
	repl string
}

var (
	backslashN = mustCompile(`\\n(?![a-zA-Z])`)
	mathBits   = mustCompile(`\$|(?:\\.|[^$])+`)

	mathMacros = []rewrite{
		{mustCompile(`\\vector\{((?:[^}$]|\\\$[^$]*\\\$)*)\}\{((?:[^}$]|\\\$[^$]*\\\$)*)\}`),
			`{${1} \choose ${2}}`},
		{mustCompile(`\\degrees`), `^\circ`},
		{mustCompile(`(\d,)(?=\d\d\d)`), `${1}\!\!`},
		{mustCompile(`([^\\]|^)%`), `${1}\%`},
		{mustCompile(`([^{?]|^)([?]+)([^}?]|$)`), `${1}{${2}}${3}`},
		{mustCompile(`\\uscore\{(\d+)\}`), `\rule{${1}em}{0.03em}`},
	}
)

// Text replaces ~ by non-breaking spaces and, unless configured otherwise,
// \n commands by HTML line breaks. A \n immediately followed by a letter is
// a different command (e.g. \neq) and is left alone.
func Text(text string, cfg Config) (string, error) {
	text = strings.ReplaceAll(text, "~", "\u00a0")
	if cfg.IgnoreNewLines {
		return text, nil
	}
	out, err := backslashN.Replace(text, "<br/>", -1, -1)
	if err != nil {
		return text, core.WrapError(err, core.EINTERNAL, "replacing line breaks")
	}
	return out, nil
}

// Math expands legacy macros in a math formula:
//
//	\vector{a}{b}   →  {a \choose b}
//	\degrees        →  ^\circ
//	1,000           →  1,\!\!000
//	%               →  \%
//	x?              →  x{?}
//	\uscore{3}      →  \rule{3em}{0.03em}
func Math(math string) (string, error) {
	var err error
	for _, m := range mathMacros {
		if math, err = m.re.Replace(math, m.repl, -1, -1); err != nil {
			return math, core.WrapError(err, core.EINTERNAL, "expanding %s", m.re)
		}
	}
	return math, nil
}

// MathRenderer renders a preprocessed math formula to HTML.
type MathRenderer interface {
	RenderMath(math string) (string, error)
}

// MathRendererFunc is an adapter to use an ordinary function as a MathRenderer.
type MathRendererFunc func(math string) (string, error)

// RenderMath is part of interface MathRenderer.
func (f MathRendererFunc) RenderMath(math string) (string, error) {
	return f(math)
}

// RenderMixed renders a text of prose and $-delimited math to HTML.
//
// Math is preprocessed with Math and then rendered by r. Math that r fails
// to render is output as <code class="invalid-math">, and a warning is
// traced unless cfg.SuppressWarnings is set. Prose is HTML-escaped, with
// \$ unescaped to $ and \textbf and \textit translated to HTML tags.
// Tags may be opened in one prose segment and closed in a later one.
// Finally the whole result is passed through Text.
//
// Errors are returned for failures of the pattern engine only.
func RenderMixed(text string, r MathRenderer, cfg Config) (string, error) {
	var out strings.Builder
	tags := NewTagStack()
	isMath := false
	m, err := mathBits.FindStringMatch(text)
	for ; m != nil && err == nil; m, err = mathBits.FindNextMatch(m) {
		bit := m.String()
		switch {
		case bit == "$":
			isMath = !isMath
		case isMath:
			out.WriteString(renderMath(bit, r, cfg))
		default:
			bit = html.EscapeString(strings.ReplaceAll(bit, `\$`, "$"))
			out.WriteString(ReplaceLatexTags(bit, tags))
		}
	}
	if err != nil {
		return "", core.WrapError(err, core.EINTERNAL, "splitting math from text")
	}
	if isMath {
		tracer().Debugf("unbalanced $ in %q", text)
	}
	return Text(out.String(), cfg)
}

func renderMath(bit string, r MathRenderer, cfg Config) string {
	math, err := Math(bit)
	if err == nil {
		if r == nil {
			err = core.Error(core.EMISSING, "no math renderer")
		} else if rendered, rerr := r.RenderMath(math); rerr == nil {
			return rendered
		} else {
			err = rerr
		}
	}
	if !cfg.SuppressWarnings {
		tracer().Infof("invalid math %q: %v", bit, err)
	}
	return `<code class="invalid-math">` + html.EscapeString(bit) + `</code>`
}
