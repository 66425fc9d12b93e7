package build

import (
	"github.com/npillmayer/mathbox/core/font"
	"github.com/npillmayer/mathbox/core/font/fontregistry"
	"github.com/npillmayer/mathbox/engine/box"
	"github.com/npillmayer/mathbox/engine/symbols"
)

// Builder creates symbol boxes. Builders are configured at creation time
// and immutable thereafter.
type Builder struct {
	metrics  font.Metrics
	symbols  *symbols.Table
	observer Observer
}

// Option configures a Builder.
type Option func(*Builder)

// WithMetrics sets the metrics service of a builder. The default is the
// metrics of the global font registry.
func WithMetrics(m font.Metrics) Option {
	return func(b *Builder) {
		b.metrics = m
	}
}

// WithSymbols sets the symbol table of a builder. The default is
// symbols.Default().
func WithSymbols(t *symbols.Table) Option {
	return func(b *Builder) {
		b.symbols = t
	}
}

// WithObserver sets the receiver of diagnostics. The default observer
// traces to 'tyse.build'. A nil observer discards diagnostics.
func WithObserver(o Observer) Option {
	return func(b *Builder) {
		if o == nil {
			o = nullObserver{}
		}
		b.observer = o
	}
}

// New creates a Builder.
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	if b.metrics == nil {
		b.metrics = fontregistry.GlobalRegistry().Metrics()
	}
	if b.symbols == nil {
		b.symbols = symbols.Default()
	}
	if b.observer == nil {
		b.observer = TraceObserver(tracer())
	}
	return b
}

// Symbols returns the symbol table of b.
func (b *Builder) Symbols() *symbols.Table {
	return b.symbols
}

// MakeSymbol creates a symbol box for value, set in face.
//
// If the symbol table holds a replacement for value in mode, the replacement
// is set instead, e.g. "α" for `\alpha`. If no metrics exist for the
// character in face, the observer is told and a symbol box without extent
// is returned.
func (b *Builder) MakeSymbol(value string, face font.Face, mode symbols.Mode, color string,
	classes ...string) *box.Box {
	//
	if repl, ok := b.symbols.Replacement(mode, value); ok {
		value = repl
	}
	m, ok := b.metrics.CharacterMetrics(value, face)
	if !ok {
		b.observer.MissingMetrics(value, face)
		m = font.CharacterMetrics{}
	}
	return box.NewSymbol(value, m, color, classes...)
}

// Mathsym creates a box for a symbol which is not subject to font variants,
// e.g. relations, operators or delimiters. Symbols recorded with the AMS
// font are set in AMS-Regular and tagged with class "amsrm", all other
// symbols are set in Main-Regular.
func (b *Builder) Mathsym(value string, mode symbols.Mode, color string, classes []string) *box.Box {
	if sym, ok := b.symbols.Lookup(mode, value); ok && sym.Font == symbols.AMS {
		return b.MakeSymbol(value, font.AMSRegular, mode, color, withClass(classes, "amsrm")...)
	}
	return b.MakeSymbol(value, font.MainRegular, mode, color, classes...)
}

// withClass appends cls to a copy of classes.
func withClass(classes []string, cls string) []string {
	c := make([]string, len(classes), len(classes)+1)
	copy(c, classes)
	if cls == "" {
		return c
	}
	return append(c, cls)
}
