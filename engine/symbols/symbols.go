/*
Package symbols implements the symbol table consulted by box construction.

For every mode (math or text) the table maps a symbol's source value, e.g.
`\alpha` or "+", to an entry telling which font the symbol lives in, which
character replaces the command, and which atom group it belongs to.

Keys are stored NFC-normalized in a trie, which gives us prefix search for
free (used for completion in interactive tools).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package symbols

import (
	"sort"

	"github.com/derekparker/trie"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
)

// tracer traces with key 'tyse.symbols'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.symbols")
}

// Mode is either math mode or text mode.
type Mode int8

// Modes of the symbol table.
const (
	Math Mode = iota
	Text
)

func (m Mode) String() string {
	if m == Text {
		return "text"
	}
	return "math"
}

// ParseMode returns the mode for "math" or "text".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "math":
		return Math, true
	case "text":
		return Text, true
	}
	return Math, false
}

// FontTag is the font a symbol is recorded with.
type FontTag int8

// There are two symbol fonts: the main font and the AMS font.
const (
	Main FontTag = iota
	AMS
)

func (ft FontTag) String() string {
	if ft == AMS {
		return "ams"
	}
	return "main"
}

// Group is the atom group of a symbol, e.g. "rel" or "mathord".
type Group string

// Atom groups.
const (
	Accent  Group = "accent"
	Bin     Group = "bin"
	Close   Group = "close"
	Inner   Group = "inner"
	MathOrd Group = "mathord"
	Op      Group = "op"
	Open    Group = "open"
	Punct   Group = "punct"
	Rel     Group = "rel"
	Spacing Group = "spacing"
	TextOrd Group = "textord"
)

// Symbol is an entry of the symbol table.
type Symbol struct {
	Font    FontTag
	Group   Group
	Replace string // replacement character, may be empty
}

// Table is a symbol table. It is safe for concurrent lookups once it
// has been populated.
type Table struct {
	modes [2]*trie.Trie
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{
		modes: [2]*trie.Trie{trie.New(), trie.New()},
	}
}

// Define enters a symbol into the table, replacing existing entries.
func (t *Table) Define(mode Mode, value string, sym Symbol) *Table {
	key := norm.NFC.String(value)
	t.modes[mode].Add(key, sym)
	return t
}

// Lookup finds the entry for a value in a mode.
func (t *Table) Lookup(mode Mode, value string) (Symbol, bool) {
	if t == nil || value == "" {
		return Symbol{}, false
	}
	node, ok := t.modes[mode].Find(norm.NFC.String(value))
	if !ok {
		return Symbol{}, false
	}
	sym, ok := node.Meta().(Symbol)
	if !ok {
		tracer().Errorf("symbol table entry for %q is corrupt", value)
	}
	return sym, ok
}

// Replacement returns the replacement character for a value, if any.
func (t *Table) Replacement(mode Mode, value string) (string, bool) {
	sym, ok := t.Lookup(mode, value)
	if !ok || sym.Replace == "" {
		return "", false
	}
	return sym.Replace, true
}

// Complete returns all values of a mode starting with prefix, sorted.
func (t *Table) Complete(mode Mode, prefix string) []string {
	if t == nil {
		return nil
	}
	keys := t.modes[mode].PrefixSearch(norm.NFC.String(prefix))
	sort.Strings(keys)
	return keys
}
