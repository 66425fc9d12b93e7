package font

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/mathbox/core/dimen"
)

// CharacterMetrics is the vertical extent of a character within a face.
type CharacterMetrics struct {
	Height dimen.Em // above the baseline
	Depth  dimen.Em // below the baseline
	Italic dimen.Em // italic correction
	Skew   dimen.Em // horizontal offset for accents
}

func (cm CharacterMetrics) String() string {
	return fmt.Sprintf("(h=%s, d=%s, i=%s, s=%s)", cm.Height, cm.Depth, cm.Italic, cm.Skew)
}

// Metrics is a service to look up the metrics of a character in a face.
// Implementations must be safe for concurrent use.
//
// Characters are given as strings, as symbols are usually handed around as
// strings. A value which has not been replaced by a single character (e.g.,
// an unknown command like `\foo`) is not expected to have metrics.
type Metrics interface {
	CharacterMetrics(value string, face Face) (CharacterMetrics, bool)
}

// MetricsFunc is an adapter to use an ordinary function as a metrics service.
type MetricsFunc func(value string, face Face) (CharacterMetrics, bool)

// CharacterMetrics calls mf(value, face).
func (mf MetricsFunc) CharacterMetrics(value string, face Face) (CharacterMetrics, bool) {
	return mf(value, face)
}

// --- Static table ----------------------------------------------------------

// MetricsTable is a static metrics service. Entries are keyed by face and
// character.
//
// The zero value is not usable; create instances with NewMetricsTable.
type MetricsTable struct {
	sync.RWMutex
	faces map[Face]map[rune]CharacterMetrics
}

var _ Metrics = &MetricsTable{}

// NewMetricsTable creates an empty metrics table.
func NewMetricsTable() *MetricsTable {
	return &MetricsTable{
		faces: make(map[Face]map[rune]CharacterMetrics),
	}
}

// Add enters the metrics for a character of a face. Existing entries are
// replaced. Add returns the table to allow chaining.
func (mt *MetricsTable) Add(face Face, ch rune, m CharacterMetrics) *MetricsTable {
	mt.Lock()
	defer mt.Unlock()
	chars, ok := mt.faces[face]
	if !ok {
		chars = make(map[rune]CharacterMetrics)
		mt.faces[face] = chars
	}
	chars[ch] = m
	return mt
}

// CharacterMetrics is part of interface Metrics.
func (mt *MetricsTable) CharacterMetrics(value string, face Face) (CharacterMetrics, bool) {
	ch, ok := singleRune(value)
	if !ok {
		return CharacterMetrics{}, false
	}
	mt.RLock()
	defer mt.RUnlock()
	m, ok := mt.faces[face][ch]
	return m, ok
}

// Len returns the number of entries for a face.
func (mt *MetricsTable) Len(face Face) int {
	mt.RLock()
	defer mt.RUnlock()
	return len(mt.faces[face])
}

func singleRune(value string) (rune, bool) {
	if value == "" {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError || size != len(value) {
		return 0, false
	}
	return r, true
}
