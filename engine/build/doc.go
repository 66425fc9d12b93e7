/*
Package build creates sized symbol boxes from tokens.

A Builder resolves a token's value through the symbol table, selects a font
face (either directly or through one of the font variants like \mathbf),
queries the metrics service for the character in that face, and creates a
symbol box from the result.

Builders hold no mutable state and may be used from multiple goroutines
concurrently. The only side effect of a builder is reporting missing
character metrics to an Observer. Missing metrics are not an error: the
symbol is set as a zero-sized box and rendering continues.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package build

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.build'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.build")
}
