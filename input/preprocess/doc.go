/*
Package preprocess rewrites legacy markup before it is handed to the math
parser.

Input texts mix prose and math, the latter enclosed in $…$. Prose may
contain a few LaTeX commands (\textbf{…}, \textit{…}, \n for line breaks,
~ for non-breaking spaces), which are translated to HTML. Math may contain
legacy macros (\vector, \degrees, \uscore, …), which are expanded to
standard TeX.

Preprocessing is plain text rewriting and never looks at boxes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package preprocess

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.input'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.input")
}
