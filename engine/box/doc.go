/*
Package box implements the boxes of the math box layer.

Typesetting may be understood as the process of placing boxes within
larger boxes. The smallest type of box is a symbol, i.e. a printable
character with metrics. Boxes are combined into spans and fragments, or
stacked on top of each other into a vertical list ("vlist").

Every box knows its height above and depth below the baseline, in em, and
the largest relative font size used within it. The notation follows the one
introduced by the TeX typesetting system.

Boxes form a tree where every box exclusively owns its children. Boxes are
immutable after construction: sizes of composite boxes are computed once,
from their children, by the constructor.

Box trees are consumed by serializers (HTML, MathML), which map classes and
styles of boxes to markup.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package box

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.box'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.box")
}
