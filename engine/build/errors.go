package build

import (
	"fmt"

	"github.com/npillmayer/mathbox/core"
	"github.com/npillmayer/mathbox/engine/symbols"
)

// UnexpectedTypeError is returned when a token of a type other than
// mathord or textord is to be set in a default math font. This points to
// a mismatch between the parser and the builder.
type UnexpectedTypeError struct {
	Type  symbols.Group
	Value string
}

func (e UnexpectedTypeError) Error() string {
	return fmt.Sprintf("unexpected type %q for symbol %q in default math font", e.Type, e.Value)
}

// Unwrap returns a core error with code core.ECONTRACT.
func (e UnexpectedTypeError) Unwrap() error {
	return core.Error(core.ECONTRACT, "%s", e.Error())
}
