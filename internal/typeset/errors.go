package typeset

import (
	"errors"
	"fmt"

	"github.com/dshills/termmath/internal/mathml"
)

// ErrInvalidStructure indicates a construct with the wrong number of children.
var ErrInvalidStructure = errors.New("invalid math structure")

// StructureError reports an arity violation.
type StructureError struct {
	// Tag is the offending element.
	Tag string
	// Want is the required number of children.
	Want int
	// Got is the actual number of children.
	Got int
}

// Error implements the error interface.
func (e *StructureError) Error() string {
	return fmt.Sprintf("%s requires exactly %d children, got %d", e.Tag, e.Want, e.Got)
}

// Is reports whether target is ErrInvalidStructure.
func (e *StructureError) Is(target error) bool {
	return target == ErrInvalidStructure
}

func arity(n *mathml.Node, want int) error {
	if got := len(n.Children); got != want {
		return &StructureError{Tag: n.Tag, Want: want, Got: got}
	}
	return nil
}
