// Released under an MIT license. See LICENSE.

// Package integer reads a machine-word value from a cell, if possible.
// Both the lowered and the wide representation are accepted.
package integer

import (
	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
	"github.com/michaelmacinnis/prim/internal/common/interface/rational"
)

// I (integer) is anything that already holds a machine-word integer.
type I interface {
	Int64() int64
}

// Value returns the int64 value for a cell and true, or false if the
// cell has no integer value that fits in a machine word.
func Value(c cell.I) (int64, bool) {
	if i, ok := c.(I); ok {
		return i.Int64(), true
	}

	r, ok := rational.Number(c)
	if !ok || !r.IsInt() {
		return 0, false
	}

	n := r.Num()
	if !n.IsInt64() {
		return 0, false
	}

	return n.Int64(), true
}
