// Released under an MIT license. See LICENSE.

// Package undef provides the sentinel read in place of a missing argument.
// It is never visible to programs; primitives test for it to implement
// optional parameters.
package undef

import (
	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
)

const name = "undefined"

// T (undef) is the type of Value.
type T struct{}

type undef = T

// Value is the only undef value.
var Value cell.I = &undef{} //nolint:gochecknoglobals

// Equal returns true if c is Value.
func (*undef) Equal(c cell.I) bool {
	return Is(c)
}

// Name returns the type name for Value.
func (*undef) Name() string {
	return name
}
