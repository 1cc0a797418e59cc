// Released under an MIT license. See LICENSE.

// Package nul provides the language's nil value. There is only one.
package nul

import (
	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
	"github.com/michaelmacinnis/prim/internal/common/interface/literal"
	"github.com/michaelmacinnis/prim/internal/common/interface/truth"
)

const name = "nil"

// T (nul) is the type of Nil.
type T struct{}

type nul = T

// Nil is the only nul value.
var Nil cell.I = &nul{} //nolint:gochecknoglobals

// Bool returns false. Nil is never true.
func (*nul) Bool() bool {
	return false
}

// Equal returns true if c is Nil.
func (n *nul) Equal(c cell.I) bool {
	return Is(c)
}

// Literal returns the literal representation of Nil.
func (*nul) Literal() string {
	return name
}

// Name returns the type name for Nil.
func (*nul) Name() string {
	return name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t nul

	// The nul type is a cell.
	_ = cell.I(&t)

	// The nul type has a literal representation.
	_ = literal.I(&t)

	// The nul type has a truth value.
	_ = truth.I(&t)
}
