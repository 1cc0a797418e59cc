// Released under an MIT license. See LICENSE.

// Package fixnum provides the machine-word integer type and the lowering
// of wide integers into it.
package fixnum

import (
	"math/big"
	"strconv"

	"github.com/michaelmacinnis/prim/internal/common"
	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
	"github.com/michaelmacinnis/prim/internal/common/interface/integer"
	"github.com/michaelmacinnis/prim/internal/common/interface/literal"
	"github.com/michaelmacinnis/prim/internal/common/interface/rational"
	"github.com/michaelmacinnis/prim/internal/common/type/num"
)

const name = "fixnum"

// T (fixnum) wraps Go's int64 type.
type T int64

type fixnum = T

// Int creates a fixnum from the integer i.
func Int(i int64) cell.I {
	f := fixnum(i)

	return &f
}

// Lower narrows c to a fixnum when c is a wide number with an integral
// value that fits in a machine word. Any other cell is returned unchanged.
func Lower(c cell.I) cell.I {
	if !num.Is(c) {
		return c
	}

	r := num.To(c).Rat()
	if !r.IsInt() || !r.Num().IsInt64() {
		return c
	}

	return Int(r.Num().Int64())
}

// Equal returns true if c has the same numeric value as the fixnum f.
func (f *fixnum) Equal(c cell.I) bool {
	if Is(c) {
		return *f == *To(c)
	}

	r, ok := rational.Number(c)

	return ok && f.Rat().Cmp(r) == 0
}

// Int64 returns the value of the fixnum f.
func (f *fixnum) Int64() int64 {
	return int64(*f)
}

// Literal returns the literal representation of the fixnum f.
func (f *fixnum) Literal() string {
	return f.String()
}

// Name returns the type name for the fixnum f.
func (f *fixnum) Name() string {
	return name
}

// Rat returns the value of the fixnum f as a new *big.Rat.
func (f *fixnum) Rat() *big.Rat {
	return big.NewRat(int64(*f), 1)
}

// String returns the text of the fixnum f.
func (f *fixnum) String() string {
	return strconv.FormatInt(int64(*f), 10)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t fixnum

	// The fixnum type is a cell.
	_ = cell.I(&t)

	// The fixnum type is an integer.
	_ = integer.I(&t)

	// The fixnum type has a literal representation.
	_ = literal.I(&t)

	// The fixnum type is a rational.
	_ = rational.I(&t)

	// The fixnum type is a stringer.
	_ = common.Stringer(&t)
}
