// Released under an MIT license. See LICENSE.

package commands

import (
	"math"
	"math/big"

	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
	"github.com/michaelmacinnis/prim/internal/common/interface/rational"
	"github.com/michaelmacinnis/prim/internal/common/type/boolean"
	"github.com/michaelmacinnis/prim/internal/common/type/fixnum"
	"github.com/michaelmacinnis/prim/internal/common/type/num"
)

func add(a, b cell.I) cell.I {
	if fixnum.Is(a) && fixnum.Is(b) {
		x, y := fixnum.To(a).Int64(), fixnum.To(b).Int64()

		if (y > 0 && x <= math.MaxInt64-y) || (y <= 0 && x >= math.MinInt64-y) {
			return fixnum.Int(x + y)
		}
	}

	x, ok := rational.Number(a)
	if !ok {
		return nil
	}

	y, ok := rational.Number(b)
	if !ok {
		return nil
	}

	return fixnum.Lower(num.Rat(new(big.Rat).Add(x, y)))
}

func isFixnum(c cell.I) cell.I {
	return boolean.Bool(fixnum.Is(c))
}

func lt(a, b cell.I) cell.I {
	if fixnum.Is(a) && fixnum.Is(b) {
		return boolean.Bool(fixnum.To(a).Int64() < fixnum.To(b).Int64())
	}

	x, ok := rational.Number(a)
	if !ok {
		return nil
	}

	y, ok := rational.Number(b)
	if !ok {
		return nil
	}

	return boolean.Bool(x.Cmp(y) < 0)
}
