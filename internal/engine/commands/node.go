// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
	"github.com/michaelmacinnis/prim/internal/common/struct/frame"
	"github.com/michaelmacinnis/prim/internal/engine/node"
)

// An operation returns nil to decline the values it was given.
type operation func(vs []cell.I) cell.I

// apply evaluates its arguments and passes their values to op.
type apply struct {
	args []node.I
	op   operation
}

func (a *apply) Execute(f *frame.T) (cell.I, error) {
	vs, err := node.Each(f, a.args)
	if err != nil {
		return nil, err
	}

	return a.op(vs), nil
}

func binary(op func(a, b cell.I) cell.I) func([]node.I) node.I {
	return variadic(func(vs []cell.I) cell.I {
		return op(vs[0], vs[1])
	})
}

func unary(op func(c cell.I) cell.I) func([]node.I) node.I {
	return variadic(func(vs []cell.I) cell.I {
		return op(vs[0])
	})
}

func variadic(op operation) func([]node.I) node.I {
	return func(args []node.I) node.I {
		return &apply{args: args, op: op}
	}
}
