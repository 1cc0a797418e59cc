// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"

	"github.com/michaelmacinnis/prim/internal/common"
	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
	"github.com/michaelmacinnis/prim/internal/common/interface/integer"
	"github.com/michaelmacinnis/prim/internal/common/interface/literal"
	"github.com/michaelmacinnis/prim/internal/common/interface/truth"
	"github.com/michaelmacinnis/prim/internal/common/struct/frame"
	"github.com/michaelmacinnis/prim/internal/common/struct/loc"
	"github.com/michaelmacinnis/prim/internal/common/type/boolean"
	"github.com/michaelmacinnis/prim/internal/common/type/fixnum"
	"github.com/michaelmacinnis/prim/internal/common/type/null"
	"github.com/michaelmacinnis/prim/internal/common/type/str"
	"github.com/michaelmacinnis/prim/internal/engine/interp"
	"github.com/michaelmacinnis/prim/internal/engine/node"
)

// Version is the interpreter's version.
const Version = "0.1.0"

// contextual evaluates its arguments and passes their values to op. The
// first two arguments read the context and location it was built with.
type contextual struct {
	args []node.I
	op   func(c *interp.T, l *loc.T, vs []cell.I) cell.I
}

func (c *contextual) Execute(f *frame.T) (cell.I, error) {
	vs, err := node.Each(f, c.args)
	if err != nil {
		return nil, err
	}

	ctx, ok := vs[0].(*interp.T)
	if !ok {
		return nil, fmt.Errorf("expected a context, not %s", vs[0].Name())
	}

	l, _ := vs[1].(*loc.T)

	return c.op(ctx, l, vs[2:]), nil
}

func with(op func(*interp.T, *loc.T, []cell.I) cell.I) func(*interp.T, *loc.T, []node.I) node.I {
	return func(c *interp.T, l *loc.T, args []node.I) node.I {
		bound := make([]node.I, 0, 2+len(args))
		bound = append(bound, &node.Context{Value: c}, &node.Location{Value: l})

		return &contextual{args: append(bound, args...), op: op}
	}
}

//nolint:gochecknoglobals
var (
	exit = with(func(c *interp.T, _ *loc.T, vs []cell.I) cell.I {
		status, ok := integer.Value(vs[0])
		if !ok {
			if !boolean.Is(vs[0]) {
				return nil
			}

			status = 1
			if truth.Value(vs[0]) {
				status = 0
			}
		}

		c.Exit(status)

		return fixnum.Int(status)
	})

	location = with(func(_ *interp.T, l *loc.T, _ []cell.I) cell.I {
		if l == nil {
			return nul.Nil
		}

		return l
	})

	logger = with(func(c *interp.T, l *loc.T, vs []cell.I) cell.I {
		msg, err := common.String(vs[0])
		if err != nil {
			return nil
		}

		c.Log().Infow(msg, "value", literal.String(vs[1]), "at", l)

		return nul.Nil
	})

	unsafe = with(func(c *interp.T, _ *loc.T, _ []cell.I) cell.I {
		return boolean.Bool(c.UnsafeAllowed())
	})
)

func version() node.I {
	return &node.Literal{Value: str.New(Version)}
}
