// Released under an MIT license. See LICENSE.

package primitive

import (
	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
	"github.com/michaelmacinnis/prim/internal/common/struct/frame"
	"github.com/michaelmacinnis/prim/internal/common/type/null"
	"github.com/michaelmacinnis/prim/internal/engine/control"
	"github.com/michaelmacinnis/prim/internal/engine/node"
)

// Call is the node for a static primitive call site.
//
// The implementation either produces a value or declines by producing
// none. A value returns from the enclosing method scope id. Declining
// yields nil so that the code after the call, the fallback written in
// the language itself, runs instead.
type Call struct {
	id        *control.ReturnID
	name      string
	primitive node.I
}

// Execute runs the primitive.
func (c *Call) Execute(f *frame.T) (cell.I, error) {
	v, err := c.primitive.Execute(f)
	if err != nil {
		return nil, err
	}

	if v == nil {
		return nul.Nil, nil
	}

	return nil, &control.Return{ID: c.id, Value: v}
}

// Primitive returns the implementation node.
func (c *Call) Primitive() node.I {
	return c.primitive
}

// ReturnID returns the scope that a successful call returns from.
func (c *Call) ReturnID() *control.ReturnID {
	return c.id
}

func (c *Call) String() string {
	return "call " + c.name + " " + c.id.String()
}

// Invoke is the node for a primitive invoked with caller-built arguments.
// Its value is the primitive's value. A primitive that declines fails.
type Invoke struct {
	name      string
	primitive node.I
}

// Execute runs the primitive.
func (i *Invoke) Execute(f *frame.T) (cell.I, error) {
	v, err := i.primitive.Execute(f)
	if err != nil {
		return nil, err
	}

	if v == nil {
		return nil, control.PrimitiveFailed(i.name)
	}

	return v, nil
}

// Primitive returns the implementation node.
func (i *Invoke) Primitive() node.I {
	return i.primitive
}

func (i *Invoke) String() string {
	return "invoke " + i.name
}

// Unsafe replaces a primitive that the context did not allow when the
// node was built. It fails every time with the same error and does
// nothing else.
type Unsafe struct {
	err error
}

// Execute returns the restricted-operation error.
func (u *Unsafe) Execute(*frame.T) (cell.I, error) {
	return nil, u.err
}

func (u *Unsafe) String() string {
	return "unsafe(" + u.err.Error() + ")"
}
