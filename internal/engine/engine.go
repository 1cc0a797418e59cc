// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for primitive calls.
package engine

import (
	"fmt"

	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
	"github.com/michaelmacinnis/prim/internal/common/struct/frame"
	"github.com/michaelmacinnis/prim/internal/common/struct/loc"
	"github.com/michaelmacinnis/prim/internal/common/type/null"
	"github.com/michaelmacinnis/prim/internal/engine/catalog"
	"github.com/michaelmacinnis/prim/internal/engine/commands"
	"github.com/michaelmacinnis/prim/internal/engine/control"
	"github.com/michaelmacinnis/prim/internal/engine/interp"
	"github.com/michaelmacinnis/prim/internal/engine/node"
	"github.com/michaelmacinnis/prim/internal/engine/primitive"
	"github.com/michaelmacinnis/prim/internal/reader"
)

// T (engine) is a facade in front of the machinery for calling primitives.
type T struct {
	catalog *catalog.T
	ctx     *interp.T
}

// New creates a new engine for the context ctx with the built-in primitives.
func New(ctx *interp.T) *T {
	return &T{
		catalog: catalog.MustLoad(ctx.Log(), commands.Declarations(), commands.Implementations()),
		ctx:     ctx,
	}
}

// Call calls the primitive name on self from a method whose only other
// code raises PrimitiveFailure. A primitive that declines therefore fails.
func (e *T) Call(at *loc.T, name string, self cell.I, args ...cell.I) (cell.I, error) {
	p, err := e.lookup(name)
	if err != nil {
		return nil, err
	}

	id := control.NewReturnID(name)

	call, err := p.CreateCall(e.ctx, at, id)
	if err != nil {
		return nil, err
	}

	m := &node.Method{
		ID: id,
		Body: node.Sequence{
			call,
			&node.Fail{Err: control.PrimitiveFailed(name)},
		},
	}

	e.ctx.Log().Debugw("call", "node", node.String(m))

	return m.Execute(e.frame(at, self, args))
}

// Context returns the engine's execution context.
func (e *T) Context() *interp.T {
	return e.ctx
}

// Evaluate reads a line of text at the location at and calls the
// primitive it names.
func (e *T) Evaluate(at *loc.T) (cell.I, error) {
	name, args, err := reader.Line(at.Text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", at, err)
	}

	if name == "" {
		return nil, nil
	}

	return e.Run(at, name, args)
}

// Invoke calls the primitive name with args as already built argument
// nodes. The value of a primitive that declines is a PrimitiveFailure.
func (e *T) Invoke(at *loc.T, name string, args ...cell.I) (cell.I, error) {
	p, err := e.lookup(name)
	if err != nil {
		return nil, err
	}

	ns := make([]node.I, len(args))
	for i, a := range args {
		ns[i] = &node.Literal{Value: a}
	}

	n, err := p.CreateInvoke(e.ctx, at, ns)
	if err != nil {
		return nil, err
	}

	return n.Execute(e.frame(at, nil, nil))
}

// Names returns the names of all primitives.
func (e *T) Names() []string {
	return e.catalog.Names()
}

// Run calls the primitive name with values. If the primitive needs a
// receiver, the first value is the receiver.
func (e *T) Run(at *loc.T, name string, values []cell.I) (cell.I, error) {
	p, err := e.lookup(name)
	if err != nil {
		return nil, err
	}

	var self cell.I

	if p.Descriptor().NeedsSelf() {
		self = nul.Nil

		if len(values) > 0 {
			self, values = values[0], values[1:]
		}
	}

	return e.Call(at, name, self, values...)
}

func (e *T) frame(at *loc.T, self cell.I, args []cell.I) *frame.T {
	f := frame.New(nil, self, args...)
	if at != nil {
		f.Update(at)
	}

	return f
}

func (e *T) lookup(name string) (*primitive.Constructor, error) {
	p, ok := e.catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%s: no such primitive", name)
	}

	return p, nil
}

// Exited returns true if a primitive has requested that the program exit.
func (e *T) Exited() bool {
	_, exited := e.ctx.Exited()

	return exited
}
