// Released under an MIT license. See LICENSE.

// Package primitive adapts primitive implementations to call sites.
//
// A primitive is described by a Descriptor and implemented behind a
// Factory. A Constructor pairs the two, checks once that they agree, and
// then builds invocation nodes: CreateCall for static call sites, where
// the constructor reads the arguments from the caller's frame itself, and
// CreateInvoke for call sites that already hold argument nodes. The
// factory's parameter shape is resolved when the node is built, so the
// built node calls the implementation directly.
package primitive

import (
	"fmt"

	"github.com/michaelmacinnis/prim/internal/common/struct/loc"
	"github.com/michaelmacinnis/prim/internal/common/validate"
	"github.com/michaelmacinnis/prim/internal/engine/control"
	"github.com/michaelmacinnis/prim/internal/engine/interp"
	"github.com/michaelmacinnis/prim/internal/engine/node"
)

// Constructor builds invocation nodes for one primitive.
type Constructor struct {
	descriptor *Descriptor
	factory    Factory
	signature  Signature
}

// New pairs the descriptor d with the factory f. Any disagreement between
// them is a defect in the catalog and is returned as an error.
func New(d *Descriptor, f Factory) (*Constructor, error) {
	sigs := f.Signatures()
	if len(sigs) != 1 {
		return nil, fmt.Errorf("%s: declares %d signatures, expected exactly 1", d.Name(), len(sigs))
	}

	c := &Constructor{descriptor: d, factory: f, signature: sigs[0]}

	if err := c.check(); err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name(), err)
	}

	return c, nil
}

// Arity returns the primitive's arity, including any receiver.
func (c *Constructor) Arity() int {
	return c.factory.Arity()
}

// Descriptor returns the primitive's descriptor.
func (c *Constructor) Descriptor() *Descriptor {
	return c.descriptor
}

// Signature returns the implementation's constructor signature.
func (c *Constructor) Signature() Signature {
	return c.signature
}

// CreateCall builds the node for a static call site at l. The arguments are
// read from the calling frame: the receiver first, if needed, then each
// positional argument. A successful call returns from the scope id.
func (c *Constructor) CreateCall(ctx *interp.T, l *loc.T, id *control.ReturnID) (node.I, error) {
	args := c.arguments()

	if u := c.guard(ctx, l); u != nil {
		return u, nil
	}

	var params []any

	switch c.signature.shape() {
	case contextArray:
		params = []any{ctx, l, args}
	case arrayShape:
		params = []any{args}
	case empty:
		params = nil
	case flat:
		params = make([]any, len(args))
		for i, a := range args {
			params[i] = a
		}
	case contextFlat:
		params = make([]any, 0, 2+len(args))
		params = append(params, ctx, l)

		for _, a := range args {
			params = append(params, a)
		}
	}

	n, err := c.factory.Create(params...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.descriptor.Name(), err)
	}

	return &Call{id: id, name: c.descriptor.Name(), primitive: n}, nil
}

// CreateInvoke builds the node for a call site that supplies its own
// argument nodes. The first argument is the receiver and is never lowered;
// any other argument at a lowered position is. The number of argument
// nodes must match the primitive's arity.
func (c *Constructor) CreateInvoke(ctx *interp.T, l *loc.T, args []node.I) (node.I, error) {
	if err := validate.Fixed("arguments", len(args), c.factory.Arity()); err != nil {
		return nil, fmt.Errorf("%s: %w", c.descriptor.Name(), err)
	}

	if u := c.guard(ctx, l); u != nil {
		return u, nil
	}

	lowered := make([]node.I, len(args))
	copy(lowered, args)

	for n := 1; n < len(lowered); n++ {
		lowered[n] = c.lower(lowered[n], n)
	}

	var params []any
	if len(c.signature) > 0 && c.signature[0] == Context {
		params = []any{ctx, l, lowered}
	} else {
		params = []any{lowered}
	}

	n, err := c.factory.Create(params...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.descriptor.Name(), err)
	}

	return &Invoke{name: c.descriptor.Name(), primitive: n}, nil
}

func (c *Constructor) String() string {
	return c.descriptor.String() + " " + c.signature.String()
}

// arguments builds the argument nodes for CreateCall.
func (c *Constructor) arguments() []node.I {
	count := c.factory.Arity()
	if count == 0 {
		return nil
	}

	args := make([]node.I, 0, count)

	if c.descriptor.NeedsSelf() {
		args = append(args, &node.Self{})
		count--
	}

	for n := 0; n < count; n++ {
		read := &node.ReadPre{Index: n, Missing: node.Undefined}
		args = append(args, c.lower(read, n))
	}

	return args
}

// check verifies that the factory's arity agrees with its signature
// and with the descriptor.
func (c *Constructor) check() error {
	s := c.signature
	arity := c.factory.Arity()

	if arity < 0 {
		return fmt.Errorf("negative arity %d", arity)
	}

	switch s.shape() {
	case empty:
		if arity != 0 {
			return fmt.Errorf("arity %d but the constructor takes no parameters", arity)
		}

		return nil
	case contextArray:
		if len(s) != 3 || s[0] != Context || s[1] != SourceLocation {
			return fmt.Errorf("unsupported signature %v", s)
		}
	case arrayShape:
	case flat:
		if s.Count(ArgumentNode) != len(s) || len(s) != arity {
			return fmt.Errorf("signature %v does not match arity %d", s, arity)
		}
	case contextFlat:
		if len(s) < 2 || s[1] != SourceLocation || s.Count(ArgumentNode) != len(s)-2 || len(s)-2 != arity {
			return fmt.Errorf("signature %v does not match arity %d", s, arity)
		}
	}

	positional := arity

	if c.descriptor.NeedsSelf() {
		if arity == 0 {
			return fmt.Errorf("needs self but has no arguments")
		}

		positional--
	}

	for _, n := range c.descriptor.Lowered() {
		if n >= positional {
			return fmt.Errorf("lowered position %d out of range for %d positional arguments", n, positional)
		}
	}

	return nil
}

// guard returns a node that always fails if the primitive is unsafe and
// the context does not allow unsafe operations. Otherwise it returns nil.
func (c *Constructor) guard(ctx *interp.T, l *loc.T) node.I {
	if !c.descriptor.Unsafe() || ctx.UnsafeAllowed() {
		return nil
	}

	ctx.Log().Debugw("unsafe primitive blocked",
		"primitive", c.descriptor.Name(),
		"at", l,
	)

	return &Unsafe{err: control.Restricted(c.descriptor.Name())}
}

func (c *Constructor) lower(n node.I, position int) node.I {
	if c.descriptor.Lowers(position) {
		return &node.Lower{Child: n}
	}

	return n
}
