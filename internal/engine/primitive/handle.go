// Released under an MIT license. See LICENSE.

package primitive

import (
	"fmt"

	"github.com/michaelmacinnis/prim/internal/common/struct/loc"
	"github.com/michaelmacinnis/prim/internal/common/validate"
	"github.com/michaelmacinnis/prim/internal/engine/interp"
	"github.com/michaelmacinnis/prim/internal/engine/node"
)

// Factory is the implementation handle for a primitive.
//
// Arity is the number of argument nodes the implementation executes,
// including the receiver when the primitive needs one. Signatures lists
// the constructor shapes it accepts; exactly one is allowed. Create
// builds the implementation's node from parameters matching that
// signature, one per kind (see Kind).
type Factory interface {
	Arity() int
	Signatures() []Signature
	Create(params ...any) (node.I, error)
}

// Handle is a Factory with a single signature.
type Handle struct {
	arity     int
	create    func(params []any) (node.I, error)
	signature Signature
}

// Nullary creates a handle for an implementation that takes no parameters.
func Nullary(create func() node.I) *Handle {
	return &Handle{
		create: func(params []any) (node.I, error) {
			if err := validate.Fixed("constructor", len(params), 0); err != nil {
				return nil, err
			}

			return create(), nil
		},
		signature: Signature{},
	}
}

// Flat creates a handle for an implementation taking n argument nodes.
func Flat(n int, create func(args []node.I) node.I) *Handle {
	return &Handle{
		arity: n,
		create: func(params []any) (node.I, error) {
			args, err := nodes(params, 0, n)
			if err != nil {
				return nil, err
			}

			return create(args), nil
		},
		signature: repeat(nil, n),
	}
}

// Contextual creates a handle for an implementation taking the execution
// context and call-site location followed by n argument nodes.
func Contextual(n int, create func(c *interp.T, l *loc.T, args []node.I) node.I) *Handle {
	return &Handle{
		arity: n,
		create: func(params []any) (node.I, error) {
			c, l, err := leading(params)
			if err != nil {
				return nil, err
			}

			args, err := nodes(params, 2, n)
			if err != nil {
				return nil, err
			}

			return create(c, l, args), nil
		},
		signature: repeat(Signature{Context, SourceLocation}, n),
	}
}

// Array creates a handle for an implementation taking its n argument nodes
// as a single array.
func Array(n int, create func(args []node.I) node.I) *Handle {
	return &Handle{
		arity: n,
		create: func(params []any) (node.I, error) {
			if err := validate.Fixed("constructor", len(params), 1); err != nil {
				return nil, err
			}

			args, err := array(params[0], 0, n)
			if err != nil {
				return nil, err
			}

			return create(args), nil
		},
		signature: Signature{ArgumentNodeArray},
	}
}

// ContextualArray creates a handle for an implementation taking the
// execution context, call-site location and an array of n argument nodes.
func ContextualArray(n int, create func(c *interp.T, l *loc.T, args []node.I) node.I) *Handle {
	return &Handle{
		arity: n,
		create: func(params []any) (node.I, error) {
			if err := validate.Fixed("constructor", len(params), 3); err != nil {
				return nil, err
			}

			c, l, err := leading(params)
			if err != nil {
				return nil, err
			}

			args, err := array(params[2], 2, n)
			if err != nil {
				return nil, err
			}

			return create(c, l, args), nil
		},
		signature: Signature{Context, SourceLocation, ArgumentNodeArray},
	}
}

// Arity returns the number of argument nodes h executes.
func (h *Handle) Arity() int {
	return h.arity
}

// Create builds the implementation node from params.
func (h *Handle) Create(params ...any) (node.I, error) {
	return h.create(params)
}

// Signatures returns h's only signature.
func (h *Handle) Signatures() []Signature {
	return []Signature{h.signature}
}

func array(p any, i, n int) ([]node.I, error) {
	args, ok := p.([]node.I)
	if !ok {
		return nil, mismatch(i, ArgumentNodeArray, p)
	}

	if err := validate.Fixed("arguments", len(args), n); err != nil {
		return nil, err
	}

	return args, nil
}

func leading(params []any) (*interp.T, *loc.T, error) {
	if len(params) < 2 {
		return nil, nil, fmt.Errorf("constructor: expected context and location, passed %d parameters", len(params))
	}

	c, ok := params[0].(*interp.T)
	if !ok {
		return nil, nil, mismatch(0, Context, params[0])
	}

	l, ok := params[1].(*loc.T)
	if !ok {
		return nil, nil, mismatch(1, SourceLocation, params[1])
	}

	return c, l, nil
}

func mismatch(i int, k Kind, p any) error {
	return fmt.Errorf("constructor: parameter %d must be a %s, not %T", i, k, p)
}

func nodes(params []any, offset, n int) ([]node.I, error) {
	if err := validate.Fixed("constructor", len(params)-offset, n); err != nil {
		return nil, err
	}

	args := make([]node.I, n)

	for i, p := range params[offset:] {
		a, ok := p.(node.I)
		if !ok {
			return nil, mismatch(offset+i, ArgumentNode, p)
		}

		args[i] = a
	}

	return args, nil
}

func repeat(prefix Signature, n int) Signature {
	s := make(Signature, 0, len(prefix)+n)
	s = append(s, prefix...)

	for i := 0; i < n; i++ {
		s = append(s, ArgumentNode)
	}

	return s
}
