// Released under an MIT license. See LICENSE.

package node

import (
	"strconv"

	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
	"github.com/michaelmacinnis/prim/internal/common/interface/literal"
	"github.com/michaelmacinnis/prim/internal/common/struct/frame"
	"github.com/michaelmacinnis/prim/internal/common/struct/loc"
	"github.com/michaelmacinnis/prim/internal/common/type/fixnum"
	"github.com/michaelmacinnis/prim/internal/common/type/null"
	"github.com/michaelmacinnis/prim/internal/common/type/undef"
	"github.com/michaelmacinnis/prim/internal/engine/control"
)

// Missing says what a positional read yields when the argument is absent.
type Missing int

const (
	Undefined Missing = iota // Yield undef.Value.
	Nil                      // Yield nul.Nil.
	Error                    // Raise an ArgumentError.
)

func (m Missing) String() string {
	switch m {
	case Undefined:
		return "undefined"
	case Nil:
		return "nil"
	case Error:
		return "error"
	}

	return "missing(" + strconv.Itoa(int(m)) + ")"
}

// Self reads the receiver of the call.
type Self struct{}

// Execute returns the receiver, or Nil for a call without one.
func (*Self) Execute(f *frame.T) (cell.I, error) {
	if s := f.Self(); s != nil {
		return s, nil
	}

	return nul.Nil, nil
}

func (*Self) String() string {
	return "self"
}

// ReadPre reads the caller-supplied positional argument at Index.
type ReadPre struct {
	Index   int
	Missing Missing
}

// Execute returns the argument at Index or applies Missing if it is absent.
func (r *ReadPre) Execute(f *frame.T) (cell.I, error) {
	if v, ok := f.Arg(r.Index); ok {
		return v, nil
	}

	switch r.Missing {
	case Nil:
		return nul.Nil, nil
	case Error:
		return nil, control.MissingArgument(r.Index)
	}

	return undef.Value, nil
}

func (r *ReadPre) String() string {
	s := "arg(" + strconv.Itoa(r.Index)
	if r.Missing != Undefined {
		s += ", " + r.Missing.String()
	}

	return s + ")"
}

// Lower narrows the value of Child to a machine word when it can.
// Implementations behind a Lower must still accept the wide form.
type Lower struct {
	Child I
}

// Execute evaluates Child and lowers the result.
func (l *Lower) Execute(f *frame.T) (cell.I, error) {
	v, err := l.Child.Execute(f)
	if err != nil {
		return nil, err
	}

	return fixnum.Lower(v), nil
}

func (l *Lower) String() string {
	return "lower(" + String(l.Child) + ")"
}

// Context yields the execution context bound when the node was built.
type Context struct {
	Value cell.I
}

// Execute returns the bound context.
func (c *Context) Execute(*frame.T) (cell.I, error) {
	return c.Value, nil
}

func (*Context) String() string {
	return "context"
}

// Location yields the call-site location bound when the node was built.
type Location struct {
	Value *loc.T
}

// Execute returns the bound location.
func (l *Location) Execute(*frame.T) (cell.I, error) {
	return l.Value, nil
}

func (*Location) String() string {
	return "location"
}

// Literal yields a constant. Callers that build argument nodes themselves
// use it for values known at construction.
type Literal struct {
	Value cell.I
}

// Execute returns the constant.
func (l *Literal) Execute(*frame.T) (cell.I, error) {
	return l.Value, nil
}

func (l *Literal) String() string {
	return literal.String(l.Value)
}
