// Released under an MIT license. See LICENSE.

package node

import (
	"fmt"
	"strings"

	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
	"github.com/michaelmacinnis/prim/internal/common/struct/frame"
	"github.com/michaelmacinnis/prim/internal/common/type/null"
	"github.com/michaelmacinnis/prim/internal/engine/control"
)

// Fail always fails with Err.
type Fail struct {
	Err error
}

// Execute returns Err.
func (n *Fail) Execute(*frame.T) (cell.I, error) {
	return nil, n.Err
}

func (n *Fail) String() string {
	return "fail(" + n.Err.Error() + ")"
}

// Method is the body of a method. Returns targeting ID end the body early.
type Method struct {
	ID   *control.ReturnID
	Body I
}

// Execute runs the body and catches any return aimed at this method.
func (m *Method) Execute(f *frame.T) (cell.I, error) {
	v, err := m.Body.Execute(f)

	return control.Catch(m.ID, v, err)
}

func (m *Method) String() string {
	return "method " + m.ID.String() + " " + String(m.Body)
}

// Sequence executes its nodes in order. Its value is the value of the last.
type Sequence []I

// Execute runs each node, stopping at the first failure or return.
func (s Sequence) Execute(f *frame.T) (cell.I, error) {
	var v cell.I = nul.Nil

	for _, n := range s {
		var err error

		v, err = n.Execute(f)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, n := range s {
		parts[i] = String(n)
	}

	return "{" + strings.Join(parts, "; ") + "}"
}

// String returns a short description of the node n, for listings and tests.
func String(n I) string {
	if s, ok := n.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%T", n)
}

// Strings describes each node in ns.
func Strings(ns []I) []string {
	s := make([]string, len(ns))
	for i, n := range ns {
		s[i] = String(n)
	}

	return s
}
