// Released under an MIT license. See LICENSE.

package primitive

import (
	"strconv"
	"strings"
)

// Kind is the kind of one constructor parameter.
type Kind int

// Parameter kinds. The value passed for each is:
//
//	Context            *interp.T
//	SourceLocation     *loc.T
//	ArgumentNode       node.I
//	ArgumentNodeArray  []node.I
const (
	Context Kind = iota
	SourceLocation
	ArgumentNode
	ArgumentNodeArray
)

func (k Kind) String() string {
	switch k {
	case Context:
		return "context"
	case SourceLocation:
		return "location"
	case ArgumentNode:
		return "node"
	case ArgumentNodeArray:
		return "node[]"
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Signature is the ordered list of parameter kinds a constructor expects.
type Signature []Kind

// Count returns the number of parameters of kind k in s.
func (s Signature) Count(k Kind) int {
	n := 0

	for _, v := range s {
		if v == k {
			n++
		}
	}

	return n
}

func (s Signature) String() string {
	parts := make([]string, len(s))
	for i, k := range s {
		parts[i] = k.String()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// The shapes a signature can take, in the order they are tested.
type shape int

const (
	contextArray shape = iota // (context, location, node[])
	arrayShape                // (node[])
	empty                     // ()
	flat                      // (node, ...)
	contextFlat               // (context, location, node, ...)
)

func (s Signature) shape() shape {
	switch {
	case len(s) >= 3 && s[2] == ArgumentNodeArray:
		return contextArray
	case len(s) == 1 && s[0] == ArgumentNodeArray:
		return arrayShape
	case len(s) == 0:
		return empty
	case s[0] != Context:
		return flat
	}

	return contextFlat
}
