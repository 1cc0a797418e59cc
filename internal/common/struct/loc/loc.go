// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track the source of a call site.
// A location is also a value so that primitives can receive it as an argument.
package loc

import (
	"strconv"

	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
)

const name = "location"

// T (loc) is a lexical location.
type T struct {
	Char  int    // Character position (column).
	Line  int    // Line number (row).
	Label string // Label for the source of this call site.
	Text  string // The text at this location.
}

type loc = T

// Equal returns true if c is a location with the same position and source.
func (l *loc) Equal(c cell.I) bool {
	o, ok := c.(*loc)

	return ok && *o == *l
}

// Literal returns the literal representation of the location l.
func (l *loc) Literal() string {
	return "(|" + name + " " + l.String() + "|)"
}

// Name returns the type name for a location. It is not the source label.
func (*loc) Name() string {
	return name
}

func (l *loc) String() string {
	return l.Label + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}
