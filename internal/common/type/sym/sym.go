// Released under an MIT license. See LICENSE.

// Package sym provides the symbol type. Short symbols are interned.
package sym

import (
	"sync"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/prim/internal/common"
	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
	"github.com/michaelmacinnis/prim/internal/common/interface/literal"
)

const (
	name  = "symbol"
	short = 8
)

// T (sym) wraps Go's string type.
type T string

type sym = T

//nolint:gochecknoglobals
var (
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

// New creates a sym cell.
func New(v string) cell.I {
	if len(v) > short {
		s := sym(v)

		return &s
	}

	cachel.RLock()
	p, ok := cache[v]
	cachel.RUnlock()

	if ok {
		return p
	}

	cachel.Lock()
	defer cachel.Unlock()

	if p, ok = cache[v]; ok {
		return p
	}

	s := sym(v)
	cache[v] = &s

	return &s
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	q := adapted.CanonicalString(string(*s))

	if len(*s) == 0 || q[2:len(q)-1] != string(*s) {
		return ":" + q
	}

	return ":" + string(*s)
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
