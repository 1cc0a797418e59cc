// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
	"github.com/michaelmacinnis/prim/internal/common/type/boolean"
	"github.com/michaelmacinnis/prim/internal/common/type/str"
	"github.com/michaelmacinnis/prim/internal/common/type/undef"
)

func equal(a, b cell.I) cell.I {
	return boolean.Bool(a.Equal(b))
}

func isUndefined(c cell.I) cell.I {
	return boolean.Bool(undef.Is(c))
}

// join joins its strings with the first as the separator.
// Arguments that were not supplied are skipped.
func join(vs []cell.I) cell.I {
	if !str.Is(vs[0]) {
		return nil
	}

	sep := str.To(vs[0]).String()
	parts := []string{}

	for _, v := range vs[1:] {
		if undef.Is(v) {
			continue
		}

		if !str.Is(v) {
			return nil
		}

		parts = append(parts, str.To(v).String())
	}

	return str.New(strings.Join(parts, sep))
}
