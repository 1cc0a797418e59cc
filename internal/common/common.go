// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import (
	"fmt"

	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
)

type Stringer = fmt.Stringer

// String returns the string value for a cell, if possible.
func String(c cell.I) (string, error) {
	b, ok := c.(Stringer)
	if !ok {
		return "", fmt.Errorf("%s cannot be used in a string context", c.Name())
	}

	return b.String(), nil
}
