// Released under an MIT license. See LICENSE.

// Package commands provides the built-in primitive operations.
package commands

import (
	_ "embed" // Blank import required by embed.

	"github.com/michaelmacinnis/prim/internal/engine/primitive"
)

//go:embed primitives.yaml
var declarations []byte //nolint:gochecknoglobals

// Declarations returns the declarations for the built-in primitives.
func Declarations() []byte {
	return declarations
}

// Implementations returns the handles for the built-in primitives.
func Implementations() map[string]primitive.Factory {
	return map[string]primitive.Factory{
		"fixnum_p":        primitive.Flat(1, unary(isFixnum)),
		"integer_add":     primitive.Flat(2, binary(add)),
		"integer_lt":      primitive.Flat(2, binary(lt)),
		"object_equal":    primitive.Flat(2, binary(equal)),
		"source_location": primitive.Contextual(1, location),
		"string_join":     primitive.Array(3, variadic(join)),
		"undefined_p":     primitive.Flat(1, unary(isUndefined)),
		"vm_exit":         primitive.Contextual(1, exit),
		"vm_log":          primitive.ContextualArray(2, logger),
		"vm_unsafe_p":     primitive.Contextual(0, unsafe),
		"vm_version":      primitive.Nullary(version),
	}
}
