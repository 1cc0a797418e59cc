// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all values seen by primitives.
package cell

// I (cell) is the basic unit of storage. Every value produced by a node is a cell.
type I interface {
	Equal(c I) bool
	Name() string
}
