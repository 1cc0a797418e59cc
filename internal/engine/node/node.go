// Released under an MIT license. See LICENSE.

// Package node provides the executable tree nodes built around a primitive
// call: the argument nodes that feed it and the scope that receives its
// non-local return.
//
// Nodes are immutable once built. Everything that changes from one call
// to the next lives in the frame passed to Execute, so a node may be
// executed by many goroutines at once.
package node

import (
	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
	"github.com/michaelmacinnis/prim/internal/common/struct/frame"
)

// I (node) is anything that produces a value, or fails, for a frame.
type I interface {
	Execute(f *frame.T) (cell.I, error)
}

// Each executes the nodes ns in order and collects their values.
// It stops at the first failure.
func Each(f *frame.T, ns []I) ([]cell.I, error) {
	vs := make([]cell.I, len(ns))

	for i, n := range ns {
		v, err := n.Execute(f)
		if err != nil {
			return nil, err
		}

		vs[i] = v
	}

	return vs, nil
}
