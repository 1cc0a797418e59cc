// Released under an MIT license. See LICENSE.

// Package frame provides the call frame that argument nodes read from.
package frame

import (
	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
	"github.com/michaelmacinnis/prim/internal/common/struct/loc"
)

// T (frame) is an activation record: the receiver and the positional
// arguments of one call. Frames are never shared between calls.
type T struct {
	args     []cell.I
	previous *frame
	self     cell.I
	source   loc.T
}

type frame = T

// Dup creates a duplicate of the frame f with a new receiver.
func Dup(self cell.I, f *frame) *frame {
	dup := *f
	dup.self = self

	return &dup
}

// New creates a new frame for a call on self with args, made from frame p.
func New(p *frame, self cell.I, args ...cell.I) *frame {
	f := &frame{args: args, self: self}

	if p != nil {
		f.previous = p
		f.source = p.source
	}

	return f
}

// Arg returns the positional argument at index n and true, or false
// if the caller did not supply it.
func (f *frame) Arg(n int) (cell.I, bool) {
	if n < 0 || n >= len(f.args) {
		return nil, false
	}

	return f.args[n], true
}

// Count returns the number of positional arguments supplied.
func (f *frame) Count() int {
	return len(f.args)
}

// Loc returns the current location.
func (f *frame) Loc() *loc.T {
	return &f.source
}

// Previous returns the previous frame.
func (f *frame) Previous() *frame {
	return f.previous
}

// Self returns the receiver of the call.
func (f *frame) Self() cell.I {
	return f.self
}

// Update sets the current lexical location.
func (f *frame) Update(source *loc.T) {
	f.source = *source
}
