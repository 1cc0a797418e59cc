// Released under an MIT license. See LICENSE.

// Package control provides the signals that unwind evaluation: raised
// exceptions and non-local returns.
package control

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
)

// ReturnID identifies the lexical scope that a non-local return targets.
// Identity is by pointer; the uuid only labels the scope in messages.
type ReturnID struct {
	label string
	uuid  uuid.UUID
}

// NewReturnID creates a new return target for the scope named label.
func NewReturnID(label string) *ReturnID {
	return &ReturnID{label: label, uuid: uuid.New()}
}

func (r *ReturnID) String() string {
	return r.label + "#" + r.uuid.String()[:8]
}

// Return is the signal used to return value from the scope ID.
// It travels as an error so that it passes through every node
// between the return and its target unchanged.
type Return struct {
	ID    *ReturnID
	Value cell.I
}

func (r *Return) Error() string {
	return "return to " + r.ID.String() + " escaped its scope"
}

// Catch returns the value carried by err when err is a return targeting id.
// Otherwise it returns v and err unchanged.
func Catch(id *ReturnID, v cell.I, err error) (cell.I, error) {
	var r *Return
	if errors.As(err, &r) && r.ID == id {
		return r.Value, nil
	}

	return v, err
}

// Raise is an exception visible to programs.
type Raise struct {
	Class   string
	Message string
}

func (e *Raise) Error() string {
	return e.Class + ": " + e.Message
}

// Exception classes.
const (
	ArgumentError    = "ArgumentError"
	PrimitiveFailure = "PrimitiveFailure"
	SecurityError    = "SecurityError"
)

// MissingArgument is raised when a required positional argument is absent.
func MissingArgument(n int) error {
	return &Raise{
		Class:   ArgumentError,
		Message: "missing argument at position " + strconv.Itoa(n),
	}
}

// PrimitiveFailed is raised when an invoked primitive produces no value.
func PrimitiveFailed(name string) error {
	return &Raise{Class: PrimitiveFailure, Message: name + " failed"}
}

// Restricted is raised by a primitive that is not allowed in this context.
func Restricted(name string) error {
	return &Raise{Class: SecurityError, Message: name + " is an unsafe operation"}
}

// Is returns true if err is a Raise of class.
func Is(err error, class string) bool {
	var r *Raise

	return errors.As(err, &r) && r.Class == class
}
